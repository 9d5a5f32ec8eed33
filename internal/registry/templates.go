package registry

import (
	"strings"

	"studioshot/internal/domain"
)

// Template is a one-click prompt preset bundling a scene, settings and a
// prompt skeleton with a {product} placeholder.
type Template struct {
	ID             string                    `json:"id"`
	Name           string                    `json:"name"`
	Description    string                    `json:"description"`
	Category       string                    `json:"category"`
	SceneID        string                    `json:"scene_id"`
	Settings       domain.GenerationSettings `json:"settings"`
	PromptTemplate string                    `json:"prompt_template"`
	Tags           []string                  `json:"tags"`
}

var templates = []Template{
	{
		ID:          "ecommerce-main",
		Name:        "电商主图标准版",
		Description: "适用于淘宝、京东等平台的标准商品主图",
		Category:    "ecommerce",
		SceneID:     SceneStudioWhite,
		Settings: domain.GenerationSettings{
			AspectRatio: domain.AspectSquare,
			Quality:     domain.QualityHigh,
			Background:  domain.BackgroundWhite,
			Lighting:    domain.LightingStudio,
			Style:       domain.StyleCommercial,
		},
		PromptTemplate: "Professional e-commerce product photography of {product}, pure white background, studio lighting, centered composition, high-end commercial style, clean and minimal, soft shadows, 8K quality",
		Tags:           []string{"电商", "主图", "标准"},
	},
	{
		ID:          "lifestyle-home",
		Name:        "家居生活场景",
		Description: "温馨家居环境，展示产品使用场景",
		Category:    "lifestyle",
		SceneID:     "lifestyle",
		Settings: domain.GenerationSettings{
			AspectRatio: domain.AspectLandscape,
			Quality:     domain.QualityHigh,
			Background:  domain.BackgroundContextual,
			Lighting:    domain.LightingNatural,
			Style:       domain.StyleRealistic,
		},
		PromptTemplate: "{product} in a cozy modern living room, natural daylight through large windows, warm and inviting atmosphere, lifestyle photography, realistic home environment, comfortable interior design",
		Tags:           []string{"生活", "家居", "场景"},
	},
	{
		ID:          "luxury-premium",
		Name:        "高端奢华展示",
		Description: "奢华质感，适合高端品牌产品",
		Category:    "luxury",
		SceneID:     "luxury",
		Settings: domain.GenerationSettings{
			AspectRatio: domain.AspectSquare,
			Quality:     domain.QualityUltra,
			Background:  domain.BackgroundGradient,
			Lighting:    domain.LightingDramatic,
			Style:       domain.StyleArtistic,
		},
		PromptTemplate: "Luxury product photography of {product}, elegant dark gradient background, dramatic rim lighting, premium aesthetic, sophisticated composition, opulent atmosphere, high-end brand style",
		Tags:           []string{"高端", "奢华", "品牌"},
	},
	{
		ID:          "outdoor-adventure",
		Name:        "户外探险风格",
		Description: "自然户外环境，适合运动户外产品",
		Category:    "outdoor",
		SceneID:     "outdoor",
		Settings: domain.GenerationSettings{
			AspectRatio: domain.AspectWide,
			Quality:     domain.QualityHigh,
			Background:  domain.BackgroundContextual,
			Lighting:    domain.LightingNatural,
			Style:       domain.StyleRealistic,
		},
		PromptTemplate: "{product} in an outdoor adventure setting, beautiful natural landscape, golden hour lighting, dynamic outdoor photography, adventurous lifestyle, scenic mountain or forest backdrop",
		Tags:           []string{"户外", "运动", "自然"},
	},
	{
		ID:          "minimalist-modern",
		Name:        "极简现代风格",
		Description: "简约设计感，突出产品本身",
		Category:    "minimalist",
		SceneID:     "minimalist",
		Settings: domain.GenerationSettings{
			AspectRatio: domain.AspectSquare,
			Quality:     domain.QualityHigh,
			Background:  domain.BackgroundGradient,
			Lighting:    domain.LightingSoft,
			Style:       domain.StyleCommercial,
		},
		PromptTemplate: "Minimalist product photography of {product}, clean geometric background, soft gradient, ample negative space, modern sleek aesthetic, subtle shadows, contemporary design style",
		Tags:           []string{"极简", "现代", "简约"},
	},
	{
		ID:          "festival-celebration",
		Name:        "节日促销主题",
		Description: "节日氛围，适合促销活动使用",
		Category:    "seasonal",
		SceneID:     "seasonal",
		Settings: domain.GenerationSettings{
			AspectRatio: domain.AspectSquare,
			Quality:     domain.QualityHigh,
			Background:  domain.BackgroundContextual,
			Lighting:    domain.LightingDramatic,
			Style:       domain.StyleArtistic,
		},
		PromptTemplate: "{product} in a festive celebration setting, holiday decorations, warm celebratory lighting, gift-giving atmosphere, seasonal elements, special occasion mood, promotional style",
		Tags:           []string{"节日", "促销", "活动"},
	},
	{
		ID:          "fashion-editorial",
		Name:        "时尚杂志风格",
		Description: "时尚大片风格，适合服装配饰",
		Category:    "fashion",
		SceneID:     "lifestyle",
		Settings: domain.GenerationSettings{
			AspectRatio: domain.AspectPortrait,
			Quality:     domain.QualityUltra,
			Background:  domain.BackgroundContextual,
			Lighting:    domain.LightingDramatic,
			Style:       domain.StyleArtistic,
		},
		PromptTemplate: "Fashion editorial photography featuring {product}, high-fashion aesthetic, dramatic artistic lighting, stylish urban backdrop, magazine cover quality, trendy and chic atmosphere",
		Tags:           []string{"时尚", "杂志", "大片"},
	},
	{
		ID:          "tech-product",
		Name:        "科技产品展示",
		Description: "现代科技感，适合数码电子产品",
		Category:    "tech",
		SceneID:     "minimalist",
		Settings: domain.GenerationSettings{
			AspectRatio: domain.AspectWide,
			Quality:     domain.QualityHigh,
			Background:  domain.BackgroundGradient,
			Lighting:    domain.LightingStudio,
			Style:       domain.StyleCommercial,
		},
		PromptTemplate: "Modern technology product photography of {product}, sleek dark gradient background, precise edge lighting, futuristic tech aesthetic, clean digital product shot, reflective surfaces",
		Tags:           []string{"科技", "数码", "电子"},
	},
}

func TemplateByID(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

func TemplateList() []Template {
	return append([]Template{}, templates...)
}

func TemplatesByScene(sceneID string) []Template {
	var out []Template
	for _, t := range templates {
		if t.SceneID == sceneID {
			out = append(out, t)
		}
	}
	return out
}

func TemplatesByTag(tag string) []Template {
	var out []Template
	for _, t := range templates {
		for _, candidate := range t.Tags {
			if candidate == tag {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// ApplyTemplate substitutes the product name into the template skeleton.
func ApplyTemplate(t Template, productName string) string {
	return strings.ReplaceAll(t.PromptTemplate, "{product}", productName)
}
