package registry

import "studioshot/internal/domain"

// SceneStudioWhite is the scene the builder starts from when nothing has been
// selected.
const SceneStudioWhite = "studio-white"

// scenes is compiled-in data: loaded once, never mutated at runtime.
var scenes = []domain.Scene{
	{
		ID:          SceneStudioWhite,
		Name:        "纯白棚拍",
		Description: "专业电商白底图，干净简洁，适合主图展示",
		Icon:        "📷",
		DefaultSettings: domain.SceneDefaults{
			Background: domain.BackgroundWhite,
			Lighting:   domain.LightingStudio,
			Style:      domain.StyleCommercial,
		},
		PromptHints: []string{
			"a pure white seamless background creating clean e-commerce presentation",
			"professional three-point studio lighting that creates soft diffused highlights",
			"centered composition at a slightly elevated angle showcasing product clearly",
		},
		Tags:                   []string{"电商主图", "白底图", "产品展示"},
		HasDetailedLighting:    true,
		HasDetailedComposition: true,
	},
	{
		ID:          "lifestyle",
		Name:        "生活场景",
		Description: "真实生活环境展示，增强产品代入感",
		Icon:        "🏠",
		DefaultSettings: domain.SceneDefaults{
			Background: domain.BackgroundContextual,
			Lighting:   domain.LightingNatural,
			Style:      domain.StyleRealistic,
		},
		PromptHints: []string{
			"a warm and inviting natural home environment with authentic lifestyle context",
			"soft natural daylight streaming through windows creating gentle ambient lighting",
			"lifestyle composition showing the product in realistic everyday use",
			"cozy interior setting with complementary decor elements and natural textures",
			"product shown at realistic scale proportional to surrounding furniture and environment",
		},
		Tags:                   []string{"场景图", "生活方式", "氛围感"},
		HasDetailedLighting:    true,
		HasDetailedComposition: true,
	},
	{
		ID:          "outdoor",
		Name:        "户外场景",
		Description: "户外自然环境，适合运动、户外用品",
		Icon:        "🌲",
		DefaultSettings: domain.SceneDefaults{
			Background: domain.BackgroundContextual,
			Lighting:   domain.LightingNatural,
			Style:      domain.StyleRealistic,
		},
		PromptHints: []string{
			"a dynamic natural outdoor environment with scenic nature backdrop",
			"golden hour lighting with warm natural sunlight creating dramatic atmosphere",
			"adventure lifestyle composition emphasizing product in action context",
			"sharp focus on product with natural depth of field and environmental storytelling",
			"product displayed at true-to-life scale within the natural outdoor setting",
		},
		Tags:                   []string{"户外", "运动", "自然"},
		HasDetailedLighting:    true,
		HasDetailedComposition: true,
	},
	{
		ID:          "seasonal",
		Name:        "节日主题",
		Description: "节日氛围图，适合促销活动",
		Icon:        "🎄",
		DefaultSettings: domain.SceneDefaults{
			Background: domain.BackgroundContextual,
			Lighting:   domain.LightingDramatic,
			Style:      domain.StyleArtistic,
		},
		PromptHints: []string{
			"a festive atmosphere with seasonal decorations and celebration elements",
			"warm holiday lighting creating magical ambiance and special occasion mood",
			"gift-giving context with elegant seasonal styling and holiday themes",
			"dramatic composition emphasizing the joy and spirit of the celebration",
			"product presented at appropriate scale relative to holiday decorations and setting",
		},
		Tags:                   []string{"节日", "促销", "活动"},
		HasDetailedLighting:    true,
		HasDetailedComposition: true,
	},
	{
		ID:          "luxury",
		Name:        "高端奢华",
		Description: "奢华质感，适合高端品牌展示",
		Icon:        "💎",
		DefaultSettings: domain.SceneDefaults{
			Background: domain.BackgroundGradient,
			Lighting:   domain.LightingDramatic,
			Style:      domain.StyleArtistic,
			Quality:    domain.QualityUltra,
		},
		PromptHints: []string{
			"an elegant dark gradient background with subtle reflections emphasizing luxury",
			"dramatic rim lighting highlighting premium materials and craftsmanship textures",
			"sophisticated composition conveying exclusivity and refined aesthetic",
			"opulent atmosphere capturing every luxurious detail",
		},
		Tags:                   []string{"高端", "奢侈品", "品质感"},
		HasDetailedLighting:    true,
		HasDetailedComposition: true,
	},
	{
		ID:          "minimalist",
		Name:        "极简风格",
		Description: "简约设计感，突出产品本身",
		Icon:        "⬜",
		DefaultSettings: domain.SceneDefaults{
			Background: domain.BackgroundGradient,
			Lighting:   domain.LightingSoft,
			Style:      domain.StyleCommercial,
		},
		PromptHints: []string{
			"a minimalist design with clean aesthetic and generous negative space",
			"simple composition with geometric simplicity emphasizing modern elegance",
			"soft diffused lighting creating subtle shadows without distraction",
			"modern and sleek presentation focusing entirely on product form and function",
		},
		Tags:                   []string{"极简", "现代", "简约"},
		HasDetailedLighting:    true,
		HasDetailedComposition: true,
	},
}

// SceneByID looks up a scene by id. The second return is false for unknown
// ids; lookups never fail harder than that.
func SceneByID(id string) (domain.Scene, bool) {
	for _, s := range scenes {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Scene{}, false
}

// SceneList returns every scene in definition order.
func SceneList() []domain.Scene {
	out := make([]domain.Scene, len(scenes))
	copy(out, scenes)
	return out
}

// ScenesByTag filters scenes by tag membership, preserving definition order.
func ScenesByTag(tag string) []domain.Scene {
	var out []domain.Scene
	for _, s := range scenes {
		if s.HasTag(tag) {
			out = append(out, s)
		}
	}
	return out
}
