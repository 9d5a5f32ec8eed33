package registry

import (
	"sort"
	"strings"

	"studioshot/internal/domain"
)

var categories = []domain.Category{
	{
		ID:              "electronics",
		Name:            "数码电子",
		Icon:            "📱",
		Keywords:        []string{"手机", "电脑", "耳机", "相机", "平板", "智能手表", "充电器"},
		SuggestedScenes: []string{"studio-white", "minimalist", "lifestyle"},
		PromptEnhancements: []string{
			"sleek metallic surface",
			"reflective screen",
			"modern technology aesthetic",
			"precise edge lighting",
			"clean digital product shot",
		},
		Photography: domain.CategoryPhotography{
			PreferredLighting: domain.LightingStudio,
			PreferredAngle:    "elevated",
			DepthOfField:      "medium",
			BackgroundStyle:   "gradient",
		},
		SceneRecommendations: []domain.CategorySceneRecommendation{
			{SceneID: "studio-white", Priority: 5, Reason: "展示产品细节和工艺", Modifiers: []string{"product focus", "tech aesthetic"}},
			{SceneID: "minimalist", Priority: 4, Reason: "突出现代设计感", Modifiers: []string{"clean lines", "geometric"}},
			{SceneID: "lifestyle", Priority: 3, Reason: "展示使用场景", Modifiers: []string{"desk setup", "modern workspace"}},
		},
		MaterialKeywords: []string{"aluminum", "glass", "plastic", "metal", "matte", "glossy"},
		AvoidKeywords:    []string{"vintage", "rustic", "organic", "handmade"},
	},
	{
		ID:              "fashion",
		Name:            "服装服饰",
		Icon:            "👔",
		Keywords:        []string{"衣服", "裤子", "裙子", "外套", "T恤", "帽子", "围巾"},
		SuggestedScenes: []string{"lifestyle", "studio-white", "minimalist"},
		PromptEnhancements: []string{
			"fabric texture detail",
			"natural draping",
			"fashion photography style",
			"soft flattering light",
			"stylish presentation",
		},
		Photography: domain.CategoryPhotography{
			PreferredLighting: domain.LightingSoft,
			PreferredAngle:    "front",
			DepthOfField:      "shallow",
			BackgroundStyle:   "contextual",
		},
		SceneRecommendations: []domain.CategorySceneRecommendation{
			{SceneID: "lifestyle", Priority: 5, Reason: "展示穿搭效果", Modifiers: []string{"fashion model", "styled outfit"}},
			{SceneID: "studio-white", Priority: 4, Reason: "清晰展示款式", Modifiers: []string{"flat lay", "hanging display"}},
			{SceneID: "minimalist", Priority: 3, Reason: "突出设计细节", Modifiers: []string{"fabric focus", "textile detail"}},
		},
		MaterialKeywords: []string{"cotton", "silk", "wool", "linen", "leather", "denim", "polyester"},
		AvoidKeywords:    []string{"tech", "digital", "electronic", "mechanical"},
	},
	{
		ID:              "beauty",
		Name:            "美妆护肤",
		Icon:            "💄",
		Keywords:        []string{"口红", "护肤品", "化妆品", "香水", "面膜", "精华"},
		SuggestedScenes: []string{"luxury", "minimalist", "studio-white"},
		PromptEnhancements: []string{
			"glossy product surface",
			"elegant bottle design",
			"beauty product lighting",
			"luxurious texture",
			"premium cosmetic photography",
		},
		Photography: domain.CategoryPhotography{
			PreferredLighting: domain.LightingSoft,
			PreferredAngle:    "elevated",
			DepthOfField:      "shallow",
			BackgroundStyle:   "gradient",
		},
		SceneRecommendations: []domain.CategorySceneRecommendation{
			{SceneID: "luxury", Priority: 5, Reason: "突出高端品质", Modifiers: []string{"premium packaging", "elegant"}},
			{SceneID: "minimalist", Priority: 4, Reason: "简约高级感", Modifiers: []string{"clean beauty", "skincare"}},
			{SceneID: "studio-white", Priority: 3, Reason: "产品细节展示", Modifiers: []string{"bottle detail", "texture"}},
		},
		MaterialKeywords: []string{"glass", "ceramic", "metal cap", "frosted", "transparent", "rose gold"},
		AvoidKeywords:    []string{"industrial", "rugged", "outdoor", "sporty"},
	},
	{
		ID:              "home",
		Name:            "家居家装",
		Icon:            "🏡",
		Keywords:        []string{"家具", "灯具", "装饰", "收纳", "床品", "厨具"},
		SuggestedScenes: []string{"lifestyle", "minimalist", "studio-white"},
		PromptEnhancements: []string{
			"cozy home atmosphere",
			"interior design context",
			"warm ambient lighting",
			"comfortable living space",
			"home lifestyle photography",
		},
		Photography: domain.CategoryPhotography{
			PreferredLighting: domain.LightingNatural,
			PreferredAngle:    "elevated",
			DepthOfField:      "medium",
			BackgroundStyle:   "contextual",
		},
		SceneRecommendations: []domain.CategorySceneRecommendation{
			{SceneID: "lifestyle", Priority: 5, Reason: "展示家居场景", Modifiers: []string{"interior design", "room setting"}},
			{SceneID: "minimalist", Priority: 4, Reason: "突出产品设计", Modifiers: []string{"Scandinavian", "modern home"}},
			{SceneID: "studio-white", Priority: 3, Reason: "产品独立展示", Modifiers: []string{"product focus", "clean"}},
		},
		MaterialKeywords: []string{"wood", "fabric", "ceramic", "glass", "metal", "rattan", "marble"},
		AvoidKeywords:    []string{"industrial", "tech", "digital", "sporty"},
	},
	{
		ID:              "food",
		Name:            "食品饮料",
		Icon:            "🍔",
		Keywords:        []string{"零食", "饮料", "茶叶", "咖啡", "保健品", "调味品"},
		SuggestedScenes: []string{"lifestyle", "studio-white", "seasonal"},
		PromptEnhancements: []string{
			"appetizing presentation",
			"food photography lighting",
			"fresh and delicious look",
			"culinary styling",
			"gourmet aesthetic",
		},
		Photography: domain.CategoryPhotography{
			PreferredLighting: domain.LightingNatural,
			PreferredAngle:    "top-down",
			DepthOfField:      "shallow",
			BackgroundStyle:   "contextual",
		},
		SceneRecommendations: []domain.CategorySceneRecommendation{
			{SceneID: "lifestyle", Priority: 5, Reason: "展示美食场景", Modifiers: []string{"food styling", "appetizing"}},
			{SceneID: "studio-white", Priority: 4, Reason: "包装展示", Modifiers: []string{"product packaging", "clean"}},
			{SceneID: "seasonal", Priority: 3, Reason: "节日礼品展示", Modifiers: []string{"gift set", "festive"}},
		},
		MaterialKeywords: []string{"packaging", "glass bottle", "tin", "paper box", "fresh", "organic"},
		AvoidKeywords:    []string{"tech", "digital", "industrial", "mechanical"},
	},
	{
		ID:              "sports",
		Name:            "运动户外",
		Icon:            "⚽",
		Keywords:        []string{"运动鞋", "运动服", "健身器材", "户外装备", "球类"},
		SuggestedScenes: []string{"outdoor", "lifestyle", "studio-white"},
		PromptEnhancements: []string{
			"dynamic action feel",
			"athletic lifestyle",
			"outdoor adventure context",
			"energetic composition",
			"sports photography style",
		},
		Photography: domain.CategoryPhotography{
			PreferredLighting: domain.LightingNatural,
			PreferredAngle:    "dynamic",
			DepthOfField:      "medium",
			BackgroundStyle:   "contextual",
		},
		SceneRecommendations: []domain.CategorySceneRecommendation{
			{SceneID: "outdoor", Priority: 5, Reason: "展示户外使用", Modifiers: []string{"action shot", "adventure"}},
			{SceneID: "lifestyle", Priority: 4, Reason: "运动生活方式", Modifiers: []string{"athletic", "gym setting"}},
			{SceneID: "studio-white", Priority: 3, Reason: "产品细节展示", Modifiers: []string{"product focus", "technical detail"}},
		},
		MaterialKeywords: []string{"mesh", "rubber", "synthetic", "breathable", "durable", "waterproof"},
		AvoidKeywords:    []string{"formal", "elegant", "luxury", "delicate"},
	},
	{
		ID:              "jewelry",
		Name:            "珠宝首饰",
		Icon:            "💍",
		Keywords:        []string{"戒指", "项链", "手链", "耳环", "手表", "眼镜"},
		SuggestedScenes: []string{"luxury", "minimalist", "studio-white"},
		PromptEnhancements: []string{
			"sparkling gemstone",
			"precious metal reflection",
			"jewelry macro photography",
			"elegant luxury lighting",
			"high-end accessory shot",
		},
		Photography: domain.CategoryPhotography{
			PreferredLighting: domain.LightingDramatic,
			PreferredAngle:    "elevated",
			DepthOfField:      "shallow",
			BackgroundStyle:   "reflective",
		},
		SceneRecommendations: []domain.CategorySceneRecommendation{
			{SceneID: "luxury", Priority: 5, Reason: "突出奢华品质", Modifiers: []string{"sparkle", "precious"}},
			{SceneID: "minimalist", Priority: 4, Reason: "优雅简约展示", Modifiers: []string{"elegant display", "refined"}},
			{SceneID: "studio-white", Priority: 3, Reason: "清晰细节展示", Modifiers: []string{"macro detail", "craftsmanship"}},
		},
		MaterialKeywords: []string{"gold", "silver", "platinum", "diamond", "gemstone", "pearl", "crystal"},
		AvoidKeywords:    []string{"casual", "sporty", "outdoor", "rugged"},
	},
	{
		ID:              "baby",
		Name:            "母婴用品",
		Icon:            "👶",
		Keywords:        []string{"婴儿用品", "玩具", "童装", "奶瓶", "纸尿裤"},
		SuggestedScenes: []string{"lifestyle", "studio-white", "minimalist"},
		PromptEnhancements: []string{
			"soft pastel colors",
			"gentle nurturing atmosphere",
			"safe and comforting",
			"family-friendly styling",
			"warm parenting context",
		},
		Photography: domain.CategoryPhotography{
			PreferredLighting: domain.LightingSoft,
			PreferredAngle:    "elevated",
			DepthOfField:      "medium",
			BackgroundStyle:   "contextual",
		},
		SceneRecommendations: []domain.CategorySceneRecommendation{
			{SceneID: "lifestyle", Priority: 5, Reason: "温馨家庭场景", Modifiers: []string{"nursery", "family"}},
			{SceneID: "studio-white", Priority: 4, Reason: "产品安全展示", Modifiers: []string{"safe", "clean"}},
			{SceneID: "minimalist", Priority: 3, Reason: "简约温柔风格", Modifiers: []string{"pastel", "gentle"}},
		},
		MaterialKeywords: []string{"soft", "cotton", "safe plastic", "silicone", "organic", "hypoallergenic"},
		AvoidKeywords:    []string{"sharp", "industrial", "dark", "dramatic", "luxury"},
	},
	{
		ID:              "office",
		Name:            "办公文具",
		Icon:            "📎",
		Keywords:        []string{"文具", "办公用品", "笔记本", "打印机", "收纳盒"},
		SuggestedScenes: []string{"minimalist", "studio-white", "lifestyle"},
		PromptEnhancements: []string{
			"organized workspace",
			"professional office setting",
			"clean desk aesthetic",
			"productive atmosphere",
			"modern office photography",
		},
		Photography: domain.CategoryPhotography{
			PreferredLighting: domain.LightingNatural,
			PreferredAngle:    "elevated",
			DepthOfField:      "medium",
			BackgroundStyle:   "contextual",
		},
		SceneRecommendations: []domain.CategorySceneRecommendation{
			{SceneID: "minimalist", Priority: 5, Reason: "专业简约风格", Modifiers: []string{"desk setup", "organized"}},
			{SceneID: "studio-white", Priority: 4, Reason: "产品清晰展示", Modifiers: []string{"product focus", "clean"}},
			{SceneID: "lifestyle", Priority: 3, Reason: "办公场景展示", Modifiers: []string{"workspace", "productivity"}},
		},
		MaterialKeywords: []string{"paper", "metal", "plastic", "leather", "wood", "cork"},
		AvoidKeywords:    []string{"outdoor", "sporty", "casual", "party"},
	},
}

// CategoryByID looks up a category by its exact id.
func CategoryByID(id string) (domain.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}

// CategoryList returns every category in definition order.
func CategoryList() []domain.Category {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByKeyword resolves free text to a category. Resolution order is
// significant: exact id match first, then substring match against the
// category name, then bidirectional substring match against the keyword list.
func CategoryByKeyword(keyword string) (domain.Category, bool) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return domain.Category{}, false
	}

	for _, c := range categories {
		if strings.ToLower(c.ID) == keyword {
			return c, true
		}
	}
	for _, c := range categories {
		if strings.Contains(strings.ToLower(c.Name), keyword) {
			return c, true
		}
	}
	for _, c := range categories {
		for _, k := range c.Keywords {
			k = strings.ToLower(k)
			if strings.Contains(k, keyword) || strings.Contains(keyword, k) {
				return c, true
			}
		}
	}
	return domain.Category{}, false
}

// AllKeywords flattens every category keyword list, definition order.
func AllKeywords() []string {
	var out []string
	for _, c := range categories {
		out = append(out, c.Keywords...)
	}
	return out
}

// CategoryPhotographySettings returns the photography profile for a category.
func CategoryPhotographySettings(categoryID string) (domain.CategoryPhotography, bool) {
	c, ok := CategoryByID(categoryID)
	if !ok {
		return domain.CategoryPhotography{}, false
	}
	return c.Photography, true
}

// CategorySceneRecommendations returns the category's scene recommendations
// sorted by descending priority. The sort is stable so equal priorities keep
// registry order.
func CategorySceneRecommendations(categoryID string) []domain.CategorySceneRecommendation {
	c, ok := CategoryByID(categoryID)
	if !ok {
		return nil
	}
	out := make([]domain.CategorySceneRecommendation, len(c.SceneRecommendations))
	copy(out, c.SceneRecommendations)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out
}

// CategorySceneModifiers returns the prompt modifiers a category attaches to
// one specific scene, or nil when no recommendation entry exists for it.
func CategorySceneModifiers(categoryID, sceneID string) []string {
	c, ok := CategoryByID(categoryID)
	if !ok {
		return nil
	}
	for _, rec := range c.SceneRecommendations {
		if rec.SceneID == sceneID {
			return rec.Modifiers
		}
	}
	return nil
}

// ShouldAvoidKeyword reports whether the keyword hits the category's avoid
// list (case-insensitive substring containment).
func ShouldAvoidKeyword(categoryID, keyword string) bool {
	c, ok := CategoryByID(categoryID)
	if !ok {
		return false
	}
	keyword = strings.ToLower(keyword)
	for _, avoid := range c.AvoidKeywords {
		if strings.Contains(keyword, strings.ToLower(avoid)) {
			return true
		}
	}
	return false
}

// CategoryMaterialKeywords returns the common material vocabulary of a
// category, or nil for unknown categories.
func CategoryMaterialKeywords(categoryID string) []string {
	c, ok := CategoryByID(categoryID)
	if !ok {
		return nil
	}
	return c.MaterialKeywords
}
