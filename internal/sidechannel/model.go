// Package sidechannel builds the auxiliary prompt strings fed into the
// compiler's model, fusion and consistency layers. Each builder returns the
// empty string when its feature is disabled, which keeps the layer out of
// the final prompt entirely.
package sidechannel

import "strings"

type ModelDisplayType string

const (
	DisplayNone    ModelDisplayType = "none"
	DisplayHolding ModelDisplayType = "holding"
	DisplayWearing ModelDisplayType = "wearing"
	DisplayUsing   ModelDisplayType = "using"
	DisplayPartial ModelDisplayType = "partial"
)

// ModelConfig describes the human model appearing alongside the product.
// Attribute values of "unspecified" (or "auto" for clothing) contribute
// nothing to the prompt.
type ModelConfig struct {
	Enabled     bool             `json:"enabled"`
	DisplayType ModelDisplayType `json:"display_type"`

	Gender   string `json:"gender"`
	AgeGroup string `json:"age_group"`
	SkinTone string `json:"skin_tone"`

	HairStyle string `json:"hair_style"`
	BodyType  string `json:"body_type"`
	Makeup    string `json:"makeup"`

	Pose          string `json:"pose"`
	Expression    string `json:"expression"`
	ClothingStyle string `json:"clothing_style"`

	PartialFocus string `json:"partial_focus,omitempty"`
}

// DefaultModelConfig matches the state before the user touches anything.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		DisplayType:   DisplayNone,
		Gender:        "unspecified",
		AgeGroup:      "young",
		SkinTone:      "unspecified",
		HairStyle:     "unspecified",
		BodyType:      "unspecified",
		Makeup:        "unspecified",
		Pose:          "standing",
		Expression:    "smile",
		ClothingStyle: "auto",
	}
}

// ModelRecommendation is the per-category preset suggested to the user.
type ModelRecommendation struct {
	DisplayType ModelDisplayType `json:"display_type"`
	Config      ModelConfig      `json:"config"`
	Reason      string           `json:"reason"`
}

var modelRecommendations = map[string]ModelRecommendation{
	"electronics": {
		DisplayType: DisplayHolding,
		Config:      presetConfig(DisplayHolding, func(c *ModelConfig) { c.ClothingStyle = "fashion" }),
		Reason:      "数码产品适合手持展示，突出产品尺寸和易用性",
	},
	"fashion": {
		DisplayType: DisplayWearing,
		Config: presetConfig(DisplayWearing, func(c *ModelConfig) {
			c.Expression = "natural"
			c.BodyType = "slim"
		}),
		Reason: "服装产品需要穿戴展示，体现上身效果",
	},
	"beauty": {
		DisplayType: DisplayPartial,
		Config: presetConfig(DisplayPartial, func(c *ModelConfig) {
			c.Gender = "female"
			c.Makeup = "glamorous"
			c.Expression = "natural"
			c.PartialFocus = "face"
		}),
		Reason: "美妆产品适合面部特写，展示使用效果",
	},
	"home": {
		DisplayType: DisplayUsing,
		Config: presetConfig(DisplayUsing, func(c *ModelConfig) {
			c.Expression = "friendly"
			c.ClothingStyle = "casual"
			c.Pose = "sitting"
		}),
		Reason: "家居产品适合生活场景展示，营造温馨氛围",
	},
	"food": {
		DisplayType: DisplayHolding,
		Config:      presetConfig(DisplayHolding, func(c *ModelConfig) { c.ClothingStyle = "casual" }),
		Reason:      "食品适合手持展示，增加食欲感",
	},
	"sports": {
		DisplayType: DisplayWearing,
		Config: presetConfig(DisplayWearing, func(c *ModelConfig) {
			c.BodyType = "athletic"
			c.ClothingStyle = "sporty"
			c.Expression = "focused"
		}),
		Reason: "运动产品需要展示穿戴效果和运动感",
	},
	"jewelry": {
		DisplayType: DisplayPartial,
		Config: presetConfig(DisplayPartial, func(c *ModelConfig) {
			c.Gender = "female"
			c.Makeup = "light"
			c.Expression = "natural"
			c.ClothingStyle = "elegant"
			c.PartialFocus = "hands"
		}),
		Reason: "珠宝首饰适合局部特写，展示佩戴效果",
	},
	"baby": {
		DisplayType: DisplayUsing,
		Config: presetConfig(DisplayUsing, func(c *ModelConfig) {
			c.Gender = "female"
			c.Expression = "friendly"
			c.ClothingStyle = "casual"
			c.Pose = "sitting"
		}),
		Reason: "母婴产品适合使用场景展示，传递关爱感",
	},
	"office": {
		DisplayType: DisplayUsing,
		Config: presetConfig(DisplayUsing, func(c *ModelConfig) {
			c.Expression = "focused"
			c.ClothingStyle = "business"
			c.Pose = "sitting"
		}),
		Reason: "办公用品适合工作场景展示，体现专业感",
	},
}

func presetConfig(display ModelDisplayType, customize func(*ModelConfig)) ModelConfig {
	c := DefaultModelConfig()
	c.Enabled = true
	c.DisplayType = display
	customize(&c)
	return c
}

// ModelRecommendationFor returns the category's model preset.
func ModelRecommendationFor(categoryID string) (ModelRecommendation, bool) {
	rec, ok := modelRecommendations[categoryID]
	return rec, ok
}

var displayPhrases = map[ModelDisplayType]string{
	DisplayHolding: "a model naturally holding the product with realistic hand-to-product size ratio",
	DisplayWearing: "a model wearing the product with accurate fit and proportions",
	DisplayUsing:   "a model naturally using the product in context with realistic scale",
}

var (
	agePhrases = map[string]string{
		"young":  "young adult",
		"middle": "middle-aged",
		"mature": "mature elegant",
	}
	skinPhrases = map[string]string{
		"asian": "Asian",
		"fair":  "fair skin",
		"tan":   "tan skin",
		"dark":  "dark skin",
	}
	bodyPhrases = map[string]string{
		"slim":     "slim figure",
		"average":  "average build",
		"athletic": "athletic build",
		"curvy":    "curvy figure",
	}
	makeupPhrases = map[string]string{
		"natural":   "natural makeup",
		"light":     "light makeup",
		"glamorous": "glamorous makeup",
	}
	expressionPhrases = map[string]string{
		"smile":    "warm smile",
		"natural":  "natural expression",
		"cool":     "cool confident look",
		"friendly": "friendly approachable look",
		"focused":  "focused expression",
	}
	posePhrases = map[string]string{
		"standing": "standing pose",
		"sitting":  "seated pose",
		"walking":  "walking pose",
		"side":     "side profile",
		"closeup":  "close-up shot",
	}
	clothingPhrases = map[string]string{
		"casual":   "casual outfit",
		"business": "business attire",
		"sporty":   "sporty athletic wear",
		"fashion":  "fashionable trendy outfit",
		"elegant":  "elegant sophisticated attire",
	}
)

// BuildPrompt renders the model configuration into the prompt fragment the
// compiler's model layer passes through verbatim.
func (c ModelConfig) BuildPrompt() string {
	if !c.Enabled || c.DisplayType == DisplayNone {
		return ""
	}

	parts := []string{
		"realistic proportions",
		"accurate product scale relative to human body",
		"natural perspective",
	}

	if c.DisplayType == DisplayPartial {
		focus := c.PartialFocus
		if focus == "" {
			focus = "hands"
		}
		parts = append(parts, "close-up shot of model's "+focus+" with the product at accurate size")
	} else if phrase, ok := displayPhrases[c.DisplayType]; ok {
		parts = append(parts, phrase)
	}

	switch c.Gender {
	case "male":
		parts = append(parts, "male model")
	case "female":
		parts = append(parts, "female model")
	}

	parts = appendPhrase(parts, agePhrases, c.AgeGroup)
	parts = appendPhrase(parts, skinPhrases, c.SkinTone)
	if c.HairStyle != "unspecified" && c.HairStyle != "" {
		parts = append(parts, c.HairStyle+" hair")
	}
	parts = appendPhrase(parts, bodyPhrases, c.BodyType)
	parts = appendPhrase(parts, makeupPhrases, c.Makeup)
	parts = appendPhrase(parts, expressionPhrases, c.Expression)
	parts = appendPhrase(parts, posePhrases, c.Pose)
	if c.ClothingStyle != "auto" {
		parts = appendPhrase(parts, clothingPhrases, c.ClothingStyle)
	}

	return strings.Join(parts, ", ")
}

func appendPhrase(parts []string, table map[string]string, key string) []string {
	if phrase, ok := table[key]; ok {
		return append(parts, phrase)
	}
	return parts
}
