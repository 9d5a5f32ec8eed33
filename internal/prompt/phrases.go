package prompt

import "studioshot/internal/domain"

// Central phrase tables. Every enum-to-prose mapping lives here so layer
// generators cannot drift apart on wording.

var lightingPhrases = map[domain.LightingMode]string{
	domain.LightingNatural:  "natural daylight, soft ambient lighting",
	domain.LightingStudio:   "professional studio lighting, three-point lighting setup",
	domain.LightingDramatic: "dramatic rim lighting, high contrast, moody atmosphere",
	domain.LightingSoft:     "soft diffused lighting, gentle shadows, even illumination",
}

var stylePhrases = map[domain.RenderStyle]string{
	domain.StyleRealistic:  "photorealistic, true to life, authentic look",
	domain.StyleArtistic:   "artistic interpretation, creative styling, aesthetic appeal",
	domain.StyleCommercial: "commercial photography style, e-commerce ready, professional",
}

var qualityPhrases = map[domain.QualityLevel]string{
	domain.QualityStandard: "high quality, sharp details, good resolution",
	domain.QualityHigh:     "8K quality, ultra sharp, professional grade, pristine details",
	domain.QualityUltra:    "16K resolution, masterpiece quality, exceptional clarity, flawless execution",
}

var aspectPhrases = map[domain.AspectRatio]string{
	domain.AspectSquare:    "square format",
	domain.AspectLandscape: "landscape orientation",
	domain.AspectPortrait:  "portrait orientation",
	domain.AspectWide:      "wide cinematic format",
	domain.AspectVertical:  "vertical mobile format",
}

// sizePhrases anchor the product's relative scale in environmental scenes.
var sizePhrases = map[domain.SizeCategory]string{
	domain.SizePocket:    "a very small product that easily fits in a pocket",
	domain.SizePalm:      "a small product that fits comfortably in one palm",
	domain.SizeHandheld:  "a handheld product carried in one or two hands",
	domain.SizeTabletop:  "a moderately sized product resting naturally on a table",
	domain.SizeDesktop:   "a desktop-sized product occupying part of a work surface",
	domain.SizeFurniture: "a furniture-scale product standing on the floor",
	domain.SizeLarge:     "a large product anchoring the space around it",
}

const scaleAnchorPhrase = "maintaining realistic scale relative to surrounding environment and furniture"

// categoryNouns back up the subject clause when the product has no name.
var categoryNouns = map[string]string{
	"electronics": "electronic device",
	"fashion":     "garment",
	"beauty":      "beauty product",
	"home":        "home furnishing",
	"food":        "food product",
	"sports":      "sports gear",
	"jewelry":     "jewelry piece",
	"baby":        "baby product",
	"office":      "office accessory",
}

const fallbackSubjectNoun = "the product"

// Feature-by-scene fusion vocabulary for the scene context layer.
var (
	waterFeatureTerms = []string{"waterproof", "water resistant", "water-resistant", "防水"}
	waterSceneTerms   = []string{"outdoor", "pool", "beach", "rain", "water"}
	sunFeatureTerms   = []string{"solar", "outdoor", "sun"}
	sunSceneTerms     = []string{"sun", "outdoor"}

	waterInteractionPhrases = []string{
		"water droplets beading on the product surface",
		"light splashes emphasizing water resistance",
	}
	sunlightPhrases = []string{
		"bright direct sunlight with crisp natural shadows",
		"subtle sun flare accenting the product edges",
	}
)

const colorFidelityInstruction = "Reproduce the product colors exactly as they appear in the reference image, matching hue and saturation faithfully without introducing new colors"

var defaultNegativePrompts = []string{
	"blurry", "low quality", "distorted", "watermark", "text overlay",
	"cropped", "out of frame", "duplicate", "ugly", "deformed",
	"bad anatomy", "extra limbs", "poorly drawn",
	"unrealistic proportions", "oversized product", "wrong scale",
	"disproportionate", "giant product", "tiny hands",
}

// scaleScenes are the scenes with a real environment where wrong product
// proportions are visually jarring.
var scaleScenes = map[string]bool{
	"lifestyle": true,
	"outdoor":   true,
	"seasonal":  true,
}
