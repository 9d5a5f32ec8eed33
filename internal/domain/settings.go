package domain

// Enumerated generation settings. Values mirror the wire contract of the
// image-generation collaborator.
type (
	AspectRatio     string
	QualityLevel    string
	RenderStyle     string
	LightingMode    string
	BackgroundStyle string
)

const (
	AspectSquare    AspectRatio = "1:1"
	AspectLandscape AspectRatio = "4:3"
	AspectPortrait  AspectRatio = "3:4"
	AspectWide      AspectRatio = "16:9"
	AspectVertical  AspectRatio = "9:16"

	QualityStandard QualityLevel = "standard"
	QualityHigh     QualityLevel = "high"
	QualityUltra    QualityLevel = "ultra"

	StyleRealistic  RenderStyle = "realistic"
	StyleArtistic   RenderStyle = "artistic"
	StyleCommercial RenderStyle = "commercial"

	LightingNatural  LightingMode = "natural"
	LightingStudio   LightingMode = "studio"
	LightingDramatic LightingMode = "dramatic"
	LightingSoft     LightingMode = "soft"

	BackgroundWhite       BackgroundStyle = "white"
	BackgroundGradient    BackgroundStyle = "gradient"
	BackgroundContextual  BackgroundStyle = "contextual"
	BackgroundTransparent BackgroundStyle = "transparent"
)

// GenerationSettings is supplied by the caller before each build and forwarded
// verbatim to the image-generation collaborator.
type GenerationSettings struct {
	Quantity         int             `json:"quantity"`
	AspectRatio      AspectRatio     `json:"aspect_ratio"`
	Quality          QualityLevel    `json:"quality"`
	Style            RenderStyle     `json:"style"`
	Lighting         LightingMode    `json:"lighting"`
	Background       BackgroundStyle `json:"background"`
	EnhanceDetails   bool            `json:"enhance_details"`
	RemoveBackground bool            `json:"remove_background"`
	AddShadow        bool            `json:"add_shadow"`
	ColorCorrection  bool            `json:"color_correction"`
}

// DefaultSettings returns the settings used when the caller has not chosen
// anything yet.
func DefaultSettings() GenerationSettings {
	return GenerationSettings{
		Quantity:        1,
		AspectRatio:     AspectSquare,
		Quality:         QualityHigh,
		Style:           StyleCommercial,
		Lighting:        LightingStudio,
		Background:      BackgroundWhite,
		EnhanceDetails:  true,
		ColorCorrection: true,
	}
}
