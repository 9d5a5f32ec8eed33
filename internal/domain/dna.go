package domain

// ProductIntrinsicDNA holds product facts that must not change across
// art-direction variations of the same product: what the object physically is.
type ProductIntrinsicDNA struct {
	MaterialAnalysis  MaterialAnalysis `json:"material_analysis"`
	FormFactor        FormFactor       `json:"form_factor"`
	BrandColorPalette []string         `json:"brand_color_palette"`
}

type MaterialAnalysis struct {
	SurfaceTexture string `json:"surface_texture"`
	Reflectivity   string `json:"reflectivity"`
}

type FormFactor struct {
	ShapeKeywords []string `json:"shape_keywords"`
}

// ArtDirectionDNA is one stylistic variant. Every field is optional and may
// be swapped freely without touching the intrinsic DNA.
type ArtDirectionDNA struct {
	LightingScenario    *LightingScenario    `json:"lighting_scenario,omitempty"`
	PhotographySettings *PhotographySettings `json:"photography_settings,omitempty"`
	CompositionGuide    *CompositionGuide    `json:"composition_guide,omitempty"`
	ColorGrading        *ColorGrading        `json:"color_grading,omitempty"`
	OpticalMechanics    *OpticalMechanics    `json:"optical_mechanics,omitempty"`
	NegativeConstraints *NegativeConstraints `json:"negative_constraints,omitempty"`
}

type LightingScenario struct {
	Style      string `json:"style"`
	Direction  string `json:"direction"`
	Atmosphere string `json:"atmosphere"`
}

type PhotographySettings struct {
	ShotScale    string `json:"shot_scale"`
	DepthOfField string `json:"depth_of_field"`
}

type CompositionGuide struct {
	Keyword string `json:"keyword"`
}

type ColorGrading struct {
	Tone string `json:"tone"`
}

type OpticalMechanics struct {
	LensType     string `json:"lens_type"`
	Aperture     string `json:"aperture"`
	ShutterSpeed string `json:"shutter_speed,omitempty"`
}

type NegativeConstraints struct {
	ForbiddenElements []string `json:"forbidden_elements"`
}
