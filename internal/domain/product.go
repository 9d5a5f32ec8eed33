package domain

// SizeCategory buckets a product by physical size so that scenes with a real
// environment can keep its proportions believable.
type SizeCategory string

const (
	SizePocket    SizeCategory = "pocket"
	SizePalm      SizeCategory = "palm"
	SizeHandheld  SizeCategory = "handheld"
	SizeTabletop  SizeCategory = "tabletop"
	SizeDesktop   SizeCategory = "desktop"
	SizeFurniture SizeCategory = "furniture"
	SizeLarge     SizeCategory = "large"
)

// ValidSizeCategory reports whether s is one of the known size buckets.
func ValidSizeCategory(s SizeCategory) bool {
	switch s {
	case SizePocket, SizePalm, SizeHandheld, SizeTabletop, SizeDesktop, SizeFurniture, SizeLarge:
		return true
	}
	return false
}

// ProductInfo aggregates everything known about the photographed subject. It
// is populated incrementally: the caller supplies name/description/brand,
// while category, material prompts, per-scene descriptions and size data are
// derived from uploaded images by the analysis collaborator.
type ProductInfo struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	Features       []string `json:"features"`
	TargetAudience string   `json:"target_audience"`
	Brand          string   `json:"brand"`
	Style          string   `json:"style"`

	// Image-derived fields. These must be cleared when the last product
	// image is removed because their source of truth is gone with it.
	ColorPalette      []string          `json:"color_palette,omitempty"`
	MaterialPrompts   []string          `json:"material_prompts,omitempty"`
	SceneDescriptions map[string]string `json:"scene_descriptions,omitempty"`
	SizeCategory      SizeCategory      `json:"size_category,omitempty"`
	SizeReference     string            `json:"size_reference,omitempty"`
}

// ClearImageDerived drops every field that was inferred from product images.
func (p *ProductInfo) ClearImageDerived() {
	p.Category = ""
	p.ColorPalette = nil
	p.MaterialPrompts = nil
	p.SceneDescriptions = nil
	p.SizeCategory = ""
	p.SizeReference = ""
}
