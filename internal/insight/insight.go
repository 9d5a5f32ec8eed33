// Package insight defines the product-analysis contract: the structured
// understanding of a product image produced by a vision collaborator, plus
// the defaults used when analysis fails or returns partial data.
package insight

import (
	"context"

	"studioshot/internal/domain"
)

// ProductInsight is the full analysis result for one product image.
type ProductInsight struct {
	CategoryName      string              `json:"category_name"`
	MappedCategory    string              `json:"mapped_category"`
	PrimaryMaterial   string              `json:"primary_material"`
	SurfaceTexture    string              `json:"surface_texture"`
	Reflectiveness    string              `json:"reflectiveness"`
	ColorPalette      []string            `json:"color_palette"`
	Features          []string            `json:"features"`
	TargetAudience    string              `json:"target_audience"`
	PredictedStyle    string              `json:"predicted_style"`
	SuggestedScenes   []string            `json:"suggested_scenes"`
	GeneratedPrompts  []string            `json:"generated_prompts"`
	SceneDescriptions map[string]string   `json:"scene_descriptions"`
	SizeCategory      domain.SizeCategory `json:"size_category"`
	SizeReference     string              `json:"size_reference"`
}

// UserContext is the optional text the user typed before uploading.
type UserContext struct {
	Name        string
	Description string
}

// Analyzer turns a product image into a ProductInsight. Implementations call
// an external vision model; failures must degrade to DefaultInsight rather
// than surface malformed data.
type Analyzer interface {
	Analyze(ctx context.Context, imageData string, userCtx *UserContext) (ProductInsight, error)
}

var validCategories = map[string]bool{
	"electronics": true, "fashion": true, "beauty": true,
	"home": true, "food": true, "sports": true,
	"jewelry": true, "baby": true, "office": true,
}

var categorySizes = map[string]domain.SizeCategory{
	"electronics": domain.SizeHandheld,
	"fashion":     domain.SizeHandheld,
	"beauty":      domain.SizePalm,
	"home":        domain.SizeTabletop,
	"food":        domain.SizeHandheld,
	"sports":      domain.SizeHandheld,
	"jewelry":     domain.SizePocket,
	"baby":        domain.SizeHandheld,
	"office":      domain.SizeHandheld,
}

var sizeReferences = map[domain.SizeCategory]string{
	domain.SizePocket:    "a compact pocket-sized item",
	domain.SizePalm:      "fits comfortably in one palm",
	domain.SizeHandheld:  "a handheld product easy to carry",
	domain.SizeTabletop:  "a tabletop item of moderate size",
	domain.SizeDesktop:   "a desktop-sized product",
	domain.SizeFurniture: "a furniture-scale item",
	domain.SizeLarge:     "a large product",
}

// InferSizeFromCategory guesses a size bucket when analysis did not return
// one.
func InferSizeFromCategory(category string) domain.SizeCategory {
	if size, ok := categorySizes[category]; ok {
		return size
	}
	return domain.SizeHandheld
}

// DefaultSizeReference returns the canned relative-size phrase for a bucket.
func DefaultSizeReference(size domain.SizeCategory) string {
	if ref, ok := sizeReferences[size]; ok {
		return ref
	}
	return "a handheld product"
}

// Normalize repairs a partially populated insight in place: invalid
// categories fall back to electronics, missing scene descriptions reuse the
// first generated prompt, missing size data is inferred from the category.
func (in *ProductInsight) Normalize() {
	if !validCategories[in.MappedCategory] {
		in.MappedCategory = "electronics"
	}

	if len(in.SceneDescriptions) == 0 {
		base := "professional product"
		if len(in.GeneratedPrompts) > 0 && in.GeneratedPrompts[0] != "" {
			base = in.GeneratedPrompts[0]
		}
		in.SceneDescriptions = map[string]string{
			"studio-white": base,
			"lifestyle":    base,
			"outdoor":      base,
			"seasonal":     base,
			"luxury":       base,
			"minimalist":   base,
		}
	}

	if !domain.ValidSizeCategory(in.SizeCategory) {
		in.SizeCategory = InferSizeFromCategory(in.MappedCategory)
	}
	if in.SizeReference == "" {
		in.SizeReference = DefaultSizeReference(in.SizeCategory)
	}
}

// DefaultInsight is the safe fallback when analysis fails entirely.
func DefaultInsight() ProductInsight {
	return ProductInsight{
		CategoryName:     "General Product",
		MappedCategory:   "electronics",
		PrimaryMaterial:  "other",
		SurfaceTexture:   "clean surface",
		Reflectiveness:   "medium",
		TargetAudience:   "General consumers",
		PredictedStyle:   "Modern",
		SuggestedScenes:  []string{"studio-white"},
		GeneratedPrompts: []string{"professional product photography"},
		SceneDescriptions: map[string]string{
			"studio-white": "a professional product with clean finish and precise details",
			"lifestyle":    "a versatile product designed for everyday comfort and use",
			"outdoor":      "a durable product built for active outdoor adventures",
			"seasonal":     "a thoughtful gift that brings joy to any celebration",
			"luxury":       "a premium product showcasing exceptional quality and craftsmanship",
			"minimalist":   "a beautifully designed product with clean modern aesthetics",
		},
		SizeCategory:  domain.SizeHandheld,
		SizeReference: "a compact handheld product",
	}
}

// Apply copies the analysis result onto the product. User-typed fields win:
// name, description, brand and manually entered features are never
// overwritten by the machine's guesses.
func (in ProductInsight) Apply(p *domain.ProductInfo) {
	p.Category = in.MappedCategory
	p.ColorPalette = append([]string{}, in.ColorPalette...)
	p.MaterialPrompts = append([]string{}, in.GeneratedPrompts...)
	p.SizeCategory = in.SizeCategory
	p.SizeReference = in.SizeReference

	if len(in.SceneDescriptions) > 0 {
		p.SceneDescriptions = make(map[string]string, len(in.SceneDescriptions))
		for scene, desc := range in.SceneDescriptions {
			p.SceneDescriptions[scene] = desc
		}
	}

	if len(p.Features) == 0 {
		p.Features = append([]string{}, in.Features...)
	}
	if p.TargetAudience == "" {
		p.TargetAudience = in.TargetAudience
	}
	if p.Style == "" {
		p.Style = in.PredictedStyle
	}
}
