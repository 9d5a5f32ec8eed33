package insight

import (
	"testing"

	"studioshot/internal/domain"
)

func TestNormalizeInvalidCategory(t *testing.T) {
	in := ProductInsight{MappedCategory: "spaceships"}
	in.Normalize()
	if in.MappedCategory != "electronics" {
		t.Fatalf("category = %q, want electronics fallback", in.MappedCategory)
	}
}

func TestNormalizeFillsSceneDescriptions(t *testing.T) {
	in := ProductInsight{
		MappedCategory:   "beauty",
		GeneratedPrompts: []string{"a matte lipstick with satin finish"},
	}
	in.Normalize()

	if len(in.SceneDescriptions) != 6 {
		t.Fatalf("len(sceneDescriptions) = %d, want 6", len(in.SceneDescriptions))
	}
	if got := in.SceneDescriptions["luxury"]; got != "a matte lipstick with satin finish" {
		t.Fatalf("luxury description = %q, want first generated prompt", got)
	}
}

func TestNormalizeInfersSize(t *testing.T) {
	in := ProductInsight{MappedCategory: "jewelry"}
	in.Normalize()
	if in.SizeCategory != domain.SizePocket {
		t.Fatalf("jewelry size = %q, want pocket", in.SizeCategory)
	}
	if in.SizeReference != "a compact pocket-sized item" {
		t.Fatalf("size reference = %q", in.SizeReference)
	}

	in = ProductInsight{MappedCategory: "home", SizeCategory: domain.SizeLarge, SizeReference: "as big as a wardrobe"}
	in.Normalize()
	if in.SizeCategory != domain.SizeLarge || in.SizeReference != "as big as a wardrobe" {
		t.Fatalf("valid size data overwritten: %q %q", in.SizeCategory, in.SizeReference)
	}
}

func TestInferSizeFromCategoryFallback(t *testing.T) {
	if got := InferSizeFromCategory("unknown"); got != domain.SizeHandheld {
		t.Fatalf("fallback size = %q, want handheld", got)
	}
}

func TestApplyPreservesUserFields(t *testing.T) {
	p := domain.ProductInfo{
		Name:           "My Mug",
		Description:    "hand-thrown stoneware",
		Features:       []string{"dishwasher safe"},
		TargetAudience: "coffee lovers",
	}

	in := DefaultInsight()
	in.MappedCategory = "home"
	in.Features = []string{"machine guess"}
	in.TargetAudience = "everyone"
	in.ColorPalette = []string{"terracotta"}
	in.Apply(&p)

	if p.Name != "My Mug" || p.Description != "hand-thrown stoneware" {
		t.Fatalf("user fields overwritten: %+v", p)
	}
	if p.Features[0] != "dishwasher safe" {
		t.Fatalf("user features overwritten: %v", p.Features)
	}
	if p.TargetAudience != "coffee lovers" {
		t.Fatalf("user audience overwritten: %q", p.TargetAudience)
	}
	if p.Category != "home" {
		t.Fatalf("category not applied: %q", p.Category)
	}
	if len(p.ColorPalette) != 1 || p.ColorPalette[0] != "terracotta" {
		t.Fatalf("palette not applied: %v", p.ColorPalette)
	}
	if p.SceneDescriptions["outdoor"] == "" {
		t.Fatalf("scene descriptions not applied")
	}
}

func TestApplyFillsEmptyUserFields(t *testing.T) {
	p := domain.ProductInfo{Name: "Gadget"}
	in := DefaultInsight()
	in.Features = []string{"lightweight"}
	in.Apply(&p)

	if len(p.Features) != 1 || p.Features[0] != "lightweight" {
		t.Fatalf("machine features not applied to empty product: %v", p.Features)
	}
	if p.Style != "Modern" {
		t.Fatalf("predicted style not applied: %q", p.Style)
	}
}

func TestDefaultInsightIsNormalized(t *testing.T) {
	in := DefaultInsight()
	before := in
	in.Normalize()
	if in.MappedCategory != before.MappedCategory || in.SizeCategory != before.SizeCategory {
		t.Fatalf("default insight changed by Normalize: %+v", in)
	}
}
