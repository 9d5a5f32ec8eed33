package product

import (
	"testing"

	"studioshot/internal/domain"
)

func addTestImage(t *testing.T, s *Store, name string) Image {
	t.Helper()
	img, err := s.AddImage(name, "image/png", 1024, "data:image/png;base64,xxxx")
	if err != nil {
		t.Fatalf("AddImage(%s): %v", name, err)
	}
	return img
}

func TestAddImageValidation(t *testing.T) {
	s := NewStore()

	if _, err := s.AddImage("a.gif", "image/gif", 10, "d"); err == nil {
		t.Fatalf("unsupported type accepted")
	}
	if _, err := s.AddImage("big.png", "image/png", MaxImageSize+1, "d"); err == nil {
		t.Fatalf("oversized file accepted")
	}

	for i := 0; i < MaxImages; i++ {
		addTestImage(t, s, "ok.png")
	}
	if _, err := s.AddImage("extra.png", "image/png", 10, "d"); err == nil {
		t.Fatalf("image beyond limit accepted")
	}
}

func TestShouldAnalyzeFirstImageOnly(t *testing.T) {
	s := NewStore()

	first := addTestImage(t, s, "first.png")
	if !s.ShouldAnalyze(first.ID) {
		t.Fatalf("first image should trigger analysis")
	}

	second := addTestImage(t, s, "second.png")
	if s.ShouldAnalyze(second.ID) {
		t.Fatalf("second image should not trigger analysis")
	}
}

func TestRemoveLastImageClearsDerivedFields(t *testing.T) {
	s := NewStore()
	s.SetInfo(domain.ProductInfo{
		Name:          "SmartWatch X",
		Category:      "electronics",
		ColorPalette:  []string{"black"},
		SizeCategory:  domain.SizePalm,
		SizeReference: "fits comfortably in one palm",
		SceneDescriptions: map[string]string{
			"outdoor": "a rugged smartwatch",
		},
	})

	a := addTestImage(t, s, "a.png")
	b := addTestImage(t, s, "b.png")

	if !s.RemoveImage(a.ID) {
		t.Fatalf("remove a failed")
	}
	if s.Info().Category == "" {
		t.Fatalf("derived fields cleared while images remain")
	}

	if !s.RemoveImage(b.ID) {
		t.Fatalf("remove b failed")
	}
	info := s.Info()
	if info.Category != "" || info.SizeCategory != "" || info.ColorPalette != nil || info.SceneDescriptions != nil {
		t.Fatalf("derived fields not cleared after last image: %+v", info)
	}
	if info.Name != "SmartWatch X" {
		t.Fatalf("user-entered name cleared: %q", info.Name)
	}

	if s.RemoveImage("missing") {
		t.Fatalf("removing unknown id reported success")
	}
}

func TestPrimaryImageAndReorder(t *testing.T) {
	s := NewStore()
	a := addTestImage(t, s, "a.png")
	b := addTestImage(t, s, "b.png")

	primary, ok := s.PrimaryImage()
	if !ok || primary.ID != a.ID {
		t.Fatalf("primary = %v, want first upload", primary.ID)
	}

	if !s.ReorderImages(1, 0) {
		t.Fatalf("reorder failed")
	}
	primary, _ = s.PrimaryImage()
	if primary.ID != b.ID {
		t.Fatalf("primary after reorder = %v, want %v", primary.ID, b.ID)
	}

	if s.ReorderImages(0, 5) {
		t.Fatalf("out-of-range reorder reported success")
	}
}

func TestAddFeatureDeduplicates(t *testing.T) {
	s := NewStore()
	s.AddFeature("waterproof")
	s.AddFeature("waterproof")
	s.AddFeature("lightweight")

	if got := len(s.Info().Features); got != 2 {
		t.Fatalf("len(features) = %d, want 2", got)
	}
}

func TestSummary(t *testing.T) {
	s := NewStore()
	s.SetInfo(domain.ProductInfo{Name: "SmartWatch X", Brand: "Acme", Category: "electronics"})
	if got, want := s.Summary(), "SmartWatch X by Acme (electronics)"; got != want {
		t.Fatalf("Summary() = %q, want %q", got, want)
	}

	if got := NewStore().Summary(); got != "" {
		t.Fatalf("empty store summary = %q", got)
	}
}

func TestImagesReturnsCopy(t *testing.T) {
	s := NewStore()
	addTestImage(t, s, "a.png")

	images := s.Images()
	images[0].Name = "mutated"
	if s.Images()[0].Name == "mutated" {
		t.Fatalf("Images() leaked internal slice")
	}
}
