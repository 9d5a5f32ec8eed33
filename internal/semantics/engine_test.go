package semantics

import (
	"strings"
	"testing"

	"studioshot/internal/domain"
)

func TestAnalyzeProduct(t *testing.T) {
	e := NewEngine()
	p := domain.ProductInfo{
		Name:        "金属水杯",
		Description: "现代简约设计，金属质感",
		Features:    []string{"金属外壳"},
	}

	matches := e.AnalyzeProduct(p)
	if len(matches) == 0 {
		t.Fatal("expected matches")
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Confidence > matches[i-1].Confidence {
			t.Fatalf("matches not sorted by confidence: %v", matches)
		}
	}

	var metal *Match
	for i := range matches {
		if matches[i].Keyword == "金属" {
			metal = &matches[i]
		}
	}
	if metal == nil {
		t.Fatal("金属 should match")
	}
	if metal.Confidence <= 0.3 || metal.Confidence > 1 {
		t.Fatalf("confidence = %v, want (0.3, 1]", metal.Confidence)
	}
	if metal.Suggestions[0] != "reflective surface" {
		t.Fatalf("suggestions = %v", metal.Suggestions)
	}
}

func TestAnalyzeProductNoMatches(t *testing.T) {
	e := NewEngine()
	if got := e.AnalyzeProduct(domain.ProductInfo{Name: "plain widget"}); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestRecommendScene(t *testing.T) {
	e := NewEngine()

	p := domain.ProductInfo{Name: "户外登山包", Features: []string{"户外耐用"}}
	if got := e.RecommendScene(p); got != "outdoor" {
		t.Fatalf("RecommendScene = %q, want outdoor", got)
	}

	// no signal at all falls back to studio-white
	if got := e.RecommendScene(domain.ProductInfo{}); got != "studio-white" {
		t.Fatalf("RecommendScene(empty) = %q, want studio-white", got)
	}

	// category bonus alone is enough to pick a scene
	p = domain.ProductInfo{Category: "beauty"}
	if got := e.RecommendScene(p); got != "luxury" {
		t.Fatalf("RecommendScene(beauty) = %q, want luxury", got)
	}
}

func TestGenerateEnhancements(t *testing.T) {
	e := NewEngine()
	p := domain.ProductInfo{
		Name:     "金属手机壳",
		Category: "electronics",
		Features: []string{"现代设计"},
	}

	got := e.GenerateEnhancements(p)
	if len(got) == 0 {
		t.Fatal("expected enhancements")
	}

	seen := map[string]bool{}
	for _, s := range got {
		if seen[s] {
			t.Fatalf("duplicate enhancement %q", s)
		}
		seen[s] = true
	}
	if !seen["sleek metallic surface"] {
		t.Fatalf("category enhancement missing from %v", got)
	}
}

func TestMatchProductToScene(t *testing.T) {
	e := NewEngine()
	p := domain.ProductInfo{Name: "奢华皮革手袋", Category: "jewelry"}

	m := e.MatchProductToScene(p, "luxury")
	if m.MatchScore <= 0.5 {
		t.Fatalf("MatchScore = %v, want > 0.5", m.MatchScore)
	}
	if len(m.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", m.Warnings)
	}

	m = e.MatchProductToScene(p, "outdoor")
	if len(m.Warnings) == 0 {
		t.Fatal("expected a warning for a mismatched scene")
	}
	if !strings.Contains(m.Warnings[0], "珠宝首饰") {
		t.Fatalf("warning should name the category: %q", m.Warnings[0])
	}
	if m.MatchScore > 1 {
		t.Fatalf("MatchScore = %v, want <= 1", m.MatchScore)
	}
}
