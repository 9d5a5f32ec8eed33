package registry

import "testing"

func TestCategoryByKeywordResolutionOrder(t *testing.T) {
	// exact id wins before any fuzzy matching
	c, ok := CategoryByKeyword("electronics")
	if !ok || c.ID != "electronics" {
		t.Fatalf("CategoryByKeyword(electronics) = %v, %v", c.ID, ok)
	}

	// name substring
	c, ok = CategoryByKeyword("数码")
	if !ok || c.ID != "electronics" {
		t.Fatalf("CategoryByKeyword(数码) = %v, %v", c.ID, ok)
	}

	// keyword list, bidirectional containment
	c, ok = CategoryByKeyword("手机")
	if !ok || c.ID != "electronics" {
		t.Fatalf("CategoryByKeyword(手机) = %v, %v", c.ID, ok)
	}
	c, ok = CategoryByKeyword("智能手表pro")
	if !ok || c.ID != "electronics" {
		t.Fatalf("CategoryByKeyword(智能手表pro) = %v, %v", c.ID, ok)
	}

	if _, ok := CategoryByKeyword("????"); ok {
		t.Fatal("nonsense keyword should not resolve")
	}
	if _, ok := CategoryByKeyword(""); ok {
		t.Fatal("empty keyword should not resolve")
	}
}

func TestCategorySceneRecommendationsSorted(t *testing.T) {
	recs := CategorySceneRecommendations("electronics")
	if len(recs) != 3 {
		t.Fatalf("len = %d, want 3", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Priority > recs[i-1].Priority {
			t.Fatalf("priorities not non-increasing: %v", recs)
		}
	}
	if recs[0].SceneID != "studio-white" {
		t.Fatalf("top recommendation = %q, want studio-white", recs[0].SceneID)
	}

	if recs := CategorySceneRecommendations("nope"); recs != nil {
		t.Fatalf("unknown category should yield nil, got %v", recs)
	}
}

func TestCategorySceneModifiers(t *testing.T) {
	mods := CategorySceneModifiers("electronics", "lifestyle")
	if len(mods) != 2 || mods[0] != "desk setup" {
		t.Fatalf("modifiers = %v", mods)
	}
	if mods := CategorySceneModifiers("electronics", "outdoor"); len(mods) != 0 {
		t.Fatalf("expected no modifiers, got %v", mods)
	}
}

func TestShouldAvoidKeyword(t *testing.T) {
	if !ShouldAvoidKeyword("electronics", "Vintage style") {
		t.Fatal("vintage should be avoided for electronics")
	}
	if ShouldAvoidKeyword("electronics", "sleek") {
		t.Fatal("sleek should not be avoided for electronics")
	}
	if ShouldAvoidKeyword("nope", "vintage") {
		t.Fatal("unknown category never avoids")
	}
}

func TestCategoryMaterialKeywords(t *testing.T) {
	mats := CategoryMaterialKeywords("jewelry")
	if len(mats) == 0 || mats[0] != "gold" {
		t.Fatalf("materials = %v", mats)
	}
}
