package recommend

import (
	"strings"
	"testing"

	"studioshot/internal/domain"
)

func TestRecommendationsTopPick(t *testing.T) {
	r := New()
	p := domain.ProductInfo{
		Name:        "户外防水登山包",
		Category:    "sports",
		Description: "适合户外运动探险",
		Features:    []string{"waterproof", "durable"},
	}

	recs := r.Recommendations(p, 3)
	if len(recs) != 3 {
		t.Fatalf("len(recs) = %d, want 3", len(recs))
	}
	if recs[0].SceneID != "outdoor" {
		t.Fatalf("top scene = %q, want outdoor", recs[0].SceneID)
	}
	if !recs[0].IsTopPick {
		t.Fatalf("first recommendation not flagged as top pick")
	}
	for _, rec := range recs[1:] {
		if rec.IsTopPick {
			t.Fatalf("scene %s flagged as top pick, want exactly one", rec.SceneID)
		}
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Fatalf("recommendations not sorted: %d before %d", recs[i-1].Score, recs[i].Score)
		}
	}
}

func TestRecommendationsScoreBounds(t *testing.T) {
	r := New()
	p := domain.ProductInfo{
		Name:        "高端奢华精品 luxury premium high-end jewelry",
		Category:    "jewelry",
		Description: "奢华精品，高端礼品，节日送礼",
		Features:    []string{"luxury", "gift", "premium"},
	}

	for _, rec := range r.Recommendations(p, 6) {
		if rec.Score < 0 || rec.Score > 100 {
			t.Fatalf("scene %s score %d out of [0,100]", rec.SceneID, rec.Score)
		}
	}
}

func TestRecommendationsCategoryReasonPrecedence(t *testing.T) {
	r := New()
	p := domain.ProductInfo{
		Name:     "钻石项链",
		Category: "jewelry",
	}

	recs := r.Recommendations(p, 6)
	for _, rec := range recs {
		if rec.SceneID == "luxury" {
			if !rec.CategoryMatch {
				t.Fatalf("luxury should be a category match for jewelry")
			}
			if rec.Reason == "" || strings.Contains(rec.Reason, "场景的") {
				t.Fatalf("luxury reason = %q, want category reason", rec.Reason)
			}
			return
		}
	}
	t.Fatalf("luxury scene missing from recommendations")
}

func TestRecommendationsDefaultReason(t *testing.T) {
	r := New()
	recs := r.Recommendations(domain.ProductInfo{Name: "something plain"}, 6)
	for _, rec := range recs {
		if rec.Reason == "" {
			t.Fatalf("scene %s has empty reason", rec.SceneID)
		}
	}
}

func TestBestSceneFallback(t *testing.T) {
	r := New()
	if got := r.BestScene(domain.ProductInfo{}); got == "" {
		t.Fatalf("BestScene returned empty id")
	}

	p := domain.ProductInfo{Name: "cozy home blanket", Description: "日常家居舒适"}
	if got := r.BestScene(p); got != "lifestyle" {
		t.Fatalf("BestScene = %q, want lifestyle", got)
	}
}

func TestSceneSuitable(t *testing.T) {
	r := New()
	p := domain.ProductInfo{
		Name:     "户外运动水壶",
		Category: "sports",
		Features: []string{"waterproof", "outdoor"},
	}
	if !r.SceneSuitable(p, "outdoor") {
		t.Fatalf("outdoor should be suitable for an outdoor sports product")
	}
	if r.SceneSuitable(p, "no-such-scene") {
		t.Fatalf("unknown scene reported suitable")
	}
}

func TestSceneWarning(t *testing.T) {
	r := New()
	p := domain.ProductInfo{Name: "钻石戒指", Category: "jewelry"}

	// Scores bottom out at the base of 50, so well-formed products never
	// trip the warning threshold.
	if warn := r.SceneWarning(p, "outdoor"); warn != "" {
		t.Fatalf("unexpected warning for jewelry in outdoor scene: %q", warn)
	}
	if warn := r.SceneWarning(p, "luxury"); warn != "" {
		t.Fatalf("unexpected warning for jewelry in luxury scene: %q", warn)
	}
	if warn := r.SceneWarning(domain.ProductInfo{Name: "x"}, "outdoor"); warn != "" {
		t.Fatalf("warning without category: %q", warn)
	}
	if warn := r.SceneWarning(p, "no-such-scene"); warn != "" {
		t.Fatalf("warning for unknown scene: %q", warn)
	}
}
