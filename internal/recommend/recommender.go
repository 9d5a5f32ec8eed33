package recommend

import (
	"fmt"
	"sort"
	"strings"

	"studioshot/internal/domain"
	"studioshot/internal/registry"
)

// SceneRecommendation scores one scene for a product, 0-100.
type SceneRecommendation struct {
	SceneID       string `json:"scene_id"`
	Score         int    `json:"score"`
	Reason        string `json:"reason"`
	IsTopPick     bool   `json:"is_top_pick"`
	CategoryMatch bool   `json:"category_match"`
}

const (
	baseScore         = 50
	suitableThreshold = 60
	warningThreshold  = 40
)

// textRule awards an additive score to a single scene when any of its
// keywords appears in the product text.
type textRule struct {
	sceneID  string
	score    int
	reason   string
	keywords []string
}

// The rule battery runs in order; each rule targets one scene.
var textRules = []textRule{
	{"luxury", 20, "产品定位高端，推荐奢华场景", []string{"luxury", "premium", "high-end", "高端", "奢华", "精品"}},
	{"outdoor", 25, "产品适合户外使用", []string{"outdoor", "sport", "adventure", "户外", "运动", "探险", "waterproof", "防水"}},
	{"lifestyle", 20, "产品适合生活场景展示", []string{"home", "cozy", "comfort", "家居", "舒适", "居家", "daily", "日常"}},
	{"seasonal", 25, "产品适合作为礼品展示", []string{"gift", "holiday", "celebration", "礼品", "节日", "送礼", "christmas", "圣诞"}},
	{"minimalist", 20, "产品设计简约现代", []string{"minimal", "simple", "modern", "极简", "简约", "设计感", "elegant", "优雅"}},
	{"studio-white", 15, "适合标准电商主图展示", []string{"商品", "产品", "电商", "product", "e-commerce", "main image"}},
}

// Recommender scores every known scene for a product by combining
// category-priority weighting with text heuristics.
type Recommender struct{}

func New() *Recommender {
	return &Recommender{}
}

// Recommendations returns the top-N scenes for the product, highest score
// first, with exactly the first entry flagged as top pick. limit <= 0 uses
// the default of 3.
func (r *Recommender) Recommendations(p domain.ProductInfo, limit int) []SceneRecommendation {
	if limit <= 0 {
		limit = 3
	}

	catRecs := map[string]domain.CategorySceneRecommendation{}
	if p.Category != "" {
		for _, rec := range registry.CategorySceneRecommendations(p.Category) {
			catRecs[rec.SceneID] = rec
		}
	}

	featScores, featReasons := featureContribution(p)

	var out []SceneRecommendation
	for _, scene := range registry.SceneList() {
		score := baseScore
		var reasons []string

		if rec, ok := catRecs[scene.ID]; ok {
			score += rec.Priority * 10
			reasons = append(reasons, rec.Reason)
		}
		if v, ok := featScores[scene.ID]; ok {
			score += v
			reasons = append(reasons, featReasons[scene.ID])
		}

		if score > 100 {
			score = 100
		}
		if score < 0 {
			score = 0
		}

		reason := scene.Description
		if len(reasons) > 0 {
			reason = reasons[0]
		}

		_, categoryMatch := catRecs[scene.ID]
		out = append(out, SceneRecommendation{
			SceneID:       scene.ID,
			Score:         score,
			Reason:        reason,
			CategoryMatch: categoryMatch,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > 0 {
		out[0].IsTopPick = true
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func featureContribution(p domain.ProductInfo) (map[string]int, map[string]string) {
	text := strings.ToLower(p.Name + " " + p.Description + " " + strings.Join(p.Features, " "))
	scores := map[string]int{}
	reasons := map[string]string{}
	for _, rule := range textRules {
		if !containsAny(text, rule.keywords) {
			continue
		}
		scores[rule.sceneID] += rule.score
		if _, ok := reasons[rule.sceneID]; !ok {
			reasons[rule.sceneID] = rule.reason
		}
	}
	return scores, reasons
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// BestScene returns the single best scene id for the product, defaulting to
// studio-white when the product carries no discernible signal.
func (r *Recommender) BestScene(p domain.ProductInfo) string {
	recs := r.Recommendations(p, 1)
	if len(recs) == 0 {
		return registry.SceneStudioWhite
	}
	return recs[0].SceneID
}

// SceneSuitable reports whether the scene scores at least 60 for the product.
func (r *Recommender) SceneSuitable(p domain.ProductInfo, sceneID string) bool {
	for _, rec := range r.Recommendations(p, 6) {
		if rec.SceneID == sceneID {
			return rec.Score >= suitableThreshold
		}
	}
	return false
}

// SceneWarning returns a human-readable caution when a known-category product
// scores poorly in the given scene, naming the category's preferred scenes.
// Empty string means no warning.
func (r *Recommender) SceneWarning(p domain.ProductInfo, sceneID string) string {
	if p.Category == "" {
		return ""
	}
	cat, ok := registry.CategoryByID(p.Category)
	if !ok {
		return ""
	}
	scene, ok := registry.SceneByID(sceneID)
	if !ok {
		return ""
	}

	for _, rec := range r.Recommendations(p, 6) {
		if rec.SceneID == sceneID && rec.Score < warningThreshold {
			return fmt.Sprintf("%s可能不是%s类产品的最佳选择，推荐尝试%s",
				scene.Name, cat.Name, preferredSceneNames(cat))
		}
	}
	return ""
}

func preferredSceneNames(cat domain.Category) string {
	names := make([]string, 0, len(cat.SuggestedScenes))
	for _, id := range cat.SuggestedScenes {
		if scene, ok := registry.SceneByID(id); ok {
			names = append(names, scene.Name)
		}
	}
	return strings.Join(names, "、")
}
