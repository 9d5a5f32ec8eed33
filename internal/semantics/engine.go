package semantics

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"studioshot/internal/domain"
	"studioshot/internal/registry"
)

// Match is one keyword hit in the product text together with its visual
// vocabulary and a 0..1 confidence.
type Match struct {
	Keyword     string   `json:"keyword"`
	Category    string   `json:"category"`
	Suggestions []string `json:"suggestions"`
	Confidence  float64  `json:"confidence"`
}

// SceneMatch is the result of scoring a product against one specific scene.
type SceneMatch struct {
	MatchScore  float64  `json:"match_score"`
	Suggestions []string `json:"suggestions"`
	Warnings    []string `json:"warnings"`
}

// Engine matches product text against a fixed keyword dictionary to derive
// visual cues and scene affinity. It carries no mutable state and is safe for
// concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func searchText(p domain.ProductInfo) string {
	return strings.ToLower(p.Name + " " + p.Description + " " + strings.Join(p.Features, " "))
}

// AnalyzeProduct extracts semantic keyword matches from the product's name,
// description and features, sorted by descending confidence.
func (e *Engine) AnalyzeProduct(p domain.ProductInfo) []Match {
	text := searchText(p)
	var matches []Match
	for _, keyword := range keywordOrder {
		kw := strings.ToLower(keyword)
		if !strings.Contains(text, kw) {
			continue
		}
		m := mappings[keyword]
		matches = append(matches, Match{
			Keyword:     keyword,
			Category:    m.Category,
			Suggestions: m.VisualCues,
			Confidence:  confidence(text, kw),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Confidence > matches[j].Confidence })
	return matches
}

func confidence(text, keyword string) float64 {
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(keyword))
	occurrences := len(re.FindAllStringIndex(text, -1))
	words := len(strings.Fields(text))
	if words == 0 {
		words = 1
	}
	c := float64(occurrences)*10/float64(words) + 0.3
	if c > 1 {
		c = 1
	}
	return c
}

// RecommendScene picks the scene with the highest accumulated affinity from
// keyword hints plus a flat bonus for the category's suggested scenes.
// Falls back to studio-white when nothing scores above zero.
func (e *Engine) RecommendScene(p domain.ProductInfo) string {
	scores := map[string]float64{}
	var order []string
	add := func(scene string, v float64) {
		if _, ok := scores[scene]; !ok {
			order = append(order, scene)
		}
		scores[scene] += v
	}

	for _, match := range e.AnalyzeProduct(p) {
		for _, scene := range mappings[match.Keyword].SceneHints {
			add(scene, match.Confidence)
		}
	}

	if cat, ok := registry.CategoryByKeyword(p.Category); ok {
		for _, scene := range cat.SuggestedScenes {
			add(scene, 0.5)
		}
	}

	best := registry.SceneStudioWhite
	max := 0.0
	for _, scene := range order {
		if scores[scene] > max {
			max = scores[scene]
			best = scene
		}
	}
	return best
}

// GenerateEnhancements collects the visual cues of the top five matches plus
// up to three category enhancement phrases, deduplicated, first occurrence
// wins.
func (e *Engine) GenerateEnhancements(p domain.ProductInfo) []string {
	matches := e.AnalyzeProduct(p)
	if len(matches) > 5 {
		matches = matches[:5]
	}

	var raw []string
	for _, m := range matches {
		raw = append(raw, m.Suggestions...)
	}
	if cat, ok := registry.CategoryByKeyword(p.Category); ok {
		enh := cat.PromptEnhancements
		if len(enh) > 3 {
			enh = enh[:3]
		}
		raw = append(raw, enh...)
	}

	seen := make(map[string]struct{}, len(raw))
	var out []string
	for _, s := range raw {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// MatchProductToScene scores how well the product fits the given scene and
// explains the verdict.
func (e *Engine) MatchProductToScene(p domain.ProductInfo, sceneID string) SceneMatch {
	scene, _ := registry.SceneByID(sceneID)
	result := SceneMatch{MatchScore: 0.5}

	for _, match := range e.AnalyzeProduct(p) {
		for _, hint := range mappings[match.Keyword].SceneHints {
			if hint == sceneID {
				result.MatchScore += 0.1
				result.Suggestions = append(result.Suggestions,
					fmt.Sprintf("产品的%s特性与%s场景很搭配", match.Keyword, scene.Name))
				break
			}
		}
	}

	if cat, ok := registry.CategoryByKeyword(p.Category); ok {
		if containsString(cat.SuggestedScenes, sceneID) {
			result.MatchScore += 0.2
		} else {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s类产品通常更适合%s场景", cat.Name, joinSceneNames(cat.SuggestedScenes)))
		}
	}

	if result.MatchScore > 1 {
		result.MatchScore = 1
	}
	return result
}

// RelatedTerms exposes the dictionary's related vocabulary for one keyword.
func (e *Engine) RelatedTerms(keyword string) []string {
	if m, ok := mappings[keyword]; ok {
		return m.RelatedTerms
	}
	return nil
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}

func joinSceneNames(ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if scene, ok := registry.SceneByID(id); ok {
			names = append(names, scene.Name)
		}
	}
	return strings.Join(names, "、")
}
