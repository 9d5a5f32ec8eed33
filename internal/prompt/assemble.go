package prompt

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"studioshot/internal/registry"
)

// PromptConfig is the full output of one compilation: the per-layer breakdown
// plus the assembled prompt pair handed to the image generator.
type PromptConfig struct {
	Layers         []Layer  `json:"layers"`
	FinalPrompt    string   `json:"final_prompt"`
	NegativePrompt string   `json:"negative_prompt"`
	Metadata       Metadata `json:"metadata"`
}

type Metadata struct {
	Scene       string    `json:"scene"`
	Product     string    `json:"product"`
	GeneratedAt time.Time `json:"generated_at"`
}

type generator func(Config) string

var generators = map[LayerType]generator{
	LayerCoreSubject:   buildCoreSubject,
	LayerModel:         func(cfg Config) string { return cfg.ModelPrompt },
	LayerFusion:        func(cfg Config) string { return cfg.FusionPrompt },
	LayerConsistency:   func(cfg Config) string { return cfg.ConsistencyPrompt },
	LayerSceneContext:  buildSceneContext,
	LayerDeepVision:    buildDeepVision,
	LayerScale:         buildScale,
	LayerLighting:      buildLighting,
	LayerComposition:   buildComposition,
	LayerStyle:         buildStyle,
	LayerQuality:       buildQuality,
	LayerSemantic:      buildSemantic,
	LayerMarketing:     func(cfg Config) string { return cfg.MarketingPrompt },
	LayerAida:          func(cfg Config) string { return cfg.AidaPrompt },
	LayerDetail:        buildDetail,
	LayerColorFidelity: buildColorFidelity,
	LayerNegative:      buildNegative,
}

// Compile is a pure function: identical configs produce identical output.
func Compile(cfg Config) PromptConfig {
	if cfg.Scene == "" {
		cfg.Scene = registry.SceneStudioWhite
	}

	layers := computeLayers(cfg)

	return PromptConfig{
		Layers:         layers,
		FinalPrompt:    combine(layers, cfg.Extras),
		NegativePrompt: layerContent(layers, LayerNegative),
		Metadata: Metadata{
			Scene:       cfg.Scene,
			Product:     cfg.Product.Name,
			GeneratedAt: time.Now(),
		},
	}
}

func computeLayers(cfg Config) []Layer {
	layers := make([]Layer, 0, len(buildOrder))
	for _, name := range buildOrder {
		content, overridden := cfg.Overrides[name]
		if !overridden {
			content = generators[name](cfg)
		}
		layers = append(layers, Layer{
			Name:    name,
			Content: content,
			Weight:  layerWeights[name],
			Enabled: strings.TrimSpace(content) != "",
		})
	}
	return layers
}

func layerContent(layers []Layer, name LayerType) string {
	for _, l := range layers {
		if l.Name == name {
			return l.Content
		}
	}
	return ""
}

// combine renders the enabled non-negative layers into one natural-language
// paragraph: one aggregated clause per bucket, in fixed bucket order, then
// any caller-supplied extras.
func combine(layers []Layer, extras []string) string {
	buckets := make([][]Layer, bucketCount)
	for _, l := range layers {
		if !l.Enabled || l.Name == LayerNegative {
			continue
		}
		b, ok := layerBuckets[l.Name]
		if !ok {
			b = bucketEnhancement
		}
		buckets[b] = append(buckets[b], l)
	}
	for _, b := range buckets {
		sort.SliceStable(b, func(i, j int) bool { return b[i].Weight > b[j].Weight })
	}

	var clauses []string
	if c := renderInstruction(buckets[bucketInstruction]); c != "" {
		clauses = append(clauses, c)
	}
	if c := renderJoined(buckets[bucketSubject], ". ", ""); c != "" {
		clauses = append(clauses, c)
	}
	if c := renderJoined(buckets[bucketEnvironment], ", ", "Use "); c != "" {
		clauses = append(clauses, c)
	}
	if c := renderJoined(buckets[bucketTechnical], ". ", ""); c != "" {
		clauses = append(clauses, c)
	}
	if c := renderJoined(buckets[bucketEnhancement], ", ", ""); c != "" {
		clauses = append(clauses, c)
	}
	if len(extras) > 0 {
		clauses = append(clauses, strings.Join(extras, ". ")+".")
	}

	return tidy(strings.Join(clauses, " "))
}

func renderInstruction(layers []Layer) string {
	if len(layers) == 0 {
		return ""
	}
	text := strings.TrimSpace(layers[0].Content)
	text = strings.TrimRight(text, ".")
	if !strings.HasPrefix(strings.ToLower(text), "create") {
		text = "Create a " + text
	}
	return text + "."
}

func renderJoined(layers []Layer, sep, prefix string) string {
	if len(layers) == 0 {
		return ""
	}
	parts := make([]string, 0, len(layers))
	for _, l := range layers {
		parts = append(parts, strings.TrimSpace(l.Content))
	}
	return prefix + strings.Join(parts, sep) + "."
}

var (
	spaceRun  = regexp.MustCompile(`\s+`)
	periodRun = regexp.MustCompile(`\.{2,}`)
)

func tidy(s string) string {
	s = spaceRun.ReplaceAllString(s, " ")
	s = periodRun.ReplaceAllString(s, ".")
	return strings.TrimSpace(s)
}
