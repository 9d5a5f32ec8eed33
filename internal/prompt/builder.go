package prompt

import (
	"fmt"
	"strings"

	"studioshot/internal/domain"
	"studioshot/internal/registry"
	"studioshot/internal/semantics"
)

// Config is the complete input to one prompt compilation. It is plain data:
// Compile never mutates it, so a Config can be copied, stored, or reused.
type Config struct {
	Product  domain.ProductInfo
	Scene    string
	Settings domain.GenerationSettings

	Intrinsic    *domain.ProductIntrinsicDNA
	ArtDirection *domain.ArtDirectionDNA

	// Side-channel prompts supplied by out-of-process collaborators. Each
	// passes through verbatim and its layer is enabled iff non-empty.
	ModelPrompt       string
	FusionPrompt      string
	ConsistencyPrompt string
	MarketingPrompt   string
	AidaPrompt        string

	// Overrides replace a layer's computed content wholesale.
	Overrides map[LayerType]string

	// Extras are free-form clauses appended after every bucket.
	Extras []string
}

// Builder is a fluent facade over Config for callers that configure a prompt
// step by step. Not safe for concurrent mutation; use one Builder per build.
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{Scene: registry.SceneStudioWhite}}
}

func (b *Builder) SetProduct(p domain.ProductInfo) *Builder {
	b.cfg.Product = p
	return b
}

func (b *Builder) SetScene(sceneID string) *Builder {
	b.cfg.Scene = sceneID
	return b
}

func (b *Builder) SetSettings(s domain.GenerationSettings) *Builder {
	b.cfg.Settings = s
	return b
}

func (b *Builder) SetDeepVision(intrinsic *domain.ProductIntrinsicDNA, art *domain.ArtDirectionDNA) *Builder {
	b.cfg.Intrinsic = intrinsic
	b.cfg.ArtDirection = art
	return b
}

func (b *Builder) SetModelPrompt(p string) *Builder {
	b.cfg.ModelPrompt = p
	return b
}

func (b *Builder) SetFusionPrompt(p string) *Builder {
	b.cfg.FusionPrompt = p
	return b
}

func (b *Builder) SetConsistencyPrompt(p string) *Builder {
	b.cfg.ConsistencyPrompt = p
	return b
}

func (b *Builder) SetMarketingPrompt(p string) *Builder {
	b.cfg.MarketingPrompt = p
	return b
}

func (b *Builder) SetAidaPrompt(p string) *Builder {
	b.cfg.AidaPrompt = p
	return b
}

func (b *Builder) SetLayerContent(layer LayerType, content string) *Builder {
	if b.cfg.Overrides == nil {
		b.cfg.Overrides = map[LayerType]string{}
	}
	b.cfg.Overrides[layer] = content
	return b
}

func (b *Builder) AddPrompt(p string) *Builder {
	b.cfg.Extras = append(b.cfg.Extras, p)
	return b
}

func (b *Builder) Reset() *Builder {
	b.cfg = Config{Scene: registry.SceneStudioWhite}
	return b
}

// Config returns a copy of the accumulated configuration.
func (b *Builder) Config() Config {
	return b.cfg
}

func (b *Builder) Build() PromptConfig {
	return Compile(b.cfg)
}

func (b *Builder) BuildPrompt() string {
	return Compile(b.cfg).FinalPrompt
}

// --- per-layer generators ---
// Every generator degrades to the empty string on missing input; none fails.

var semanticEngine = semantics.NewEngine()

func buildCoreSubject(cfg Config) string {
	noun := strings.TrimSpace(cfg.Product.Name)
	if noun == "" {
		if mapped, ok := categoryNouns[cfg.Product.Category]; ok {
			noun = mapped
		} else {
			noun = fallbackSubjectNoun
		}
	}

	var sb strings.Builder
	sb.WriteString("professional product photograph of ")
	sb.WriteString(noun)

	if cfg.Product.Brand != "" {
		sb.WriteString(" by ")
		sb.WriteString(cfg.Product.Brand)
	}

	if desc, ok := cfg.Product.SceneDescriptions[cfg.Scene]; ok && strings.TrimSpace(desc) != "" {
		desc = strings.TrimSpace(desc)
		desc = strings.TrimPrefix(desc, "a ")
		desc = strings.TrimPrefix(desc, "A ")
		sb.WriteString(", featuring ")
		sb.WriteString(desc)
	} else if cfg.Product.Description != "" {
		short := cfg.Product.Description
		if runes := []rune(short); len(runes) > 80 {
			short = string(runes[:80])
		}
		sb.WriteString(", featuring ")
		sb.WriteString(short)
	}

	return sb.String()
}

func buildSceneContext(cfg Config) string {
	scene, ok := registry.SceneByID(cfg.Scene)
	if !ok {
		return ""
	}

	hints := scene.PromptHints
	if len(hints) > 4 {
		hints = hints[:4]
	}
	parts := append([]string{}, hints...)

	if featuresContain(cfg.Product.Features, waterFeatureTerms) && sceneSuggests(cfg.Scene, waterSceneTerms) {
		parts = append(parts, waterInteractionPhrases...)
	}
	if featuresContain(cfg.Product.Features, sunFeatureTerms) && sceneSuggests(cfg.Scene, sunSceneTerms) {
		parts = append(parts, sunlightPhrases...)
	}

	return strings.Join(parts, ", ")
}

func featuresContain(features, terms []string) bool {
	for _, f := range features {
		lf := strings.ToLower(f)
		for _, t := range terms {
			if strings.Contains(lf, t) {
				return true
			}
		}
	}
	return false
}

func sceneSuggests(sceneID string, terms []string) bool {
	id := strings.ToLower(sceneID)
	for _, t := range terms {
		if strings.Contains(id, t) {
			return true
		}
	}
	return false
}

func buildDeepVision(cfg Config) string {
	var sentences []string

	if in := cfg.Intrinsic; in != nil {
		if in.MaterialAnalysis.SurfaceTexture != "" {
			s := "The product surface shows " + in.MaterialAnalysis.SurfaceTexture
			if in.MaterialAnalysis.Reflectivity != "" {
				s += " with " + in.MaterialAnalysis.Reflectivity + " reflectivity"
			}
			sentences = append(sentences, s)
		}
		if len(in.FormFactor.ShapeKeywords) > 0 {
			sentences = append(sentences, "Its form reads as "+strings.Join(in.FormFactor.ShapeKeywords, ", "))
		}
	}

	art := cfg.ArtDirection
	if art == nil {
		return strings.Join(sentences, ". ")
	}

	scene, sceneKnown := registry.SceneByID(cfg.Scene)
	// When the scene authors its own lighting, art-direction atmosphere
	// must stay out of the prompt: the two can contradict each other.
	if ls := art.LightingScenario; ls != nil && !(sceneKnown && scene.HasDetailedLighting) {
		var bits []string
		if ls.Style != "" {
			bits = append(bits, ls.Style+" lighting")
		}
		if ls.Direction != "" {
			bits = append(bits, "from the "+ls.Direction)
		}
		if ls.Atmosphere != "" {
			bits = append(bits, "with a "+ls.Atmosphere+" atmosphere")
		}
		if len(bits) > 0 {
			sentences = append(sentences, "Light the shot using "+strings.Join(bits, " "))
		}
	}
	if ps := art.PhotographySettings; ps != nil {
		if ps.ShotScale != "" {
			sentences = append(sentences, "Frame the product as a "+ps.ShotScale)
		}
		if ps.DepthOfField != "" {
			sentences = append(sentences, "Use "+ps.DepthOfField+" depth of field")
		}
	}
	if cg := art.ColorGrading; cg != nil && cg.Tone != "" {
		sentences = append(sentences, "Grade the image with a "+cg.Tone+" tone")
	}
	if om := art.OpticalMechanics; om != nil {
		var bits []string
		if om.LensType != "" {
			bits = append(bits, "a "+om.LensType+" lens")
		}
		if om.Aperture != "" {
			bits = append(bits, "at "+om.Aperture)
		}
		if om.ShutterSpeed != "" {
			bits = append(bits, "shutter "+om.ShutterSpeed)
		}
		if len(bits) > 0 {
			sentences = append(sentences, "Shoot with "+strings.Join(bits, " "))
		}
	}
	if comp := art.CompositionGuide; comp != nil && comp.Keyword != "" {
		sentences = append(sentences, "Compose following the "+comp.Keyword+" principle")
	}

	return strings.Join(sentences, ". ")
}

func buildScale(cfg Config) string {
	if !scaleScenes[cfg.Scene] {
		return ""
	}

	var parts []string
	if ref := strings.TrimSpace(cfg.Product.SizeReference); ref != "" {
		parts = append(parts, ref)
	}
	if phrase, ok := sizePhrases[cfg.Product.SizeCategory]; ok {
		parts = append(parts, phrase)
	}
	parts = append(parts, scaleAnchorPhrase)

	return strings.Join(parts, ", ")
}

func buildLighting(cfg Config) string {
	if scene, ok := registry.SceneByID(cfg.Scene); ok && scene.HasDetailedLighting {
		return ""
	}
	phrase, ok := lightingPhrases[cfg.Settings.Lighting]
	if !ok {
		phrase = lightingPhrases[domain.LightingStudio]
	}
	return phrase
}

func buildComposition(cfg Config) string {
	var parts []string

	scene, known := registry.SceneByID(cfg.Scene)
	if !known || !scene.HasDetailedComposition {
		parts = append(parts, "centered composition", "product focus")
	}

	phrase, ok := aspectPhrases[cfg.Settings.AspectRatio]
	if !ok {
		phrase = aspectPhrases[domain.AspectSquare]
	}
	parts = append(parts, phrase)

	return strings.Join(parts, ", ")
}

func buildStyle(cfg Config) string {
	phrase, ok := stylePhrases[cfg.Settings.Style]
	if !ok {
		phrase = stylePhrases[domain.StyleCommercial]
	}
	return phrase
}

func buildQuality(cfg Config) string {
	phrase, ok := qualityPhrases[cfg.Settings.Quality]
	if !ok {
		phrase = qualityPhrases[domain.QualityHigh]
	}

	parts := []string{phrase}
	if cfg.Settings.EnhanceDetails {
		parts = append(parts, "enhanced micro details")
	}
	if cfg.Settings.AddShadow {
		parts = append(parts, "natural product shadows")
	}
	return strings.Join(parts, ", ")
}

func buildSemantic(cfg Config) string {
	enhancements := semanticEngine.GenerateEnhancements(cfg.Product)
	if len(enhancements) > 5 {
		enhancements = enhancements[:5]
	}
	return strings.Join(enhancements, ", ")
}

func buildDetail(cfg Config) string {
	var parts []string

	if s := featureSentence(cfg.Product.Features); s != "" {
		parts = append(parts, s)
	}
	if cfg.Product.Style != "" {
		parts = append(parts, cfg.Product.Style+" style")
	}
	if cfg.Product.TargetAudience != "" {
		parts = append(parts, "appealing to "+cfg.Product.TargetAudience)
	}

	if mods := registry.CategorySceneModifiers(cfg.Product.Category, cfg.Scene); len(mods) > 0 {
		parts = append(parts, strings.Join(mods, ", "))
	} else if cat, ok := registry.CategoryByID(cfg.Product.Category); ok {
		enh := cat.PromptEnhancements
		if len(enh) > 2 {
			enh = enh[:2]
		}
		if len(enh) > 0 {
			parts = append(parts, strings.Join(enh, ", "))
		}
	}

	return strings.Join(parts, ", ")
}

func featureSentence(features []string) string {
	if len(features) > 3 {
		features = features[:3]
	}
	switch len(features) {
	case 0:
		return ""
	case 1:
		return "features " + features[0]
	case 2:
		return fmt.Sprintf("features %s and %s", features[0], features[1])
	default:
		return fmt.Sprintf("features %s, %s, and %s", features[0], features[1], features[2])
	}
}

func buildColorFidelity(cfg Config) string {
	if !cfg.Settings.ColorCorrection {
		return ""
	}
	return colorFidelityInstruction
}

func buildNegative(cfg Config) string {
	negatives := append([]string{}, defaultNegativePrompts...)
	if cfg.ArtDirection != nil && cfg.ArtDirection.NegativeConstraints != nil {
		negatives = append(negatives, cfg.ArtDirection.NegativeConstraints.ForbiddenElements...)
	}
	return strings.Join(negatives, ", ")
}
