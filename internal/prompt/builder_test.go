package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"studioshot/internal/domain"
)

func smartWatchConfig() Config {
	settings := domain.DefaultSettings()
	settings.Lighting = domain.LightingNatural
	settings.AspectRatio = domain.AspectWide
	return Config{
		Product: domain.ProductInfo{
			Name:     "SmartWatch X",
			Category: "electronics",
			Features: []string{"waterproof", "solar charging"},
		},
		Scene:    "outdoor",
		Settings: settings,
	}
}

func TestCompileSmartWatchEndToEnd(t *testing.T) {
	out := Compile(smartWatchConfig())

	wantPrefix := "Create a professional product photograph of SmartWatch X"
	if !strings.HasPrefix(out.FinalPrompt, wantPrefix) {
		t.Fatalf("final prompt %q does not start with %q", out.FinalPrompt, wantPrefix)
	}
	if !strings.Contains(out.FinalPrompt, "water droplets") {
		t.Fatalf("final prompt missing water-interaction phrase: %q", out.FinalPrompt)
	}
	if !strings.Contains(out.FinalPrompt, "sun flare") {
		t.Fatalf("final prompt missing sunlight phrase: %q", out.FinalPrompt)
	}
	if !strings.Contains(out.FinalPrompt, "wide cinematic format") {
		t.Fatalf("final prompt missing aspect phrase: %q", out.FinalPrompt)
	}
	if !strings.Contains(out.NegativePrompt, "blurry") {
		t.Fatalf("negative prompt missing %q: %q", "blurry", out.NegativePrompt)
	}
}

func TestCompileIdempotent(t *testing.T) {
	cfg := smartWatchConfig()
	first := Compile(cfg)
	second := Compile(cfg)

	if first.FinalPrompt != second.FinalPrompt {
		t.Fatalf("final prompt not stable:\n%q\n%q", first.FinalPrompt, second.FinalPrompt)
	}
	if first.NegativePrompt != second.NegativePrompt {
		t.Fatalf("negative prompt not stable")
	}
}

func TestCompileEmptyInputFallback(t *testing.T) {
	out := Compile(Config{Settings: domain.DefaultSettings()})

	wantPrefix := "Create a professional product photograph of the product"
	if !strings.HasPrefix(out.FinalPrompt, wantPrefix) {
		t.Fatalf("final prompt %q does not start with %q", out.FinalPrompt, wantPrefix)
	}
	if out.FinalPrompt == "" {
		t.Fatalf("final prompt empty for empty input")
	}
}

func TestCompileCategoryNounFallback(t *testing.T) {
	out := Compile(Config{
		Product:  domain.ProductInfo{Category: "electronics"},
		Settings: domain.DefaultSettings(),
	})
	if !strings.HasPrefix(out.FinalPrompt, "Create a professional product photograph of electronic device") {
		t.Fatalf("category noun not used: %q", out.FinalPrompt)
	}
}

func TestCompileTruncatesDescriptionOnRunes(t *testing.T) {
	long := strings.Repeat("这款智能手表拥有超长续航", 12)
	out := Compile(Config{
		Product: domain.ProductInfo{
			Name:        "智能手表",
			Description: long,
		},
		Settings: domain.DefaultSettings(),
	})
	if !utf8.ValidString(out.FinalPrompt) {
		t.Fatalf("final prompt is not valid UTF-8: %q", out.FinalPrompt)
	}
	if !strings.Contains(out.FinalPrompt, ", featuring "+string([]rune(long)[:80])) {
		t.Fatalf("description not truncated to 80 runes: %q", out.FinalPrompt)
	}
	if strings.Contains(out.FinalPrompt, string([]rune(long)[:81])) {
		t.Fatalf("description exceeds 80 runes: %q", out.FinalPrompt)
	}
}

func TestSideChannelLayerGating(t *testing.T) {
	cfg := smartWatchConfig()
	out := Compile(cfg)

	for _, l := range out.Layers {
		switch l.Name {
		case LayerModel, LayerFusion, LayerConsistency, LayerMarketing, LayerAida:
			if l.Enabled {
				t.Fatalf("layer %s enabled with empty side-channel prompt", l.Name)
			}
		}
	}

	// Prompt stays a well-formed instruction+environment+technical paragraph.
	if !strings.HasPrefix(out.FinalPrompt, "Create a ") {
		t.Fatalf("missing instruction clause: %q", out.FinalPrompt)
	}
	if !strings.Contains(out.FinalPrompt, "Use ") {
		t.Fatalf("missing environment clause: %q", out.FinalPrompt)
	}
	if !strings.Contains(out.FinalPrompt, "8K quality") {
		t.Fatalf("missing technical clause: %q", out.FinalPrompt)
	}

	cfg.ModelPrompt = "a confident athlete wearing the watch"
	withModel := Compile(cfg)
	if !strings.Contains(withModel.FinalPrompt, "a confident athlete wearing the watch") {
		t.Fatalf("model prompt not passed through: %q", withModel.FinalPrompt)
	}
}

func TestScaleLayerSceneGating(t *testing.T) {
	cfg := Config{
		Product: domain.ProductInfo{
			Name:         "Wireless Earbuds",
			SizeCategory: domain.SizePocket,
		},
		Scene:    "studio-white",
		Settings: domain.DefaultSettings(),
	}

	out := Compile(cfg)
	if got := layerContent(out.Layers, LayerScale); got != "" {
		t.Fatalf("scale layer in studio-white = %q, want empty", got)
	}

	cfg.Scene = "lifestyle"
	out = Compile(cfg)
	if !strings.Contains(out.FinalPrompt, "easily fits in a pocket") {
		t.Fatalf("pocket phrase missing from lifestyle prompt: %q", out.FinalPrompt)
	}
	if !strings.Contains(out.FinalPrompt, "maintaining realistic scale relative to surrounding environment and furniture") {
		t.Fatalf("scale anchor missing: %q", out.FinalPrompt)
	}
}

func TestLightingSuppression(t *testing.T) {
	cfg := Config{
		Product:  domain.ProductInfo{Name: "Mug"},
		Scene:    "studio-white",
		Settings: domain.DefaultSettings(),
	}
	cfg.Settings.Lighting = domain.LightingStudio

	out := Compile(cfg)
	if got := layerContent(out.Layers, LayerLighting); got != "" {
		t.Fatalf("lighting layer = %q, want empty for a scene with authored lighting", got)
	}

	cfg.Scene = "no-such-scene"
	out = Compile(cfg)
	if got := layerContent(out.Layers, LayerLighting); !strings.Contains(got, "studio lighting") {
		t.Fatalf("lighting layer for unknown scene = %q, want studio phrase", got)
	}
}

func TestCompositionSuppression(t *testing.T) {
	cfg := Config{
		Product:  domain.ProductInfo{Name: "Mug"},
		Scene:    "studio-white",
		Settings: domain.DefaultSettings(),
	}

	out := Compile(cfg)
	comp := layerContent(out.Layers, LayerComposition)
	if strings.Contains(comp, "centered composition") {
		t.Fatalf("generic composition phrase kept for scene with authored composition: %q", comp)
	}
	if !strings.Contains(comp, "square format") {
		t.Fatalf("aspect phrase missing: %q", comp)
	}
}

func TestDeepVisionLayer(t *testing.T) {
	cfg := Config{
		Product:  domain.ProductInfo{Name: "Ceramic Vase"},
		Scene:    "studio-white",
		Settings: domain.DefaultSettings(),
		Intrinsic: &domain.ProductIntrinsicDNA{
			MaterialAnalysis: domain.MaterialAnalysis{
				SurfaceTexture: "glazed ceramic",
				Reflectivity:   "medium",
			},
			FormFactor: domain.FormFactor{ShapeKeywords: []string{"curved", "slender"}},
		},
		ArtDirection: &domain.ArtDirectionDNA{
			LightingScenario:    &domain.LightingScenario{Style: "softbox", Atmosphere: "warm & organic"},
			PhotographySettings: &domain.PhotographySettings{ShotScale: "close-up", DepthOfField: "shallow"},
			ColorGrading:        &domain.ColorGrading{Tone: "muted earthy"},
			OpticalMechanics:    &domain.OpticalMechanics{LensType: "85mm macro", Aperture: "f/2.8"},
			CompositionGuide:    &domain.CompositionGuide{Keyword: "rule of thirds"},
		},
	}

	out := Compile(cfg)
	dv := layerContent(out.Layers, LayerDeepVision)

	if !strings.Contains(dv, "glazed ceramic") {
		t.Fatalf("deep vision missing material sentence: %q", dv)
	}
	if !strings.Contains(dv, "curved, slender") {
		t.Fatalf("deep vision missing form sentence: %q", dv)
	}
	// studio-white authors its own lighting, so art-direction atmosphere
	// stays out.
	if strings.Contains(dv, "warm & organic") {
		t.Fatalf("art-direction lighting not suppressed: %q", dv)
	}
	if !strings.Contains(dv, "close-up") || !strings.Contains(dv, "shallow") {
		t.Fatalf("deep vision missing photography settings: %q", dv)
	}
	if !strings.Contains(dv, "muted earthy") || !strings.Contains(dv, "85mm macro") {
		t.Fatalf("deep vision missing grading/optics: %q", dv)
	}
	if !strings.Contains(dv, "rule of thirds") {
		t.Fatalf("deep vision missing composition principle: %q", dv)
	}
}

func TestDeepVisionPartialDNA(t *testing.T) {
	cfg := Config{
		Product:      domain.ProductInfo{Name: "Vase"},
		Scene:        "studio-white",
		Settings:     domain.DefaultSettings(),
		ArtDirection: &domain.ArtDirectionDNA{},
	}
	out := Compile(cfg)
	if got := layerContent(out.Layers, LayerDeepVision); got != "" {
		t.Fatalf("deep vision for empty DNA = %q, want empty", got)
	}
}

func TestNegativeIncludesForbiddenElements(t *testing.T) {
	cfg := smartWatchConfig()
	cfg.ArtDirection = &domain.ArtDirectionDNA{
		NegativeConstraints: &domain.NegativeConstraints{
			ForbiddenElements: []string{"visible straps", "reflections of the camera"},
		},
	}

	out := Compile(cfg)
	if !strings.Contains(out.NegativePrompt, "visible straps") {
		t.Fatalf("forbidden element missing: %q", out.NegativePrompt)
	}
	if !strings.Contains(out.NegativePrompt, "blurry") {
		t.Fatalf("default negatives missing: %q", out.NegativePrompt)
	}
	if strings.Contains(out.FinalPrompt, "visible straps") {
		t.Fatalf("negative content leaked into final prompt")
	}
}

func TestColorFidelityGatedOnColorCorrection(t *testing.T) {
	cfg := smartWatchConfig()
	cfg.Settings.ColorCorrection = false
	if got := layerContent(Compile(cfg).Layers, LayerColorFidelity); got != "" {
		t.Fatalf("color fidelity layer = %q with colorCorrection off", got)
	}

	cfg.Settings.ColorCorrection = true
	got := layerContent(Compile(cfg).Layers, LayerColorFidelity)
	if !strings.Contains(got, "reference image") {
		t.Fatalf("color fidelity layer = %q, want reference-image instruction", got)
	}
}

func TestLayerOverride(t *testing.T) {
	cfg := smartWatchConfig()
	cfg.Overrides = map[LayerType]string{
		LayerSceneContext: "inside a glass diving bell on the sea floor",
	}

	out := Compile(cfg)
	if !strings.Contains(out.FinalPrompt, "inside a glass diving bell on the sea floor") {
		t.Fatalf("override not applied: %q", out.FinalPrompt)
	}

	cfg.Overrides[LayerSceneContext] = ""
	out = Compile(cfg)
	if layerContent(out.Layers, LayerSceneContext) != "" {
		t.Fatalf("empty override should disable the layer")
	}
}

func TestExtrasAppended(t *testing.T) {
	cfg := smartWatchConfig()
	cfg.Extras = []string{"shot on location in the Alps"}

	out := Compile(cfg)
	if !strings.HasSuffix(out.FinalPrompt, "shot on location in the Alps.") {
		t.Fatalf("extras not appended last: %q", out.FinalPrompt)
	}
}

func TestFinalPromptTidy(t *testing.T) {
	out := Compile(smartWatchConfig())
	if strings.Contains(out.FinalPrompt, "..") {
		t.Fatalf("repeated periods survived: %q", out.FinalPrompt)
	}
	if strings.Contains(out.FinalPrompt, "  ") {
		t.Fatalf("repeated spaces survived: %q", out.FinalPrompt)
	}
}

func TestFeatureSentenceGrammar(t *testing.T) {
	cases := []struct {
		features []string
		want     string
	}{
		{nil, ""},
		{[]string{"waterproof"}, "features waterproof"},
		{[]string{"waterproof", "lightweight"}, "features waterproof and lightweight"},
		{[]string{"a", "b", "c"}, "features a, b, and c"},
		{[]string{"a", "b", "c", "d"}, "features a, b, and c"},
	}
	for _, tc := range cases {
		if got := featureSentence(tc.features); got != tc.want {
			t.Fatalf("featureSentence(%v) = %q, want %q", tc.features, got, tc.want)
		}
	}
}

func TestBuilderFluentAndReset(t *testing.T) {
	b := NewBuilder().
		SetProduct(domain.ProductInfo{Name: "SmartWatch X"}).
		SetScene("outdoor").
		SetSettings(domain.DefaultSettings()).
		SetModelPrompt("worn by a climber").
		AddPrompt("morning mist")

	out := b.Build()
	if !strings.Contains(out.FinalPrompt, "worn by a climber") {
		t.Fatalf("builder did not carry model prompt: %q", out.FinalPrompt)
	}
	if !strings.Contains(out.FinalPrompt, "morning mist") {
		t.Fatalf("builder did not carry extra prompt: %q", out.FinalPrompt)
	}

	b.Reset()
	reset := b.Build()
	if strings.Contains(reset.FinalPrompt, "worn by a climber") {
		t.Fatalf("reset did not clear state: %q", reset.FinalPrompt)
	}
	if reset.Metadata.Scene != "studio-white" {
		t.Fatalf("reset scene = %q, want studio-white", reset.Metadata.Scene)
	}
}

func TestSceneDescriptionPreferredOverGeneric(t *testing.T) {
	cfg := Config{
		Product: domain.ProductInfo{
			Name:        "SmartWatch X",
			Description: "a generic description that should lose to the scene-specific one",
			SceneDescriptions: map[string]string{
				"outdoor": "A rugged smartwatch built to withstand outdoor adventures",
			},
		},
		Scene:    "outdoor",
		Settings: domain.DefaultSettings(),
	}

	out := Compile(cfg)
	if !strings.Contains(out.FinalPrompt, "featuring rugged smartwatch built to withstand outdoor adventures") {
		t.Fatalf("scene description not used (or leading article kept): %q", out.FinalPrompt)
	}
	if strings.Contains(out.FinalPrompt, "generic description") {
		t.Fatalf("generic description used despite scene-specific one: %q", out.FinalPrompt)
	}
}

func TestPreviewListsEnabledLayers(t *testing.T) {
	got := Preview(smartWatchConfig())
	if !strings.Contains(got, "[Core Subject]") {
		t.Fatalf("preview missing core subject heading:\n%s", got)
	}
	if !strings.Contains(got, "=== Final Prompt ===") {
		t.Fatalf("preview missing final prompt section:\n%s", got)
	}
	if strings.Contains(got, "[Model]") {
		t.Fatalf("preview lists disabled layer:\n%s", got)
	}
}
