package prompt

// LayerType identifies one semantic facet of the compiled prompt.
type LayerType string

const (
	LayerCoreSubject   LayerType = "core_subject"
	LayerModel         LayerType = "model"
	LayerFusion        LayerType = "fusion"
	LayerConsistency   LayerType = "consistency"
	LayerSceneContext  LayerType = "scene_context"
	LayerDeepVision    LayerType = "deep_vision"
	LayerScale         LayerType = "scale"
	LayerLighting      LayerType = "lighting"
	LayerComposition   LayerType = "composition"
	LayerStyle         LayerType = "style"
	LayerQuality       LayerType = "quality"
	LayerSemantic      LayerType = "semantic"
	LayerMarketing     LayerType = "marketing"
	LayerAida          LayerType = "aida"
	LayerDetail        LayerType = "detail"
	LayerColorFidelity LayerType = "color_fidelity"
	LayerNegative      LayerType = "negative"
)

// layerWeights retains the legacy per-layer emphasis signal. The bucketed
// combiner only uses it to order layers competing for the same bucket.
var layerWeights = map[LayerType]float64{
	LayerCoreSubject:   1.5,
	LayerModel:         1.4,
	LayerFusion:        1.4,
	LayerConsistency:   1.3,
	LayerSceneContext:  1.2,
	LayerDeepVision:    1.35,
	LayerScale:         1.4,
	LayerLighting:      1.0,
	LayerComposition:   1.0,
	LayerStyle:         1.1,
	LayerQuality:       1.3,
	LayerSemantic:      0.9,
	LayerMarketing:     1.25,
	LayerAida:          1.15,
	LayerDetail:        0.8,
	LayerColorFidelity: 1.45,
	LayerNegative:      1.0,
}

// buildOrder fixes the order layers appear in PromptConfig.Layers.
var buildOrder = []LayerType{
	LayerCoreSubject,
	LayerModel,
	LayerFusion,
	LayerConsistency,
	LayerSceneContext,
	LayerDeepVision,
	LayerScale,
	LayerLighting,
	LayerComposition,
	LayerStyle,
	LayerQuality,
	LayerSemantic,
	LayerMarketing,
	LayerAida,
	LayerDetail,
	LayerColorFidelity,
	LayerNegative,
}

// bucket groups layers into the sentence role they play in the final prose.
type bucket int

const (
	bucketInstruction bucket = iota
	bucketSubject
	bucketEnvironment
	bucketTechnical
	bucketEnhancement
	bucketCount
)

var layerBuckets = map[LayerType]bucket{
	LayerCoreSubject:   bucketInstruction,
	LayerModel:         bucketSubject,
	LayerFusion:        bucketSubject,
	LayerConsistency:   bucketSubject,
	LayerSceneContext:  bucketEnvironment,
	LayerLighting:      bucketEnvironment,
	LayerComposition:   bucketEnvironment,
	LayerScale:         bucketEnvironment,
	LayerDeepVision:    bucketTechnical,
	LayerQuality:       bucketTechnical,
	LayerColorFidelity: bucketTechnical,
	LayerSemantic:      bucketEnhancement,
	LayerMarketing:     bucketEnhancement,
	LayerAida:          bucketEnhancement,
	LayerDetail:        bucketEnhancement,
}

// Layer is one computed facet of the compiled prompt.
type Layer struct {
	Name    LayerType `json:"name"`
	Content string    `json:"content"`
	Weight  float64   `json:"weight"`
	Enabled bool      `json:"enabled"`
}
