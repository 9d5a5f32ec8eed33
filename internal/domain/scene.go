package domain

// Scene is a named shooting context with canned natural-language hints and
// default generation settings. Scenes are immutable registry data.
type Scene struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Icon            string        `json:"icon"`
	DefaultSettings SceneDefaults `json:"default_settings"`
	PromptHints     []string      `json:"prompt_hints"`
	Tags            []string      `json:"tags"`

	// Structured flags replacing substring sniffing of hint text: when a
	// scene's own hints already author a facet, generic layer content for
	// that facet must stay out of the prompt.
	HasDetailedLighting    bool `json:"has_detailed_lighting"`
	HasDetailedComposition bool `json:"has_detailed_composition"`
}

// SceneDefaults carries the subset of generation settings a scene overrides
// when selected. Zero values mean "no override".
type SceneDefaults struct {
	Background BackgroundStyle `json:"background,omitempty"`
	Lighting   LightingMode    `json:"lighting,omitempty"`
	Style      RenderStyle     `json:"style,omitempty"`
	Quality    QualityLevel    `json:"quality,omitempty"`
}

// HasTag reports whether the scene carries the given tag.
func (s Scene) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
