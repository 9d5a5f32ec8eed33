package domain

// CategoryPhotography captures the photography profile a category leans
// toward when no explicit settings are chosen.
type CategoryPhotography struct {
	PreferredLighting LightingMode `json:"preferred_lighting"`
	PreferredAngle    string       `json:"preferred_angle"`
	DepthOfField      string       `json:"depth_of_field"`
	BackgroundStyle   string       `json:"background_style"`
}

// CategorySceneRecommendation ranks one scene for a category and carries the
// scene-specific prompt modifiers the detail layer uses.
type CategorySceneRecommendation struct {
	SceneID   string   `json:"scene_id"`
	Priority  int      `json:"priority"` // 1-5, 5 highest
	Reason    string   `json:"reason"`
	Modifiers []string `json:"modifiers"`
}

// Category is a product taxonomy bucket driving default scene suggestions and
// vocabulary. Immutable registry data.
type Category struct {
	ID                   string                        `json:"id"`
	Name                 string                        `json:"name"`
	Icon                 string                        `json:"icon"`
	Keywords             []string                      `json:"keywords"`
	SuggestedScenes      []string                      `json:"suggested_scenes"`
	PromptEnhancements   []string                      `json:"prompt_enhancements"`
	Photography          CategoryPhotography           `json:"photography"`
	SceneRecommendations []CategorySceneRecommendation `json:"scene_recommendations"`
	MaterialKeywords     []string                      `json:"material_keywords"`
	AvoidKeywords        []string                      `json:"avoid_keywords"`
}
