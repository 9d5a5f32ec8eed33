package handlers

import (
	"encoding/json"
	"net/http"

	"studioshot/internal/domain"
	"studioshot/internal/prompt"
	"studioshot/internal/sidechannel"
)

type compileRequest struct {
	Product      domain.ProductInfo          `json:"product"`
	SceneID      string                      `json:"scene_id"`
	Settings     *domain.GenerationSettings  `json:"settings"`
	Intrinsic    *domain.ProductIntrinsicDNA `json:"intrinsic_dna"`
	ArtDirection *domain.ArtDirectionDNA     `json:"art_direction_dna"`

	Model       *sidechannel.ModelConfig       `json:"model"`
	Fusion      *sidechannel.FusionConfig      `json:"fusion"`
	Consistency *sidechannel.ConsistencyConfig `json:"consistency"`

	Overrides map[string]string `json:"overrides"`
	Extras    []string          `json:"extras"`
}

// promptConfig converts the wire request into a builder config. Side-channel
// configs collapse to their prompt strings here so the core stays unaware of
// the channel structs.
func (req compileRequest) promptConfig() prompt.Config {
	cfg := prompt.Config{
		Product:      req.Product,
		Scene:        req.SceneID,
		Intrinsic:    req.Intrinsic,
		ArtDirection: req.ArtDirection,
		Extras:       req.Extras,
	}
	if req.Settings != nil {
		cfg.Settings = *req.Settings
	} else {
		cfg.Settings = domain.DefaultSettings()
	}
	if req.Model != nil {
		cfg.ModelPrompt = req.Model.BuildPrompt()
	}
	if req.Fusion != nil {
		cfg.FusionPrompt = req.Fusion.BuildPrompt()
	}
	if req.Consistency != nil {
		cfg.ConsistencyPrompt = req.Consistency.BuildPrompt()
	}
	for layer, content := range req.Overrides {
		if cfg.Overrides == nil {
			cfg.Overrides = map[prompt.LayerType]string{}
		}
		cfg.Overrides[prompt.LayerType(layer)] = content
	}
	return cfg
}

func (a *App) PromptCompile(w http.ResponseWriter, r *http.Request) {
	var req compileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.json(w, http.StatusOK, prompt.Compile(req.promptConfig()))
}

func (a *App) PromptPreview(w http.ResponseWriter, r *http.Request) {
	var req compileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(prompt.Preview(req.promptConfig())))
}
