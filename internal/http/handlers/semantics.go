package handlers

import (
	"encoding/json"
	"net/http"

	"studioshot/internal/domain"
)

type semanticsRequest struct {
	Product domain.ProductInfo `json:"product"`
	SceneID string             `json:"scene_id"`
}

// AnalyzeSemantics runs the keyword engine over the posted product and,
// when a scene id is supplied, scores the product against that scene.
func (a *App) AnalyzeSemantics(w http.ResponseWriter, r *http.Request) {
	var req semanticsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	resp := map[string]any{
		"matches":           a.Semantics.AnalyzeProduct(req.Product),
		"recommended_scene": a.Semantics.RecommendScene(req.Product),
		"enhancements":      a.Semantics.GenerateEnhancements(req.Product),
	}
	if req.SceneID != "" {
		resp["scene_match"] = a.Semantics.MatchProductToScene(req.Product, req.SceneID)
	}
	a.json(w, http.StatusOK, resp)
}
