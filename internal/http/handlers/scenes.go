package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/patrickmn/go-cache"

	"studioshot/internal/domain"
	"studioshot/internal/recommend"
	"studioshot/internal/registry"
	"studioshot/internal/sidechannel"
)

func (a *App) ListScenes(w http.ResponseWriter, r *http.Request) {
	scenes := registry.SceneList()
	if tag := r.URL.Query().Get("tag"); tag != "" {
		scenes = registry.ScenesByTag(tag)
	}
	a.json(w, http.StatusOK, map[string]any{"items": scenes})
}

func (a *App) GetScene(w http.ResponseWriter, r *http.Request) {
	scene, ok := registry.SceneByID(chi.URLParam(r, "id"))
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "unknown scene")
		return
	}
	a.json(w, http.StatusOK, scene)
}

func (a *App) ListCategories(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": registry.CategoryList()})
}

func (a *App) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates := registry.TemplateList()
	if tag := r.URL.Query().Get("tag"); tag != "" {
		templates = registry.TemplatesByTag(tag)
	}
	if scene := r.URL.Query().Get("scene"); scene != "" {
		templates = registry.TemplatesByScene(scene)
	}
	a.json(w, http.StatusOK, map[string]any{"items": templates})
}

type recommendRequest struct {
	Product domain.ProductInfo `json:"product"`
	Limit   int                `json:"limit"`
}

type recommendResponse struct {
	Items         []recommend.SceneRecommendation  `json:"items"`
	BestScene     string                           `json:"best_scene"`
	ModelAdvice   *sidechannel.ModelRecommendation `json:"model_advice,omitempty"`
	SceneWarnings map[string]string                `json:"scene_warnings,omitempty"`
}

// Recommendations scores scenes for the posted product. Results are cached
// per product signature since scoring is deterministic.
func (a *App) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Product.Name == "" && req.Product.Description == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "product name or description required")
		return
	}

	key := recommendCacheKey(req.Product, req.Limit)
	if cached, ok := a.RecommendCache.Get(key); ok {
		a.json(w, http.StatusOK, cached)
		return
	}

	resp := recommendResponse{
		Items:     a.Recommender.Recommendations(req.Product, req.Limit),
		BestScene: a.Recommender.BestScene(req.Product),
	}
	if advice, ok := sidechannel.ModelRecommendationFor(req.Product.Category); ok {
		resp.ModelAdvice = &advice
	}
	for _, rec := range resp.Items {
		if warning := a.Recommender.SceneWarning(req.Product, rec.SceneID); warning != "" {
			if resp.SceneWarnings == nil {
				resp.SceneWarnings = map[string]string{}
			}
			resp.SceneWarnings[rec.SceneID] = warning
		}
	}

	a.RecommendCache.Set(key, resp, cache.DefaultExpiration)
	a.json(w, http.StatusOK, resp)
}

func recommendCacheKey(p domain.ProductInfo, limit int) string {
	return strings.ToLower(strings.Join([]string{
		p.Name,
		p.Category,
		p.Description,
		strings.Join(p.Features, ","),
		strconv.Itoa(limit),
	}, "|"))
}

type applyTemplateRequest struct {
	ProductName string `json:"product_name"`
}

func (a *App) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, ok := registry.TemplateByID(chi.URLParam(r, "id"))
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "unknown template")
		return
	}
	var req applyTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.ProductName == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "product_name required")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"template_id": tmpl.ID,
		"scene":       tmpl.SceneID,
		"settings":    tmpl.Settings,
		"prompt":      registry.ApplyTemplate(tmpl, req.ProductName),
	})
}
