package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/patrickmn/go-cache"

	"studioshot/internal/history"
	"studioshot/internal/imagegen"
	"studioshot/internal/infra"
	"studioshot/internal/insight"
	"studioshot/internal/marketing"
	"studioshot/internal/product"
	"studioshot/internal/recommend"
	"studioshot/internal/semantics"
	"studioshot/internal/storage"
)

// App bundles every dependency the HTTP handlers need.
type App struct {
	Cfg    *infra.Config
	Logger infra.Logger

	Recommender *recommend.Recommender
	Semantics   *semantics.Engine
	Generator   imagegen.Generator
	Analyzer    insight.Analyzer
	Marketing   *marketing.Service
	History     history.Repository
	Store       *storage.FileStore

	// Product is session state; productMu serializes mutations since the
	// store itself carries no locking.
	Product   *product.Store
	productMu sync.Mutex

	// RecommendCache holds scene recommendations per product signature.
	RecommendCache *cache.Cache
}

func NewApp(cfg *infra.Config, logger infra.Logger) *App {
	return &App{
		Cfg:            cfg,
		Logger:         logger,
		Recommender:    recommend.New(),
		Semantics:      semantics.NewEngine(),
		Product:        product.NewStore(),
		RecommendCache: cache.New(cfg.RecommendCacheTTL, 2*cfg.RecommendCacheTTL),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
