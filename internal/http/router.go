package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"studioshot/internal/http/handlers"
	"studioshot/internal/middleware"
)

// RouterOptions tunes the middleware stack around the API routes.
type RouterOptions struct {
	AllowedOrigins  []string
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(app.Logger),
	)
	if len(opts.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(opts.AllowedOrigins))
	}
	if opts.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
	}

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/scenes", func(r chi.Router) {
		r.Get("/", app.ListScenes)
		r.Get("/{id}", app.GetScene)
		r.Post("/recommendations", app.Recommendations)
	})

	r.Get("/v1/categories", app.ListCategories)

	r.Route("/v1/templates", func(r chi.Router) {
		r.Get("/", app.ListTemplates)
		r.Post("/{id}/apply", app.ApplyTemplate)
	})

	r.Post("/v1/semantics/analyze", app.AnalyzeSemantics)

	r.Route("/v1/prompt", func(r chi.Router) {
		r.Post("/compile", app.PromptCompile)
		r.Post("/preview", app.PromptPreview)
	})

	r.Route("/v1/product", func(r chi.Router) {
		r.Get("/", app.GetProduct)
		r.Post("/", app.SetProduct)
		r.Delete("/", app.ClearProduct)
		r.Post("/images", app.UploadImage)
		r.Delete("/images/{id}", app.DeleteImage)
		r.Post("/images/reorder", app.ReorderImages)
	})

	r.Post("/v1/generate", app.Generate)

	r.Route("/v1/marketing", func(r chi.Router) {
		r.Get("/templates", app.MarketingTemplates)
		r.Post("/sets", app.MarketingGenerate)
		r.Get("/sets/{id}/download", app.MarketingDownload)
	})

	r.Route("/v1/history", func(r chi.Router) {
		r.Get("/", app.HistoryList)
		r.Get("/{id}", app.HistoryGet)
		r.Delete("/{id}", app.HistoryDelete)
		r.Delete("/", app.HistoryClear)
	})

	r.Get("/v1/stats", app.Stats)

	if base := app.Store.BasePath(); base != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(base)))
		r.Get("/static/*", fs.ServeHTTP)
	}

	return r
}
