package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"studioshot/internal/history"
	httpapi "studioshot/internal/http"
	"studioshot/internal/http/handlers"
	"studioshot/internal/imagegen"
	"studioshot/internal/infra"
	"studioshot/internal/marketing"
	"studioshot/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	app := handlers.NewApp(cfg, logger)

	// History falls back to memory when no database is configured.
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		repo := history.NewRepositoryPG(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure history schema")
		}
		app.History = repo
	} else {
		logger.Warn().Msg("DATABASE_URL not set, using in-memory history")
		app.History = history.NewRepositoryMem()
	}

	store, err := storage.NewFileStore(cfg.StorageDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize asset storage")
	}
	app.Store = store

	client := imagegen.NewGeminiClient(imagegen.Options{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Logger:  &logger,
	})
	app.Generator = client
	app.Analyzer = imagegen.NewGeminiAnalyzer(client)
	app.Marketing = marketing.NewService(client, rate.NewLimiter(rate.Limit(cfg.MarketingRatePerSec), 1), &logger)

	router := httpapi.NewRouter(app, httpapi.RouterOptions{
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
