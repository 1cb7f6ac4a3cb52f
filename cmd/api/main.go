package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"listingforge/internal/adapter/repo"
	"listingforge/internal/http/handlers"
	"listingforge/internal/http/httpapi"
	"listingforge/internal/infra"
	"listingforge/internal/pipeline"
	"listingforge/internal/providers/copywriter"
	"listingforge/internal/storage"
)

func main() {
	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	generator, err := copywriter.NewOpenAIGenerator(copywriter.OpenAIOptions{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure generator")
	}

	var images storage.Uploader
	if cfg.SupabaseURL != "" {
		images, err = storage.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseKey, cfg.StorageBucket)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to configure object storage")
		}
	} else {
		images, err = storage.NewFileStore(cfg.StoragePath, cfg.StorageBaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to configure local storage")
		}
		logger.Warn().Str("path", cfg.StoragePath).Msg("SUPABASE_URL not set, staging images locally")
	}

	runner := pipeline.NewRunner(generator, logger, pipeline.Options{
		Retries: cfg.GenerateRetries,
	})

	app := handlers.NewApp(
		logger,
		repo.NewCategoryRepository(dbpool),
		repo.NewListingRepository(dbpool, logger),
		repo.NewImageLinkRepository(dbpool),
		images,
		runner,
	)

	router := httpapi.NewRouter(app, logger, cfg.CORSOrigins)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
