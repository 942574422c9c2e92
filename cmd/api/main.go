package main

// @title Nhero Website API
// @version 1.0.0
// @description Content-delivery and lead-capture backend for the Nhero Milano website.
// @description
// @description Serves composed, localized page payloads (experiences, menu, events,
// @description business services, contacts) from the Directus CMS, and accepts contact
// @description and business-quote submissions which are written back into the CMS.

// @contact.name API Support
// @contact.email dev@nheromilano.it

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/nhero-website/docs"
	"github.com/nhero-website/internal/config"
	httpDelivery "github.com/nhero-website/internal/delivery/http"
	"github.com/nhero-website/internal/delivery/http/handler"
	"github.com/nhero-website/internal/infrastructure/directus"
	"github.com/nhero-website/internal/pkg/i18n"
	"github.com/nhero-website/internal/pkg/logger"
	"github.com/nhero-website/internal/repository/cache"
	"github.com/nhero-website/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Nhero Website API")

	if !i18n.SetDefault(cfg.Locale.Default) {
		log.Warn("Unsupported default locale in config, keeping built-in",
			zap.String("configured", cfg.Locale.Default),
			zap.String("default", i18n.DefaultLocale),
		)
	}

	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("directus_url", cfg.Directus.BaseURL),
	)

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Health check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 5. Initialize repositories
	directusClient := directus.NewClient(&cfg.Directus, log)
	assetResolver := directus.NewAssetResolver(cfg.Directus.BaseURL)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 6. Initialize use cases
	contentUC := usecase.NewContentUsecase(
		directusClient,
		cacheRepo,
		log,
		cfg.Cache.ContentTTL,
	)

	pageUC := usecase.NewPageUsecase(contentUC, assetResolver, log)

	captchaUC := usecase.NewCaptchaUsecase(cacheRepo, log, cfg.Cache.CaptchaTTL)

	submissionUC := usecase.NewSubmissionUsecase(directusClient, captchaUC, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP handlers
	pageHandler := handler.NewPageHandler(pageUC, log)
	submissionHandler := handler.NewSubmissionHandler(submissionUC, captchaUC, log)

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		pageHandler,
		submissionHandler,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
