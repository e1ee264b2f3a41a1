package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/draftbox/mediaroute/internal/analytics"
	"github.com/draftbox/mediaroute/internal/cache"
	"github.com/draftbox/mediaroute/internal/catalog"
	"github.com/draftbox/mediaroute/internal/config"
	"github.com/draftbox/mediaroute/internal/engine"
	"github.com/draftbox/mediaroute/internal/fal"
	"github.com/draftbox/mediaroute/internal/platform/logger"
	"github.com/draftbox/mediaroute/internal/platform/otel"
	"github.com/draftbox/mediaroute/internal/platform/release"
	"github.com/draftbox/mediaroute/internal/server"
	"github.com/draftbox/mediaroute/internal/server/validator"
	"github.com/draftbox/mediaroute/internal/storage"
	"github.com/draftbox/mediaroute/internal/store"
	"github.com/draftbox/mediaroute/internal/store/sqlite"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Initialize(logger.DefaultConfig())
		logger.Fatal("failed to load config", zap.Error(err))
	}

	logger.Initialize(logger.DefaultConfig())
	log := logger.Get()
	defer logger.Sync()

	go release.CheckForUpdates(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		shutdown, err := otel.InitTracer("mediaroute", log, os.Stdout)
		if err != nil {
			log.Warn("tracing disabled", zap.Error(err))
		} else {
			defer func() {
				_ = shutdown(context.Background())
			}()
		}
	}

	validator.InitValidator()

	registry := catalog.NewRegistry()
	log.Info("catalog loaded", zap.Int("models", registry.Len()))

	backend := fal.NewClient(fal.Config{
		APIKey:       cfg.Fal.APIKey,
		SyncBaseURL:  cfg.Fal.SyncBaseURL,
		QueueBaseURL: cfg.Fal.QueueBaseURL,
	})

	var uploader storage.Uploader
	if cfg.Storage.Enabled {
		fs, err := storage.NewFilesystem(cfg.Storage.Root, log)
		if err != nil {
			log.Fatal("failed to initialize storage", zap.Error(err))
		}
		uploader = fs
	}

	var repo store.Repository
	var ingestor analytics.Ingestor
	var analyticsSvc analytics.Service
	if cfg.Database.DSN != "" {
		repo, err = sqlite.NewSQLiteStorage(cfg.Database.DSN)
		if err != nil {
			log.Fatal("failed to open database", zap.Error(err))
		}
		defer func() {
			_ = repo.Close()
		}()

		ingestor = analytics.NewIngestor(log, repo)
		ingestor.Start(ctx)
		defer ingestor.Stop()

		analyticsSvc = analytics.NewService(repo)
	}

	var cacheSvc cache.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("redis unavailable, using in-memory cache", zap.Error(err))
			cacheSvc = cache.NewMemoryCache()
		} else {
			defer func() {
				_ = redisCache.Close()
			}()
			cacheSvc = redisCache
		}
	} else {
		cacheSvc = cache.NewMemoryCache()
	}

	engineSvc := engine.NewService(registry, backend, uploader, ingestor, log)

	srv := server.New(cfg, log, server.Deps{
		Engine:    engineSvc,
		Registry:  registry,
		Repo:      repo,
		Cache:     cacheSvc,
		Analytics: analyticsSvc,
		Version:   release.Version,
	})

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
}
