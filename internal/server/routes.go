package server

import (
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/draftbox/mediaroute/internal/server/middleware"
	v1 "github.com/draftbox/mediaroute/internal/server/v1"
)

func (s *Server) SetupRoutes() {
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.ErrorHandler(s.logger))

	if s.config.Tracing.Enabled {
		s.router.Use(otelgin.Middleware("mediaroute"))
	}

	healthHandler := v1.NewHealthHandler(s.deps.Version, s.deps.Registry.Len())
	s.router.GET("/health", healthHandler.Health)

	limiter := middleware.NewRateLimiter(
		s.config.RateLimit.RequestsPerSecond,
		s.config.RateLimit.Burst,
		s.logger,
	)

	api := s.router.Group("/v1")
	api.Use(limiter.Middleware())
	api.Use(middleware.Auth(s.config.Server.APIKeys))
	{
		generateHandler := v1.NewGenerateHandler(s.deps.Engine)
		api.POST("/generate", generateHandler.Generate)

		modelHandler := v1.NewModelHandler(s.deps.Registry, s.deps.Cache, s.logger)
		api.GET("/operations", modelHandler.ListOperations)
		api.GET("/models", modelHandler.ListModels)

		if s.deps.Repo != nil {
			generationHandler := v1.NewGenerationHandler(s.deps.Repo)
			api.GET("/generations", generationHandler.ListGenerations)
			api.GET("/generations/:id", generationHandler.GetGeneration)
		}

		if s.deps.Analytics != nil {
			analyticsHandler := v1.NewAnalyticsHandler(s.deps.Analytics)
			api.GET("/generations/stats", analyticsHandler.GetUsage)
		}
	}
}
