// Package server wires the gin router, middleware stack, and v1 handlers.
package server

import (
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/draftbox/mediaroute/internal/analytics"
	"github.com/draftbox/mediaroute/internal/cache"
	"github.com/draftbox/mediaroute/internal/catalog"
	"github.com/draftbox/mediaroute/internal/config"
	"github.com/draftbox/mediaroute/internal/engine"
	"github.com/draftbox/mediaroute/internal/server/middleware"
	"github.com/draftbox/mediaroute/internal/store"
)

// Deps are the collaborators the HTTP layer exposes. Repo, cache, and
// analytics may be nil; the routes that need them are skipped.
type Deps struct {
	Engine    *engine.Service
	Registry  *catalog.Registry
	Repo      store.Repository
	Cache     cache.CacheService
	Analytics analytics.Service
	Version   string
}

type Server struct {
	router *gin.Engine
	config *config.Config
	logger *zap.Logger
	deps   Deps
}

func New(cfg *config.Config, logger *zap.Logger, deps Deps) *Server {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(middleware.Logger(logger))

	s := &Server{
		router: router,
		config: cfg,
		logger: logger,
		deps:   deps,
	}

	s.SetupRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}
