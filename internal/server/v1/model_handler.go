package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/draftbox/mediaroute/internal/cache"
	"github.com/draftbox/mediaroute/internal/catalog"
	"github.com/draftbox/mediaroute/internal/domain"
	"github.com/draftbox/mediaroute/pkg/api"
)

const modelListTTL = 5 * time.Minute

type ModelHandler struct {
	registry *catalog.Registry
	cache    cache.CacheService
	logger   *zap.Logger
}

func NewModelHandler(registry *catalog.Registry, cacheSvc cache.CacheService, logger *zap.Logger) *ModelHandler {
	return &ModelHandler{
		registry: registry,
		cache:    cacheSvc,
		logger:   logger,
	}
}

// ListOperations returns the supported operation families and their model
// counts.
//
// GET /v1/operations
func (h *ModelHandler) ListOperations(c *gin.Context) {
	ops := h.registry.Operations()
	data := make([]api.OperationInfo, 0, len(ops))
	for _, op := range ops {
		data = append(data, api.OperationInfo{
			ID:     string(op),
			Name:   op.DisplayName(),
			Models: len(h.registry.ModelsForOperation(op)),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   data,
	})
}

// ListModels returns the catalog for one operation, or the whole catalog
// when no operation filter is given.
//
// GET /v1/models?operation=text-to-image
func (h *ModelHandler) ListModels(c *gin.Context) {
	opFilter := c.Query("operation")

	if opFilter != "" && !catalog.Operation(opFilter).Valid() {
		_ = c.Error(domain.New(
			http.StatusBadRequest,
			"Unknown Operation",
			fmt.Sprintf("operation '%s' is not supported", opFilter),
			domain.WithKind(domain.KindValidation),
		))
		return
	}

	cacheKey := "models:" + opFilter
	if h.cache != nil {
		var cached []api.Model
		if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, gin.H{"object": "list", "data": cached})
			return
		}
	}

	var data []api.Model
	for _, op := range h.registry.Operations() {
		if opFilter != "" && string(op) != opFilter {
			continue
		}
		for _, m := range h.registry.ModelsForOperation(op) {
			data = append(data, toAPIModel(m))
		}
	}

	if h.cache != nil {
		if err := h.cache.Set(c.Request.Context(), cacheKey, data, modelListTTL); err != nil {
			h.logger.Warn("failed to cache model list", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   data,
	})
}

func toAPIModel(m catalog.ModelSchema) api.Model {
	out := api.Model{
		ID:          m.ID,
		Name:        m.Name,
		Operation:   string(m.Operation),
		Description: m.Description,
		Parameters:  make([]api.Parameter, 0, len(m.Parameters)),
	}
	if m.Pricing != nil {
		out.Pricing = &api.Pricing{
			Tier:   m.Pricing.Tier,
			Price:  m.Pricing.Price,
			Source: m.Pricing.Source,
		}
	}
	for _, p := range m.Parameters {
		out.Parameters = append(out.Parameters, api.Parameter{
			Name:      p.Name,
			Type:      string(p.Type),
			Required:  p.Required,
			Options:   p.Options,
			Min:       p.Min,
			Max:       p.Max,
			MinLength: p.MinLength,
			MaxLength: p.MaxLength,
			Default:   p.Default,
		})
	}
	return out
}
