package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/draftbox/mediaroute/internal/catalog"
	"github.com/draftbox/mediaroute/internal/domain"
	"github.com/draftbox/mediaroute/internal/engine"
	"github.com/draftbox/mediaroute/internal/server/validator"
	"github.com/draftbox/mediaroute/pkg/api"
)

type GenerateHandler struct {
	engine *engine.Service
}

func NewGenerateHandler(svc *engine.Service) *GenerateHandler {
	return &GenerateHandler{engine: svc}
}

// Generate runs one generation synchronously.
//
// POST /v1/generate
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req api.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domain.ValidationError(validator.ParseValidationError(err)))
		return
	}

	op := catalog.Operation(req.Operation)
	if !op.Valid() {
		_ = c.Error(domain.New(
			http.StatusBadRequest,
			"Unknown Operation",
			fmt.Sprintf("operation '%s' is not supported", req.Operation),
			domain.WithKind(domain.KindValidation),
		))
		return
	}

	result, err := h.engine.Generate(c.Request.Context(), op, req.Model, req.Params, engine.Options{
		Brand:     req.Brand,
		SessionID: req.SessionID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
