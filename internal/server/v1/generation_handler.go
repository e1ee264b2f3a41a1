package v1

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/draftbox/mediaroute/internal/domain"
	"github.com/draftbox/mediaroute/internal/store"
	"github.com/draftbox/mediaroute/internal/store/model"
	"github.com/draftbox/mediaroute/pkg/api"
)

type GenerationHandler struct {
	repo store.Repository
}

func NewGenerationHandler(repo store.Repository) *GenerationHandler {
	return &GenerationHandler{repo: repo}
}

// GetGeneration returns one generation record by ID.
//
// GET /v1/generations/:id
func (h *GenerationHandler) GetGeneration(c *gin.Context) {
	id := c.Param("id")

	log, err := h.repo.Generations().GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_ = c.Error(domain.New(http.StatusNotFound, "Not Found", "generation not found"))
			return
		}
		_ = c.Error(domain.InternalError("failed to fetch generation", err))
		return
	}

	c.JSON(http.StatusOK, toGenerationRecord(log))
}

// ListGenerations returns recent generation history, newest first.
//
// GET /v1/generations?operation=text-to-image&limit=20
func (h *GenerationHandler) ListGenerations(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 200 {
		_ = c.Error(domain.New(http.StatusBadRequest, "Invalid Parameter", "limit must be between 1 and 200"))
		return
	}

	logs, err := h.repo.Generations().GetRecent(c.Request.Context(), c.Query("operation"), limit)
	if err != nil {
		_ = c.Error(domain.InternalError("failed to list generations", err))
		return
	}

	data := make([]api.GenerationRecord, 0, len(logs))
	for i := range logs {
		data = append(data, toGenerationRecord(&logs[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   data,
	})
}

func toGenerationRecord(log *model.GenerationLog) api.GenerationRecord {
	return api.GenerationRecord{
		ID:        log.ID,
		Operation: log.Operation,
		Model:     log.ModelID,
		Status:    log.Status,
		ErrorKind: log.ErrorKind,
		ResultURL: log.ResultURL,
		Fallback:  log.Fallback,
		LatencyMS: log.LatencyMS,
		CreatedAt: log.CreatedAt,
	}
}
