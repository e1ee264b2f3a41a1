package store

import (
	"context"

	"github.com/draftbox/mediaroute/internal/store/model"
)

// Repository is the main contract for the data layer.
type Repository interface {
	Generations() GenerationRepository

	// transaction support
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	Close() error
}

type GenerationRepository interface {
	// Log stores a finished generation attempt.
	Log(ctx context.Context, log *model.GenerationLog) error
	// GetByID returns a single generation by ID.
	GetByID(ctx context.Context, id string) (*model.GenerationLog, error)
	// GetRecent returns the last N generations, newest first. An empty
	// operation matches everything.
	GetRecent(ctx context.Context, operation string, limit int) ([]model.GenerationLog, error)
	// GetDailyStats returns aggregated stats grouped by day.
	GetDailyStats(ctx context.Context, days int) ([]model.DailyStats, error)
}
