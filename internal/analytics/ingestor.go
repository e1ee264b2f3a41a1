// Package analytics persists generation history off the request path so a
// slow or unavailable database never delays a response.
package analytics

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/draftbox/mediaroute/internal/store"
	"github.com/draftbox/mediaroute/internal/store/model"
)

// Ingestor handles the asynchronous persistence of generation logs.
type Ingestor interface {
	Log(log *model.GenerationLog)
	Start(ctx context.Context)
	Stop()
}

type ingestor struct {
	logger    *zap.Logger
	repo      store.Repository
	logChan   chan *model.GenerationLog
	done      chan struct{}
	stopOnce  sync.Once
	stopped   atomic.Bool
	batchSize int
	flushTime time.Duration
}

func NewIngestor(logger *zap.Logger, repo store.Repository) Ingestor {
	return &ingestor{
		logger:    logger,
		repo:      repo,
		logChan:   make(chan *model.GenerationLog, 10000),
		done:      make(chan struct{}),
		batchSize: 50,
		flushTime: 5 * time.Second,
	}
}

// Log never blocks and is safe to call during shutdown; the channel is
// never closed, so a generation finishing after Stop is dropped, not a
// panic.
func (i *ingestor) Log(log *model.GenerationLog) {
	if i.stopped.Load() {
		return
	}
	select {
	case i.logChan <- log:
	default:
		i.logger.Warn("Analytics buffer full, dropping log", zap.String("generation_id", log.ID))
	}
}

func (i *ingestor) Start(ctx context.Context) {
	go i.worker(ctx)
}

func (i *ingestor) Stop() {
	i.stopOnce.Do(func() {
		i.stopped.Store(true)
		close(i.done)
	})
}

func (i *ingestor) worker(ctx context.Context) {
	batch := make([]*model.GenerationLog, 0, i.batchSize)
	ticker := time.NewTicker(i.flushTime)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		for _, log := range batch {
			if err := i.repo.Generations().Log(context.Background(), log); err != nil {
				i.logger.Error("Failed to persist generation log", zap.String("id", log.ID), zap.Error(err))
			}
		}
		batch = batch[:0]
	}

	for {
		select {
		case log := <-i.logChan:
			batch = append(batch, log)
			if len(batch) >= i.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-i.done:
			// Drain whatever made it into the buffer before Stop.
			for {
				select {
				case log := <-i.logChan:
					batch = append(batch, log)
				default:
					flush()
					return
				}
			}
		case <-ctx.Done():
			flush()
			return
		}
	}
}
