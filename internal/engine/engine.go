// Package engine orchestrates one generation end to end: schema lookup,
// parameter resolution, backend submission, output extraction, and
// best-effort archiving.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/draftbox/mediaroute/internal/analytics"
	"github.com/draftbox/mediaroute/internal/catalog"
	"github.com/draftbox/mediaroute/internal/domain"
	"github.com/draftbox/mediaroute/internal/extract"
	"github.com/draftbox/mediaroute/internal/fal"
	"github.com/draftbox/mediaroute/internal/params"
	"github.com/draftbox/mediaroute/internal/storage"
	"github.com/draftbox/mediaroute/internal/store/model"
	"github.com/draftbox/mediaroute/pkg/api"
)

// Options carry per-request knobs that do not affect the model input.
type Options struct {
	Brand     string
	SessionID string
	// SkipStorage leaves the output on the backend CDN even when an
	// uploader is configured.
	SkipStorage bool
}

// Service runs generations. All collaborators except registry and backend
// are optional; nil disables the corresponding stage.
type Service struct {
	registry *catalog.Registry
	backend  fal.Client
	uploader storage.Uploader
	ingestor analytics.Ingestor
	logger   *zap.Logger

	// strategyFn is swappable so tests can shrink poll budgets.
	strategyFn func(catalog.Operation, string) Strategy
}

func NewService(registry *catalog.Registry, backend fal.Client, uploader storage.Uploader, ingestor analytics.Ingestor, logger *zap.Logger) *Service {
	return &Service{
		registry:   registry,
		backend:    backend,
		uploader:   uploader,
		ingestor:   ingestor,
		logger:     logger,
		strategyFn: StrategyFor,
	}
}

// Generate validates raw parameters against the model's schema, submits
// the job with the model's protocol, and normalizes the output. The
// backend is never contacted when lookup or validation fails.
func (s *Service) Generate(ctx context.Context, op catalog.Operation, modelID string, raw map[string]interface{}, opts Options) (*api.GenerationResult, error) {
	started := time.Now()

	schema, ok := s.registry.ModelConfig(op, modelID)
	if !ok {
		err := domain.SchemaMismatchError(string(op), modelID)
		s.record(op, modelID, nil, nil, opts, started, err)
		return nil, err
	}

	res := params.Resolve(schema, raw)
	if !res.Valid {
		err := domain.ValidationError(res.Errors)
		s.record(op, modelID, nil, nil, opts, started, err)
		return nil, err
	}

	strat := s.strategyFn(op, modelID)

	var (
		payload []byte
		job     *JobExecution
		err     error
	)
	switch strat.Protocol {
	case ProtocolQueue:
		payload, job, err = s.runQueue(ctx, modelID, res.Cleaned, strat)
	default:
		payload, err = s.backend.Subscribe(ctx, modelID, res.Cleaned)
		if err != nil {
			err = domain.SubmissionError("backend call failed", err)
		}
	}
	if err != nil {
		s.record(op, modelID, nil, job, opts, started, err)
		return nil, err
	}

	output, err := extract.Extract(op, modelID, payload)
	if err != nil {
		if !errors.Is(err, extract.ErrNoHostedURL) {
			s.logger.Warn("unparseable backend payload",
				zap.String("model", modelID),
				zap.Error(err),
			)
		}
		shapeErr := domain.ResultShapeError(modelID)
		s.record(op, modelID, nil, job, opts, started, shapeErr)
		return nil, shapeErr
	}

	result := &api.GenerationResult{
		ID:        uuid.NewString(),
		Operation: string(op),
		Model:     modelID,
		Output: api.Output{
			AssetURL:         output.AssetURL,
			VideoURL:         output.VideoURL,
			AudioURL:         output.AudioURL,
			ModelMeshURL:     output.ModelMeshURL,
			PBRModelURL:      output.PBRModelURL,
			RenderedImageURL: output.RenderedImageURL,
			Textures:         output.Textures,
			Timings:          output.Timings,
		},
		LatencyMS: time.Since(started).Milliseconds(),
		CreatedAt: time.Now().UTC(),
	}
	if job != nil {
		result.RequestID = job.RequestID
		result.PollCount = job.PollCount
	}

	if s.uploader != nil && !opts.SkipStorage {
		if primary := primaryURL(output); primary != "" {
			asset, upErr := s.uploader.Upload(ctx, primary, opts.Brand, opts.SessionID)
			if upErr != nil {
				// The generation itself succeeded; degrade rather than fail.
				result.Fallback = true
				s.logger.Warn("asset archiving failed, serving backend URL",
					zap.String("model", modelID),
					zap.Error(upErr),
				)
			} else {
				result.Storage = &api.StoredAsset{
					ID:         asset.ID,
					URL:        asset.URL,
					FolderID:   asset.FolderID,
					FolderName: asset.FolderName,
				}
			}
		}
	}

	s.record(op, modelID, result, job, opts, started, nil)
	return result, nil
}

// primaryURL picks the URL worth archiving, in role priority order.
func primaryURL(output *extract.Result) string {
	for _, u := range []string{
		output.AssetURL,
		output.VideoURL,
		output.AudioURL,
		output.ModelMeshURL,
		output.RenderedImageURL,
	} {
		if u != "" {
			return u
		}
	}
	return ""
}

func (s *Service) record(op catalog.Operation, modelID string, result *api.GenerationResult, job *JobExecution, opts Options, started time.Time, genErr error) {
	if s.ingestor == nil {
		return
	}

	entry := &model.GenerationLog{
		ID:        uuid.NewString(),
		Operation: string(op),
		ModelID:   modelID,
		Status:    model.StatusCompleted,
		LatencyMS: time.Since(started).Milliseconds(),
		Brand:     opts.Brand,
		SessionID: opts.SessionID,
		CreatedAt: time.Now().UTC(),
	}
	if job != nil {
		entry.RequestID = job.RequestID
		entry.PollCount = job.PollCount
	}
	if result != nil {
		entry.ID = result.ID
		entry.ResultURL = primaryResultURL(result)
		entry.Fallback = result.Fallback
		if result.Storage != nil {
			entry.StoredPath = result.Storage.URL
		}
	}
	if genErr != nil {
		entry.Status = model.StatusFailed
		var problem *domain.Problem
		if errors.As(genErr, &problem) {
			entry.ErrorKind = string(problem.Kind)
		}
	}

	s.ingestor.Log(entry)
}

func primaryResultURL(result *api.GenerationResult) string {
	for _, u := range []string{
		result.Output.AssetURL,
		result.Output.VideoURL,
		result.Output.AudioURL,
		result.Output.ModelMeshURL,
		result.Output.RenderedImageURL,
	} {
		if u != "" {
			return u
		}
	}
	return ""
}
