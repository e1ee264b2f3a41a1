package engine

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/draftbox/mediaroute/internal/domain"
	"github.com/draftbox/mediaroute/internal/fal"
)

// JobExecution tracks one queued job from submission to terminal state.
type JobExecution struct {
	ModelID   string
	RequestID string
	Status    fal.Status
	PollCount int
	StartedAt time.Time
}

// runQueue submits a job and polls it to completion. The poll budget is
// exact: the loop issues at most strat.MaxPolls status checks and fails
// with a timeout immediately after the last one. Terminal failure statuses
// abort on sight; there are no retries at this layer.
func (s *Service) runQueue(ctx context.Context, modelID string, input map[string]interface{}, strat Strategy) (json.RawMessage, *JobExecution, error) {
	job := &JobExecution{
		ModelID:   modelID,
		StartedAt: time.Now(),
	}

	requestID, err := s.backend.Submit(ctx, modelID, input)
	if err != nil {
		return nil, job, domain.SubmissionError("backend rejected the job", err)
	}
	if requestID == "" {
		return nil, job, domain.SubmissionError("backend did not return a request ID", nil)
	}
	job.RequestID = requestID
	job.Status = fal.StatusInQueue

	s.logger.Debug("job submitted",
		zap.String("model", modelID),
		zap.String("request_id", requestID),
	)

	ticker := time.NewTicker(strat.PollInterval)
	defer ticker.Stop()

	for job.PollCount < strat.MaxPolls {
		select {
		case <-ctx.Done():
			return nil, job, domain.SubmissionError("generation cancelled", ctx.Err())
		case <-ticker.C:
		}

		status, err := s.backend.Status(ctx, modelID, requestID)
		job.PollCount++
		if err != nil {
			return nil, job, domain.SubmissionError("status check failed", err)
		}
		job.Status = status.Status

		switch status.Status {
		case fal.StatusCompleted:
			payload, err := s.backend.Result(ctx, modelID, requestID)
			if err != nil {
				return nil, job, domain.SubmissionError("result fetch failed", err)
			}
			return payload, job, nil
		case fal.StatusFailed, fal.StatusCancelled:
			return nil, job, domain.BackendJobError(modelID, string(status.Status))
		}
	}

	return nil, job, domain.TimeoutError(modelID, job.PollCount)
}
