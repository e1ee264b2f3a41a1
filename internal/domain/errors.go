package domain

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Kind classifies a generation failure so callers (HTTP layer, chat bots)
// can decide presentation without string matching.
type Kind string

const (
	KindSchemaMismatch Kind = "schema_mismatch"
	KindValidation     Kind = "validation"
	KindSubmission     Kind = "submission"
	KindTimeout        Kind = "timeout"
	KindBackendJob     Kind = "backend_job"
	KindResultShape    Kind = "result_shape"
)

// Problem implements RFC 9457
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	Kind Kind `json:"kind,omitempty"`

	Extensions map[string]interface{} `json:"-"`

	Log error `json:"-"`
}

func (p *Problem) Error() string {
	return fmt.Sprintf("[%d] %s: %s", p.Status, p.Title, p.Detail)
}

func (p *Problem) MarshalJSON() ([]byte, error) {
	type Alias Problem

	data := make(map[string]interface{})

	for k, v := range p.Extensions {
		data[k] = v
	}

	stdJSON, _ := json.Marshal(Alias(*p))
	_ = json.Unmarshal(stdJSON, &data)

	return json.Marshal(data)
}

type ProblemOption func(*Problem)

// New creates a generic Problem
func New(status int, title, detail string, opts ...ProblemOption) *Problem {
	p := &Problem{
		Type:       "about:blank", // Default as per RFC
		Title:      title,
		Status:     status,
		Detail:     detail,
		Extensions: make(map[string]interface{}),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithExtension adds a custom key-value pair to the response
func WithExtension(key string, value interface{}) ProblemOption {
	return func(p *Problem) {
		p.Extensions[key] = value
	}
}

// WithLog attaches an internal error for server-side logging
func WithLog(err error) ProblemOption {
	return func(p *Problem) {
		p.Log = err
	}
}

// WithKind tags the problem with a failure classification
func WithKind(k Kind) ProblemOption {
	return func(p *Problem) {
		p.Kind = k
	}
}

// SchemaMismatchError covers a model ID that is unknown for the requested
// operation. A model registered under a different operation looks exactly
// the same to the caller as a model that does not exist at all.
func SchemaMismatchError(operation, modelID string) *Problem {
	return New(
		http.StatusNotFound,
		"Model Not Supported",
		fmt.Sprintf("model '%s' is not available for operation '%s'", modelID, operation),
		WithKind(KindSchemaMismatch),
	)
}

// ValidationError carries the complete list of field-level problems in one
// response so the caller can fix everything in a single round trip.
func ValidationError(errs []string) *Problem {
	return New(
		http.StatusBadRequest,
		"Invalid Parameters",
		"one or more parameters failed validation",
		WithKind(KindValidation),
		WithExtension("errors", errs),
	)
}

// SubmissionError covers a backend that rejected or never acknowledged the
// job, including the missing request_id case.
func SubmissionError(detail string, err error) *Problem {
	return New(
		http.StatusBadGateway,
		"Submission Failed",
		detail,
		WithKind(KindSubmission),
		WithLog(err),
	)
}

// TimeoutError is raised when the poll budget is exhausted without the job
// reaching a terminal state.
func TimeoutError(modelID string, polls int) *Problem {
	return New(
		http.StatusGatewayTimeout,
		"Generation Timed Out",
		fmt.Sprintf("model '%s' did not finish within %d status checks", modelID, polls),
		WithKind(KindTimeout),
	)
}

// BackendJobError is raised when the backend reports a terminal failure
// status for a submitted job.
func BackendJobError(modelID, status string) *Problem {
	return New(
		http.StatusBadGateway,
		"Generation Failed",
		fmt.Sprintf("model '%s' reported terminal status %s", modelID, status),
		WithKind(KindBackendJob),
	)
}

// ResultShapeError is raised when a completed job yields no recognized
// output URL. Consumers may assume a successful result always carries at
// least one usable URL, so this is a hard failure.
func ResultShapeError(modelID string) *Problem {
	return New(
		http.StatusBadGateway,
		"No Hosted Result",
		fmt.Sprintf("model '%s' did not return a hosted URL", modelID),
		WithKind(KindResultShape),
	)
}

// InternalError is the catch-all for unexpected failures.
func InternalError(msg string, err error) *Problem {
	return New(http.StatusInternalServerError, "Internal Server Error", msg, WithLog(err))
}

// UnauthorizedError creates a 401 unauthed error
func UnauthorizedError(msg string) *Problem {
	return New(http.StatusUnauthorized, "Unauthorized", msg)
}

// RateLimitError creates standard 429 rate limit error
func RateLimitError(msg string) *Problem {
	return New(http.StatusTooManyRequests, "Too Many Requests", msg)
}
