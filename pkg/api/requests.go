// Package api holds the request and response shapes of the public HTTP
// surface. It deliberately imports nothing from internal/ so external
// clients can vendor it on its own.
package api

// GenerateRequest is the body of POST /v1/generate.
type GenerateRequest struct {
	// Operation selects the model family, e.g. "text-to-image".
	Operation string `json:"operation" binding:"required"`
	// Model is the fully-qualified model identifier, e.g. "fal-ai/flux-1/schnell".
	Model string `json:"model" binding:"required"`
	// Params are the raw model parameters; unknown keys are dropped and
	// schema defaults fill anything omitted.
	Params map[string]interface{} `json:"params"`

	// Brand and SessionID group archived outputs into folders. Both are
	// optional; archiving is skipped when storage is disabled.
	Brand     string `json:"brand,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}
