// Package fal is the thin wire client for the hosted generation API. It
// knows the four call shapes (subscribe, submit, status, result) and their
// JSON conventions, nothing about individual models.
package fal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/draftbox/mediaroute/internal/httpclient"
)

// Client is the backend surface the submission engine drives.
type Client interface {
	// Subscribe issues one blocking call that returns the finished result.
	Subscribe(ctx context.Context, modelID string, input map[string]interface{}) (json.RawMessage, error)
	// Submit enqueues a job and returns its backend-assigned request ID.
	Submit(ctx context.Context, modelID string, input map[string]interface{}) (string, error)
	// Status polls the queue state of a submitted request.
	Status(ctx context.Context, modelID, requestID string) (*QueueStatus, error)
	// Result fetches the payload of a completed request.
	Result(ctx context.Context, modelID, requestID string) (json.RawMessage, error)
}

// Config carries credentials and base URLs for both protocol variants.
type Config struct {
	APIKey       string
	SyncBaseURL  string
	QueueBaseURL string
}

type client struct {
	cfg  Config
	http httpclient.HTTPClient
}

// NewClient builds the production client. The long timeout covers the
// blocking subscribe variant; queue calls return quickly on their own.
func NewClient(cfg Config) Client {
	if cfg.SyncBaseURL == "" {
		cfg.SyncBaseURL = "https://fal.run"
	}
	if cfg.QueueBaseURL == "" {
		cfg.QueueBaseURL = "https://queue.fal.run"
	}
	return &client{
		cfg:  cfg,
		http: &http.Client{Timeout: 300 * time.Second},
	}
}

func (c *client) headers() map[string]string {
	return map[string]string{
		"Authorization": "Key " + c.cfg.APIKey,
	}
}

func (c *client) Subscribe(ctx context.Context, modelID string, input map[string]interface{}) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/%s", c.cfg.SyncBaseURL, modelID)

	var payload json.RawMessage
	if err := httpclient.SendRequest(ctx, c.http, http.MethodPost, url, c.headers(), input, &payload); err != nil {
		return nil, err
	}

	return unwrapData(payload), nil
}

func (c *client) Submit(ctx context.Context, modelID string, input map[string]interface{}) (string, error) {
	url := fmt.Sprintf("%s/%s", c.cfg.QueueBaseURL, modelID)

	var ack queueSubmission
	if err := httpclient.SendRequest(ctx, c.http, http.MethodPost, url, c.headers(), input, &ack); err != nil {
		return "", err
	}

	return ack.RequestID, nil
}

func (c *client) Status(ctx context.Context, modelID, requestID string) (*QueueStatus, error) {
	url := fmt.Sprintf("%s/%s/requests/%s/status", c.cfg.QueueBaseURL, modelID, requestID)

	var status QueueStatus
	if err := httpclient.SendRequest(ctx, c.http, http.MethodGet, url, c.headers(), nil, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

func (c *client) Result(ctx context.Context, modelID, requestID string) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/%s/requests/%s", c.cfg.QueueBaseURL, modelID, requestID)

	var payload json.RawMessage
	if err := httpclient.SendRequest(ctx, c.http, http.MethodGet, url, c.headers(), nil, &payload); err != nil {
		return nil, err
	}

	return unwrapData(payload), nil
}

// unwrapData peels the {"data": ...} envelope some endpoints add. Payloads
// without the envelope pass through untouched.
func unwrapData(payload json.RawMessage) json.RawMessage {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil && len(envelope.Data) > 0 {
		return envelope.Data
	}
	return payload
}
