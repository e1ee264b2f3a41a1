// End-to-end tests exercising the HTTP surface against an in-process
// server with a scripted generation backend.
package test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/draftbox/mediaroute/internal/analytics"
	"github.com/draftbox/mediaroute/internal/cache"
	"github.com/draftbox/mediaroute/internal/catalog"
	"github.com/draftbox/mediaroute/internal/config"
	"github.com/draftbox/mediaroute/internal/engine"
	"github.com/draftbox/mediaroute/internal/fal"
	"github.com/draftbox/mediaroute/internal/server"
	"github.com/draftbox/mediaroute/internal/server/validator"
	"github.com/draftbox/mediaroute/internal/store/sqlite"
	"github.com/draftbox/mediaroute/pkg/api"
)

// scriptedBackend returns canned payloads without any network traffic.
type scriptedBackend struct {
	payload json.RawMessage
	err     error
}

func (s *scriptedBackend) Subscribe(ctx context.Context, modelID string, input map[string]interface{}) (json.RawMessage, error) {
	return s.payload, s.err
}

func (s *scriptedBackend) Submit(ctx context.Context, modelID string, input map[string]interface{}) (string, error) {
	return "req-1", s.err
}

func (s *scriptedBackend) Status(ctx context.Context, modelID, requestID string) (*fal.QueueStatus, error) {
	return &fal.QueueStatus{Status: fal.StatusCompleted}, nil
}

func (s *scriptedBackend) Result(ctx context.Context, modelID, requestID string) (json.RawMessage, error) {
	return s.payload, s.err
}

func newTestServer(t *testing.T, backend fal.Client, apiKeys []string) http.Handler {
	t.Helper()
	validator.InitValidator()

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.APIKeys = apiKeys
	cfg.RateLimit.RequestsPerSecond = 1000
	cfg.RateLimit.Burst = 1000

	registry := catalog.NewRegistry()
	logger := zap.NewNop()

	repo, err := sqlite.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	engineSvc := engine.NewService(registry, backend, nil, nil, logger)

	srv := server.New(cfg, logger, server.Deps{
		Engine:    engineSvc,
		Registry:  registry,
		Repo:      repo,
		Cache:     cache.NewMemoryCache(),
		Analytics: analytics.NewService(repo),
		Version:   "v1.0.0-test",
	})
	return srv.Handler()
}

func doJSON(t *testing.T, handler http.Handler, method, path string, payload interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	handler := newTestServer(t, &scriptedBackend{}, nil)

	rec := doJSON(t, handler, http.MethodGet, "/health", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.GreaterOrEqual(t, body["models"].(float64), float64(60))
}

func TestGenerate_EndToEnd(t *testing.T) {
	backend := &scriptedBackend{
		payload: json.RawMessage(`{"images": [{"url": "https://cdn.example/fox.png"}]}`),
	}
	handler := newTestServer(t, backend, nil)

	rec := doJSON(t, handler, http.MethodPost, "/v1/generate", api.GenerateRequest{
		Operation: "text-to-image",
		Model:     "fal-ai/flux-1/schnell",
		Params:    map[string]interface{}{"prompt": "a red fox"},
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var result api.GenerationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "https://cdn.example/fox.png", result.Output.AssetURL)
	assert.Equal(t, "fal-ai/flux-1/schnell", result.Model)
}

func TestGenerate_ValidationProblem(t *testing.T) {
	handler := newTestServer(t, &scriptedBackend{}, nil)

	rec := doJSON(t, handler, http.MethodPost, "/v1/generate", api.GenerateRequest{
		Operation: "text-to-image",
		Model:     "fal-ai/flux-1/schnell",
		Params:    map[string]interface{}{"num_inference_steps": 50},
	}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var problem map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "Invalid Parameters", problem["title"])

	errs, ok := problem["errors"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, errs, "prompt is required")
	assert.Contains(t, errs, "num_inference_steps must be between 1 and 12")
}

func TestGenerate_UnknownModelIs404(t *testing.T) {
	handler := newTestServer(t, &scriptedBackend{}, nil)

	rec := doJSON(t, handler, http.MethodPost, "/v1/generate", api.GenerateRequest{
		Operation: "text-to-image",
		Model:     "fal-ai/does-not-exist",
		Params:    map[string]interface{}{"prompt": "x"},
	}, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerate_UnknownOperationIs400(t *testing.T) {
	handler := newTestServer(t, &scriptedBackend{}, nil)

	rec := doJSON(t, handler, http.MethodPost, "/v1/generate", api.GenerateRequest{
		Operation: "text-to-hologram",
		Model:     "fal-ai/flux-1/schnell",
		Params:    map[string]interface{}{"prompt": "x"},
	}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerate_MissingBodyFields(t *testing.T) {
	handler := newTestServer(t, &scriptedBackend{}, nil)

	rec := doJSON(t, handler, http.MethodPost, "/v1/generate",
		map[string]interface{}{"operation": "text-to-image"}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "model")
}

func TestListOperations(t *testing.T) {
	handler := newTestServer(t, &scriptedBackend{}, nil)

	rec := doJSON(t, handler, http.MethodGet, "/v1/operations", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []api.OperationInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 8)
	for _, op := range body.Data {
		assert.NotZero(t, op.Models, "operation %s has no models", op.ID)
	}
}

func TestListModels_FilterAndCache(t *testing.T) {
	handler := newTestServer(t, &scriptedBackend{}, nil)

	for i := 0; i < 2; i++ { // second pass served from cache
		rec := doJSON(t, handler, http.MethodGet, "/v1/models?operation=image-to-3d", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data []api.Model `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotEmpty(t, body.Data)
		for _, m := range body.Data {
			assert.Equal(t, "image-to-3d", m.Operation)
		}
	}
}

func TestListModels_UnknownOperation(t *testing.T) {
	handler := newTestServer(t, &scriptedBackend{}, nil)

	rec := doJSON(t, handler, http.MethodGet, "/v1/models?operation=bogus", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_RequiredWhenKeysConfigured(t *testing.T) {
	handler := newTestServer(t, &scriptedBackend{}, []string{"sk-test-key"})

	rec := doJSON(t, handler, http.MethodGet, "/v1/operations", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/v1/operations", nil, map[string]string{
		"Authorization": "Bearer sk-test-key",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/v1/operations", nil, map[string]string{
		"Authorization": "Bearer wrong-key",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListGenerations_EmptyHistory(t *testing.T) {
	handler := newTestServer(t, &scriptedBackend{}, nil)

	rec := doJSON(t, handler, http.MethodGet, "/v1/generations", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []api.GenerationRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Data)
}
