package fal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SubscribeSendsKeyAndUnwraps(t *testing.T) {
	var gotAuth, gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path

		var input map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "a red fox", input["prompt"])

		_, _ = w.Write([]byte(`{"data": {"images": [{"url": "https://cdn.example/fox.png"}]}}`))
	}))
	defer backend.Close()

	c := NewClient(Config{APIKey: "secret", SyncBaseURL: backend.URL, QueueBaseURL: backend.URL})

	payload, err := c.Subscribe(context.Background(), "fal-ai/flux-1/schnell",
		map[string]interface{}{"prompt": "a red fox"})
	require.NoError(t, err)

	assert.Equal(t, "Key secret", gotAuth)
	assert.Equal(t, "/fal-ai/flux-1/schnell", gotPath)

	// The {"data": ...} envelope is peeled before callers see the payload.
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &doc))
	_, hasImages := doc["images"]
	assert.True(t, hasImages)
}

func TestClient_QueueLifecycle(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fal-ai/trellis":
			_, _ = w.Write([]byte(`{"request_id": "req-9", "status_url": "ignored"}`))
		case "/fal-ai/trellis/requests/req-9/status":
			_, _ = w.Write([]byte(`{"status": "IN_PROGRESS", "queue_position": 2}`))
		case "/fal-ai/trellis/requests/req-9":
			_, _ = w.Write([]byte(`{"model_mesh": {"url": "https://cdn.example/mesh.glb"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer backend.Close()

	c := NewClient(Config{APIKey: "secret", SyncBaseURL: backend.URL, QueueBaseURL: backend.URL})
	ctx := context.Background()

	id, err := c.Submit(ctx, "fal-ai/trellis", map[string]interface{}{"image_url": "https://x/in.png"})
	require.NoError(t, err)
	assert.Equal(t, "req-9", id)

	status, err := c.Status(ctx, "fal-ai/trellis", id)
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, status.Status)
	assert.Equal(t, 2, status.QueuePosition)
	assert.False(t, status.Status.Terminal())

	payload, err := c.Result(ctx, "fal-ai/trellis", id)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "mesh.glb")
}

func TestClient_UpstreamErrorSurfacesStatus(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "invalid key"}`, http.StatusUnauthorized)
	}))
	defer backend.Close()

	c := NewClient(Config{APIKey: "bad", SyncBaseURL: backend.URL, QueueBaseURL: backend.URL})

	_, err := c.Subscribe(context.Background(), "fal-ai/flux-1/schnell", map[string]interface{}{"prompt": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
