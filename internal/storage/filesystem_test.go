package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFilesystem_Upload(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("fake-png-bytes"))
	}))
	defer backend.Close()

	fs, err := NewFilesystem(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	asset, err := fs.Upload(context.Background(), backend.URL+"/out/fox.png", "Acme Co", "sess-1")
	require.NoError(t, err)

	assert.NotEmpty(t, asset.ID)
	assert.Equal(t, "Acme-Co", asset.FolderName)
	assert.Equal(t, "Acme-Co/sess-1", asset.FolderID)

	data, err := os.ReadFile(asset.Path)
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))
}

func TestFilesystem_UploadDownloadFailure(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer backend.Close()

	fs, err := NewFilesystem(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	_, err = fs.Upload(context.Background(), backend.URL+"/out/fox.png", "", "")
	assert.Error(t, err)
}

func TestExt(t *testing.T) {
	assert.Equal(t, ".png", ext("https://cdn.example/a/fox.png?token=abc"))
	assert.Equal(t, ".bin", ext("https://cdn.example/a/fox"))
}
