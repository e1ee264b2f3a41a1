package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/draftbox/mediaroute/internal/httpclient"
)

// Filesystem stores assets under a local root directory, one folder per
// brand/session pair. Suitable for single-node deployments and tests.
type Filesystem struct {
	root   string
	http   httpclient.HTTPClient
	logger *zap.Logger
}

// NewFilesystem creates the root directory if needed.
func NewFilesystem(root string, logger *zap.Logger) (*Filesystem, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &Filesystem{
		root:   root,
		http:   &http.Client{Timeout: 120 * time.Second},
		logger: logger,
	}, nil
}

func (f *Filesystem) Upload(ctx context.Context, sourceURL, brand, sessionID string) (*StoredAsset, error) {
	folderName := sanitize(brand)
	if folderName == "" {
		folderName = "default"
	}
	folderID := folderName
	if s := sanitize(sessionID); s != "" {
		folderID = filepath.Join(folderName, s)
	}

	dir := filepath.Join(f.root, folderID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create asset folder: %w", err)
	}

	id := uuid.NewString()
	name := id + ext(sourceURL)
	dest := filepath.Join(dir, name)

	file, err := os.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset file: %w", err)
	}

	written, err := httpclient.Download(ctx, f.http, sourceURL, file)
	closeErr := file.Close()
	if err != nil {
		_ = os.Remove(dest)
		return nil, fmt.Errorf("failed to download asset: %w", err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to flush asset file: %w", closeErr)
	}

	f.logger.Debug("asset archived",
		zap.String("id", id),
		zap.String("folder", folderID),
		zap.Int64("bytes", written),
	)

	return &StoredAsset{
		ID:         id,
		URL:        "file://" + dest,
		Path:       dest,
		FolderID:   folderID,
		FolderName: folderName,
	}, nil
}

// ext pulls a file extension out of the source URL path, ignoring query
// strings. Unknown shapes fall back to .bin.
func ext(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return ".bin"
	}
	if e := path.Ext(u.Path); e != "" && len(e) <= 8 {
		return e
	}
	return ".bin"
}

func sanitize(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return b.String()
}
