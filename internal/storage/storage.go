// Package storage archives generated assets so results survive backend
// URL expiry. The engine treats archiving as best-effort: an upload
// failure degrades the response to fallback mode instead of failing the
// generation.
package storage

import "context"

// StoredAsset locates an archived copy of a generated output.
type StoredAsset struct {
	ID         string
	URL        string
	Path       string
	FolderID   string
	FolderName string
}

// Uploader copies a hosted asset into durable storage. Brand and session
// group assets into folders; either may be empty.
type Uploader interface {
	Upload(ctx context.Context, sourceURL, brand, sessionID string) (*StoredAsset, error)
}
