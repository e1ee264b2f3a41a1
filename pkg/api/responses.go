package api

import "time"

// Output maps semantic URL roles to hosted URLs. Different model families
// populate different fields; a successful generation always sets at least
// one of them.
type Output struct {
	AssetURL         string                 `json:"asset_url,omitempty"`
	VideoURL         string                 `json:"video_url,omitempty"`
	AudioURL         string                 `json:"audio_url,omitempty"`
	ModelMeshURL     string                 `json:"model_mesh_url,omitempty"`
	PBRModelURL      string                 `json:"pbr_model_url,omitempty"`
	RenderedImageURL string                 `json:"rendered_image_url,omitempty"`
	Textures         []string               `json:"textures,omitempty"`
	Timings          map[string]interface{} `json:"timings,omitempty"`
}

// StoredAsset describes where an archived copy of the primary output
// landed. Present only when archiving succeeded.
type StoredAsset struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	FolderID   string `json:"folder_id,omitempty"`
	FolderName string `json:"folder_name,omitempty"`
}

// GenerationResult is the body of a successful POST /v1/generate.
type GenerationResult struct {
	ID        string `json:"id"`
	Operation string `json:"operation"`
	Model     string `json:"model"`

	Output  Output       `json:"output"`
	Storage *StoredAsset `json:"storage,omitempty"`
	// Fallback is true when the generation succeeded but archiving the
	// output failed; the hosted URLs in Output remain valid.
	Fallback bool `json:"fallback,omitempty"`

	RequestID string    `json:"request_id,omitempty"`
	PollCount int       `json:"poll_count,omitempty"`
	LatencyMS int64     `json:"latency_ms"`
	CreatedAt time.Time `json:"created_at"`
}

// Parameter documents one input field of a model for catalog listings.
type Parameter struct {
	Name      string        `json:"name"`
	Type      string        `json:"type"`
	Required  bool          `json:"required"`
	Options   []interface{} `json:"options,omitempty"`
	Min       *float64      `json:"min,omitempty"`
	Max       *float64      `json:"max,omitempty"`
	MinLength *int          `json:"min_length,omitempty"`
	MaxLength *int          `json:"max_length,omitempty"`
	Default   interface{}   `json:"default,omitempty"`
}

// Pricing is the indicative cost attached to a model listing.
type Pricing struct {
	Tier   string `json:"tier"`
	Price  string `json:"price"`
	Source string `json:"source,omitempty"`
}

// Model is one catalog entry in GET /v1/models responses.
type Model struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Operation   string      `json:"operation"`
	Description string      `json:"description,omitempty"`
	Pricing     *Pricing    `json:"pricing,omitempty"`
	Parameters  []Parameter `json:"parameters"`
}

// OperationInfo is one entry in GET /v1/operations responses.
type OperationInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Models int    `json:"models"`
}

// GenerationRecord is one row in GET /v1/generations responses.
type GenerationRecord struct {
	ID        string    `json:"id"`
	Operation string    `json:"operation"`
	Model     string    `json:"model"`
	Status    string    `json:"status"`
	ErrorKind string    `json:"error_kind,omitempty"`
	ResultURL string    `json:"result_url,omitempty"`
	Fallback  bool      `json:"fallback,omitempty"`
	LatencyMS int64     `json:"latency_ms"`
	CreatedAt time.Time `json:"created_at"`
}
