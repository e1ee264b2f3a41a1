// Package model holds the persisted row types of the data layer.
package model

import "time"

// Generation lifecycle statuses as persisted.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// GenerationLog is one completed (or failed) generation attempt.
type GenerationLog struct {
	ID        string `db:"id" json:"id"`
	Operation string `db:"operation" json:"operation"`
	ModelID   string `db:"model_id" json:"model_id"`
	Status    string `db:"status" json:"status"` // 'completed', 'failed'
	ErrorKind string `db:"error_kind" json:"error_kind,omitempty"`

	RequestID string `db:"request_id" json:"request_id,omitempty"`
	PollCount int    `db:"poll_count" json:"poll_count,omitempty"`
	LatencyMS int64  `db:"latency_ms" json:"latency_ms"`

	ResultURL  string `db:"result_url" json:"result_url,omitempty"`
	StoredPath string `db:"stored_path" json:"stored_path,omitempty"`
	Fallback   bool   `db:"fallback" json:"fallback,omitempty"`

	Brand     string    `db:"brand" json:"brand,omitempty"`
	SessionID string    `db:"session_id" json:"session_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DailyStats is one aggregated analytics row.
type DailyStats struct {
	Date       string  `db:"date" json:"date"`
	Total      int64   `db:"total" json:"total"`
	Failed     int64   `db:"failed" json:"failed"`
	AvgLatency float64 `db:"avg_latency" json:"avg_latency"`
	AvgPolls   float64 `db:"avg_polls" json:"avg_polls"`
	Fallbacks  int64   `db:"fallbacks" json:"fallbacks"`
}
