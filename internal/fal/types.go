package fal

// Status is the queue-side lifecycle state of a submitted request.
type Status string

const (
	StatusInQueue    Status = "IN_QUEUE"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
	StatusCancelled  Status = "CANCELLED"
)

// Terminal reports whether the backend will never change this status again.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// queueSubmission is the acknowledgement returned by a queue submit call.
type queueSubmission struct {
	RequestID   string `json:"request_id"`
	ResponseURL string `json:"response_url,omitempty"`
	StatusURL   string `json:"status_url,omitempty"`
}

// QueueStatus is one poll result for an in-flight request.
type QueueStatus struct {
	Status        Status `json:"status"`
	QueuePosition int    `json:"queue_position,omitempty"`
	ResponseURL   string `json:"response_url,omitempty"`
}
