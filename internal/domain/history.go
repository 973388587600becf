package domain

import "time"

// HistoryEntry records one executed request so it can be replayed from the
// history panel.
type HistoryEntry struct {
	ID         string        `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	Method     string        `json:"method"`
	Path       string        `json:"path"`
	Body       string        `json:"body,omitempty"`
	StatusCode int           `json:"status_code"`
	Duration   time.Duration `json:"duration"`
	Status     string        `json:"status"` // "success" or "error"
	Error      string        `json:"error,omitempty"`
}
