package domain

import (
	"encoding/json"
	"time"
)

// RequestSpec describes a single REST call against the cluster. Specs are
// built per action, immediately executed, and never persisted.
type RequestSpec struct {
	Method string
	Path   string // relative to the cluster base URL, leading slash included
	Body   json.RawMessage
	Header map[string]string
}

// HasBody reports whether the spec carries a request body.
func (s RequestSpec) HasBody() bool {
	return len(s.Body) > 0
}

// Result is the outcome of an executed request. HTTP-level errors (4xx/5xx)
// are ordinary results; the body is rendered as-is either way.
type Result struct {
	StatusCode int
	Status     string
	Body       json.RawMessage
	Duration   time.Duration
}

// IsError reports whether the cluster answered with an error status.
// Callers use this for status display only, never to suppress rendering.
func (r Result) IsError() bool {
	return r.StatusCode >= 400
}
