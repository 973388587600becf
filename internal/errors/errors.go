package errors

import "errors"

// Sentinel errors for common failure modes.
var (
	ErrConnectionFailed = errors.New("connection failed")
	ErrNotConnected     = errors.New("not connected to a cluster")
	ErrInvalidJSON      = errors.New("invalid JSON")
	ErrTimeout          = errors.New("operation timed out")
	ErrTLSVerification  = errors.New("TLS certificate verification failed")
)

// ValidationError represents a field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
