package errors

import (
	"context"
	"errors"
)

// ErrorSeverity grades an error for UI presentation.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // worth knowing, not blocking
	SeverityWarning                      // degraded functionality
	SeverityError                        // operation failed, can retry
	SeverityFatal                        // application must exit
)

// ErrorAction is a button offered in the error dialog.
type ErrorAction struct {
	Label   string
	Handler func()
}

// UIError decorates an error with everything the error dialog needs.
type UIError struct {
	Err      error
	Severity ErrorSeverity
	Title    string
	Message  string
	Recovery []string      // suggested fixes, shown as bullets
	Actions  []ErrorAction // dialog buttons
	Details  string        // technical text, collapsed by default
}

func (e UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

func (e UIError) Unwrap() error {
	return e.Err
}

// presentation is the static half of a UIError, keyed by sentinel below.
type presentation struct {
	severity  ErrorSeverity
	title     string
	message   string
	recovery  []string
	retryable bool
}

var presentations = []struct {
	sentinel error
	pres     presentation
}{
	{ErrTimeout, presentation{
		severity:  SeverityError,
		title:     "Request Timeout",
		message:   "The cluster took too long to respond.",
		recovery:  []string{"Try again", "Increase the timeout in Preferences"},
		retryable: true,
	}},
	{context.DeadlineExceeded, presentation{
		severity:  SeverityError,
		title:     "Request Timeout",
		message:   "The cluster took too long to respond.",
		recovery:  []string{"Try again", "Increase the timeout in Preferences"},
		retryable: true,
	}},
	{ErrTLSVerification, presentation{
		severity: SeverityError,
		title:    "TLS Verification Failed",
		message:  "Could not verify the cluster's TLS certificate.",
		recovery: []string{
			"Check that the CA certificate is trusted by your system",
			"Uncheck \"Verify SSL Certificate\" for self-signed clusters",
		},
	}},
	{ErrConnectionFailed, presentation{
		severity: SeverityError,
		title:    "Connection Failed",
		message:  "Unable to reach the cluster.",
		recovery: []string{
			"Check that Elasticsearch is running",
			"Verify the host and port",
			"Check the HTTPS setting",
		},
		retryable: true,
	}},
	{ErrNotConnected, presentation{
		severity: SeverityWarning,
		title:    "Not Connected",
		message:  "Connect to a cluster before running requests.",
		recovery: []string{"Fill in the connection panel and retry"},
	}},
	{ErrInvalidJSON, presentation{
		severity: SeverityError,
		title:    "Invalid JSON",
		message:  "The request body is not valid JSON.",
		recovery: []string{"Fix the JSON syntax and try again"},
	}},
}

func (p presentation) wrap(err error) *UIError {
	ui := &UIError{
		Err:      err,
		Severity: p.severity,
		Title:    p.title,
		Message:  p.message,
		Recovery: p.recovery,
		Details:  err.Error(),
	}
	if p.retryable {
		ui.Actions = []ErrorAction{{Label: "Retry"}}
	}
	return ui
}

// ClassifyError turns an error into a UIError. UIErrors pass through
// untouched so callers can pre-build their own presentation.
func ClassifyError(err error) *UIError {
	if err == nil {
		return nil
	}

	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	if errors.Is(err, context.Canceled) {
		return &UIError{
			Err:      err,
			Severity: SeverityInfo,
			Title:    "Request Cancelled",
			Message:  "The operation was cancelled.",
		}
	}

	for _, entry := range presentations {
		if errors.Is(err, entry.sentinel) {
			return entry.pres.wrap(err)
		}
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Validation Error",
			Message:  validationErr.Message,
			Recovery: []string{"Correct the field value and try again"},
			Details:  validationErr.Error(),
		}
	}

	return presentation{
		severity:  SeverityError,
		title:     "Unexpected Error",
		message:   "An unexpected error occurred.",
		recovery:  []string{"Try again"},
		retryable: false,
	}.wrap(err)
}
