package errors

import (
	"context"
	"crypto/x509"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError_Nil(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))
	assert.Nil(t, ClassifyTransportError(nil))
}

func TestClassifyError_Sentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		title    string
		severity ErrorSeverity
	}{
		{
			name:     "timeout",
			err:      fmt.Errorf("%w: search", ErrTimeout),
			title:    "Request Timeout",
			severity: SeverityError,
		},
		{
			name:     "connection failed",
			err:      fmt.Errorf("%w: dial tcp", ErrConnectionFailed),
			title:    "Connection Failed",
			severity: SeverityError,
		},
		{
			name:     "not connected",
			err:      ErrNotConnected,
			title:    "Not Connected",
			severity: SeverityWarning,
		},
		{
			name:     "invalid json",
			err:      fmt.Errorf("%w: unexpected token", ErrInvalidJSON),
			title:    "Invalid JSON",
			severity: SeverityError,
		},
		{
			name:     "tls verification",
			err:      fmt.Errorf("%w: x509", ErrTLSVerification),
			title:    "TLS Verification Failed",
			severity: SeverityError,
		},
		{
			name:     "cancelled",
			err:      context.Canceled,
			title:    "Request Cancelled",
			severity: SeverityInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uiErr := ClassifyError(tt.err)
			assert.NotNil(t, uiErr)
			assert.Equal(t, tt.title, uiErr.Title)
			assert.Equal(t, tt.severity, uiErr.Severity)
		})
	}
}

func TestClassifyError_ValidationError(t *testing.T) {
	err := ValidationError{Field: "host", Message: "host must not be empty"}
	uiErr := ClassifyError(err)

	assert.NotNil(t, uiErr)
	assert.Equal(t, "Validation Error", uiErr.Title)
	assert.Equal(t, "host must not be empty", uiErr.Message)
	assert.Equal(t, "host: host must not be empty", uiErr.Details)
}

func TestClassifyError_PassesThroughUIError(t *testing.T) {
	original := &UIError{Title: "Custom", Severity: SeverityWarning}
	assert.Same(t, original, ClassifyError(original))
}

func TestClassifyTransportError_ConnectionRefused(t *testing.T) {
	err := &url.Error{
		Op:  "Get",
		URL: "http://localhost:9200/_search",
		Err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED},
	}

	uiErr := ClassifyTransportError(err)
	assert.NotNil(t, uiErr)
	assert.Equal(t, "Connection Failed", uiErr.Title)
}

func TestClassifyTransportError_UnknownAuthority(t *testing.T) {
	err := &url.Error{
		Op:  "Get",
		URL: "https://localhost:9200/",
		Err: x509.UnknownAuthorityError{},
	}

	uiErr := ClassifyTransportError(err)
	assert.NotNil(t, uiErr)
	assert.Equal(t, "TLS Verification Failed", uiErr.Title)
	// The recovery text must point at the verify-SSL toggle.
	assert.NotEmpty(t, uiErr.Recovery)
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "port: out of range", ValidationError{Field: "port", Message: "out of range"}.Error())
	assert.Equal(t, "out of range", ValidationError{Message: "out of range"}.Error())
}
