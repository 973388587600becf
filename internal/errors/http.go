package errors

import (
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ClassifyTransportError converts an error returned by the HTTP transport
// into a UIError. HTTP-level error responses (4xx/5xx) never reach this
// function; those arrive as ordinary responses and are rendered as-is.
func ClassifyTransportError(err error) *UIError {
	if err == nil {
		return nil
	}

	// Unwrap url.Error so the checks below see the transport cause.
	var urlErr *url.Error
	cause := err
	if errors.As(err, &urlErr) {
		cause = urlErr.Err
		if urlErr.Timeout() {
			return ClassifyError(fmt.Errorf("%w: %v", ErrTimeout, err))
		}
	}

	// TLS certificate problems get the dedicated recovery text.
	var unknownAuthority x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	var certInvalid x509.CertificateInvalidError
	if errors.As(cause, &unknownAuthority) || errors.As(cause, &hostnameErr) || errors.As(cause, &certInvalid) {
		return ClassifyError(fmt.Errorf("%w: %v", ErrTLSVerification, err))
	}

	var netErr net.Error
	if errors.As(cause, &netErr) && netErr.Timeout() {
		return ClassifyError(fmt.Errorf("%w: %v", ErrTimeout, err))
	}

	// Connection refused, host unreachable, DNS failures.
	var dnsErr *net.DNSError
	if errors.As(cause, &dnsErr) ||
		errors.Is(cause, syscall.ECONNREFUSED) ||
		errors.Is(cause, syscall.EHOSTUNREACH) ||
		errors.Is(cause, os.ErrDeadlineExceeded) {
		return ClassifyError(fmt.Errorf("%w: %v", ErrConnectionFailed, err))
	}

	var opErr *net.OpError
	if errors.As(cause, &opErr) {
		return ClassifyError(fmt.Errorf("%w: %v", ErrConnectionFailed, err))
	}

	return ClassifyError(err)
}
