package domain

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"syscall"
)

// RunErrorKind is a high-level classification of runtime errors.
type RunErrorKind string

const (
	RunErrorUnknown RunErrorKind = "unknown"
	RunErrorTimeout RunErrorKind = "timeout"
	RunErrorDNS     RunErrorKind = "dns"
	RunErrorTLS     RunErrorKind = "tls"
	RunErrorConn    RunErrorKind = "connection"
	RunErrorHTTP    RunErrorKind = "http"
)

// Transport reports whether the kind means no HTTP status was obtained.
func (k RunErrorKind) Transport() bool {
	switch k {
	case RunErrorTimeout, RunErrorDNS, RunErrorTLS, RunErrorConn:
		return true
	}
	return false
}

// RunError represents a structured error produced by a runner.
type RunError struct {
	Kind    RunErrorKind `json:"kind"`
	Message string       `json:"message"`
}

// NewRunError classifies err and captures its message.
func NewRunError(err error) *RunError {
	if err == nil {
		return nil
	}
	return &RunError{
		Kind:    ClassifyRunError(err),
		Message: err.Error(),
	}
}

// ClassifyRunError maps transport-level errors (as returned by http.Client.Do)
// to a RunErrorKind. Order matters: timeouts and DNS errors are also net.Errors.
func ClassifyRunError(err error) RunErrorKind {
	if err == nil {
		return RunErrorUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return RunErrorTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return RunErrorTimeout
		}
		return RunErrorDNS
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return RunErrorTimeout
	}

	if isTLSError(err) {
		return RunErrorTLS
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF) {
		return RunErrorConn
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return RunErrorConn
	}

	return RunErrorUnknown
}

func isTLSError(err error) bool {
	var (
		certErr     *tls.CertificateVerificationError
		recordErr   tls.RecordHeaderError
		alertErr    tls.AlertError
		unknownAuth x509.UnknownAuthorityError
		hostnameErr x509.HostnameError
		invalidCert x509.CertificateInvalidError
	)
	return errors.As(err, &certErr) ||
		errors.As(err, &recordErr) ||
		errors.As(err, &alertErr) ||
		errors.As(err, &unknownAuth) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &invalidCert)
}
