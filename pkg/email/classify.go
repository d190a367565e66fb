package email

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"

	"github.com/emersion/go-smtp"
)

// ErrorKind is the transport failure taxonomy.
type ErrorKind string

const (
	KindAuth        ErrorKind = "AUTH"
	KindConnRefused ErrorKind = "CONN_REFUSED"
	KindTimeout     ErrorKind = "TIMEOUT"
	KindUnknown     ErrorKind = "UNKNOWN"
	KindConfig      ErrorKind = "CONFIG"
)

// SMTP reply codes that mean the credentials were rejected.
var authReplyCodes = map[int]bool{
	530: true, // authentication required
	534: true, // mechanism too weak
	535: true, // credentials invalid
	538: true, // encryption required for mechanism
}

// Classify maps a transport error to its kind. Anything unrecognised is
// KindUnknown.
func Classify(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return KindConfig
	}

	var smtpErr *smtp.SMTPError
	if errors.As(err, &smtpErr) && authReplyCodes[smtpErr.Code] {
		return KindAuth
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return KindConnRefused
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindConnRefused
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return KindConnRefused
	}

	return KindUnknown
}

// TransportResult is the outcome of a transport verification.
type TransportResult struct {
	Valid bool      `json:"valid"`
	Kind  ErrorKind `json:"kind,omitempty"`
	Error string    `json:"error,omitempty"`
}

// NewTransportResult builds the verification outcome for err. The error
// text is a developer diagnostic and must not reach production clients.
func NewTransportResult(err error, addr string) TransportResult {
	if err == nil {
		return TransportResult{Valid: true}
	}

	kind := Classify(err)
	return TransportResult{
		Valid: false,
		Kind:  kind,
		Error: describe(kind, err, addr),
	}
}

func describe(kind ErrorKind, err error, addr string) string {
	switch kind {
	case KindAuth:
		return "authentication failed: check SMTP_USER and SMTP_PASS"
	case KindConnRefused:
		if addr != "" {
			return fmt.Sprintf("could not connect to %s", addr)
		}
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "unknown SMTP configuration error"
}
