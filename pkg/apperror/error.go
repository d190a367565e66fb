package apperror

import (
	"errors"
	"net/http"
)

// Kind is the error taxonomy shown to clients.
type Kind string

const (
	KindValidation  Kind = "VALIDATION"
	KindParse       Kind = "PARSE"
	KindConfig      Kind = "CONFIG"
	KindAuth        Kind = "AUTH"
	KindConnRefused Kind = "CONN_REFUSED"
	KindTimeout     Kind = "TIMEOUT"
	KindUnknown     Kind = "UNKNOWN"
	KindRateLimited Kind = "RATE_LIMITED"
)

type AppError struct {
	Code    int               `json:"code"`
	Kind    Kind              `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	// Details is a developer-facing diagnostic, only echoed outside production.
	Details string `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Debug returns the diagnostic that may be shown in non-production responses.
func (e *AppError) Debug() string {
	if e.Details != "" {
		return e.Details
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    KindUnknown,
		Message: message,
		Err:     err,
	}
}

// WithKind sets the taxonomy kind and returns e for chaining.
func (e *AppError) WithKind(kind Kind) *AppError {
	e.Kind = kind
	return e
}

// WithDetails sets the developer-facing diagnostic and returns e for chaining.
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil).WithKind(KindParse)
}

// Validation builds a 400 carrying a per-field message map.
func Validation(message string, fields map[string]string) *AppError {
	e := New(http.StatusBadRequest, message, nil).WithKind(KindValidation)
	e.Fields = fields
	return e
}

// Config builds a 500 for a missing or unusable mail configuration.
func Config(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err).WithKind(KindConfig)
}

// Transport builds a 500 for an SMTP failure of the given kind.
func Transport(kind Kind, message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err).WithKind(kind)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, nil).WithKind(KindRateLimited)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// As extracts an *AppError from err.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
