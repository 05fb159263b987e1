package places

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Failure kinds surfaced by the lookup collaborators. Match them with errors.Is.
var (
	ErrMissingCredential   = errors.New("places: api key not configured")
	ErrUpstreamUnreachable = errors.New("places: upstream unreachable")
	ErrUpstreamRejected    = errors.New("places: upstream rejected request")
	ErrNoResults           = errors.New("places: no results")
	ErrInvalidCoordinate   = errors.New("places: latitude and longitude must be finite and in range")
)

// UpstreamError carries the failure kind plus what the upstream said
type UpstreamError struct {
	Kind   error
	Status string // upstream status or HTTP status text
	Detail string
}

func (e *UpstreamError) Error() string {
	msg := e.Kind.Error()
	if e.Status != "" {
		msg += ": " + e.Status
	}
	if e.Detail != "" {
		msg += " - " + e.Detail
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Kind
}

// Retryable reports whether the caller may retry the same request later
func (e *UpstreamError) Retryable() bool {
	return errors.Is(e.Kind, ErrUpstreamUnreachable)
}

func upstreamErr(kind error, status, format string, args ...interface{}) *UpstreamError {
	return &UpstreamError{Kind: kind, Status: status, Detail: fmt.Sprintf(format, args...)}
}

// classifyTransport decides whether err happened before a response was read
func classifyTransport(err error) bool {
	var urlErr *url.Error
	var netErr net.Error
	return errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
