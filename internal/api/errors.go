package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the request never produced a usable response:
	// transport failure, timeout, or a gateway-class status.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the server rejected the bearer token. The session
	// store reacts to this by dropping to anonymous.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a non-success HTTP response from the API. Message holds the
// server-supplied error text when the payload carried one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// Unwrap maps status classes onto the sentinel errors so callers can use
// errors.Is without inspecting status codes themselves.
func (e *Error) Unwrap() error {
	switch e.Status {
	case 401, 403:
		return ErrUnauthorized
	case 502, 503, 504:
		return ErrUnavailable
	}
	return nil
}

// ErrorMessage returns the server-supplied message from err when there is
// one, otherwise the per-action fallback. This is the single place where the
// "server message or generic text" decision is made.
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
