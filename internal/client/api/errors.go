package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: the request never
	// produced an HTTP response.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrUnauthorized marks rejected credentials or a rejected token.
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError is a non-2xx backend response with the message the backend
// reported. The client surfaces it verbatim and does not interpret codes
// beyond the unauthorized match.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.Code)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Code, e.Detail)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.Code == http.StatusUnauthorized
}
