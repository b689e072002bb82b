package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNetwork          = errors.New("network error")
	ErrDecode           = errors.New("decode error")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrInvalidID        = errors.New("invalid user id")
)

// maxErrorBody caps how much of a failed response body is kept in StatusError.
const maxErrorBody = 512

// StatusError reports a non-2xx response. It matches ErrUnexpectedStatus
// and, depending on the code, ErrUnauthorized or ErrNotFound.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnexpectedStatus:
		return true
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}
