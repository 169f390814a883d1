package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned after a 401 response has been intercepted:
// the session is already cleared and the login redirect already triggered
// by the time the caller sees this error.
var ErrUnauthorized = errors.New("unauthorized")

// APIError carries a non-2xx backend response. The message is the server's
// error text when it sent one, else a generic failure message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

// ValidationError reports a client-side validation failure raised before
// any network call. It is distinct from APIError so callers can tell local
// rejections apart from server rejections.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
