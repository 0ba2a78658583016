package api

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a single-entry fetch resolves to 404.
var ErrNotFound = errors.New("entry not found")

// StatusError is a non-2xx response from the backend, carrying whatever
// body text the server sent.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.Code, e.Body)
}
