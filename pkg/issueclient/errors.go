package issueclient

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the service answers 404 for an issue id.
var ErrNotFound = errors.New("issue not found")

// APIError is any other non-2xx answer from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("issue API error %d: %s", e.StatusCode, e.Message)
}
