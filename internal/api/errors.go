package api

import (
	"errors"
	"fmt"
)

// ErrUnreachable marks transport-level failures: no response was received.
var ErrUnreachable = errors.New("backend unreachable")

// APIError is a structured rejection from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// ErrorMessage turns any error from the client into the human-readable text
// shown to the user: the server's own message when one exists, a generic
// connectivity message for transport failures, the raw error text otherwise.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fmt.Sprintf("Request failed with status %d", apiErr.Status)
	}

	if errors.Is(err, ErrUnreachable) {
		return "Cannot reach the server. Check your network connection and make sure the backend is running."
	}

	return err.Error()
}
