package api

import (
	"errors"
	"fmt"
)

// Error is returned for HTTP responses with a 4xx/5xx status. Message holds
// the server-supplied "message" field when the error body was parseable JSON,
// otherwise it is empty.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api returned status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api returned status %d", e.Status)
}

// ServerMessage extracts the server-supplied message from an error chain.
// Transport and decode failures have no server message, so the fallback is
// returned for those and for API errors whose body carried none.
func ServerMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
