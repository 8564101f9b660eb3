package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrNotFound    = errors.New("not found")
)

// ServerError is a structured domain error reported by the API as an
// {error: message} payload. The message is surfaced to the user verbatim.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// ServerMessage extracts the server-reported reason from err, if any.
func ServerMessage(err error) (string, bool) {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Message, true
	}
	return "", false
}
