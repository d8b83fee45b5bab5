package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// FallbackMessage is shown whenever a failure carries no usable backend
// message: transport errors, non-JSON error bodies, empty message fields.
const FallbackMessage = "Something went wrong. Please try again."

// ErrMalformedResponse marks a 2xx response whose body did not match the
// endpoint's documented shape.
var ErrMalformedResponse = errors.New("malformed response")

// APIError is a non-2xx response from the board API. Message holds the
// backend-provided text when the error body carried one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: %d", e.StatusCode)
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusUnauthorized
}

// Message extracts the user-facing text for err: the backend's message
// verbatim when present, FallbackMessage otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return FallbackMessage
}
