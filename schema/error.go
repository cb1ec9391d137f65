package schema

import (
	"fmt"
	"net/http"
)

// Error represents a non-2xx backend response.
type Error struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	RequestID  string `json:"requestId,omitempty"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// Unauthorized returns true for authorization failures
func (e *Error) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// NewError creates an error for status code
func NewError(statusCode int, message string) *Error {
	return &Error{StatusCode: statusCode, Message: message}
}
