package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError represents an RFC 7807 problem response from the API.
type APIError struct {
	StatusCode int    `json:"status"`
	Title      string `json:"title"`
	Detail     string `json:"detail,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Title, e.Detail)
	}
	return e.Title
}

// IsAuthError returns true if this is an authentication or authorization error.
func (e *APIError) IsAuthError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsNotFound returns true if this is a not found error.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsGone returns true if the resource existed but is no longer available,
// which the API uses for expired and consumed share links.
func (e *APIError) IsGone() bool {
	return e.StatusCode == http.StatusGone
}

// IsConflict returns true if this is a conflict error.
func (e *APIError) IsConflict() bool {
	return e.StatusCode == http.StatusConflict
}

// decodeError builds an APIError from an error response body.
func decodeError(statusCode int, body []byte) error {
	var apiErr APIError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Title != "" {
		apiErr.StatusCode = statusCode
		return &apiErr
	}
	return &APIError{
		StatusCode: statusCode,
		Title:      http.StatusText(statusCode),
		Detail:     string(body),
	}
}
