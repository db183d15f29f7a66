package handlers

import (
	"net/http"
	"time"
)

// Response represents a standard health response wrapper.
//
//   - Status indicates the overall result ("healthy", "unhealthy")
//   - Timestamp provides response time for debugging and caching
//   - Data contains the response payload (optional)
//   - Error contains error details when Status indicates failure (optional)
type Response struct {
	Status    string      `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// healthyResponse creates a successful health check response.
func healthyResponse(data interface{}) Response {
	return Response{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// unhealthyResponse creates a failed health check response with an error message.
func unhealthyResponse(errMsg string) Response {
	return Response{
		Status:    "unhealthy",
		Timestamp: time.Now().UTC(),
		Error:     errMsg,
	}
}

// writeHealth writes a health response with the given status code.
func writeHealth(w http.ResponseWriter, status int, resp Response) {
	WriteJSON(w, status, resp)
}
