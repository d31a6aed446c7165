package dto

import "time"

// ErrorResponse is the envelope for every 4xx/5xx response:
// {"error": [{"timestamp": ..., "code": ..., "detail": ...}]}.
type ErrorResponse struct {
	Error []ErrorEntry `json:"error"`
}

type ErrorEntry struct {
	Timestamp string `json:"timestamp"`
	Code      int    `json:"code"`
	Detail    string `json:"detail"`
}

// NewErrorResponse builds an envelope with one entry per detail, all
// sharing the same status code and timestamp.
func NewErrorResponse(code int, details ...string) ErrorResponse {
	ts := time.Now().Format(time.RFC3339)

	entries := make([]ErrorEntry, 0, len(details))
	for _, d := range details {
		entries = append(entries, ErrorEntry{Timestamp: ts, Code: code, Detail: d})
	}

	return ErrorResponse{Error: entries}
}
