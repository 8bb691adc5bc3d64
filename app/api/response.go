package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Text writes message as the exact response body.
// Unlike http.Error no trailing newline is appended.
func Text(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	io.WriteString(w, message)
}

// ErrorResponse writes an error message as a plain text body.
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	Text(w, status, message)
}

// JSON writes data encoded as JSON with the given status.
// Nothing is written when data cannot be encoded.
func JSON(w http.ResponseWriter, status int, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

// OKResponse writes data as JSON with status 200.
func OKResponse(w http.ResponseWriter, data any) error {
	return JSON(w, http.StatusOK, data)
}
