package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/notion-to-github/models"
)

// MaxRequestBodyBytes caps JSON request bodies. Markdown documents are the
// largest payload the server accepts.
const MaxRequestBodyBytes = 8 << 20

// WriteJSON serializes data to JSON and writes it with the given status code
// and a "Content-Type: application/json" header.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.PublishResponse{URL: url}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a [models.ErrorResponse] with the given status code.
// details may be nil.
func WriteError(w http.ResponseWriter, statusCode int, message string, details json.RawMessage) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Message: message, Details: details}, statusCode)
}

// DecodeJSON decodes the request body into v, reading at most
// [MaxRequestBodyBytes].
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}
	return nil
}
