package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotionRequest       = errors.New("notion request failed")
	ErrInvalidBaseURL      = errors.New("invalid base url")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// GitHubError is a non-success answer from the GitHub API.
type GitHubError struct {
	StatusCode int
	Message    string
	// Details is GitHub's response body when it is valid JSON.
	Details json.RawMessage
}

func (e *GitHubError) Error() string {
	return fmt.Sprintf("github api error (status %d): %s", e.StatusCode, e.Message)
}

// Unwrap exposes the status class so callers can use errors.Is with the
// sentinels above.
func (e *GitHubError) Unwrap() error {
	return sentinelForStatus(e.StatusCode)
}

// APIError is a non-success answer from the notion-to-github server.
type APIError struct {
	StatusCode int
	Message    string
	Details    json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return sentinelForStatus(e.StatusCode)
}

func sentinelForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return nil
	}
}
