package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// errorPayload is the shape shared by GitHub error bodies and our own
// [models.ErrorResponse].
type errorPayload struct {
	Message string          `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`
}

func mapGitHubError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message, _, body := parseErrorBody(resp)

	ghErr := &GitHubError{StatusCode: resp.StatusCode(), Message: message}
	if json.Valid(body) {
		ghErr.Details = json.RawMessage(body)
	}
	return ghErr
}

func mapAPIError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message, details, _ := parseErrorBody(resp)
	return &APIError{StatusCode: resp.StatusCode(), Message: message, Details: details}
}

// parseErrorBody extracts the "message" field of a JSON error body. Plain
// text bodies are used as the message, empty ones fall back to the status
// text.
func parseErrorBody(resp *resty.Response) (string, json.RawMessage, []byte) {
	body := resp.Body()

	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message, payload.Details, body
	}

	if text := strings.TrimSpace(string(body)); text != "" && !json.Valid(body) {
		return text, nil, body
	}

	return http.StatusText(resp.StatusCode()), nil, body
}
