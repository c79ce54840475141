package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/notion-to-github/internal/adapter"
	"github.com/MKhiriev/notion-to-github/internal/app"
	"github.com/MKhiriev/notion-to-github/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrInvalidNotionURL:      http.StatusBadRequest,
	service.ErrConversionFailed:      http.StatusInternalServerError,
	service.ErrUploadFailed:          http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// convertErrorMessage picks the user-facing message for a failed conversion.
func convertErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return app.MsgConvertInputRequired
	case errors.Is(err, service.ErrInvalidNotionURL):
		return app.MsgInvalidNotionURL
	case errors.Is(err, service.ErrConversionFailed):
		return app.MsgConversionFailed
	default:
		return app.MsgInternalServerError
	}
}

// publishErrorResponse relays a GitHub rejection with GitHub's own status and
// payload. Every other failure maps through [statusFromError].
func publishErrorResponse(err error) (int, string, json.RawMessage) {
	var ghErr *adapter.GitHubError
	if errors.As(err, &ghErr) {
		message := ghErr.Message
		if message == "" {
			message = app.MsgUnknownError
		}

		status := ghErr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		return status, fmt.Sprintf(app.MsgGitHubAPIErrorFormat, message), ghErr.Details
	}

	status := statusFromError(err)
	if status == http.StatusBadRequest {
		return status, app.MsgPublishInputRequired, nil
	}
	return status, app.MsgUploadFailed, nil
}
