package models

import "encoding/json"

// ErrorResponse is the JSON body of every non-2xx answer of the API.
type ErrorResponse struct {
	// Message describes the failure in a form suitable for the UI.
	Message string `json:"message"`

	// Details carries the upstream error payload verbatim when the failure
	// came from GitHub. It is omitted otherwise.
	Details json.RawMessage `json:"details,omitempty"`
}

// PreviewRequest is the body of POST /preview.
type PreviewRequest struct {
	Content string `json:"content"`
}

// PreviewResponse holds the HTML rendering of a Markdown document.
type PreviewResponse struct {
	HTML string `json:"html"`
}
