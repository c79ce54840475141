// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConversionRequest is the body of POST /convert. Both fields are required;
// the API key is a Notion integration secret and must never be logged.
type ConversionRequest struct {
	// APIKey is the Notion integration token used for this request only.
	APIKey string `json:"notionAPIKey"`

	// PageURL is the shareable URL of the Notion page to convert
	// (e.g. "https://www.notion.so/workspace/My-Page-1234abcd").
	PageURL string `json:"notionURL"`
}

// ConversionResponse is returned by POST /convert on success.
type ConversionResponse struct {
	// Message is a human-readable status line shown by the UI.
	Message string `json:"message"`

	// Markdown is the rendered page content.
	Markdown string `json:"markdown"`

	// PageID is the identifier extracted from the request URL.
	PageID string `json:"pageId,omitempty"`
}

// MarkdownDocument is a rendered Notion page.
type MarkdownDocument struct {
	Content string
}
