// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// notion-to-github handlers, the web form and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or shown in the UI to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording between the
// JSON API and both front ends.
package app

const (
	// MsgConvertInputRequired is returned when the Notion API key or the page
	// URL is missing.
	MsgConvertInputRequired = "Notion API key and URL are required."

	// MsgInvalidNotionURL is returned when the page URL cannot be parsed or
	// does not point at notion.so.
	MsgInvalidNotionURL = "Not a valid Notion URL."

	// MsgConverted is returned after a page was rendered to Markdown.
	MsgConverted = "Converted successfully!"

	// MsgConversionFailed is returned for every Notion-side failure: bad
	// credentials, missing page or network errors.
	MsgConversionFailed = "An error occurred while converting the Notion page."

	// MsgPublishInputRequired is returned when a required upload field is
	// missing.
	MsgPublishInputRequired = "GitHub token, repository, filename and content are required."

	// MsgUploadInputRequired is shown by the form and the terminal client
	// when a GitHub field is missing before an upload starts.
	MsgUploadInputRequired = "GitHub username, token, repository and filename are required."

	// MsgUploaded is returned after GitHub accepted the file.
	MsgUploaded = "File uploaded successfully."

	// MsgUploadFailed is returned when the upload fails for a reason other
	// than a GitHub API error response.
	MsgUploadFailed = "An error occurred while processing the GitHub upload."

	// MsgGitHubAPIErrorFormat prefixes the message GitHub sent back.
	MsgGitHubAPIErrorFormat = "GitHub API error: %s"

	// MsgUnknownError replaces an empty GitHub error message.
	MsgUnknownError = "unknown error"

	// MsgUploadNeedsMarkdown is shown when an upload is attempted before a
	// page has been converted.
	MsgUploadNeedsMarkdown = "Convert a Notion page before uploading."

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgCopiedToClipboard is shown after the Markdown was copied.
	MsgCopiedToClipboard = "Markdown copied to clipboard."

	// MsgNothingToCopy is shown when the copy key is pressed before any
	// Markdown exists.
	MsgNothingToCopy = "Nothing to copy yet."

	// MsgClipboardFailed is shown when the system clipboard is unavailable.
	MsgClipboardFailed = "Could not copy to clipboard."
)
