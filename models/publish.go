// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PublishRequest is the body of POST /publish.
//
// Token, Repo, Filename and Content are required. Username is collected by
// the UI but not needed by the GitHub Contents API. Path is an optional
// directory inside the repository.
type PublishRequest struct {
	Username string `json:"githubUsername"`
	Token    string `json:"githubToken"`

	// Repo is the full repository name in "owner/repo" form.
	Repo string `json:"githubRepo"`

	Path     string `json:"path"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// PublishResponse is returned by POST /publish on success.
type PublishResponse struct {
	Message string `json:"message"`

	// URL is the browsable html_url of the committed file.
	URL string `json:"url"`
}

// RemoteFileState describes whether a file already exists at a content path
// and, if so, the blob sha GitHub requires to overwrite it. It is fetched
// right before every upload and never cached.
type RemoteFileState struct {
	Exists bool
	SHA    string
}

// ContentsPutRequest is the body of PUT /repos/{repo}/contents/{path}.
type ContentsPutRequest struct {
	Message string `json:"message"`

	// Content is the file body, base64-encoded.
	Content string `json:"content"`
	Branch  string `json:"branch"`

	// SHA is set only when overwriting an existing file.
	SHA string `json:"sha,omitempty"`
}

// ContentsPutResponse is the part of the GitHub create-or-update response
// the publisher needs.
type ContentsPutResponse struct {
	Content *struct {
		HTMLURL string `json:"html_url"`
	} `json:"content"`
	HTMLURL string `json:"html_url"`
}

// FileURL returns content.html_url, falling back to the top-level html_url.
func (r ContentsPutResponse) FileURL() string {
	if r.Content != nil && r.Content.HTMLURL != "" {
		return r.Content.HTMLURL
	}
	return r.HTMLURL
}
