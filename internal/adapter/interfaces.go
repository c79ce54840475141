// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of notion-to-github.
//
//   - [NotionAdapter] fetches a page's block tree through
//     github.com/jomei/notionapi using the caller's integration token.
//   - [GitHubAdapter] reads and writes files through the GitHub Contents API.
//   - [ServerAdapter] is the terminal client's view of our own HTTP API.
//
// Transport failures are wrapped with the sentinel errors in errors.go so
// callers can classify them with [errors.Is] and [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/notion-to-github/internal/markdown"
	"github.com/MKhiriev/notion-to-github/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NotionAdapter reads page content from the Notion API.
type NotionAdapter interface {
	// FetchPageBlocks returns the page's top-level blocks with their
	// descendants attached. Child pages are returned but not descended into.
	// Every failure is wrapped with [ErrNotionRequest].
	FetchPageBlocks(ctx context.Context, apiKey, pageID string) ([]markdown.Node, error)
}

// GitHubAdapter talks to the GitHub Contents API on behalf of a user token.
type GitHubAdapter interface {
	// GetFile reports whether path exists in repo ("owner/name") and its
	// blob sha. A 404 is not an error; any other non-200 status is returned
	// as a *[GitHubError].
	GetFile(ctx context.Context, token, repo, path string) (models.RemoteFileState, error)

	// PutFile creates or updates path in repo. A non-2xx response is
	// returned as a *[GitHubError] carrying GitHub's status, message and
	// raw payload.
	PutFile(ctx context.Context, token, repo, path string, req models.ContentsPutRequest) (models.ContentsPutResponse, error)
}

// ServerAdapter is the terminal client's transport to the notion-to-github
// server. Non-2xx answers are returned as a *[APIError].
type ServerAdapter interface {
	Convert(ctx context.Context, req models.ConversionRequest) (models.ConversionResponse, error)
	Publish(ctx context.Context, req models.PublishRequest) (models.PublishResponse, error)
	Version(ctx context.Context) (string, error)
}
