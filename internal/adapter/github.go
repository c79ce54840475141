package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/notion-to-github/internal/config"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/utils"
	"github.com/MKhiriev/notion-to-github/models"
	"github.com/go-resty/resty/v2"
)

const (
	GitHubAcceptHeader = "application/vnd.github.v3+json"
	GitHubUserAgent    = "Notion-to-GitHub-App"
)

type githubAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewGitHubAdapter constructs a [GitHubAdapter] for the API rooted at
// cfg.APIBaseURL.
func NewGitHubAdapter(cfg config.GitHub, logger *logger.Logger) (GitHubAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.APIBaseURL, "https")
	if err != nil {
		return nil, fmt.Errorf("invalid github api url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.
		SetHeader("Accept", GitHubAcceptHeader).
		SetHeader("User-Agent", GitHubUserAgent)

	return &githubAdapter{client: client, logger: logger}, nil
}

// GetFile implements [GitHubAdapter].
func (g *githubAdapter) GetFile(ctx context.Context, token, repo, path string) (models.RemoteFileState, error) {
	resp, err := g.request(ctx, token).Get(contentsPath(repo, path))
	if err != nil {
		return models.RemoteFileState{}, fmt.Errorf("get file request: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return models.RemoteFileState{}, nil
	}
	if resp.StatusCode() != http.StatusOK {
		return models.RemoteFileState{}, mapGitHubError(resp)
	}

	var file struct {
		SHA string `json:"sha"`
	}
	if err = json.Unmarshal(resp.Body(), &file); err != nil {
		return models.RemoteFileState{}, fmt.Errorf("decode file metadata: %w", err)
	}

	return models.RemoteFileState{Exists: true, SHA: file.SHA}, nil
}

// PutFile implements [GitHubAdapter].
func (g *githubAdapter) PutFile(ctx context.Context, token, repo, path string, req models.ContentsPutRequest) (models.ContentsPutResponse, error) {
	resp, err := g.request(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(contentsPath(repo, path))
	if err != nil {
		return models.ContentsPutResponse{}, fmt.Errorf("put file request: %w", err)
	}
	if err = mapGitHubError(resp); err != nil {
		return models.ContentsPutResponse{}, err
	}

	var out models.ContentsPutResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.ContentsPutResponse{}, fmt.Errorf("decode put response: %w", err)
	}

	return out, nil
}

func (g *githubAdapter) request(ctx context.Context, token string) *resty.Request {
	return g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "token "+token)
}

// contentsPath builds /repos/{owner}/{repo}/contents/{path}, escaping every
// segment individually so slashes in path keep their meaning.
func contentsPath(repo, path string) string {
	return "/repos/" + escapeSegments(repo) + "/contents/" + escapeSegments(path)
}

func escapeSegments(p string) string {
	segments := strings.Split(strings.Trim(p, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// normalizeBaseURL trims the address, adds defaultScheme when none is given
// and drops trailing slashes.
func normalizeBaseURL(raw, defaultScheme string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidBaseURL)
	}

	if !strings.Contains(raw, "://") {
		raw = defaultScheme + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidBaseURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}
