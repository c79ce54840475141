package session

import (
	"context"
	"testing"

	"github.com/MKhiriev/notion-to-github/internal/app"
	"github.com/MKhiriev/notion-to-github/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageURL = "https://www.notion.so/workspace/My-Page-1234abcd"

func converted(t *testing.T) *Session {
	t.Helper()

	s := New()
	s.NotionAPIKey = "secret"
	s.NotionURL = pageURL
	_, err := s.BeginConvert(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.CompleteConvert(models.ConversionResponse{Message: app.MsgConverted, Markdown: "# Page\n"}))

	s.GitHubUsername = "octo"
	s.GitHubToken = "gh-token"
	s.GitHubRepo = "octo/notes"
	return s
}

func TestState_String(t *testing.T) {
	for _, s := range []State{Idle, Converting, Converted, Uploading, Uploaded} {
		assert.Equal(t, s, ParseState(s.String()))
	}
	assert.Equal(t, "unknown", State(42).String())
	assert.Equal(t, Idle, ParseState("bogus"))
}

// ── convert ──────────────────────────────────────────────────────────────────

func TestBeginConvert_MissingInput_StaysIdle(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		url    string
	}{
		{name: "no key", url: pageURL},
		{name: "no url", apiKey: "secret"},
		{name: "nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.NotionAPIKey = tt.apiKey
			s.NotionURL = tt.url

			_, err := s.BeginConvert(context.Background())

			assert.ErrorIs(t, err, ErrMissingConvertData)
			assert.Equal(t, Idle, s.State)
			assert.Equal(t, Status{Message: app.MsgConvertInputRequired, IsError: true}, s.Status)
		})
	}
}

func TestConvert_Success_DerivesFilename(t *testing.T) {
	s := New()
	s.NotionAPIKey = "secret"
	s.NotionURL = pageURL

	req, err := s.BeginConvert(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ConversionRequest{APIKey: "secret", PageURL: pageURL}, req)
	assert.Equal(t, Converting, s.State)

	require.NoError(t, s.CompleteConvert(models.ConversionResponse{Message: app.MsgConverted, Markdown: "# Page\n"}))

	assert.Equal(t, Converted, s.State)
	assert.Equal(t, "# Page\n", s.Markdown)
	assert.Equal(t, "My-Page.md", s.Filename)
	assert.False(t, s.Status.IsError)
	assert.True(t, s.CanUpload())
}

func TestConvert_KeepsUserFilename(t *testing.T) {
	s := New()
	s.NotionAPIKey = "secret"
	s.NotionURL = pageURL
	s.Filename = "custom.md"

	_, err := s.BeginConvert(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.CompleteConvert(models.ConversionResponse{Markdown: "x"}))

	assert.Equal(t, "custom.md", s.Filename)
}

func TestConvert_Failure_ClearsMarkdown(t *testing.T) {
	s := converted(t)

	_, err := s.BeginConvert(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.FailConvert(app.MsgConversionFailed))

	assert.Equal(t, Idle, s.State)
	assert.Empty(t, s.Markdown)
	assert.Equal(t, Status{Message: app.MsgConversionFailed, IsError: true}, s.Status)
	assert.False(t, s.CanUpload())
}

func TestBeginConvert_WhileBusy(t *testing.T) {
	s := converted(t)
	s.State = Uploading

	_, err := s.BeginConvert(context.Background())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, Uploading, s.State)
}

func TestCompleteConvert_WrongState(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.CompleteConvert(models.ConversionResponse{}), ErrInvalidTransition)
	assert.ErrorIs(t, s.FailConvert("x"), ErrInvalidTransition)
}

// ── upload ───────────────────────────────────────────────────────────────────

func TestUpload_Success(t *testing.T) {
	s := converted(t)
	s.Path = "docs"

	req, err := s.BeginUpload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Uploading, s.State)
	assert.Equal(t, models.PublishRequest{
		Username: "octo",
		Token:    "gh-token",
		Repo:     "octo/notes",
		Path:     "docs",
		Filename: "My-Page.md",
		Content:  "# Page\n",
	}, req)

	require.NoError(t, s.CompleteUpload(models.PublishResponse{Message: app.MsgUploaded, URL: "https://github.com/x"}))
	assert.Equal(t, Uploaded, s.State)
	assert.Equal(t, "https://github.com/x", s.FileURL)
	assert.Equal(t, Status{Message: app.MsgUploaded}, s.Status)
}

func TestUpload_Failure_BackToConverted(t *testing.T) {
	s := converted(t)

	_, err := s.BeginUpload(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.FailUpload("GitHub API error: Bad credentials"))

	assert.Equal(t, Converted, s.State)
	assert.Equal(t, "# Page\n", s.Markdown)
	assert.True(t, s.Status.IsError)
}

func TestBeginUpload_MissingGitHubInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Session)
	}{
		{name: "username", mutate: func(s *Session) { s.GitHubUsername = "" }},
		{name: "token", mutate: func(s *Session) { s.GitHubToken = "" }},
		{name: "repo", mutate: func(s *Session) { s.GitHubRepo = "" }},
		{name: "filename", mutate: func(s *Session) { s.Filename = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := converted(t)
			tt.mutate(s)

			_, err := s.BeginUpload(context.Background())

			assert.ErrorIs(t, err, ErrMissingUploadData)
			assert.Equal(t, Converted, s.State)
			assert.Equal(t, app.MsgUploadInputRequired, s.Status.Message)
		})
	}
}

func TestBeginUpload_WithoutMarkdown(t *testing.T) {
	s := New()

	_, err := s.BeginUpload(context.Background())
	assert.ErrorIs(t, err, ErrNoMarkdown)
	assert.Equal(t, Idle, s.State)
	assert.Equal(t, app.MsgUploadNeedsMarkdown, s.Status.Message)

	s = converted(t)
	require.NoError(t, s.EditMarkdown(""))
	_, err = s.BeginUpload(context.Background())
	assert.ErrorIs(t, err, ErrNoMarkdown)
}

// ── editing ──────────────────────────────────────────────────────────────────

func TestEditMarkdown_KeepsState(t *testing.T) {
	s := converted(t)
	require.NoError(t, s.EditMarkdown("edited"))
	assert.Equal(t, Converted, s.State)
	assert.Equal(t, "edited", s.Markdown)

	_, err := s.BeginUpload(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.CompleteUpload(models.PublishResponse{}))

	require.NoError(t, s.EditMarkdown("again"))
	assert.Equal(t, Uploaded, s.State)
	assert.Equal(t, "again", s.Markdown)
}

func TestEditMarkdown_NotAllowedWithoutConversion(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.EditMarkdown("x"), ErrInvalidTransition)
}

func TestNewConversion_FromUploaded(t *testing.T) {
	s := converted(t)
	_, err := s.BeginUpload(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.CompleteUpload(models.PublishResponse{URL: "u"}))

	_, err = s.BeginConvert(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Converting, s.State)
}
