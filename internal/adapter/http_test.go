// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/notion-to-github/internal/config"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/utils"
	"github.com/MKhiriev/notion-to-github/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── Convert ──────────────────────────────────────────────────────────────────

func TestConvert_Success(t *testing.T) {
	want := models.ConversionResponse{Message: "Converted successfully!", Markdown: "# Hi\n", PageID: "1234abcd"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/convert", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.ConversionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "secret_key", req.APIKey)
		assert.Equal(t, "https://www.notion.so/My-Page-1234abcd", req.PageURL)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Convert(context.Background(), models.ConversionRequest{
		APIKey:  "secret_key",
		PageURL: "https://www.notion.so/My-Page-1234abcd",
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConvert_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Notion API key and URL are required."}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Convert(context.Background(), models.ConversionRequest{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Notion API key and URL are required.", apiErr.Message)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestConvert_PropagatesTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-1", r.Header.Get(utils.TraceIDHeader))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx := utils.WithTraceID(context.Background(), "trace-1")
	_, err := newTestAdapter(t, srv.URL).Convert(ctx, models.ConversionRequest{})

	require.NoError(t, err)
}

func TestConvert_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Convert(context.Background(), models.ConversionRequest{})

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

// ── Publish ──────────────────────────────────────────────────────────────────

func TestPublish_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/publish", r.URL.Path)

		var req models.PublishRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "octo/notes", req.Repo)
		assert.Equal(t, "docs", req.Path)

		_, _ = w.Write([]byte(`{"message":"File uploaded successfully.","url":"https://github.com/octo/notes/blob/main/docs/a.md"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Publish(context.Background(), models.PublishRequest{
		Username: "octo", Token: "t", Repo: "octo/notes", Path: "docs", Filename: "a.md", Content: "# A",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/octo/notes/blob/main/docs/a.md", got.URL)
}

func TestPublish_RemoteErrorKeepsDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"sha mismatch","details":{"message":"sha mismatch","status":"409"}}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Publish(context.Background(), models.PublishRequest{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "sha mismatch", apiErr.Message)
	assert.JSONEq(t, `{"message":"sha mismatch","status":"409"}`, string(apiErr.Details))
	assert.ErrorIs(t, err, ErrConflict)
}

// ── Version ──────────────────────────────────────────────────────────────────

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/version", r.URL.Path)
		_, _ = w.Write([]byte("version 1.0.0 (2026-01-01, commit abc)\n"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "version 1.0.0 (2026-01-01, commit abc)", got)
}

func TestVersion_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Version(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: ""}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestNewHTTPServerAdapter_AddsScheme(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: "localhost:8080/"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", a.(*httpServerAdapter).client.BaseURL)
}
