package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/notion-to-github/internal/config"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/utils"
	"github.com/MKhiriev/notion-to-github/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.ServerURL and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL, "http")
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// Convert implements [ServerAdapter] via POST /convert.
func (h *httpServerAdapter) Convert(ctx context.Context, req models.ConversionRequest) (models.ConversionResponse, error) {
	var out models.ConversionResponse
	if err := h.postJSON(ctx, "/convert", req, &out); err != nil {
		return models.ConversionResponse{}, fmt.Errorf("convert: %w", err)
	}
	return out, nil
}

// Publish implements [ServerAdapter] via POST /publish.
func (h *httpServerAdapter) Publish(ctx context.Context, req models.PublishRequest) (models.PublishResponse, error) {
	var out models.PublishResponse
	if err := h.postJSON(ctx, "/publish", req, &out); err != nil {
		return models.PublishResponse{}, fmt.Errorf("publish: %w", err)
	}
	return out, nil
}

// Version implements [ServerAdapter] via GET /version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) postJSON(ctx context.Context, path string, body, out any) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	if err = mapAPIError(resp); err != nil {
		h.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("server returned an error")
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// request attaches the caller's trace id so server logs can be correlated
// with the client log.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(utils.TraceIDHeader, traceID)
	}
	return req
}
