// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/notion-to-github/internal/adapter"
)

var errNoServerAdapter = errors.New("server adapter is required")

const msgServerUnavailable = "Network is down or the server is unavailable."

// humanizeError turns a server adapter error into a status line. API errors
// already carry the server's user-facing message.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
