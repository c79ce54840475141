// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// notion-to-github application. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// log level.
	App App `envPrefix:"APP_"`

	// Server holds the listen address and request timeout of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the terminal client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// GitHub holds the GitHub REST API settings used by the publisher.
	GitHub GitHub `envPrefix:"GITHUB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by GET /version when no build version was linked in.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request including its calls to
	// Notion and GitHub (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client-side settings for talking to the server.
type Adapter struct {
	// ServerURL is the base URL of the notion-to-github server
	// (e.g. "http://localhost:8080"). A missing scheme defaults to http.
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the timeout of a single client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GitHub holds settings for the GitHub Contents API client.
type GitHub struct {
	// APIBaseURL is the GitHub REST API root. Override it for GitHub
	// Enterprise (e.g. "https://github.example.com/api/v3").
	// Env: GITHUB_API_URL
	APIBaseURL string `env:"API_URL"`

	// RequestTimeout is the timeout of a single GitHub API call.
	// Env: GITHUB_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. See the package documentation for
// the precedence rules.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(os.Getenv(envFileVariable)).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
