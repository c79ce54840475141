package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidGitHubConfigs indicates a malformed GitHub API URL or a
	// non-positive timeout.
	ErrInvalidGitHubConfigs = errors.New("invalid github configuration")
	// ErrInvalidAppConfigs indicates an unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
