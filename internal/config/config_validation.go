// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the server.
func (cfg *StructuredConfig) validate() error {
	if err := validation.ValidateStruct(&cfg.Server,
		validation.Field(&cfg.Server.HTTPAddress, validation.Required),
		validation.Field(&cfg.Server.RequestTimeout, validation.Required, validation.Min(time.Millisecond)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.GitHub,
		validation.Field(&cfg.GitHub.APIBaseURL, validation.Required, is.URL),
		validation.Field(&cfg.GitHub.RequestTimeout, validation.Required, validation.Min(time.Millisecond)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGitHubConfigs, err)
	}

	return validateLogLevel(cfg.App.LogLevel)
}

func (cfg *ClientConfig) validate() error {
	if err := validation.ValidateStruct(&cfg.Adapter,
		validation.Field(&cfg.Adapter.ServerURL, validation.Required),
		validation.Field(&cfg.Adapter.RequestTimeout, validation.Required, validation.Min(time.Millisecond)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	return validateLogLevel(cfg.App.LogLevel)
}

func validateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	return nil
}
