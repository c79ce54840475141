// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal front end of notion-to-github.
//
// A single bubbletea program walks the user through the same two steps as
// the web form: convert a Notion page through the server, review or edit the
// Markdown, then upload it to GitHub. Remote calls run as tea.Cmd values so
// the UI never blocks, and every call carries its own trace id.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/notion-to-github/internal/adapter"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	server    adapter.ServerAdapter
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(server adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if server == nil {
		return nil, errNoServerAdapter
	}
	return &TUI{server: server, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits. Quitting is reported as [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	model := newPipelineModel(ctx, t.server, t.buildInfo, clipboard.WriteAll, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(*pipelineModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
