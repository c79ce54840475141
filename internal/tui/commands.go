package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/notion-to-github/internal/app"
	"github.com/MKhiriev/notion-to-github/internal/session"
	"github.com/MKhiriev/notion-to-github/internal/utils"
	"github.com/MKhiriev/notion-to-github/models"
	tea "github.com/charmbracelet/bubbletea"
)

// traced returns a context carrying a fresh trace id for one remote call.
func (m *pipelineModel) traced() context.Context {
	return utils.WithTraceID(m.ctx, m.traceIDs.Generate())
}

func (m *pipelineModel) cmdConvert(req models.ConversionRequest) tea.Cmd {
	ctx := m.traced()
	server := m.server

	return func() tea.Msg {
		resp, err := server.Convert(ctx, req)
		return convertDoneMsg{resp: resp, err: err}
	}
}

func (m *pipelineModel) cmdUpload(req models.PublishRequest) tea.Cmd {
	ctx := m.traced()
	server := m.server

	return func() tea.Msg {
		resp, err := server.Publish(ctx, req)
		return uploadDoneMsg{resp: resp, err: err}
	}
}

func (m *pipelineModel) cmdServerVersion() tea.Cmd {
	ctx := m.traced()
	server := m.server

	return func() tea.Msg {
		version, err := server.Version(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func (m *pipelineModel) cmdCopy() tea.Cmd {
	text := m.editor.Value()
	if strings.TrimSpace(text) == "" {
		m.session.Status = session.Status{Message: app.MsgNothingToCopy, IsError: true}
		return nil
	}

	copyToClipboard := m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}
