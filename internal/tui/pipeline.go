package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/notion-to-github/internal/adapter"
	"github.com/MKhiriev/notion-to-github/internal/app"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/session"
	"github.com/MKhiriev/notion-to-github/internal/utils"
	"github.com/MKhiriev/notion-to-github/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type tab int

const (
	convertTab tab = iota
	uploadTab
)

// Focus positions on the convert tab.
const (
	fieldAPIKey = iota
	fieldPageURL
	convertFieldCount
)

// Focus positions on the upload tab. The editor comes last.
const (
	fieldUsername = iota
	fieldToken
	fieldRepo
	fieldPath
	fieldFilename
	fieldEditor
	uploadFieldCount
)

const inputWidth = 60

// pipelineModel is the only screen of the terminal client. It owns a
// [session.Session] and translates key presses and command results into
// session transitions.
type pipelineModel struct {
	ctx      context.Context
	server   adapter.ServerAdapter
	traceIDs *utils.UUIDGenerator

	// copyToClipboard is clipboard.WriteAll outside of tests.
	copyToClipboard func(string) error

	session *session.Session

	tab          tab
	focus        int
	notionInputs []textinput.Model
	githubInputs []textinput.Model
	editor       textarea.Model

	buildInfo     models.AppBuildInfo
	serverVersion string
	showBuildInfo bool
	quitByUser    bool

	logger *logger.Logger
}

func newPipelineModel(
	ctx context.Context,
	server adapter.ServerAdapter,
	buildInfo models.AppBuildInfo,
	copyToClipboard func(string) error,
	logger *logger.Logger,
) *pipelineModel {
	m := &pipelineModel{
		ctx:             ctx,
		server:          server,
		traceIDs:        utils.NewUUIDGenerator(),
		copyToClipboard: copyToClipboard,
		session:         session.New(),
		buildInfo:       buildInfo,
		logger:          logger,
	}

	m.notionInputs = []textinput.Model{
		newInput("Notion integration secret", true),
		newInput("https://www.notion.so/workspace/My-Page-1234abcd", false),
	}
	m.githubInputs = []textinput.Model{
		newInput("GitHub username", false),
		newInput("GitHub token", true),
		newInput("owner/repo", false),
		newInput("docs (optional)", false),
		newInput("page.md", false),
	}

	m.editor = textarea.New()
	m.editor.Placeholder = "Converted Markdown appears here"
	m.editor.ShowLineNumbers = false
	m.editor.CharLimit = 0
	m.editor.MaxHeight = 0
	m.editor.SetWidth(inputWidth + 20)
	m.editor.SetHeight(12)

	m.notionInputs[fieldAPIKey].Focus()
	return m
}

func newInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = inputWidth
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

func (m *pipelineModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdServerVersion())
}

func (m *pipelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case serverVersionMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("fetching server version failed")
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil

	case convertDoneMsg:
		return m, m.finishConvert(msg)

	case uploadDoneMsg:
		m.finishUpload(msg)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("clipboard write failed")
			m.session.Status = session.Status{Message: app.MsgClipboardFailed, IsError: true}
		} else {
			m.session.Status = session.Status{Message: app.MsgCopiedToClipboard}
		}
		return m, nil

	case tea.WindowSizeMsg:
		if w := msg.Width - 8; w > 20 {
			m.editor.SetWidth(w)
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *pipelineModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.about) {
			m.showBuildInfo = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.about):
		m.showBuildInfo = true
		return nil
	case key.Matches(msg, keys.switchTab):
		return m.switchTab()
	case key.Matches(msg, keys.next):
		return m.moveFocus(1)
	case key.Matches(msg, keys.prev):
		return m.moveFocus(-1)
	case key.Matches(msg, keys.copy):
		return m.cmdCopy()
	case key.Matches(msg, keys.submit):
		return m.submit()
	case msg.Type == tea.KeyEnter && !m.editorFocused():
		return m.submit()
	}

	cmd := m.updateFocused(msg)
	if m.editorFocused() {
		_ = m.session.EditMarkdown(m.editor.Value())
	}
	return cmd
}

// submit starts the step of the current tab unless a call is in flight.
func (m *pipelineModel) submit() tea.Cmd {
	if m.session.State.Busy() {
		return nil
	}
	m.syncSession()

	if m.tab == convertTab {
		req, err := m.session.BeginConvert(m.ctx)
		if err != nil {
			return nil
		}
		return m.cmdConvert(req)
	}

	req, err := m.session.BeginUpload(m.ctx)
	if err != nil {
		return nil
	}
	return m.cmdUpload(req)
}

func (m *pipelineModel) finishConvert(msg convertDoneMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Debug().Err(msg.err).Msg("conversion failed")
		_ = m.session.FailConvert(humanizeError(msg.err))
		m.editor.SetValue("")
		return nil
	}

	_ = m.session.CompleteConvert(msg.resp)
	m.githubInputs[fieldFilename].SetValue(m.session.Filename)
	m.editor.SetValue(m.session.Markdown)
	return m.setTab(uploadTab)
}

func (m *pipelineModel) finishUpload(msg uploadDoneMsg) {
	if msg.err != nil {
		m.logger.Debug().Err(msg.err).Msg("upload failed")
		_ = m.session.FailUpload(humanizeError(msg.err))
		return
	}
	_ = m.session.CompleteUpload(msg.resp)
}

// syncSession copies the widget values into the session.
func (m *pipelineModel) syncSession() {
	m.session.NotionAPIKey = strings.TrimSpace(m.notionInputs[fieldAPIKey].Value())
	m.session.NotionURL = strings.TrimSpace(m.notionInputs[fieldPageURL].Value())

	m.session.GitHubUsername = strings.TrimSpace(m.githubInputs[fieldUsername].Value())
	m.session.GitHubToken = strings.TrimSpace(m.githubInputs[fieldToken].Value())
	m.session.GitHubRepo = strings.TrimSpace(m.githubInputs[fieldRepo].Value())
	m.session.Path = strings.TrimSpace(m.githubInputs[fieldPath].Value())
	m.session.Filename = strings.TrimSpace(m.githubInputs[fieldFilename].Value())

	_ = m.session.EditMarkdown(m.editor.Value())
}

// switchTab keeps the upload tab locked until Markdown exists.
func (m *pipelineModel) switchTab() tea.Cmd {
	if m.tab == uploadTab {
		return m.setTab(convertTab)
	}
	if !m.session.CanUpload() {
		m.session.Status = session.Status{Message: app.MsgUploadNeedsMarkdown, IsError: true}
		return nil
	}
	return m.setTab(uploadTab)
}

func (m *pipelineModel) setTab(t tab) tea.Cmd {
	m.blurAll()
	m.tab = t
	m.focus = 0
	return m.focusCurrent()
}

func (m *pipelineModel) moveFocus(delta int) tea.Cmd {
	count := convertFieldCount
	if m.tab == uploadTab {
		count = uploadFieldCount
	}

	m.blurAll()
	m.focus = (m.focus + delta + count) % count
	return m.focusCurrent()
}

func (m *pipelineModel) focusCurrent() tea.Cmd {
	switch {
	case m.tab == convertTab:
		return m.notionInputs[m.focus].Focus()
	case m.focus == fieldEditor:
		return m.editor.Focus()
	default:
		return m.githubInputs[m.focus].Focus()
	}
}

func (m *pipelineModel) blurAll() {
	for i := range m.notionInputs {
		m.notionInputs[i].Blur()
	}
	for i := range m.githubInputs {
		m.githubInputs[i].Blur()
	}
	m.editor.Blur()
}

func (m *pipelineModel) editorFocused() bool {
	return m.tab == uploadTab && m.focus == fieldEditor
}

func (m *pipelineModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.tab == convertTab:
		m.notionInputs[m.focus], cmd = m.notionInputs[m.focus].Update(msg)
	case m.focus == fieldEditor:
		m.editor, cmd = m.editor.Update(msg)
	default:
		m.githubInputs[m.focus], cmd = m.githubInputs[m.focus].Update(msg)
	}
	return cmd
}
