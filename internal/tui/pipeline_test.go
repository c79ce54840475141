package tui

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/notion-to-github/internal/adapter"
	"github.com/MKhiriev/notion-to-github/internal/app"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/mock"
	"github.com/MKhiriev/notion-to-github/internal/session"
	"github.com/MKhiriev/notion-to-github/internal/utils"
	"github.com/MKhiriev/notion-to-github/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPageURL = "https://www.notion.so/workspace/My-Page-1234abcd"

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) write(text string) error {
	f.text = text
	return f.err
}

func newTestModel(t *testing.T) (*pipelineModel, *mock.MockServerAdapter, *fakeClipboard) {
	t.Helper()
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	clip := &fakeClipboard{}

	m := newPipelineModel(context.Background(), server, models.NewAppBuildInfo("1.0.0", "", ""), clip.write, logger.Nop())
	return m, server, clip
}

func press(m *pipelineModel, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func deliver(m *pipelineModel, cmd tea.Cmd) {
	m.Update(cmd())
}

// convertPage drives a successful conversion and leaves the model on the
// upload tab.
func convertPage(t *testing.T, m *pipelineModel, server *mock.MockServerAdapter) {
	t.Helper()
	m.notionInputs[fieldAPIKey].SetValue("secret")
	m.notionInputs[fieldPageURL].SetValue(testPageURL)

	server.EXPECT().
		Convert(gomock.Any(), models.ConversionRequest{APIKey: "secret", PageURL: testPageURL}).
		Return(models.ConversionResponse{Message: app.MsgConverted, Markdown: "# Page", PageID: "1234abcd"}, nil)

	cmd := press(m, tea.KeyCtrlS)
	require.NotNil(t, cmd)
	require.Equal(t, session.Converting, m.session.State)
	deliver(m, cmd)
	require.Equal(t, session.Converted, m.session.State)
}

func TestPipeline_Init_FetchesServerVersion(t *testing.T) {
	m, server, _ := newTestModel(t)
	server.EXPECT().Version(gomock.Any()).Return("2.0.0", nil)

	require.NotNil(t, m.Init())

	deliver(m, m.cmdServerVersion())
	assert.Equal(t, "2.0.0", m.serverVersion)
}

func TestPipeline_ServerVersionError_IsIgnored(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(serverVersionMsg{err: errors.New("boom")})

	assert.Empty(t, m.serverVersion)
	assert.Empty(t, m.session.Status.Message)
}

func TestPipeline_Convert_MissingInput_NoCall(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.notionInputs[fieldPageURL].SetValue(testPageURL)

	cmd := press(m, tea.KeyCtrlS)

	assert.Nil(t, cmd)
	assert.Equal(t, session.Idle, m.session.State)
	assert.Equal(t, session.Status{Message: app.MsgConvertInputRequired, IsError: true}, m.session.Status)
}

func TestPipeline_Convert_Success(t *testing.T) {
	m, server, _ := newTestModel(t)

	convertPage(t, m, server)

	assert.Equal(t, uploadTab, m.tab)
	assert.Equal(t, "# Page", m.editor.Value())
	assert.Equal(t, "My-Page.md", m.githubInputs[fieldFilename].Value())
	assert.Equal(t, session.Status{Message: app.MsgConverted}, m.session.Status)
}

func TestPipeline_Convert_CarriesTraceID(t *testing.T) {
	m, server, _ := newTestModel(t)
	m.notionInputs[fieldAPIKey].SetValue("secret")
	m.notionInputs[fieldPageURL].SetValue(testPageURL)

	server.EXPECT().Convert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.ConversionRequest) (models.ConversionResponse, error) {
			traceID, ok := utils.GetTraceIDFromContext(ctx)
			assert.True(t, ok)
			assert.NotEmpty(t, traceID)
			return models.ConversionResponse{Markdown: "# Page"}, nil
		})

	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	cmd()
}

func TestPipeline_Convert_Failure(t *testing.T) {
	m, server, _ := newTestModel(t)
	m.notionInputs[fieldAPIKey].SetValue("secret")
	m.notionInputs[fieldPageURL].SetValue(testPageURL)

	server.EXPECT().Convert(gomock.Any(), gomock.Any()).
		Return(models.ConversionResponse{}, &adapter.APIError{StatusCode: http.StatusInternalServerError, Message: app.MsgConversionFailed})

	deliver(m, press(m, tea.KeyCtrlS))

	assert.Equal(t, session.Idle, m.session.State)
	assert.Equal(t, convertTab, m.tab)
	assert.Empty(t, m.editor.Value())
	assert.Equal(t, session.Status{Message: app.MsgConversionFailed, IsError: true}, m.session.Status)
}

func TestPipeline_Submit_IgnoredWhileBusy(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.session.State = session.Converting

	assert.Nil(t, press(m, tea.KeyCtrlS))
	assert.Equal(t, session.Converting, m.session.State)
}

func TestPipeline_SwitchTab_LockedUntilConverted(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, tea.KeyCtrlT)

	assert.Equal(t, convertTab, m.tab)
	assert.Equal(t, session.Status{Message: app.MsgUploadNeedsMarkdown, IsError: true}, m.session.Status)
}

func TestPipeline_SwitchTab_BackAndForth(t *testing.T) {
	m, server, _ := newTestModel(t)
	convertPage(t, m, server)

	press(m, tea.KeyCtrlT)
	assert.Equal(t, convertTab, m.tab)

	press(m, tea.KeyCtrlT)
	assert.Equal(t, uploadTab, m.tab)
}

func TestPipeline_Upload_Success(t *testing.T) {
	m, server, _ := newTestModel(t)
	convertPage(t, m, server)

	m.githubInputs[fieldUsername].SetValue("octocat")
	m.githubInputs[fieldToken].SetValue("ghp_x")
	m.githubInputs[fieldRepo].SetValue("octocat/notes")
	m.githubInputs[fieldPath].SetValue("docs")
	m.editor.SetValue("# Edited")

	want := models.PublishRequest{
		Username: "octocat",
		Token:    "ghp_x",
		Repo:     "octocat/notes",
		Path:     "docs",
		Filename: "My-Page.md",
		Content:  "# Edited",
	}
	fileURL := "https://github.com/octocat/notes/blob/main/docs/My-Page.md"
	server.EXPECT().Publish(gomock.Any(), want).
		Return(models.PublishResponse{Message: app.MsgUploaded, URL: fileURL}, nil)

	cmd := press(m, tea.KeyCtrlS)
	require.NotNil(t, cmd)
	assert.Equal(t, session.Uploading, m.session.State)
	deliver(m, cmd)

	assert.Equal(t, session.Uploaded, m.session.State)
	assert.Equal(t, fileURL, m.session.FileURL)
	assert.Contains(t, m.View(), fileURL)
}

func TestPipeline_Upload_MissingInput_NoCall(t *testing.T) {
	m, server, _ := newTestModel(t)
	convertPage(t, m, server)
	m.githubInputs[fieldToken].SetValue("ghp_x")

	assert.Nil(t, press(m, tea.KeyCtrlS))
	assert.Equal(t, session.Converted, m.session.State)
	assert.Equal(t, session.Status{Message: app.MsgUploadInputRequired, IsError: true}, m.session.Status)
}

func TestPipeline_Upload_Failure_KeepsMarkdown(t *testing.T) {
	m, server, _ := newTestModel(t)
	convertPage(t, m, server)
	m.githubInputs[fieldUsername].SetValue("octocat")
	m.githubInputs[fieldToken].SetValue("ghp_x")
	m.githubInputs[fieldRepo].SetValue("octocat/notes")

	server.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Return(models.PublishResponse{}, &adapter.APIError{StatusCode: http.StatusNotFound, Message: "GitHub API error: Not Found"})

	deliver(m, press(m, tea.KeyCtrlS))

	assert.Equal(t, session.Converted, m.session.State)
	assert.Equal(t, "# Page", m.session.Markdown)
	assert.Equal(t, session.Status{Message: "GitHub API error: Not Found", IsError: true}, m.session.Status)
}

func TestPipeline_Copy(t *testing.T) {
	m, server, clip := newTestModel(t)
	convertPage(t, m, server)

	cmd := press(m, tea.KeyCtrlY)
	require.NotNil(t, cmd)
	deliver(m, cmd)

	assert.Equal(t, "# Page", clip.text)
	assert.Equal(t, session.Status{Message: app.MsgCopiedToClipboard}, m.session.Status)
}

func TestPipeline_Copy_Failure(t *testing.T) {
	m, server, clip := newTestModel(t)
	convertPage(t, m, server)
	clip.err = errors.New("no clipboard")

	deliver(m, press(m, tea.KeyCtrlY))

	assert.Equal(t, session.Status{Message: app.MsgClipboardFailed, IsError: true}, m.session.Status)
}

func TestPipeline_Copy_NothingToCopy(t *testing.T) {
	m, _, clip := newTestModel(t)

	assert.Nil(t, press(m, tea.KeyCtrlY))
	assert.Empty(t, clip.text)
	assert.Equal(t, session.Status{Message: app.MsgNothingToCopy, IsError: true}, m.session.Status)
}

func TestPipeline_FocusCycles(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, tea.KeyTab)
	assert.Equal(t, fieldPageURL, m.focus)
	press(m, tea.KeyTab)
	assert.Equal(t, fieldAPIKey, m.focus)
	press(m, tea.KeyShiftTab)
	assert.Equal(t, fieldPageURL, m.focus)
}

func TestPipeline_BuildInfoOverlay(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, tea.KeyF1)
	require.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), "1.0.0")

	// Keys other than esc/f1 are swallowed by the overlay.
	press(m, tea.KeyTab)
	assert.Equal(t, fieldAPIKey, m.focus)

	press(m, tea.KeyEsc)
	assert.False(t, m.showBuildInfo)
}

func TestPipeline_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	cmd := press(m, tea.KeyCtrlC)

	require.NotNil(t, cmd)
	assert.True(t, m.quitByUser)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPipeline_View(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.serverVersion = "2.0.0"

	view := m.View()
	assert.Contains(t, view, "NOTION TO GITHUB")
	assert.Contains(t, view, "1. Convert")
	assert.Contains(t, view, "convert first")
	assert.Contains(t, view, "server 2.0.0")
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "api error", err: &adapter.APIError{StatusCode: 400, Message: app.MsgConvertInputRequired}, want: app.MsgConvertInputRequired},
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: msgServerUnavailable},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestNew_RequiresServer(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServerAdapter)
}
