package tui

import (
	"strings"

	"github.com/MKhiriev/notion-to-github/internal/session"
)

const hotKeys = "tab/shift+tab: field  enter/ctrl+s: submit  ctrl+t: switch tab  ctrl+y: copy markdown  f1: about"

func (m *pipelineModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	var b strings.Builder

	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.tab == convertTab {
		b.WriteString("Notion API key: " + m.notionInputs[fieldAPIKey].View() + "\n")
		b.WriteString("Page URL:       " + m.notionInputs[fieldPageURL].View() + "\n")
	} else {
		b.WriteString("Username:   " + m.githubInputs[fieldUsername].View() + "\n")
		b.WriteString("Token:      " + m.githubInputs[fieldToken].View() + "\n")
		b.WriteString("Repository: " + m.githubInputs[fieldRepo].View() + "\n")
		b.WriteString("Path:       " + m.githubInputs[fieldPath].View() + "\n")
		b.WriteString("Filename:   " + m.githubInputs[fieldFilename].View() + "\n\n")
		b.WriteString(m.editor.View() + "\n")
	}

	if line := m.viewStatus(); line != "" {
		b.WriteString("\n" + line + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("client "+valueOrNA(m.buildInfo.BuildVersion())+"  server "+valueOrNA(m.serverVersion)))

	return renderPage("NOTION TO GITHUB", b.String(), hotKeys)
}

func (m *pipelineModel) viewTabs() string {
	convert := tabStyle.Render("1. Convert")
	upload := tabStyle.Render("2. Upload")
	if m.tab == convertTab {
		convert = activeTabStyle.Render("1. Convert")
	} else {
		upload = activeTabStyle.Render("2. Upload")
	}
	if !m.session.CanUpload() {
		upload = tabStyle.Render("2. Upload (convert first)")
	}
	return convert + "   " + upload
}

func (m *pipelineModel) viewStatus() string {
	switch m.session.State {
	case session.Converting:
		return "Converting..."
	case session.Uploading:
		return "Uploading..."
	}

	status := m.session.Status
	if status.Message == "" {
		return ""
	}
	if status.IsError {
		return errorStyle.Render(status.Message)
	}

	line := successStyle.Render(status.Message)
	if m.session.State == session.Uploaded && m.session.FileURL != "" {
		line += "\n" + m.session.FileURL
	}
	return line
}
