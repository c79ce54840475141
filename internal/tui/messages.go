package tui

import (
	"github.com/MKhiriev/notion-to-github/models"
)

type convertDoneMsg struct {
	resp models.ConversionResponse
	err  error
}

type uploadDoneMsg struct {
	resp models.PublishResponse
	err  error
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}
