package http

import (
	"fmt"
	"html/template"
	"time"

	"github.com/MKhiriev/notion-to-github/internal/config"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/service"
	"github.com/MKhiriev/notion-to-github/internal/utils"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	page           *template.Template
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	page, err := parsePageTemplate()
	if err != nil {
		return nil, fmt.Errorf("error parsing page template: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		page:           page,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}, nil
}
