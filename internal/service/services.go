package service

import (
	"fmt"

	"github.com/MKhiriev/notion-to-github/internal/adapter"
	"github.com/MKhiriev/notion-to-github/internal/config"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/markdown"
)

type Services struct {
	ConversionService ConversionService
	PublishService    PublishService
	PreviewService    PreviewService
	AppInfoService    AppInfoService
}

// NewServices wires the server-side services. Conversion and publishing are
// wrapped with request validation so that invalid input never reaches an
// adapter.
func NewServices(notion adapter.NotionAdapter, github adapter.GitHubAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		ConversionService: NewConversionValidationService().Wrap(NewConversionService(notion, logger)),
		PublishService:    NewPublishValidationService().Wrap(NewPublishService(github, logger)),
		PreviewService:    NewPreviewService(markdown.NewPreviewer(), logger),
		AppInfoService:    appInfoService,
	}, nil
}
