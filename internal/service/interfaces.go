package service

import (
	"context"

	"github.com/MKhiriev/notion-to-github/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConversionService turns a Notion page into Markdown.
type ConversionService interface {
	Convert(ctx context.Context, req models.ConversionRequest) (models.ConversionResponse, error)
}

// PublishService commits Markdown to a GitHub repository.
type PublishService interface {
	Publish(ctx context.Context, req models.PublishRequest) (models.PublishResponse, error)
}

// PreviewService renders Markdown to HTML for the form preview.
type PreviewService interface {
	Preview(ctx context.Context, req models.PreviewRequest) (models.PreviewResponse, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ConversionServiceWrapper defines middleware composition for ConversionService.
// Implementations wrap an existing ConversionService to add behavior such as
// logging or validating.
type ConversionServiceWrapper interface {
	Wrap(ConversionService) ConversionService
}

// PublishServiceWrapper defines middleware composition for PublishService.
type PublishServiceWrapper interface {
	Wrap(PublishService) PublishService
}
