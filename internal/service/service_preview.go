package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/markdown"
	"github.com/MKhiriev/notion-to-github/models"
)

type previewService struct {
	previewer *markdown.Previewer

	logger *logger.Logger
}

func NewPreviewService(previewer *markdown.Previewer, logger *logger.Logger) PreviewService {
	return &previewService{
		previewer: previewer,
		logger:    logger,
	}
}

func (s *previewService) Preview(ctx context.Context, req models.PreviewRequest) (models.PreviewResponse, error) {
	html, err := s.previewer.HTML(req.Content)
	if err != nil {
		return models.PreviewResponse{}, fmt.Errorf("rendering preview: %w", err)
	}

	return models.PreviewResponse{HTML: html}, nil
}
