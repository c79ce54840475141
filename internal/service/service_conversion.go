package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/notion-to-github/internal/adapter"
	"github.com/MKhiriev/notion-to-github/internal/app"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/markdown"
	"github.com/MKhiriev/notion-to-github/internal/pageurl"
	"github.com/MKhiriev/notion-to-github/models"
)

type conversionService struct {
	notion adapter.NotionAdapter

	logger *logger.Logger
}

func NewConversionService(notion adapter.NotionAdapter, logger *logger.Logger) ConversionService {
	return &conversionService{
		notion: notion,
		logger: logger,
	}
}

// Convert extracts the page id from req.PageURL, fetches the page and
// renders it. Every Notion failure is reported as [ErrConversionFailed].
func (s *conversionService) Convert(ctx context.Context, req models.ConversionRequest) (models.ConversionResponse, error) {
	log := logger.FromContext(ctx)

	pageID, err := pageurl.ExtractPageID(req.PageURL)
	if err != nil {
		return models.ConversionResponse{}, fmt.Errorf("%w: %w", ErrInvalidNotionURL, err)
	}

	nodes, err := s.notion.FetchPageBlocks(ctx, req.APIKey, pageID)
	if err != nil {
		log.Err(err).Str("page_id", pageID).Msg("fetching notion page failed")
		return models.ConversionResponse{}, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	log.Debug().Str("page_id", pageID).Int("blocks", len(nodes)).Msg("notion page converted")

	return models.ConversionResponse{
		Message:  app.MsgConverted,
		Markdown: markdown.Render(nodes),
		PageID:   pageID,
	}, nil
}
