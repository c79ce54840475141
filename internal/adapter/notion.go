package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/markdown"
	"github.com/jomei/notionapi"
)

const (
	notionPageSize = 100
	// notionMaxDepth stops runaway recursion on pathological pages.
	notionMaxDepth = 32
)

type notionAdapter struct {
	newBlockService func(apiKey string) NotionBlockService
	logger          *logger.Logger
}

// NewNotionAdapter constructs a [NotionAdapter] that builds a fresh notionapi
// client for every call, authenticated with the caller's key.
func NewNotionAdapter(logger *logger.Logger) NotionAdapter {
	return &notionAdapter{
		newBlockService: func(apiKey string) NotionBlockService {
			return notionapi.NewClient(notionapi.Token(apiKey)).Block
		},
		logger: logger,
	}
}

// FetchPageBlocks implements [NotionAdapter]. Block children are read page by
// page and blocks that report children are expanded depth-first.
func (n *notionAdapter) FetchPageBlocks(ctx context.Context, apiKey, pageID string) ([]markdown.Node, error) {
	svc := n.newBlockService(apiKey)

	nodes, err := n.fetchChildren(ctx, svc, notionapi.BlockID(pageID), 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotionRequest, err)
	}

	n.logger.Debug().Str("page_id", pageID).Int("blocks", len(nodes)).Msg("fetched notion page")
	return nodes, nil
}

func (n *notionAdapter) fetchChildren(ctx context.Context, svc NotionBlockService, id notionapi.BlockID, depth int) ([]markdown.Node, error) {
	if depth > notionMaxDepth {
		n.logger.Warn().Str("block_id", string(id)).Msg("notion block nesting too deep, truncating")
		return nil, nil
	}

	var nodes []markdown.Node
	pagination := &notionapi.Pagination{PageSize: notionPageSize}

	for {
		resp, err := svc.GetChildren(ctx, id, pagination)
		if err != nil {
			return nil, fmt.Errorf("get children of %s: %w", id, err)
		}

		for _, block := range resp.Results {
			node := markdown.Node{Block: block}

			if expandable(block) {
				children, err := n.fetchChildren(ctx, svc, block.GetID(), depth+1)
				if err != nil {
					return nil, err
				}
				node.Children = children
			}

			nodes = append(nodes, node)
		}

		if !resp.HasMore || resp.NextCursor == "" {
			return nodes, nil
		}
		pagination = &notionapi.Pagination{
			StartCursor: notionapi.Cursor(resp.NextCursor),
			PageSize:    notionPageSize,
		}
	}
}

// expandable reports whether block's children belong to the current page.
func expandable(block notionapi.Block) bool {
	if !block.GetHasChildren() {
		return false
	}
	_, isChildPage := block.(*notionapi.ChildPageBlock)
	return !isChildPage
}
