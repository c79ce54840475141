package adapter

import (
	"context"

	"github.com/jomei/notionapi"
)

//go:generate mockgen -source=notion_block_service.go -destination=../mock/notionmock/notion_block_service_mock.go -package=notionmock

// NotionBlockService is the part of notionapi.BlockService the Notion
// adapter needs. Its mock is kept out of internal/mock, which depends on
// the service layer and therefore on this package.
type NotionBlockService interface {
	GetChildren(ctx context.Context, id notionapi.BlockID, pagination *notionapi.Pagination) (*notionapi.GetChildrenResponse, error)
}
