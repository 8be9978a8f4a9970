package client

import (
	"context"

	"github.com/hisao5232/my-price-tracker/internal/client/models"
)

// Client is everything the CLI needs from the remote API. Mutations report
// success or failure only; callers refresh afterwards.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	ListItems(ctx context.Context) ([]models.Item, error)
	ItemHistory(ctx context.Context, itemID int64) ([]models.PricePoint, error)
	TrackItem(ctx context.Context, itemURL string) error
	DeleteItem(ctx context.Context, itemID int64) error

	ListKeywords(ctx context.Context) ([]models.Keyword, error)
	RegisterKeyword(ctx context.Context, keyword string) error
	DeleteKeyword(ctx context.Context, keywordID int64) error
	ItemsByKeyword(ctx context.Context, keyword string) ([]models.Item, error)

	Search(ctx context.Context, query string) ([]models.Listing, error)
}
