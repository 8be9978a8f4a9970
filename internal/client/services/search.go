package services

import (
	"context"

	"github.com/hisao5232/my-price-tracker/internal/client/cache"
)

// SearchService runs one-off marketplace searches.
type SearchService interface {
	Search(ctx context.Context, query string) error
	Searching() bool
}

type searchService struct {
	store *cache.Store
	flow  Flow
}

func NewSearchService(store *cache.Store) SearchService {
	return &searchService{store: store}
}

func (s *searchService) Search(ctx context.Context, query string) error {
	query, err := NormalizeText("search query", query)
	if err != nil {
		return err
	}
	return s.flow.Run(func() error {
		return s.store.RunSearch(ctx, query)
	})
}

func (s *searchService) Searching() bool { return s.flow.Busy() }
