package cache

import (
	"context"
	"strings"
	"sync"

	"github.com/hisao5232/my-price-tracker/internal/client/models"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Source is the subset of the gateway the store reads from.
type Source interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	ListKeywords(ctx context.Context) ([]models.Keyword, error)
	ItemsByKeyword(ctx context.Context, keyword string) ([]models.Item, error)
	Search(ctx context.Context, query string) ([]models.Listing, error)
}

// Store owns every collection the CLI renders.
type Store struct {
	src Source

	Items    *Collection[models.Item]
	Keywords *Collection[models.Keyword]
	Search   *Collection[models.Listing]

	mu          sync.Mutex
	byKeyword   map[string]*Collection[models.Item]
	searchQuery string
}

func NewStore(src Source) *Store {
	return &Store{
		src:       src,
		Items:     &Collection[models.Item]{},
		Keywords:  &Collection[models.Keyword]{},
		Search:    &Collection[models.Listing]{},
		byKeyword: make(map[string]*Collection[models.Item]),
	}
}

func (s *Store) RefreshItems(ctx context.Context) error {
	return s.Items.Refresh(ctx, s.src.ListItems)
}

func (s *Store) RefreshKeywords(ctx context.Context) error {
	return s.Keywords.Refresh(ctx, s.src.ListKeywords)
}

// RefreshHome refreshes items and keywords concurrently and waits for both.
// One failing does not stop the other; both errors are returned.
func (s *Store) RefreshHome(ctx context.Context) error {
	var itemsErr, keywordsErr error

	var g errgroup.Group
	g.Go(func() error {
		itemsErr = s.RefreshItems(ctx)
		return nil
	})
	g.Go(func() error {
		keywordsErr = s.RefreshKeywords(ctx)
		return nil
	})
	_ = g.Wait()

	return multierr.Combine(itemsErr, keywordsErr)
}

// KeywordItems returns the collection of items found for keyword, creating
// it on first use.
func (s *Store) KeywordItems(keyword string) *Collection[models.Item] {
	key := strings.TrimSpace(keyword)

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byKeyword[key]
	if !ok {
		c = &Collection[models.Item]{}
		s.byKeyword[key] = c
	}
	return c
}

func (s *Store) RefreshKeywordItems(ctx context.Context, keyword string) error {
	key := strings.TrimSpace(keyword)
	return s.KeywordItems(key).Refresh(ctx, func(ctx context.Context) ([]models.Item, error) {
		return s.src.ItemsByKeyword(ctx, key)
	})
}

// ForgetKeyword drops the cached items of a keyword that no longer exists.
func (s *Store) ForgetKeyword(keyword string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byKeyword, strings.TrimSpace(keyword))
}

// RunSearch replaces the search results with hits for query.
func (s *Store) RunSearch(ctx context.Context, query string) error {
	s.mu.Lock()
	s.searchQuery = query
	s.mu.Unlock()

	return s.Search.Refresh(ctx, func(ctx context.Context) ([]models.Listing, error) {
		return s.src.Search(ctx, query)
	})
}

// SearchQuery is the query of the most recently issued search.
func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}
