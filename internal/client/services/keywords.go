package services

import (
	"context"
	"fmt"

	"github.com/hisao5232/my-price-tracker/internal/client/cache"
	"github.com/hisao5232/my-price-tracker/internal/client/client"
	"github.com/hisao5232/my-price-tracker/internal/logging"
)

// KeywordService runs the monitored-keyword flows. The server owns the
// dedup memory; the client only registers, deletes and reads keywords.
type KeywordService interface {
	Refresh(ctx context.Context) error
	// Watch registers keyword. The server scans the marketplace before it
	// answers, so this is slow.
	Watch(ctx context.Context, keyword string) error
	Unwatch(ctx context.Context, keywordID int64, confirm Confirm) error
	// Found reloads the items the server collected for keyword.
	Found(ctx context.Context, keyword string) error
	Watching() bool
}

type keywordService struct {
	client client.Client
	store  *cache.Store
	log    logging.Logger

	watch   Flow
	unwatch Flow
}

func NewKeywordService(c client.Client, store *cache.Store, log logging.Logger) KeywordService {
	return &keywordService{client: c, store: store, log: log}
}

func (s *keywordService) Refresh(ctx context.Context) error {
	return s.store.RefreshKeywords(ctx)
}

func (s *keywordService) Watch(ctx context.Context, keyword string) error {
	keyword, err := NormalizeText("keyword", keyword)
	if err != nil {
		return err
	}

	return s.watch.Run(func() error {
		if err := s.client.RegisterKeyword(ctx, keyword); err != nil {
			return fmt.Errorf("register keyword: %w", err)
		}
		s.log.Info(ctx, "keyword registered", "keyword", keyword)
		return s.reload(ctx)
	})
}

func (s *keywordService) Unwatch(ctx context.Context, keywordID int64, confirm Confirm) error {
	if err := validID("keyword", keywordID); err != nil {
		return err
	}

	return s.unwatch.Run(func() error {
		label := fmt.Sprintf("#%d", keywordID)
		text := s.keywordText(keywordID)
		if text != "" {
			label = fmt.Sprintf("%q", text)
		}
		if confirm == nil || !confirm(fmt.Sprintf("Stop monitoring keyword %s?", label)) {
			return ErrCancelled
		}

		if err := s.client.DeleteKeyword(ctx, keywordID); err != nil {
			return fmt.Errorf("delete keyword: %w", err)
		}
		s.log.Info(ctx, "keyword deleted", "keyword_id", keywordID)
		if text != "" {
			s.store.ForgetKeyword(text)
		}
		return s.reload(ctx)
	})
}

func (s *keywordService) Found(ctx context.Context, keyword string) error {
	keyword, err := NormalizeText("keyword", keyword)
	if err != nil {
		return err
	}
	return s.store.RefreshKeywordItems(ctx, keyword)
}

func (s *keywordService) keywordText(id int64) string {
	for _, k := range s.store.Keywords.Snapshot().Items {
		if k.ID == id {
			return k.Keyword
		}
	}
	return ""
}

func (s *keywordService) reload(ctx context.Context) error {
	if err := s.store.RefreshKeywords(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrNotRefreshed, err)
	}
	return nil
}

func (s *keywordService) Watching() bool { return s.watch.Busy() }
