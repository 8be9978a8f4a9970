package services

import (
	"context"
	"fmt"

	"github.com/hisao5232/my-price-tracker/internal/client/cache"
	"github.com/hisao5232/my-price-tracker/internal/client/client"
	"github.com/hisao5232/my-price-tracker/internal/logging"
)

// ItemService runs the tracked-item flows.
//
// Contract:
//   - Refresh: reload the tracked items.
//   - Track: register a product by URL, then reload.
//   - Untrack: delete a tracked item after confirmation, then reload.
//   - Tracking/Untracking: whether the matching control is in flight.
type ItemService interface {
	Refresh(ctx context.Context) error
	Track(ctx context.Context, rawURL string) error
	Untrack(ctx context.Context, itemID int64, confirm Confirm) error
	Tracking() bool
	Untracking() bool
}

type itemService struct {
	client client.Client
	store  *cache.Store
	domain string
	log    logging.Logger

	track   Flow
	untrack Flow
}

// NewItemService wires the item flows. domain restricts tracked URLs; pass
// "" to accept any https URL.
func NewItemService(c client.Client, store *cache.Store, domain string, log logging.Logger) ItemService {
	return &itemService{client: c, store: store, domain: domain, log: log}
}

func (s *itemService) Refresh(ctx context.Context) error {
	return s.store.RefreshItems(ctx)
}

func (s *itemService) Track(ctx context.Context, rawURL string) error {
	itemURL, err := NormalizeItemURL(rawURL, s.domain)
	if err != nil {
		return err
	}

	return s.track.Run(func() error {
		if err := s.client.TrackItem(ctx, itemURL); err != nil {
			return fmt.Errorf("track item: %w", err)
		}
		s.log.Info(ctx, "item tracked", "url", itemURL)
		return s.reload(ctx)
	})
}

func (s *itemService) Untrack(ctx context.Context, itemID int64, confirm Confirm) error {
	if err := validID("item", itemID); err != nil {
		return err
	}

	return s.untrack.Run(func() error {
		if confirm == nil || !confirm(fmt.Sprintf("Stop tracking item %d and delete its price history?", itemID)) {
			return ErrCancelled
		}
		if err := s.client.DeleteItem(ctx, itemID); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		s.log.Info(ctx, "item deleted", "item_id", itemID)
		return s.reload(ctx)
	})
}

func (s *itemService) reload(ctx context.Context) error {
	if err := s.store.RefreshItems(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrNotRefreshed, err)
	}
	return nil
}

func (s *itemService) Tracking() bool   { return s.track.Busy() }
func (s *itemService) Untracking() bool { return s.untrack.Busy() }
