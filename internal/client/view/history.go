// Package view holds UI state that outlives a single command, such as the
// price history panel.
package view

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/hisao5232/my-price-tracker/internal/client/chart"
	"github.com/hisao5232/my-price-tracker/internal/client/models"
	"github.com/hisao5232/my-price-tracker/internal/logging"
)

// ErrSuperseded is returned by Open when another Open or a Close happened
// before its fetch finished. The result was discarded.
var ErrSuperseded = errors.New("history request superseded")

type State int

const (
	Closed State = iota
	Opening
	Open
)

func (s State) String() string {
	switch s {
	case Opening:
		return "opening"
	case Open:
		return "open"
	default:
		return "closed"
	}
}

// HistoryFetcher loads the price history of one item.
type HistoryFetcher interface {
	ItemHistory(ctx context.Context, itemID int64) ([]models.PricePoint, error)
}

// HistorySnapshot is a copy of the panel state.
type HistorySnapshot struct {
	State  State
	ItemID int64
	Points []models.PricePoint
	Err    error
}

// History is the price history panel: closed -> opening -> open -> closed.
// Only the most recent Open may commit its result.
type History struct {
	api HistoryFetcher
	log logging.Logger

	mu     sync.Mutex
	state  State
	itemID int64
	points []models.PricePoint
	err    error
	token  uint64
	cancel context.CancelFunc
}

func NewHistory(api HistoryFetcher, log logging.Logger) *History {
	return &History{api: api, log: log}
}

// Open shows itemID's history. The previous panel content is cleared at once
// and any fetch still running for it is cancelled.
func (h *History) Open(ctx context.Context, itemID int64) ([]models.PricePoint, error) {
	fctx, cancel := context.WithCancel(ctx)
	defer cancel()

	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
	}
	h.token++
	token := h.token
	h.cancel = cancel
	h.state = Opening
	h.itemID = itemID
	h.points = nil
	h.err = nil
	h.mu.Unlock()

	points, err := h.api.ItemHistory(fctx, itemID)

	h.mu.Lock()
	defer h.mu.Unlock()
	if token != h.token {
		h.log.Debug(ctx, "discarding stale history response", "item_id", itemID)
		return nil, ErrSuperseded
	}
	h.cancel = nil

	if err != nil {
		h.state = Closed
		h.err = err
		return nil, err
	}

	if !chart.Chronological(points) {
		h.log.Warn(ctx, "price history out of order, sorting", "item_id", itemID, "points", len(points))
		points = chart.SortChronological(points)
	} else {
		points = slices.Clone(points)
	}
	if points == nil {
		points = []models.PricePoint{}
	}
	h.points = points
	h.state = Open
	return slices.Clone(points), nil
}

// Close hides the panel, drops its data and invalidates any pending Open.
func (h *History) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	h.token++
	h.state = Closed
	h.itemID = 0
	h.points = nil
	h.err = nil
}

func (h *History) Snapshot() HistorySnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return HistorySnapshot{
		State:  h.state,
		ItemID: h.itemID,
		Points: slices.Clone(h.points),
		Err:    h.err,
	}
}
