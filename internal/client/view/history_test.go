package view

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hisao5232/my-price-tracker/internal/client/models"
	"github.com/hisao5232/my-price-tracker/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pending struct {
	started chan struct{}
	release chan struct{}
}

// fakeFetcher serves canned histories. Items listed in gates block until
// their release channel is closed, ignoring cancellation.
type fakeFetcher struct {
	mu      sync.Mutex
	data    map[int64][]models.PricePoint
	errs    map[int64]error
	gates   map[int64]*pending
	ctxErrs map[int64]error
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		data:    map[int64][]models.PricePoint{},
		errs:    map[int64]error{},
		gates:   map[int64]*pending{},
		ctxErrs: map[int64]error{},
	}
}

func (f *fakeFetcher) gate(id int64) *pending {
	p := &pending{started: make(chan struct{}), release: make(chan struct{})}
	f.gates[id] = p
	return p
}

func (f *fakeFetcher) ItemHistory(ctx context.Context, id int64) ([]models.PricePoint, error) {
	f.mu.Lock()
	g := f.gates[id]
	f.mu.Unlock()
	if g != nil {
		close(g.started)
		<-g.release
		f.mu.Lock()
		f.ctxErrs[id] = ctx.Err()
		f.mu.Unlock()
	}
	return f.data[id], f.errs[id]
}

func at(day int, price int) models.PricePoint {
	p := price
	return models.PricePoint{
		Price:     &p,
		CreatedAt: models.Timestamp{Time: time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)},
	}
}

func TestHistory_OpenAndClose(t *testing.T) {
	f := newFakeFetcher()
	f.data[1] = []models.PricePoint{at(1, 100), at(2, 90)}
	h := NewHistory(f, logging.Discard())

	assert.Equal(t, Closed, h.Snapshot().State)

	points, err := h.Open(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, points, 2)

	s := h.Snapshot()
	assert.Equal(t, Open, s.State)
	assert.Equal(t, int64(1), s.ItemID)
	assert.Len(t, s.Points, 2)

	h.Close()
	s = h.Snapshot()
	assert.Equal(t, Closed, s.State)
	assert.Empty(t, s.Points)
}

func TestHistory_StaleResponseDiscarded(t *testing.T) {
	f := newFakeFetcher()
	f.data[1] = []models.PricePoint{at(1, 111)}
	f.data[2] = []models.PricePoint{at(1, 222), at(2, 223)}
	gateA := f.gate(1)
	h := NewHistory(f, logging.Discard())

	errA := make(chan error, 1)
	go func() {
		_, err := h.Open(context.Background(), 1)
		errA <- err
	}()
	<-gateA.started
	assert.Equal(t, Opening, h.Snapshot().State)

	points, err := h.Open(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, points, 2)

	close(gateA.release)
	require.ErrorIs(t, <-errA, ErrSuperseded)

	s := h.Snapshot()
	assert.Equal(t, Open, s.State)
	assert.Equal(t, int64(2), s.ItemID)
	require.Len(t, s.Points, 2)
	assert.Equal(t, 222, *s.Points[0].Price)

	assert.ErrorIs(t, f.ctxErrs[1], context.Canceled, "superseded fetch is cancelled")
}

func TestHistory_OpenClearsPreviousChartImmediately(t *testing.T) {
	f := newFakeFetcher()
	f.data[1] = []models.PricePoint{at(1, 1)}
	h := NewHistory(f, logging.Discard())

	_, err := h.Open(context.Background(), 1)
	require.NoError(t, err)

	gate := f.gate(2)
	done := make(chan struct{})
	go func() {
		_, _ = h.Open(context.Background(), 2)
		close(done)
	}()
	<-gate.started

	s := h.Snapshot()
	assert.Equal(t, Opening, s.State)
	assert.Equal(t, int64(2), s.ItemID)
	assert.Empty(t, s.Points)

	close(gate.release)
	<-done
}

func TestHistory_CloseWhileOpening(t *testing.T) {
	f := newFakeFetcher()
	f.data[1] = []models.PricePoint{at(1, 1)}
	gate := f.gate(1)
	h := NewHistory(f, logging.Discard())

	errc := make(chan error, 1)
	go func() {
		_, err := h.Open(context.Background(), 1)
		errc <- err
	}()
	<-gate.started

	h.Close()
	close(gate.release)

	require.ErrorIs(t, <-errc, ErrSuperseded)
	assert.Equal(t, Closed, h.Snapshot().State)
}

func TestHistory_FailureReturnsToClosed(t *testing.T) {
	f := newFakeFetcher()
	boom := errors.New("boom")
	f.errs[3] = boom
	h := NewHistory(f, logging.Discard())

	_, err := h.Open(context.Background(), 3)
	require.ErrorIs(t, err, boom)

	s := h.Snapshot()
	assert.Equal(t, Closed, s.State)
	assert.ErrorIs(t, s.Err, boom)
}

func TestHistory_EmptyHistoryOpens(t *testing.T) {
	h := NewHistory(newFakeFetcher(), logging.Discard())

	points, err := h.Open(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)
	assert.Equal(t, Open, h.Snapshot().State)
}

func TestHistory_OutOfOrderIsSorted(t *testing.T) {
	f := newFakeFetcher()
	f.data[1] = []models.PricePoint{at(3, 30), at(1, 10), at(2, 20)}
	h := NewHistory(f, logging.Discard())

	points, err := h.Open(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, []int{10, 20, 30}, []int{*points[0].Price, *points[1].Price, *points[2].Price})
	assert.Equal(t, 30, *f.data[1][0].Price, "server data not mutated")
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "opening", Opening.String())
	assert.Equal(t, "open", Open.String())
}
