package services

import (
	"context"
	"sync"

	"github.com/hisao5232/my-price-tracker/internal/client/client"
	"github.com/hisao5232/my-price-tracker/internal/client/models"
)

// fakeClient is an in-memory stand-in for the remote API.
type fakeClient struct {
	client.Client

	mu       sync.Mutex
	calls    []string
	items    []models.Item
	keywords []models.Keyword
	found    map[string][]models.Item
	hits     []models.Listing

	trackErr   error
	listErr    error
	trackGate  chan struct{}
	trackStart chan struct{}
}

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) ListItems(context.Context) ([]models.Item, error) {
	f.record("ListItems")
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Item(nil), f.items...), f.listErr
}

func (f *fakeClient) TrackItem(_ context.Context, u string) error {
	f.record("TrackItem " + u)
	if f.trackStart != nil {
		close(f.trackStart)
	}
	if f.trackGate != nil {
		<-f.trackGate
	}
	if f.trackErr != nil {
		return f.trackErr
	}
	f.mu.Lock()
	f.items = append(f.items, models.Item{ID: int64(len(f.items) + 1), URL: u})
	f.mu.Unlock()
	return nil
}

func (f *fakeClient) DeleteItem(_ context.Context, id int64) error {
	f.record("DeleteItem")
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.items[:0]
	for _, it := range f.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeClient) ListKeywords(context.Context) ([]models.Keyword, error) {
	f.record("ListKeywords")
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Keyword(nil), f.keywords...), nil
}

func (f *fakeClient) RegisterKeyword(_ context.Context, kw string) error {
	f.record("RegisterKeyword " + kw)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keywords = append(f.keywords, models.Keyword{ID: int64(len(f.keywords) + 1), Keyword: kw})
	return nil
}

func (f *fakeClient) DeleteKeyword(_ context.Context, id int64) error {
	f.record("DeleteKeyword")
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.keywords[:0]
	for _, k := range f.keywords {
		if k.ID != id {
			kept = append(kept, k)
		}
	}
	f.keywords = kept
	return nil
}

func (f *fakeClient) ItemsByKeyword(_ context.Context, kw string) ([]models.Item, error) {
	f.record("ItemsByKeyword " + kw)
	return f.found[kw], nil
}

func (f *fakeClient) Search(_ context.Context, q string) ([]models.Listing, error) {
	f.record("Search " + q)
	return f.hits, nil
}

func (f *fakeClient) Ping(context.Context) error {
	f.record("Ping")
	return nil
}

func (f *fakeClient) Close() error {
	f.record("Close")
	return nil
}

func yes(string) bool { return true }
func no(string) bool  { return false }
