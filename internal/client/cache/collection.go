package cache

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Snapshot is a point-in-time copy of a Collection.
type Snapshot[T any] struct {
	Items []T
	// Loaded is true once any refresh succeeded. Together with Loading it
	// tells "empty" apart from "not fetched yet".
	Loaded    bool
	Loading   bool
	Err       error
	UpdatedAt time.Time
}

// FetchFunc loads the full contents of a collection.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Collection is a refreshable cached list. The zero value is ready to use.
type Collection[T any] struct {
	mu sync.Mutex

	items     []T
	loaded    bool
	err       error
	updatedAt time.Time

	inflight  int
	issued    uint64
	committed uint64
	errToken  uint64
}

// Refresh runs fetch and, if no newer refresh has committed meanwhile,
// replaces the contents with its result. It returns fetch's error.
func (c *Collection[T]) Refresh(ctx context.Context, fetch FetchFunc[T]) error {
	c.mu.Lock()
	c.issued++
	token := c.issued
	c.inflight++
	c.mu.Unlock()

	items, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--

	if err != nil {
		if token > c.committed && token > c.errToken {
			c.err = err
			c.errToken = token
		}
		return err
	}

	if token <= c.committed {
		return nil
	}
	c.items = slices.Clone(items)
	if c.items == nil {
		c.items = []T{}
	}
	c.loaded = true
	c.committed = token
	c.updatedAt = time.Now()
	if token > c.errToken {
		c.err = nil
	}
	return nil
}

// Snapshot returns a copy that callers may keep and modify.
func (c *Collection[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot[T]{
		Items:     slices.Clone(c.items),
		Loaded:    c.loaded,
		Loading:   c.inflight > 0,
		Err:       c.err,
		UpdatedAt: c.updatedAt,
	}
}
