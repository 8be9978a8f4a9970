package models

import (
	"fmt"
	"time"
)

// PricePoint is one observation of an item's price. A nil Price means the
// scraper could not read one.
type PricePoint struct {
	Price     *int      `json:"price"`
	CreatedAt Timestamp `json:"created_at"`
}

func (p PricePoint) Validate() error {
	if p.CreatedAt.IsZero() {
		return fmt.Errorf("%w: price point without timestamp", ErrInvalid)
	}
	if p.Price != nil && *p.Price < 0 {
		return fmt.Errorf("%w: negative price at %s", ErrInvalid, p.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

// History is the envelope of GET /items/{id}/history.
type History struct {
	History []PricePoint `json:"history"`
}

func (h History) Validate() error {
	for n, p := range h.History {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("history[%d]: %w", n, err)
		}
	}
	return nil
}
