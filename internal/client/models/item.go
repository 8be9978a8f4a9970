package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Item is a product registered for price tracking.
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	// SourceID is the marketplace's own product id. The API spells it
	// mercari_id; older backends send site_id.
	SourceID  string    `json:"mercari_id"`
	Price     *int      `json:"price,omitempty"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt Timestamp `json:"created_at"`
}

func (i *Item) UnmarshalJSON(b []byte) error {
	type plain Item
	var aux struct {
		plain
		SiteID *string `json:"site_id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*i = Item(aux.plain)
	if i.SourceID == "" && aux.SiteID != nil {
		i.SourceID = *aux.SiteID
	}
	return nil
}

// Validate checks the invariants the rest of the client relies on.
func (i Item) Validate() error {
	if i.ID <= 0 {
		return fmt.Errorf("%w: item id %d must be positive", ErrInvalid, i.ID)
	}
	if strings.TrimSpace(i.URL) == "" && strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: item %d has neither name nor url", ErrInvalid, i.ID)
	}
	if i.Price != nil && *i.Price < 0 {
		return fmt.Errorf("%w: item %d has negative price", ErrInvalid, i.ID)
	}
	return nil
}

// Listing is one hit of an ad-hoc marketplace search. Hits are not tracked,
// so they carry no id.
type Listing struct {
	Name     string  `json:"name"`
	URL      string  `json:"url"`
	Price    *int    `json:"price,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

func (l Listing) Validate() error {
	if strings.TrimSpace(l.URL) == "" && strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("%w: search hit has neither name nor url", ErrInvalid)
	}
	if l.Price != nil && *l.Price < 0 {
		return fmt.Errorf("%w: search hit has negative price", ErrInvalid)
	}
	return nil
}
