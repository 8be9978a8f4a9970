package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Keyword is a monitored search query. LastSeenIDs is the server's dedup
// memory; the client only ever shows its size.
type Keyword struct {
	ID          int64     `json:"id"`
	Keyword     string    `json:"keyword"`
	LastSeenIDs SeenIDs   `json:"last_seen_ids"`
	CreatedAt   Timestamp `json:"created_at"`
}

// SeenCount is the number of listings the server has already reported.
func (k Keyword) SeenCount() int {
	return len(k.LastSeenIDs)
}

func (k Keyword) Validate() error {
	if k.ID <= 0 {
		return fmt.Errorf("%w: keyword id %d must be positive", ErrInvalid, k.ID)
	}
	if strings.TrimSpace(k.Keyword) == "" {
		return fmt.Errorf("%w: keyword %d is blank", ErrInvalid, k.ID)
	}
	return nil
}

// SeenIDs is an unordered set of marketplace ids. It decodes from a JSON
// array of strings or numbers; null decodes to an empty set.
type SeenIDs []string

func (s *SeenIDs) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*s = SeenIDs{}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: last_seen_ids must be an array", ErrInvalid)
	}

	ids := make(SeenIDs, 0, len(raw))
	for _, r := range raw {
		var str string
		if err := json.Unmarshal(r, &str); err == nil {
			ids = append(ids, str)
			continue
		}
		var num json.Number
		dec := json.NewDecoder(bytes.NewReader(r))
		dec.UseNumber()
		if err := dec.Decode(&num); err != nil {
			return fmt.Errorf("%w: last_seen_ids entry %s", ErrInvalid, string(r))
		}
		if _, err := strconv.ParseFloat(num.String(), 64); err != nil {
			return fmt.Errorf("%w: last_seen_ids entry %s", ErrInvalid, string(r))
		}
		ids = append(ids, num.String())
	}
	*s = ids
	return nil
}
