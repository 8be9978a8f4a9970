package chart

import (
	"slices"

	"github.com/hisao5232/my-price-tracker/internal/client/models"
)

// Entry is one chart point.
type Entry struct {
	Label string
	Price *int
	// Value is Price formatted for display.
	Value string
}

// Project maps points to entries, one for one and in order.
func Project(points []models.PricePoint, f Formatter) []Entry {
	out := make([]Entry, 0, len(points))
	for _, p := range points {
		var price *int
		if p.Price != nil {
			v := *p.Price
			price = &v
		}
		out = append(out, Entry{
			Label: f.Label(p.CreatedAt.Time),
			Price: price,
			Value: f.Price(price),
		})
	}
	return out
}

// Chronological reports whether points are in non-decreasing time order.
func Chronological(points []models.PricePoint) bool {
	return slices.IsSortedFunc(points, comparePoints)
}

// SortChronological returns a time-ordered copy. Equal timestamps keep their
// relative order.
func SortChronological(points []models.PricePoint) []models.PricePoint {
	out := slices.Clone(points)
	slices.SortStableFunc(out, comparePoints)
	return out
}

func comparePoints(a, b models.PricePoint) int {
	return a.CreatedAt.Compare(b.CreatedAt.Time)
}
