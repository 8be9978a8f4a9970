package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minBarWidth = 10
	barRune     = "█"
)

// Summary holds the extremes and the latest known price.
type Summary struct {
	Min, Max, Last *int
}

// Summarize ignores entries without a price.
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		if e.Price == nil {
			continue
		}
		p := e.Price
		if s.Min == nil || *p < *s.Min {
			s.Min = p
		}
		if s.Max == nil || *p > *s.Max {
			s.Max = p
		}
		s.Last = p
	}
	return s
}

// Draw renders entries as horizontal bars fitted into width columns. With no
// entries it draws an empty plot area.
func Draw(r *lipgloss.Renderer, entries []Entry, f Formatter, width int) string {
	frame := r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	bar := r.NewStyle().Foreground(lipgloss.Color("39"))
	muted := r.NewStyle().Faint(true)

	inner := width - frame.GetHorizontalFrameSize()
	if inner < minBarWidth*2 {
		inner = minBarWidth * 2
	}

	if len(entries) == 0 {
		empty := r.NewStyle().Width(inner).Height(3).Align(lipgloss.Center, lipgloss.Center)
		return frame.Render(empty.Render(muted.Render("no price history yet")))
	}

	labelW, valueW := 0, 0
	for _, e := range entries {
		labelW = max(labelW, lipgloss.Width(e.Label))
		valueW = max(valueW, lipgloss.Width(e.Value))
	}
	barW := max(inner-labelW-valueW-2, minBarWidth)

	sum := Summarize(entries)
	top := 0
	if sum.Max != nil {
		top = *sum.Max
	}

	lines := make([]string, 0, len(entries)+2)
	for _, e := range entries {
		label := e.Label + strings.Repeat(" ", labelW-lipgloss.Width(e.Label))
		value := strings.Repeat(" ", valueW-lipgloss.Width(e.Value)) + e.Value
		cells := ""
		if e.Price != nil && top > 0 {
			n := barCells(*e.Price, top, barW)
			cells = bar.Render(strings.Repeat(barRune, n))
		} else if e.Price == nil {
			cells = muted.Render("·")
		}
		cells += strings.Repeat(" ", barW-lipgloss.Width(cells))
		lines = append(lines, label+" "+cells+" "+value)
	}

	lines = append(lines, "", muted.Render(fmt.Sprintf("min %s  max %s  last %s",
		f.Price(sum.Min), f.Price(sum.Max), f.Price(sum.Last))))

	return frame.Render(strings.Join(lines, "\n"))
}

// barCells scales price against top into [0, width]. Any positive price gets
// at least one cell.
func barCells(price, top, width int) int {
	if price <= 0 || top <= 0 {
		return 0
	}
	n := int(math.Round(float64(price) / float64(top) * float64(width)))
	return min(max(n, 1), width)
}
