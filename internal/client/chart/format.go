package chart

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder stands in for a price the scraper could not read.
const Placeholder = "—"

// Label granularities.
const (
	Date     = "date"
	DateTime = "datetime"
)

type layouts struct {
	date     string
	dateTime string
}

var (
	isoLayouts = layouts{date: "2006-01-02", dateTime: "2006-01-02 15:04"}
	jaLayouts  = layouts{date: "2006/01/02", dateTime: "2006/01/02 15:04"}
	usLayouts  = layouts{date: "01/02/2006", dateTime: "01/02/2006 15:04"}
)

// Formatter renders timestamps and prices for one locale.
type Formatter struct {
	layout   string
	loc      *time.Location
	currency string
	printer  *message.Printer
}

// NewFormatter builds a Formatter. An unparsable locale falls back to ISO
// dates; a nil loc means UTC.
func NewFormatter(locale, currency, granularity string, loc *time.Location) Formatter {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.Und
	}
	if loc == nil {
		loc = time.UTC
	}

	l := layoutsFor(tag)
	layout := l.date
	if granularity == DateTime {
		layout = l.dateTime
	}

	return Formatter{
		layout:   layout,
		loc:      loc,
		currency: currency,
		printer:  message.NewPrinter(tag),
	}
}

func layoutsFor(tag language.Tag) layouts {
	if tag == language.Und {
		return isoLayouts
	}
	base, conf := tag.Base()
	if conf == language.No {
		return isoLayouts
	}
	switch base.String() {
	case "ja":
		return jaLayouts
	case "en":
		if region, _ := tag.Region(); region.String() == "US" {
			return usLayouts
		}
	}
	return isoLayouts
}

// Label formats t in the formatter's zone and layout.
func (f Formatter) Label(t time.Time) string {
	return t.In(f.loc).Format(f.layout)
}

// Price formats p with locale digit grouping, or returns Placeholder.
func (f Formatter) Price(p *int) string {
	if p == nil {
		return Placeholder
	}
	return f.currency + f.printer.Sprintf("%d", *p)
}
