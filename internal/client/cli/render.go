package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/hisao5232/my-price-tracker/internal/client/cache"
	"github.com/hisao5232/my-price-tracker/internal/client/models"
)

// sectionHead renders the title of a list and its load state. rows is false
// when there is nothing to list below it.
func sectionHead[T any](st styles, title string, snap cache.Snapshot[T], empty string) (lines []string, rows bool) {
	head := st.title.Render(title)
	if snap.Loaded && len(snap.Items) > 0 {
		head += st.muted.Render(fmt.Sprintf(" (%d)", len(snap.Items)))
	}
	lines = append(lines, head)

	switch {
	case !snap.Loaded && snap.Err != nil && !snap.Loading:
		return append(lines, st.err.Render("could not load: "+describeError(snap.Err))), false
	case !snap.Loaded:
		return append(lines, st.muted.Render("loading…")), false
	}

	if snap.Err != nil {
		lines = append(lines, st.warn.Render("showing last loaded data, reload failed: "+describeError(snap.Err)))
	}
	if len(snap.Items) == 0 {
		return append(lines, st.muted.Render(empty)), false
	}
	return lines, true
}

func (a *App) renderItems(title string, snap cache.Snapshot[models.Item], empty string) string {
	lines, rows := sectionHead(a.styles, title, snap, empty)
	if !rows {
		return strings.Join(lines, "\n")
	}

	nameW := max(a.styles.width()-48, 16)
	nameStyle := a.styles.renderer.NewStyle().Width(nameW).MaxWidth(nameW)

	for _, it := range snap.Items {
		name := it.Name
		if name == "" {
			name = it.URL
		}
		line := a.styles.id.Render(fmt.Sprintf("#%-4d", it.ID)) + " " +
			nameStyle.Render(name) + " " +
			a.styles.price.Render(fmt.Sprintf("%10s", a.formatter.Price(it.Price)))
		if it.SourceID != "" {
			line += "  " + a.styles.muted.Render(it.SourceID)
		}
		if !it.CreatedAt.IsZero() {
			line += "  " + a.styles.muted.Render("added "+humanize.Time(it.CreatedAt.Time))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderKeywords(snap cache.Snapshot[models.Keyword]) string {
	title := "Monitored keywords"
	if a.keywords.Watching() {
		title += " [scanning…]"
	}
	lines, rows := sectionHead(a.styles, title, snap, "no keywords yet, add one with: watch <keyword>")
	if !rows {
		return strings.Join(lines, "\n")
	}

	for _, k := range snap.Items {
		line := a.styles.id.Render(fmt.Sprintf("#%-4d", k.ID)) + " " +
			a.styles.price.Render(k.Keyword) + "  " +
			fmt.Sprintf("seen %d", k.SeenCount())
		if !k.CreatedAt.IsZero() {
			line += "  " + a.styles.muted.Render("added "+humanize.Time(k.CreatedAt.Time))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderListings(query string, snap cache.Snapshot[models.Listing]) string {
	lines, rows := sectionHead(a.styles, fmt.Sprintf("Search results for %q", query), snap, "no matches")
	if !rows {
		return strings.Join(lines, "\n")
	}

	for n, l := range snap.Items {
		name := l.Name
		if name == "" {
			name = l.URL
		}
		line := a.styles.id.Render(fmt.Sprintf("%3d.", n+1)) + " " + name + "  " +
			a.styles.price.Render(a.formatter.Price(l.Price))
		if l.URL != "" && l.URL != name {
			line += "\n     " + a.styles.muted.Render(l.URL)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
