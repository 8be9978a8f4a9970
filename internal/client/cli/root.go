package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

func (a *App) getStatus() string {
	parts := make([]string, 0, 4)
	if m := a.Mode(); m != "" {
		parts = append(parts, string(m))
	}
	if a.items.Tracking() {
		parts = append(parts, "tracking…")
	}
	if a.items.Untracking() {
		parts = append(parts, "deleting…")
	}
	if a.keywords.Watching() {
		parts = append(parts, "scanning…")
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

// Root prints the home screen and runs the REPL until the user leaves.
func (a *App) Root(ctx context.Context) {
	a.println(a.styles.title.Render("Price Tracker CLI") + a.styles.muted.Render(" (type 'help' for commands)"))

	a.checkOnline(ctx)
	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	_ = a.Home(ctx)

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

// Home refreshes items and keywords together and shows both.
func (a *App) Home(ctx context.Context) error {
	err := a.store.RefreshHome(ctx)
	a.println(a.renderItems("Tracked items", a.store.Items.Snapshot(), "no tracked items yet, add one with: track <url>"))
	a.println()
	a.println(a.renderKeywords(a.store.Keywords.Snapshot()))
	return err
}

func (a *App) Status(context.Context) error {
	mode := a.Mode()
	if mode == "" {
		mode = "unknown"
	}
	key := "not set (track, untrack and search are disabled)"
	if strings.TrimSpace(a.config.APIKey) != "" {
		key = "set"
	}

	lines := []string{
		a.styles.title.Render("Status"),
		"server:   " + a.config.APIBaseURL + " (" + string(mode) + ")",
		"api key:  " + key,
		"items:    " + refreshedAt(a.store.Items.Snapshot().UpdatedAt),
		"keywords: " + refreshedAt(a.store.Keywords.Snapshot().UpdatedAt),
		"chart:    " + a.history.Snapshot().State.String(),
	}
	if a.items.Tracking() {
		lines = append(lines, "tracking a new item…")
	}
	if a.items.Untracking() {
		lines = append(lines, "deleting an item…")
	}
	if a.keywords.Watching() {
		lines = append(lines, "scanning for a new keyword…")
	}
	a.println(strings.Join(lines, "\n"))
	return nil
}

func refreshedAt(t time.Time) string {
	if t.IsZero() {
		return "never loaded"
	}
	return "loaded " + humanize.Time(t)
}
