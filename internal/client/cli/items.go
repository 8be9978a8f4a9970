package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/hisao5232/my-price-tracker/internal/client/chart"
	"github.com/hisao5232/my-price-tracker/internal/client/services"
	"github.com/hisao5232/my-price-tracker/internal/client/view"
)

func (a *App) ListItems(ctx context.Context) error {
	err := a.items.Refresh(ctx)
	a.println(a.renderItems("Tracked items", a.store.Items.Snapshot(), "no tracked items yet, add one with: track <url>"))
	return err
}

// Track registers a product URL. The server scrapes the page before it
// answers, so the request runs in the background.
func (a *App) Track(ctx context.Context, args []string) error {
	raw, err := argOrPrompt(a.reader, args, "Enter product URL", a.out)
	if err != nil {
		a.notifyErr("track", err)
		return err
	}
	itemURL, err := services.NormalizeItemURL(raw, a.config.MarketplaceDomain)
	if err != nil {
		a.notifyErr("track", err)
		return err
	}
	if a.items.Tracking() {
		a.notifyErr("track", services.ErrBusy)
		return services.ErrBusy
	}

	a.notifyInfo("Fetching " + itemURL + " … the server scrapes the page, this can take a minute.")
	a.background(ctx, func(ctx context.Context) {
		if err := a.items.Track(ctx, itemURL); err != nil {
			a.notifyErr("track", err)
			return
		}
		a.notifyOK("now tracking " + itemURL + " (type 'list' to see it)")
	})
	return nil
}

func (a *App) Untrack(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter item id to stop tracking")
	if err != nil {
		a.notifyErr("untrack", err)
		return err
	}

	if err := a.items.Untrack(ctx, id, a.confirm); err != nil {
		a.notifyErr("untrack", err)
		return err
	}
	if snap := a.history.Snapshot(); snap.State != view.Closed && snap.ItemID == id {
		a.history.Close()
	}
	a.notifyOK(fmt.Sprintf("item %d is no longer tracked", id))
	return nil
}

// History opens the price chart of one item.
func (a *App) History(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter item id")
	if err != nil {
		a.notifyErr("history", err)
		return err
	}

	a.notifyInfo(fmt.Sprintf("loading price history of item %d…", id))
	points, err := a.history.Open(ctx, id)
	if errors.Is(err, view.ErrSuperseded) {
		return nil
	}
	if err != nil {
		a.notifyErr("history", err)
		return err
	}

	title := fmt.Sprintf("Price history of item %d", id)
	for _, it := range a.store.Items.Snapshot().Items {
		if it.ID == id && it.Name != "" {
			title = "Price history: " + it.Name
			break
		}
	}

	entries := chart.Project(points, a.formatter)
	a.println(a.styles.title.Render(title) + "\n" + chart.Draw(a.styles.renderer, entries, a.formatter, a.styles.width()))
	return nil
}

func (a *App) CloseHistory(context.Context) error {
	if a.history.Snapshot().State == view.Closed {
		a.notifyInfo("no price chart is open")
		return nil
	}
	a.history.Close()
	a.notifyInfo("price chart closed")
	return nil
}

func (a *App) idArg(args []string, prompt string) (int64, error) {
	s, err := argOrPrompt(a.reader, args, prompt, a.out)
	if err != nil {
		return 0, err
	}
	id, err := parseID(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", services.ErrInvalidInput, err)
	}
	return id, nil
}
