package cli

import (
	"context"
	"fmt"

	"github.com/hisao5232/my-price-tracker/internal/client/services"
)

func (a *App) ListKeywords(ctx context.Context) error {
	err := a.keywords.Refresh(ctx)
	a.println(a.renderKeywords(a.store.Keywords.Snapshot()))
	return err
}

// Watch registers a keyword in the background; the server runs the first
// marketplace scan before answering.
func (a *App) Watch(ctx context.Context, args []string) error {
	raw, err := argOrPrompt(a.reader, args, "Enter keyword to monitor", a.out)
	if err != nil {
		a.notifyErr("watch", err)
		return err
	}
	keyword, err := services.NormalizeText("keyword", raw)
	if err != nil {
		a.notifyErr("watch", err)
		return err
	}
	if a.keywords.Watching() {
		a.notifyErr("watch", services.ErrBusy)
		return services.ErrBusy
	}

	a.notifyInfo(fmt.Sprintf("Scanning the marketplace for %q … this may take a while.", keyword))
	a.background(ctx, func(ctx context.Context) {
		if err := a.keywords.Watch(ctx, keyword); err != nil {
			a.notifyErr("watch", err)
			return
		}
		a.notifyOK(fmt.Sprintf("monitoring %q (type 'keywords' to see it)", keyword))
	})
	return nil
}

func (a *App) Unwatch(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter keyword id to stop monitoring")
	if err != nil {
		a.notifyErr("unwatch", err)
		return err
	}
	if err := a.keywords.Unwatch(ctx, id, a.confirm); err != nil {
		a.notifyErr("unwatch", err)
		return err
	}
	a.notifyOK(fmt.Sprintf("keyword %d is no longer monitored", id))
	return nil
}

// Found lists the items the server collected for a keyword.
func (a *App) Found(ctx context.Context, args []string) error {
	raw, err := argOrPrompt(a.reader, args, "Enter keyword", a.out)
	if err != nil {
		a.notifyErr("found", err)
		return err
	}
	keyword, err := services.NormalizeText("keyword", raw)
	if err != nil {
		a.notifyErr("found", err)
		return err
	}

	err = a.keywords.Found(ctx, keyword)
	a.println(a.renderItems(fmt.Sprintf("Items found for %q", keyword), a.store.KeywordItems(keyword).Snapshot(), "nothing found yet"))
	return err
}
