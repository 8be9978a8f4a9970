package cli

import (
	"context"
)

func (a *App) Search(ctx context.Context, args []string) error {
	query, err := argOrPrompt(a.reader, args, "Enter search query", a.out)
	if err != nil {
		a.notifyErr("search", err)
		return err
	}

	a.notifyInfo("searching…")
	if err := a.search.Search(ctx, query); err != nil {
		a.notifyErr("search", err)
		return err
	}
	a.println(a.renderListings(a.store.SearchQuery(), a.store.Search.Snapshot()))
	return nil
}
