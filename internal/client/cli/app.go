package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/hisao5232/my-price-tracker/internal/client/cache"
	"github.com/hisao5232/my-price-tracker/internal/client/chart"
	"github.com/hisao5232/my-price-tracker/internal/client/client"
	"github.com/hisao5232/my-price-tracker/internal/client/config"
	"github.com/hisao5232/my-price-tracker/internal/client/services"
	"github.com/hisao5232/my-price-tracker/internal/client/view"
	"github.com/hisao5232/my-price-tracker/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

type App struct {
	config *config.Config
	log    logging.Logger

	store    *cache.Store
	history  *view.History
	items    services.ItemService
	keywords services.KeywordService
	search   services.SearchService
	status   services.StatusService

	formatter chart.Formatter
	styles    styles

	reader *bufio.Reader
	// out serialises writes from the REPL and background flows
	out *syncWriter

	modeMu sync.Mutex
	mode   Mode

	// background flows (track, watch)
	wg sync.WaitGroup
}

// NewApp builds the CLI on top of the REST gateway, reading stdin and
// writing stdout.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	apiClient, err := client.NewHTTPClient(c, client.WithLogger(log))
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, log, os.Stdin, os.Stdout)
}

func newApp(c *config.Config, api client.Client, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, fmt.Errorf("time zone: %w", err)
	}

	store := cache.NewStore(api)
	return &App{
		config:    c,
		log:       log,
		store:     store,
		history:   view.NewHistory(api, log),
		items:     services.NewItemService(api, store, c.MarketplaceDomain, log),
		keywords:  services.NewKeywordService(api, store, log),
		search:    services.NewSearchService(store),
		status:    services.NewStatusService(api),
		formatter: chart.NewFormatter(c.Locale, c.Currency, c.ChartGranularity, loc),
		styles:    newStyles(out),
		reader:    bufio.NewReader(in),
		out:       &syncWriter{w: out},
	}, nil
}

func (a *App) Mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(ctx, "connection mode changed", "mode", mode)
	}
}

// Run starts the REPL and blocks until the user exits or ctx ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		a.wg.Wait()
		_ = a.status.Close(ctx)
	}()
	a.Root(ctx)
}

// StartOnlineStatusWatcher pings the API every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.status.Ping(pctx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// background runs fn outside the REPL so a slow flow does not block input.
func (a *App) background(ctx context.Context, fn func(ctx context.Context)) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		fn(ctx)
	}()
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// confirm is the services.Confirm used by delete flows.
func (a *App) confirm(question string) bool {
	return GetConfirmation(a.reader, a.styles.warn.Render(question), a.out)
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
