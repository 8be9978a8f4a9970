package cli

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/hisao5232/my-price-tracker/internal/client/client"
	"github.com/hisao5232/my-price-tracker/internal/client/services"
	"golang.org/x/term"
)

const defaultWidth = 80

// termSize is a test seam for term.GetSize.
var termSize = term.GetSize

type styles struct {
	renderer *lipgloss.Renderer

	title lipgloss.Style
	muted lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	err   lipgloss.Style
	id    lipgloss.Style
	price lipgloss.Style

	fd    int
	isTTY bool
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	s := styles{
		renderer: r,
		title:    r.NewStyle().Bold(true).Underline(true),
		muted:    r.NewStyle().Faint(true),
		ok:       r.NewStyle().Foreground(lipgloss.Color("42")),
		warn:     r.NewStyle().Foreground(lipgloss.Color("214")),
		err:      r.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		id:       r.NewStyle().Foreground(lipgloss.Color("244")),
		price:    r.NewStyle().Bold(true),
	}
	if f, ok := w.(*os.File); ok {
		s.fd = int(f.Fd())
		s.isTTY = term.IsTerminal(s.fd)
	}
	return s
}

// width of the output terminal, or defaultWidth when unknown.
func (s styles) width() int {
	if !s.isTTY {
		return defaultWidth
	}
	w, _, err := termSize(s.fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func (a *App) notifyOK(msg string) {
	a.println(a.styles.ok.Render("✓ " + msg))
}

func (a *App) notifyInfo(msg string) {
	a.println(a.styles.muted.Render(msg))
}

func (a *App) notifyErr(action string, err error) {
	style := a.styles.err
	if errors.Is(err, services.ErrCancelled) || errors.Is(err, services.ErrBusy) || errors.Is(err, services.ErrNotRefreshed) {
		style = a.styles.warn
	}
	a.println(style.Render("✗ " + action + ": " + describeError(err)))
}

// describeError turns gateway and flow errors into one line for the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, services.ErrCancelled):
		return "cancelled, nothing was sent"
	case errors.Is(err, services.ErrBusy):
		return "already in progress, please wait"
	case errors.Is(err, services.ErrInvalidInput):
		return err.Error()
	case errors.Is(err, services.ErrNotRefreshed):
		return "done, but the list could not be reloaded (" + err.Error() + ")"
	case errors.Is(err, client.ErrUnauthorized):
		return "not authorised, check the API key (" + err.Error() + ")"
	case errors.Is(err, client.ErrTransport):
		return "server unreachable, try again later (" + err.Error() + ")"
	case errors.Is(err, client.ErrDecode):
		return "unexpected answer from the server (" + err.Error() + ")"
	case errors.Is(err, errNoInput):
		return "nothing entered"
	default:
		return err.Error()
	}
}
