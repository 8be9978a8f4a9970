package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const helpText = `Available commands:
  (l)ist               tracked items
  track <url>          start tracking a product page
  untrack <id>         stop tracking an item (asks first)
  history <id>         price chart of an item
  close                close the price chart
  (k)eywords           monitored keywords
  watch <keyword>      monitor a keyword (runs a first scan)
  unwatch <id>         stop monitoring a keyword (asks first)
  found <keyword>      items collected for a keyword
  search <query>       one-off marketplace search
  home                 reload items and keywords
  status               connection and background work
  exit | quit          leave the program`

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	ListItems(ctx context.Context) error
	Track(ctx context.Context, args []string) error
	Untrack(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	CloseHistory(ctx context.Context) error
	ListKeywords(ctx context.Context) error
	Watch(ctx context.Context, args []string) error
	Unwatch(ctx context.Context, args []string) error
	Found(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Home(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the price tracker CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Unknown commands are reported back to the user. The loop exits on EOF,
// when ctx is done, or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print their
// own notices. Prompts and replies go to out, which must be the writer the
// handlers and background flows use so lines never interleave.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "pt %s> \n", statusFn())

		line, ok := readLine(reader)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help", "?":
			fmt.Fprintln(out, helpText)

		case "l", "list":
			_ = a.ListItems(ctx)

		case "track":
			_ = a.Track(ctx, args)

		case "untrack":
			_ = a.Untrack(ctx, args)

		case "history":
			_ = a.History(ctx, args)

		case "close":
			_ = a.CloseHistory(ctx)

		case "k", "keywords":
			_ = a.ListKeywords(ctx)

		case "watch":
			_ = a.Watch(ctx, args)

		case "unwatch":
			_ = a.Unwatch(ctx, args)

		case "found":
			_ = a.Found(ctx, args)

		case "search":
			_ = a.Search(ctx, args)

		case "home":
			_ = a.Home(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}

func readLine(reader *bufio.Reader) (string, bool) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return line, true
		}
		return "", false
	}
	return line, true
}
