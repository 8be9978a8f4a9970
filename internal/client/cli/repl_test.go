package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) record(name string, args []string) error {
	if len(args) > 0 {
		name += " " + strings.Join(args, " ")
	}
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) ListItems(context.Context) error { return f.record("list", nil) }
func (f *fakeExec) Track(_ context.Context, args []string) error { return f.record("track", args) }
func (f *fakeExec) Untrack(_ context.Context, args []string) error { return f.record("untrack", args) }
func (f *fakeExec) History(_ context.Context, args []string) error { return f.record("history", args) }
func (f *fakeExec) CloseHistory(context.Context) error { return f.record("close", nil) }
func (f *fakeExec) ListKeywords(context.Context) error { return f.record("keywords", nil) }
func (f *fakeExec) Watch(_ context.Context, args []string) error { return f.record("watch", args) }
func (f *fakeExec) Unwatch(_ context.Context, args []string) error { return f.record("unwatch", args) }
func (f *fakeExec) Found(_ context.Context, args []string) error { return f.record("found", args) }
func (f *fakeExec) Search(_ context.Context, args []string) error { return f.record("search", args) }
func (f *fakeExec) Home(context.Context) error { return f.record("home", nil) }
func (f *fakeExec) Status(context.Context) error { return f.record("status", nil) }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	var out bytes.Buffer

	input := strings.NewReader(strings.Join([]string{
		"help",
		"l",
		"list",
		"track https://jp.mercari.com/item/m1",
		"untrack 3",
		"history #3",
		"close",
		"k",
		"watch asics spike 27cm",
		"unwatch 2",
		"found asics",
		"search  running   shoes ",
		"",
		"HOME",
		"status",
		"foobar",
		"exit",
		"list",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(online)" }, bufio.NewReader(input), &out)

	assert.Equal(t, []string{
		"list",
		"list",
		"track https://jp.mercari.com/item/m1",
		"untrack 3",
		"history #3",
		"close",
		"keywords",
		"watch asics spike 27cm",
		"unwatch 2",
		"found asics",
		"search running shoes",
		"home",
		"status",
	}, exec.calls, "nothing runs after exit")

	joined := out.String()
	assert.Contains(t, joined, "pt (online)> ")
	assert.Contains(t, joined, "Available commands:")
	assert.Contains(t, joined, "Unknown command: foobar")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("list")), io.Discard)

	require.Equal(t, []string{"list"}, exec.calls, "last line without newline still runs")
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("list\nlist\n")), io.Discard)
	assert.Empty(t, exec.calls)
}

func TestRunREPL_SharesWriterWithBackgroundNotices(t *testing.T) {
	var buf bytes.Buffer
	out := &syncWriter{w: &buf}

	lines := make([]string, 0, 50)
	for range 50 {
		lines = append(lines, "status")
	}
	input := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for n := range 50 {
			fmt.Fprintf(out, "notice %d\n", n)
		}
	}()
	runREPL(context.Background(), &fakeExec{}, func() string { return "(online)" }, input, out)
	wg.Wait()

	prompts, notices := 0, 0
	for _, line := range strings.Split(buf.String(), "\n") {
		switch {
		case line == "":
		case line == "pt (online)> ":
			prompts++
		case strings.HasPrefix(line, "notice "):
			notices++
		default:
			t.Errorf("interleaved line %q", line)
		}
	}
	assert.Equal(t, 51, prompts, "one prompt per command plus the one answered by EOF")
	assert.Equal(t, 50, notices)
}
