package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/draftboard/internal/config"
	"github.com/dbmrq/draftboard/internal/loader"
	"github.com/dbmrq/draftboard/internal/logging"
	"github.com/dbmrq/draftboard/internal/player"
	"github.com/dbmrq/draftboard/internal/watcher"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// loadCmd resolves arg to a file and loads it off the event loop.
func loadCmd(ctx context.Context, gen uint64, arg string, cols config.ColumnsConfig, reload bool) tea.Cmd {
	return func() tea.Msg {
		ctx := logging.WithGeneration(ctx, gen)

		path, err := loader.Resolve(arg)
		if err != nil {
			return LoadFailedMsg{Generation: gen, Path: arg, Err: err}
		}
		ds, err := loader.Load(ctx, path, cols)
		if err != nil {
			return LoadFailedMsg{Generation: gen, Path: path, Err: err}
		}
		return DatasetLoadedMsg{Generation: gen, Path: path, Dataset: ds, Reload: reload}
	}
}

// waitForChange blocks until the watcher reports a change or an error.
// It returns nil once ctx is canceled.
func waitForChange(ctx context.Context, w *watcher.Watcher, errs <-chan error) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-w.Changed():
			return FileChangedMsg{Path: w.Path()}
		case err := <-errs:
			return WatchErrorMsg{Path: w.Path(), Err: err}
		}
	}
}

// copyCmd writes the board to the system clipboard.
func copyCmd(recs []player.Record) tea.Cmd {
	text := BoardText(recs)
	return func() tea.Msg {
		return ClipboardMsg{Count: len(recs), Err: writeClipboard(text)}
	}
}

// BoardText formats selected records one per line in board order.
func BoardText(recs []player.Record) string {
	var b strings.Builder
	for i, r := range recs {
		fmt.Fprintf(&b, "%d. %s", i+1, r.Name())
		if !player.IsUndefined(r.Category) {
			fmt.Fprintf(&b, " (%s)", r.Category)
		}
		if r.Rank != "" {
			fmt.Fprintf(&b, " #%s", r.Rank)
		}
		b.WriteString("\n")
	}
	return b.String()
}
