package tui

import (
	"github.com/dbmrq/draftboard/internal/player"
)

// Messages produced by commands running off the event loop. Every load
// message carries the generation of the request that started it so that
// results of superseded loads can be dropped.

// DatasetLoadedMsg is sent when a file was read and parsed.
type DatasetLoadedMsg struct {
	Generation uint64
	// Path is the resolved file, after glob matching.
	Path    string
	Dataset *player.Dataset
	// Reload is set for loads triggered by the file watcher.
	Reload bool
}

// LoadFailedMsg is sent when a file could not be read or parsed.
type LoadFailedMsg struct {
	Generation uint64
	Path       string
	Err        error
}

// FileChangedMsg is sent when the watched file changed on disk.
type FileChangedMsg struct {
	Path string
}

// WatchErrorMsg reports a file watcher problem.
type WatchErrorMsg struct {
	Path string
	Err  error
}

// ClipboardMsg reports the result of copying the board.
type ClipboardMsg struct {
	Count int
	Err   error
}
