package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var calls atomic.Int32
	for i := 0; i < 10; i++ {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)

	if n := calls.Load(); n != 1 {
		t.Errorf("expected 1 call, got %d", n)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var called atomic.Bool
	d.Trigger(func() { called.Store(true) })
	d.Cancel()

	time.Sleep(100 * time.Millisecond)

	if called.Load() {
		t.Error("callback should not run after Cancel")
	}
}

func TestDebouncer_DefaultDuration(t *testing.T) {
	if d := NewDebouncer(0); d.Duration() != DefaultDebounceDuration {
		t.Errorf("expected %v, got %v", DefaultDebounceDuration, d.Duration())
	}
}

func waitChanged(t *testing.T, w *Watcher, timeout time.Duration) bool {
	t.Helper()
	select {
	case <-w.Changed():
		return true
	case <-time.After(timeout):
		return false
	}
}

func TestWatcher_DetectsChange(t *testing.T) {
	for _, poll := range []bool{false, true} {
		name := "fsnotify"
		if poll {
			name = "polling"
		}
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "players.csv")
			if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
				t.Fatal(err)
			}

			w, err := New(path,
				WithDebounce(20*time.Millisecond),
				WithPollInterval(20*time.Millisecond),
				WithForcePoll(poll))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if err := w.Start(); err != nil {
				t.Fatalf("Start() error = %v", err)
			}
			defer w.Stop()

			if poll && !w.IsPolling() {
				t.Error("expected polling mode")
			}

			time.Sleep(50 * time.Millisecond)
			if err := os.WriteFile(path, []byte("ab"), 0644); err != nil {
				t.Fatal(err)
			}

			if !waitChanged(t, w, 2*time.Second) {
				t.Fatal("expected a change notification")
			}
		})
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "players.csv")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()
	if w.IsPolling() {
		t.Skip("fsnotify unavailable")
	}

	if err := os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if waitChanged(t, w, 200*time.Millisecond) {
		t.Error("changes to other files should be ignored")
	}
}

func TestWatcher_ReportsRemoval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.csv")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	errCh := make(chan error, 4)
	w, err := New(path,
		WithPollInterval(20*time.Millisecond),
		WithForcePoll(true),
		WithOnError(func(err error) { errCh <- err }))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrFileRemoved) {
			t.Errorf("expected ErrFileRemoved, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a removal error")
	}
}

func TestWatcher_StartTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.csv")
	w, err := New(path, WithForcePoll(true))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	if err := w.Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("expected ErrAlreadyStarted, got %v", err)
	}
	if !filepath.IsAbs(w.Path()) {
		t.Errorf("Path() should be absolute, got %q", w.Path())
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "players.csv"), WithForcePoll(true))
	if err != nil {
		t.Fatal(err)
	}
	w.Stop()
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()
}
