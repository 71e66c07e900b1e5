package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestHelpOverlayToggle(t *testing.T) {
	h := NewHelpOverlay()
	if h.IsVisible() {
		t.Error("help should be hidden by default")
	}
	h.Toggle()
	if !h.IsVisible() {
		t.Error("Toggle should show help")
	}
	h.Toggle()
	if h.IsVisible() {
		t.Error("second Toggle should hide help")
	}
}

func TestHelpOverlayMarkdown(t *testing.T) {
	h := NewHelpOverlay()
	h.SetGroups([]ShortcutGroup{
		{Title: "Board", Shortcuts: []Shortcut{{"space", "Toggle player"}}},
	})

	md := h.Markdown()
	for _, want := range []string{"## Board", "| `space` | Toggle player |"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestHelpOverlayView(t *testing.T) {
	h := NewHelpOverlay()
	h.SetSize(70, 40)
	if h.View() != "" {
		t.Error("hidden help should render nothing")
	}

	h.Show()
	// Glamour styles words individually, so compare the plain text.
	view := ansi.Strip(h.View())
	for _, want := range []string{"Keyboard Shortcuts", "Navigation", "Move down"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestHelpOverlayClose(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("?")},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		h := NewHelpOverlay()
		h.Show()
		cmd := h.Update(k)
		if h.IsVisible() {
			t.Errorf("%s should close help", k)
		}
		if cmd == nil {
			t.Fatalf("%s: expected a command", k)
		}
		if _, ok := cmd().(HelpClosedMsg); !ok {
			t.Errorf("%s: expected HelpClosedMsg", k)
		}
	}
}

func TestHelpOverlayScrollKeysKeepItOpen(t *testing.T) {
	h := NewHelpOverlay()
	h.SetSize(70, 10)
	h.Show()
	h.Update(tea.KeyMsg{Type: tea.KeyDown})
	if !h.IsVisible() {
		t.Error("scrolling should not close help")
	}
}
