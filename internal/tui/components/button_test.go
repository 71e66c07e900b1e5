package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestButtonFocus(t *testing.T) {
	b := NewButton("OK", ButtonStylePrimary)
	if b.Focused() {
		t.Error("button should start unfocused")
	}
	if b.Label() != "OK" {
		t.Errorf("Label = %q", b.Label())
	}

	b.Focus()
	if !b.Focused() {
		t.Error("Focus should focus the button")
	}
	b.Blur()
	if b.Focused() {
		t.Error("Blur should unfocus the button")
	}
}

func TestButtonActivated(t *testing.T) {
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	other := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}

	b := NewButton("Go", ButtonStyleDanger)
	if b.Activated(enter) {
		t.Error("unfocused button should not activate")
	}

	b.Focus()
	if !b.Activated(enter) {
		t.Error("enter should activate")
	}
	if !b.Activated(space) {
		t.Error("space should activate")
	}
	if b.Activated(other) {
		t.Error("other keys should not activate")
	}
	if b.Activated(tea.WindowSizeMsg{}) {
		t.Error("non-key messages should not activate")
	}
}

func TestButtonView(t *testing.T) {
	for _, style := range []ButtonStyle{ButtonStylePrimary, ButtonStyleSecondary, ButtonStyleDanger} {
		b := NewButton("Label", style)
		if !strings.Contains(b.View(), "Label") {
			t.Errorf("style %d: unfocused view missing label", style)
		}
		b.Focus()
		if !strings.Contains(b.View(), "Label") {
			t.Errorf("style %d: focused view missing label", style)
		}
	}
}
