package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewConfirmDialog(t *testing.T) {
	c := NewConfirmDialog()

	if c.IsVisible() {
		t.Error("ConfirmDialog should be hidden by default")
	}
	if c.width != 50 {
		t.Errorf("Default width should be 50, got %d", c.width)
	}
	if c.View() != "" {
		t.Error("hidden dialog should render nothing")
	}
}

func TestConfirmDialogShowClear(t *testing.T) {
	c := NewConfirmDialog()
	c.ShowClear(7)

	if !c.IsVisible() {
		t.Error("ShowClear should make dialog visible")
	}
	if c.Action() != ConfirmActionClear {
		t.Errorf("Action = %q, want clear", c.Action())
	}
	if !c.destructive {
		t.Error("clearing the board should be destructive")
	}
	if !strings.Contains(c.message, "7") {
		t.Errorf("message should mention the count: %q", c.message)
	}
}

func TestConfirmDialogShowSelectAll(t *testing.T) {
	c := NewConfirmDialog()
	c.ShowSelectAll()

	if c.Action() != ConfirmActionSelectAll {
		t.Errorf("Action = %q, want select_all", c.Action())
	}
	if c.destructive {
		t.Error("select all should not be destructive")
	}
}

func TestConfirmDialogKeys(t *testing.T) {
	tests := []struct {
		name    string
		key     tea.KeyMsg
		wantYes bool
	}{
		{"y confirms", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true},
		{"Y confirms", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, true},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, true},
		{"n cancels", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, false},
		{"esc cancels", tea.KeyMsg{Type: tea.KeyEsc}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfirmDialog()
			c.ShowClear(3)

			cmd := c.Update(tt.key)
			if cmd == nil {
				t.Fatal("expected a command")
			}
			if c.IsVisible() {
				t.Error("dialog should hide after answering")
			}

			msg := cmd()
			if tt.wantYes {
				yes, ok := msg.(ConfirmYesMsg)
				if !ok {
					t.Fatalf("got %T, want ConfirmYesMsg", msg)
				}
				if yes.Action != ConfirmActionClear {
					t.Errorf("Action = %q, want clear", yes.Action)
				}
			} else if _, ok := msg.(ConfirmNoMsg); !ok {
				t.Fatalf("got %T, want ConfirmNoMsg", msg)
			}
		})
	}
}

func TestConfirmDialogIgnoresOtherKeys(t *testing.T) {
	c := NewConfirmDialog()
	c.ShowClear(1)

	if cmd := c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}); cmd != nil {
		t.Error("unrelated key should not answer the dialog")
	}
	if !c.IsVisible() {
		t.Error("dialog should stay visible")
	}
}

func TestConfirmDialogView(t *testing.T) {
	c := NewConfirmDialog()
	c.ShowClear(2)

	view := c.View()
	for _, want := range []string{"Clear Board?", "[Y]es", "[N]o"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestConfirmDialogButtonFocus(t *testing.T) {
	c := NewConfirmDialog()
	c.ShowClear(4)

	if !c.yes.Focused() || c.no.Focused() {
		t.Fatal("yes should be focused when shown")
	}

	if cmd := c.Update(tea.KeyMsg{Type: tea.KeyTab}); cmd != nil {
		t.Error("moving focus should not answer")
	}
	if !c.no.Focused() || c.yes.Focused() {
		t.Fatal("tab should move focus to no")
	}

	cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should answer")
	}
	if _, ok := cmd().(ConfirmNoMsg); !ok {
		t.Error("enter on a focused no should cancel")
	}

	// Showing again resets focus.
	c.ShowSelectAll()
	if !c.yes.Focused() {
		t.Error("yes should be focused again")
	}
	c.Update(tea.KeyMsg{Type: tea.KeyRight})
	c.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if !c.yes.Focused() {
		t.Error("left should move focus back to yes")
	}
}
