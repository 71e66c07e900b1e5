package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/draftboard/internal/tui/styles"
)

// ButtonStyle represents the visual style of a button.
type ButtonStyle int

const (
	// ButtonStylePrimary is the default button style.
	ButtonStylePrimary ButtonStyle = iota
	// ButtonStyleSecondary is a less prominent button style.
	ButtonStyleSecondary
	// ButtonStyleDanger is for destructive actions.
	ButtonStyleDanger
)

// Button is a dialog button.
type Button struct {
	label   string
	focused bool
	style   ButtonStyle
}

// NewButton creates an unfocused button.
func NewButton(label string, style ButtonStyle) *Button {
	return &Button{label: label, style: style}
}

// Focus focuses the button.
func (b *Button) Focus() {
	b.focused = true
}

// Blur removes focus from the button.
func (b *Button) Blur() {
	b.focused = false
}

// Focused returns whether the button is focused.
func (b *Button) Focused() bool {
	return b.focused
}

// SetStyle sets the button style.
func (b *Button) SetStyle(style ButtonStyle) {
	b.style = style
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Activated reports whether msg presses the focused button.
func (b *Button) Activated(msg tea.Msg) bool {
	if !b.focused {
		return false
	}
	key, ok := msg.(tea.KeyMsg)
	return ok && (key.String() == "enter" || key.String() == " ")
}

// View renders the button. Focused buttons are filled, others are muted.
func (b *Button) View() string {
	if !b.focused {
		return styles.ButtonSecondaryUnfocusedStyle.Render(b.label)
	}
	switch b.style {
	case ButtonStyleDanger:
		return styles.ButtonDangerStyle.Render(b.label)
	case ButtonStyleSecondary:
		return lipgloss.NewStyle().
			Foreground(styles.Background).
			Background(styles.Secondary).
			Bold(true).
			Padding(0, 2).
			Render(b.label)
	default:
		return styles.ButtonPrimaryStyle.Render(b.label)
	}
}
