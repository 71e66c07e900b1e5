package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/draftboard/internal/tui/styles"
)

// ConfirmAction represents the action being confirmed.
type ConfirmAction string

const (
	// ConfirmActionClear empties the selected board.
	ConfirmActionClear ConfirmAction = "clear"
	// ConfirmActionSelectAll puts every ranked player back on the board.
	ConfirmActionSelectAll ConfirmAction = "select_all"
)

// ConfirmDialog asks before an action that rewrites the whole board.
type ConfirmDialog struct {
	visible     bool
	action      ConfirmAction
	title       string
	message     string
	width       int
	destructive bool
	yes         *Button
	no          *Button
}

// NewConfirmDialog creates a hidden dialog.
func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{
		width: 50,
		yes:   NewButton("[Y]es", ButtonStylePrimary),
		no:    NewButton("[N]o", ButtonStyleSecondary),
	}
}

// Show displays the dialog with the given action, title, and message.
func (c *ConfirmDialog) Show(action ConfirmAction, title, message string, destructive bool) {
	c.visible = true
	c.action = action
	c.title = title
	c.message = message
	c.destructive = destructive
	if destructive {
		c.yes.SetStyle(ButtonStyleDanger)
	} else {
		c.yes.SetStyle(ButtonStylePrimary)
	}
	c.yes.Focus()
	c.no.Blur()
}

// ShowClear asks before clearing n selected players.
func (c *ConfirmDialog) ShowClear(n int) {
	c.Show(ConfirmActionClear, "Clear Board?",
		fmt.Sprintf("Remove all %d players from the board.", n),
		true)
}

// ShowSelectAll asks before resetting the board to every ranked player.
func (c *ConfirmDialog) ShowSelectAll() {
	c.Show(ConfirmActionSelectAll, "Select All?",
		"Put every ranked player back on the board. Manual removals are lost.",
		false)
}

// Hide hides the dialog.
func (c *ConfirmDialog) Hide() {
	c.visible = false
}

// IsVisible returns whether the dialog is visible.
func (c *ConfirmDialog) IsVisible() bool {
	return c.visible
}

// Action returns the action being confirmed.
func (c *ConfirmDialog) Action() ConfirmAction {
	return c.action
}

// SetSize sets the dialog width.
func (c *ConfirmDialog) SetSize(width int) {
	c.width = width
}

// Update handles input messages.
func (c *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	if !c.visible {
		return nil
	}

	if c.no.Activated(msg) {
		return c.answer(false)
	}
	if c.yes.Activated(msg) {
		return c.answer(true)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch strings.ToLower(msg.String()) {
		case "y":
			return c.answer(true)
		case "n", "esc", "q":
			return c.answer(false)
		case "left", "right", "h", "l", "tab", "shift+tab":
			if c.yes.Focused() {
				c.yes.Blur()
				c.no.Focus()
			} else {
				c.no.Blur()
				c.yes.Focus()
			}
		}
	}
	return nil
}

func (c *ConfirmDialog) answer(yes bool) tea.Cmd {
	action := c.action
	c.Hide()
	if yes {
		return func() tea.Msg { return ConfirmYesMsg{Action: action} }
	}
	return func() tea.Msg { return ConfirmNoMsg{} }
}

// View renders the confirmation dialog.
func (c *ConfirmDialog) View() string {
	if !c.visible {
		return ""
	}

	accent := styles.Warning
	if c.destructive {
		accent = styles.Error
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(accent).
		Bold(true).
		Padding(0, 1).
		Width(c.width - 4).
		Render("  " + c.title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Width(c.width - 8).
		Render(c.message))
	b.WriteString("\n\n")
	b.WriteString(c.yes.View())
	b.WriteString("  ")
	b.WriteString(c.no.View())

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Render(b.String())
}

// ConfirmYesMsg is sent when the user confirms.
type ConfirmYesMsg struct {
	Action ConfirmAction
}

// ConfirmNoMsg is sent when the user cancels.
type ConfirmNoMsg struct{}
