package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	drafterrors "github.com/dbmrq/draftboard/internal/errors"
	"github.com/dbmrq/draftboard/internal/tui/styles"
)

// AlertDialog is a modal error message dismissed with enter or esc.
type AlertDialog struct {
	visible bool
	title   string
	message string
	width   int
	ok      *Button
}

// NewAlertDialog creates a hidden alert.
func NewAlertDialog() *AlertDialog {
	ok := NewButton("OK", ButtonStylePrimary)
	ok.Focus()
	return &AlertDialog{width: 60, ok: ok}
}

// ShowError displays err. Draft errors are shown with their suggestion.
func (a *AlertDialog) ShowError(title string, err error) {
	a.visible = true
	a.title = title
	a.message = drafterrors.FormatError(err)
}

// Hide hides the alert.
func (a *AlertDialog) Hide() {
	a.visible = false
}

// IsVisible returns whether the alert is visible.
func (a *AlertDialog) IsVisible() bool {
	return a.visible
}

// Message returns the text of the alert.
func (a *AlertDialog) Message() string {
	return a.message
}

// SetSize sets the dialog width.
func (a *AlertDialog) SetSize(width int) {
	a.width = width
}

// Update handles input messages.
func (a *AlertDialog) Update(msg tea.Msg) tea.Cmd {
	if !a.visible {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "esc", "q", " ":
			a.Hide()
			return func() tea.Msg { return AlertClosedMsg{} }
		}
	}
	return nil
}

// View renders the alert.
func (a *AlertDialog) View() string {
	if !a.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Error).
		Bold(true).
		Padding(0, 1).
		Width(a.width - 4).
		Render("  " + a.title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Width(a.width - 8).
		Render(a.message))
	b.WriteString("\n\n")
	b.WriteString(a.ok.View())

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Error).
		Padding(1, 2).
		Render(b.String())
}

// AlertClosedMsg is sent when the alert is dismissed.
type AlertClosedMsg struct{}
