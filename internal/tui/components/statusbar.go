package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/draftboard/internal/board"
	"github.com/dbmrq/draftboard/internal/tui/styles"
)

// MessageKind selects the colour of the status message.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Visible int // records in the available list
	Total   int // records in the dataset
	Summary board.Summary

	Message     string
	MessageKind MessageKind
	// Activity replaces the message while set, e.g. a spinner.
	Activity string

	ShowShortcuts bool
	Shortcuts     []ShortcutDef
}

// StatusBar shows board totals, the last status message and shortcuts.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{
		data: StatusBarData{
			ShowShortcuts: true,
			Shortcuts:     BoardShortcuts,
		},
	}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// SetCounts sets the list sizes and the board summary.
func (s *StatusBar) SetCounts(visible, total int, sum board.Summary) {
	s.data.Visible = visible
	s.data.Total = total
	s.data.Summary = sum
}

// SetMessage sets the status message.
func (s *StatusBar) SetMessage(message string, kind MessageKind) {
	s.data.Message = message
	s.data.MessageKind = kind
}

// Message returns the current status message.
func (s *StatusBar) Message() string {
	return s.data.Message
}

// SetActivity shows an in-progress line in place of the message. An empty
// string restores the message.
func (s *StatusBar) SetActivity(activity string) {
	s.data.Activity = activity
}

// SetShortcuts replaces the shortcuts on the right.
func (s *StatusBar) SetShortcuts(shortcuts []ShortcutDef) {
	s.data.Shortcuts = shortcuts
}

// SetShowShortcuts sets whether to show keyboard shortcuts.
func (s *StatusBar) SetShowShortcuts(show bool) {
	s.data.ShowShortcuts = show
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")
	label := lipgloss.NewStyle().Foreground(styles.MutedLight)
	value := lipgloss.NewStyle().Foreground(styles.Foreground)

	sum := s.data.Summary
	parts := []string{
		label.Render("Players: ") + value.Render(fmt.Sprintf("%d/%d", s.data.Visible, s.data.Total)),
		label.Render("Board: ") + lipgloss.NewStyle().Foreground(styles.Secondary).Render(fmt.Sprintf("%d", sum.Count)),
		label.Render("Proj: ") + value.Render(fmt.Sprintf("%.1f", sum.ProjectedPoints)),
	}
	if sum.HasADP {
		parts = append(parts, label.Render("ADP: ")+value.Render(fmt.Sprintf("%.1f", sum.MeanADP)))
	}
	left := strings.Join(parts, sep)

	switch {
	case s.data.Activity != "":
		left += sep + s.data.Activity
	case s.data.Message != "":
		left += sep + s.messageStyle().Render(s.data.Message)
	}

	right := ""
	if s.data.ShowShortcuts && len(s.data.Shortcuts) > 0 {
		right = NewShortcutBar(s.data.Shortcuts...).View()
	}

	container := lipgloss.NewStyle().
		Background(styles.Background).
		Padding(0, 1).
		MaxHeight(1)

	if s.width > 0 {
		container = container.Width(s.width).MaxWidth(s.width)
		padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
		if padding > 0 {
			return container.Render(left + strings.Repeat(" ", padding) + right)
		}
		// Not enough room for both: the totals and message win.
		return container.Render(left)
	}
	return container.Render(left + "  " + right)
}

func (s *StatusBar) messageStyle() lipgloss.Style {
	st := lipgloss.NewStyle().Italic(true)
	switch s.data.MessageKind {
	case MessageSuccess:
		return st.Foreground(styles.Success)
	case MessageWarning:
		return st.Foreground(styles.Warning)
	case MessageError:
		return st.Foreground(styles.Error)
	default:
		return st.Foreground(styles.MutedLight)
	}
}
