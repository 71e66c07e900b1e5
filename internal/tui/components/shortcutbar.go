package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/draftboard/internal/tui/styles"
)

// ShortcutDef defines a single keyboard shortcut.
type ShortcutDef struct {
	Key  string
	Desc string
}

// ShortcutBar displays contextual keyboard shortcuts.
type ShortcutBar struct {
	shortcuts []ShortcutDef
	width     int
	centered  bool
}

// NewShortcutBar creates a new ShortcutBar with the given shortcuts.
func NewShortcutBar(shortcuts ...ShortcutDef) *ShortcutBar {
	return &ShortcutBar{
		shortcuts: shortcuts,
		centered:  false,
	}
}

// SetShortcuts replaces all shortcuts.
func (s *ShortcutBar) SetShortcuts(shortcuts ...ShortcutDef) {
	s.shortcuts = shortcuts
}

// SetWidth sets the bar width for alignment.
func (s *ShortcutBar) SetWidth(width int) {
	s.width = width
}

// SetCentered controls whether the bar content is centered.
func (s *ShortcutBar) SetCentered(centered bool) {
	s.centered = centered
}

// View renders the shortcut bar.
func (s *ShortcutBar) View() string {
	if len(s.shortcuts) == 0 {
		return ""
	}

	var parts []string
	for _, sc := range s.shortcuts {
		parts = append(parts, s.renderShortcut(sc))
	}

	content := strings.Join(parts, s.renderSeparator())

	if s.centered && s.width > 0 {
		containerStyle := lipgloss.NewStyle().
			Width(s.width).
			Align(lipgloss.Center)
		return containerStyle.Render(content)
	}

	return content
}

// renderShortcut renders a single shortcut (key: description).
func (s *ShortcutBar) renderShortcut(sc ShortcutDef) string {
	keyStyle := styles.KeyStyle
	helpStyle := styles.HelpStyle

	return keyStyle.Render(sc.Key) + helpStyle.Render(":") + helpStyle.Render(sc.Desc)
}

// renderSeparator renders the separator between shortcuts.
func (s *ShortcutBar) renderSeparator() string {
	return lipgloss.NewStyle().Foreground(styles.Muted).Render(" │ ")
}

// Predefined shortcut sets for the TUI phases.
var (
	// BoardShortcuts are shown while browsing the board.
	BoardShortcuts = []ShortcutDef{
		{"space", "toggle"},
		{"enter", "expand"},
		{"tab", "category"},
		{"y", "copy"},
		{"o", "open"},
		{"?", "help"},
		{"q", "quit"},
	}

	// LoadingShortcuts are shown while a file loads.
	LoadingShortcuts = []ShortcutDef{
		{"o", "open"},
		{"?", "help"},
		{"q", "quit"},
	}
)
