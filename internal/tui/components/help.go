package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/draftboard/internal/tui/styles"
)

// Shortcut represents a keyboard shortcut.
type Shortcut struct {
	Key  string
	Desc string
}

// ShortcutGroup represents a group of related shortcuts.
type ShortcutGroup struct {
	Title     string
	Shortcuts []Shortcut
}

// HelpOverlay shows the keyboard shortcuts as rendered markdown in a
// scrollable viewport.
type HelpOverlay struct {
	visible  bool
	width    int
	height   int
	groups   []ShortcutGroup
	viewport viewport.Model
	rendered int // width the viewport content was rendered for
}

// NewHelpOverlay creates a hidden overlay with the default shortcuts.
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		width:    60,
		height:   20,
		viewport: viewport.New(52, 14),
		groups: []ShortcutGroup{
			{
				Title: "Board",
				Shortcuts: []Shortcut{
					{"space", "Add or remove the focused player"},
					{"enter", "Expand or collapse the card"},
					{"c", "Clear the board"},
					{"a", "Select every ranked player"},
					{"y", "Copy the board to the clipboard"},
				},
			},
			{
				Title: "Navigation",
				Shortcuts: []Shortcut{
					{"j/↓", "Move down"},
					{"k/↑", "Move up"},
					{"g/G", "Go to top/bottom"},
					{"h/l", "Switch pane"},
					{"tab/]", "Next category"},
					{"shift+tab/[", "Previous category"},
					{"0-9", "All / nth category"},
				},
			},
			{
				Title: "General",
				Shortcuts: []Shortcut{
					{"o", "Open a file"},
					{"r", "Reload the file"},
					{"?", "Toggle help"},
					{"q", "Quit"},
				},
			},
		},
	}
}

// SetGroups sets custom shortcut groups.
func (h *HelpOverlay) SetGroups(groups []ShortcutGroup) {
	h.groups = groups
	h.rendered = 0
}

// SetSize sets the overlay dimensions.
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Show makes the overlay visible.
func (h *HelpOverlay) Show() {
	h.visible = true
	h.refresh()
	h.viewport.GotoTop()
}

// Hide hides the overlay.
func (h *HelpOverlay) Hide() {
	h.visible = false
}

// Toggle toggles visibility.
func (h *HelpOverlay) Toggle() {
	if h.visible {
		h.Hide()
	} else {
		h.Show()
	}
}

// IsVisible returns whether the overlay is visible.
func (h *HelpOverlay) IsVisible() bool {
	return h.visible
}

// Update handles input messages. Keys other than the close keys scroll.
func (h *HelpOverlay) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "?", "q":
			h.Hide()
			return func() tea.Msg {
				return HelpClosedMsg{}
			}
		}
	}
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return cmd
}

// View renders the help overlay.
func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}
	h.refresh()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Primary).
		Bold(true).
		Padding(0, 1).
		Width(h.contentWidth()).
		Render("  Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(h.viewport.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(styles.Muted).
		Italic(true).
		Render("↑/↓ scroll • esc close"))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(styles.Primary).
		Padding(0, 2).
		Render(b.String())
}

// Markdown returns the shortcut groups as a markdown document.
func (h *HelpOverlay) Markdown() string {
	var b strings.Builder
	for _, g := range h.groups {
		fmt.Fprintf(&b, "## %s\n\n| Key | Action |\n|---|---|\n", g.Title)
		for _, s := range g.Shortcuts {
			fmt.Fprintf(&b, "| `%s` | %s |\n", s.Key, s.Desc)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (h *HelpOverlay) contentWidth() int {
	return max(h.width-6, 20)
}

// refresh re-renders the markdown when the width changed.
func (h *HelpOverlay) refresh() {
	w := h.contentWidth()
	h.viewport.Width = w
	h.viewport.Height = max(h.height-6, 3)
	if h.rendered == w {
		return
	}
	h.rendered = w
	h.viewport.SetContent(h.render(w))
}

func (h *HelpOverlay) render(width int) string {
	md := h.Markdown()
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// HelpClosedMsg is sent when the help overlay is closed.
type HelpClosedMsg struct{}
