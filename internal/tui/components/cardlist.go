// Package components provides reusable TUI components for draftboard.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/draftboard/internal/config"
	"github.com/dbmrq/draftboard/internal/player"
	"github.com/dbmrq/draftboard/internal/tui/styles"
)

// CardList is a scrollable column of player cards. The first line is the
// pane title and the last line is reserved for the "more below" indicator.
type CardList struct {
	title string
	pane  Pane
	empty string

	records    []player.Record
	isSelected func(id int) bool
	expanded   map[int]bool
	expandAll  bool

	cursor      int
	scrollStart int
	width       int
	height      int
	active      bool

	cfg *config.Config
}

// NewCardList creates an empty list.
func NewCardList(title string, pane Pane, cfg *config.Config) *CardList {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &CardList{
		title:      title,
		pane:       pane,
		empty:      "No players",
		isSelected: func(int) bool { return false },
		expanded:   make(map[int]bool),
		expandAll:  cfg.Display.Expanded,
		width:      40,
		height:     10,
		cfg:        cfg,
	}
}

// SetEmptyText sets the text shown when the list has no cards.
func (l *CardList) SetEmptyText(s string) {
	l.empty = s
}

// SetRecords replaces the cards. The cursor stays on the same record when
// it is still present, otherwise it is clamped.
func (l *CardList) SetRecords(recs []player.Record, isSelected func(id int) bool) {
	var focusedID int
	if r, ok := l.Focused(); ok {
		focusedID = r.ID
	}

	l.records = recs
	if isSelected != nil {
		l.isSelected = isSelected
	}
	if focusedID == 0 || !l.FocusID(focusedID) {
		l.clamp()
	}
	l.updateScroll()
}

// Reset clears per-dataset state: expansion and scroll position.
func (l *CardList) Reset() {
	l.expanded = make(map[int]bool)
	l.cursor = 0
	l.scrollStart = 0
}

// Records returns the records in display order.
func (l *CardList) Records() []player.Record {
	return l.records
}

// Len returns the number of cards.
func (l *CardList) Len() int {
	return len(l.records)
}

// SetSize sets the pane size including the title line.
func (l *CardList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.updateScroll()
}

// SetActive marks the list as the one receiving keys.
func (l *CardList) SetActive(active bool) {
	l.active = active
}

// Active reports whether the list receives keys.
func (l *CardList) Active() bool {
	return l.active
}

// Cursor returns the focused card index.
func (l *CardList) Cursor() int {
	return l.cursor
}

// Focused returns the record under the cursor.
func (l *CardList) Focused() (player.Record, bool) {
	if l.cursor < 0 || l.cursor >= len(l.records) {
		return player.Record{}, false
	}
	return l.records[l.cursor], true
}

// FocusID moves the cursor to the record with the given ID.
func (l *CardList) FocusID(id int) bool {
	for i, r := range l.records {
		if r.ID == id {
			l.cursor = i
			l.updateScroll()
			return true
		}
	}
	return false
}

// MoveUp moves the cursor up.
func (l *CardList) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
		l.updateScroll()
	}
}

// MoveDown moves the cursor down.
func (l *CardList) MoveDown() {
	if l.cursor < len(l.records)-1 {
		l.cursor++
		l.updateScroll()
	}
}

// GoToTop moves the cursor to the first card.
func (l *CardList) GoToTop() {
	l.cursor = 0
	l.updateScroll()
}

// GoToBottom moves the cursor to the last card.
func (l *CardList) GoToBottom() {
	if len(l.records) > 0 {
		l.cursor = len(l.records) - 1
		l.updateScroll()
	}
}

// ToggleExpanded flips the expanded state of a card.
func (l *CardList) ToggleExpanded(id int) {
	l.expanded[id] = !l.IsExpanded(id)
	l.updateScroll()
}

// IsExpanded reports whether a card shows all metrics.
func (l *CardList) IsExpanded(id int) bool {
	if v, ok := l.expanded[id]; ok {
		return v
	}
	return l.expandAll
}

// View renders the list without regions.
func (l *CardList) View() string {
	s, _ := l.Render()
	return s
}

// Render draws the pane and returns the card regions relative to its
// top-left corner.
func (l *CardList) Render() (string, []Region) {
	titleStyle := styles.PaneTitleStyle
	if l.active {
		titleStyle = styles.ActivePaneTitleStyle
	}
	title := titleStyle.Render(fmt.Sprintf("%s (%d)", l.title, len(l.records)))
	if l.scrollStart > 0 {
		title += styles.MutedTextStyle.Render("  ↑ more above")
	}

	lines := []string{title}
	var regions []Region

	if len(l.records) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(styles.Muted).
			Italic(true).
			Padding(1, 2).
			Render(l.empty))
		return l.frame(lines), nil
	}

	area := l.cardArea()
	y, end := 1, l.scrollStart
	for i := l.scrollStart; i < len(l.records); i++ {
		card, cardRegions := l.card(i).Render(l.width)
		h := lipgloss.Height(card)
		// Always draw the first card, even when it is taller than the pane.
		if i > l.scrollStart && y-1+h > area {
			break
		}
		lines = append(lines, card)
		regions = append(regions, Offset(cardRegions, 0, y)...)
		y += h
		end = i + 1
	}

	if end < len(l.records) {
		lines = append(lines, styles.MutedTextStyle.Render(
			fmt.Sprintf("  ↓ %d more below", len(l.records)-end)))
	}

	// Drop regions clipped by the pane frame.
	kept := regions[:0]
	for _, r := range regions {
		if r.Rect.Y < l.height-1 {
			if r.Rect.Y+r.Rect.H > l.height-1 {
				r.Rect.H = l.height - 1 - r.Rect.Y
			}
			kept = append(kept, r)
		}
	}
	return l.frame(lines), kept
}

func (l *CardList) frame(lines []string) string {
	return lipgloss.NewStyle().
		Width(l.width).
		Height(l.height).
		MaxHeight(l.height).
		Render(strings.Join(lines, "\n"))
}

func (l *CardList) card(i int) Card {
	r := l.records[i]
	return Card{
		Record:     r,
		Selected:   l.isSelected(r.ID),
		Focused:    l.active && i == l.cursor,
		Expanded:   l.IsExpanded(r.ID),
		Pane:       l.pane,
		Columns:    l.cfg.Columns,
		Categories: l.cfg.Categories,
		Display:    l.cfg.Display,
	}
}

func (l *CardList) cardHeight(i int) int {
	s, _ := l.card(i).Render(l.width)
	return lipgloss.Height(s)
}

// cardArea is the number of lines available for cards.
func (l *CardList) cardArea() int {
	return max(l.height-2, 1)
}

func (l *CardList) clamp() {
	if l.cursor >= len(l.records) {
		l.cursor = len(l.records) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// updateScroll ensures the focused card is fully visible.
func (l *CardList) updateScroll() {
	l.clamp()
	if l.scrollStart > l.cursor {
		l.scrollStart = l.cursor
	}
	if l.scrollStart >= len(l.records) {
		l.scrollStart = max(len(l.records)-1, 0)
	}
	area := l.cardArea()
	for l.scrollStart < l.cursor {
		used := 0
		for i := l.scrollStart; i <= l.cursor; i++ {
			used += l.cardHeight(i)
		}
		if used <= area {
			break
		}
		l.scrollStart++
	}
}
