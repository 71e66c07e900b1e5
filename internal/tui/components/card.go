package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dbmrq/draftboard/internal/config"
	"github.com/dbmrq/draftboard/internal/player"
	"github.com/dbmrq/draftboard/internal/tui/styles"
)

// Toggle glyphs.
const (
	GlyphAdd    = "+"
	GlyphRemove = "−"
)

// Missing is shown for metrics the row has no value for.
const Missing = "-"

// MinCardWidth is the narrowest card that still fits a name and the glyph.
const MinCardWidth = 12

// Card renders one player record.
type Card struct {
	Record   player.Record
	Selected bool
	Focused  bool
	Expanded bool
	Pane     Pane

	Columns    config.ColumnsConfig
	Categories config.CategoriesConfig
	Display    config.DisplayConfig
}

// Render draws the card at the given total width and returns its regions
// relative to the card's top-left corner: the whole card expands it, the
// toggle glyph toggles selection.
func (c Card) Render(width int) (string, []Region) {
	if width < MinCardWidth {
		width = MinCardWidth
	}
	// Border and horizontal padding take two columns on each side.
	inner := width - 4

	glyph := styles.ToggleAdd.Render(GlyphAdd)
	if c.Selected {
		glyph = styles.ToggleRemove.Render(GlyphRemove)
	}
	name := runewidth.Truncate(c.Record.Name(), inner-2, "…")
	name = runewidth.FillRight(name, inner-2)
	lines := []string{styles.CardNameStyle.Render(name) + " " + glyph}

	lines = append(lines, c.summaryLine(inner))
	if c.Expanded {
		lines = append(lines, c.metricLines(inner)...)
	}

	style := styles.CardStyle
	if c.Focused {
		style = styles.FocusedCardStyle
	}
	out := style.Width(width - 2).Render(strings.Join(lines, "\n"))
	h := lipgloss.Height(out)

	regions := []Region{
		{
			Rect:     Rect{X: 0, Y: 0, W: width, H: h},
			Action:   ActionExpand,
			Priority: PriorityBody,
			RecordID: c.Record.ID,
			Pane:     c.Pane,
		},
		{
			// The glyph sits on the first content row, just inside the
			// right padding. One cell either side is clickable too.
			Rect:     Rect{X: width - 4, Y: 1, W: 3, H: 1},
			Action:   ActionToggle,
			Priority: PriorityToggle,
			RecordID: c.Record.ID,
			Pane:     c.Pane,
		},
	}
	return out, regions
}

func (c Card) summaryLine(inner int) string {
	cat := c.Record.Category
	if player.IsUndefined(cat) {
		cat = Missing
	}
	badge := styles.BadgeStyle(c.Categories.Color(c.Record.Category)).Render(cat)

	rank := c.Record.Rank
	if rank == "" {
		rank = Missing
	}
	rest := runewidth.Truncate(fmt.Sprintf(" #%s", rank), max(inner-lipgloss.Width(badge), 0), "…")
	return badge + styles.MutedTextStyle.Render(rest)
}

func (c Card) metricLines(inner int) []string {
	metrics := player.Metrics(c.Record, c.Columns)
	labelW := 0
	for _, m := range metrics {
		labelW = max(labelW, runewidth.StringWidth(m.Label))
	}

	lines := make([]string, 0, len(metrics))
	for _, m := range metrics {
		v := m.Value
		if v == "" {
			v = Missing
		}
		v = runewidth.Truncate(v, max(inner-labelW-1, 1), "…")

		valueStyle := styles.MetricValueStyle
		if m.Label == player.MetricRostered {
			tier := player.RosterTier(m.Value, c.Display.RosterHigh, c.Display.RosterMedium)
			valueStyle = styles.TierStyle(tier)
		}
		label := runewidth.FillRight(m.Label, labelW)
		lines = append(lines, styles.MetricLabelStyle.Render(label)+" "+valueStyle.Render(v))
	}
	return lines
}
