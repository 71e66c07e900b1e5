// Package styles provides Lip Gloss styles for the draftboard TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/draftboard/internal/player"
)

// Color palette for the TUI.
var (
	Primary     = lipgloss.Color("#7C3AED") // Purple
	Secondary   = lipgloss.Color("#06B6D4") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1F2937") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Header styles.
var (
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	HeaderValueStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)

	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)
)

// Card styles.
var (
	// CardStyle is an unfocused player card.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// FocusedCardStyle is the card under the cursor in the active pane.
	FocusedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary).
				Padding(0, 1)

	CardNameStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(Foreground)

	// ToggleAdd marks a card that can be added to the board.
	ToggleAdd = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	// ToggleRemove marks a card that is on the board.
	ToggleRemove = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Tier colors for the rostered percentage.
var (
	TierHigh    = lipgloss.Color("#10B981")
	TierMedium  = lipgloss.Color("#F59E0B")
	TierLow     = lipgloss.Color("#EF4444")
	TierUnknown = MutedLight
)

// TierStyle returns the text style for a rostership tier.
func TierStyle(t player.Tier) lipgloss.Style {
	c := TierUnknown
	switch t {
	case player.TierHigh:
		c = TierHigh
	case player.TierMedium:
		c = TierMedium
	case player.TierLow:
		c = TierLow
	}
	return lipgloss.NewStyle().Foreground(c).Bold(t != player.TierUnknown)
}

// BadgeStyle renders a category label on its configured color.
func BadgeStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Foreground).
		Background(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1)
}

// Tab styles.
var (
	TabStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// ActiveTabStyle is combined with the category color.
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true).
			Underline(true).
			Padding(0, 1)
)

// Pane styles.
var (
	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Bold(true)

	ActivePaneTitleStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)
)

// Text styles.
var (
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)

	WarningTextStyle = lipgloss.NewStyle().
				Foreground(Warning)
)

// Status bar styles.
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Background(Background).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Button styles for dialogs.
var (
	ButtonPrimaryStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Primary).
				Bold(true).
				Padding(0, 2)

	ButtonSecondaryUnfocusedStyle = lipgloss.NewStyle().
					Foreground(MutedLight).
					Border(lipgloss.NormalBorder()).
					BorderForeground(Muted).
					Padding(0, 1)

	ButtonDangerStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Error).
				Bold(true).
				Padding(0, 2)
)
