package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/draftboard/internal/tui/styles"
)

// Spinner shows that a file is loading.
type Spinner struct {
	spinner    spinner.Model
	statusText string
	startTime  time.Time
	active     bool
}

// NewSpinner creates a stopped spinner.
func NewSpinner() *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Secondary)
	return &Spinner{spinner: s}
}

// Start shows the spinner with text and returns the tick command.
func (s *Spinner) Start(text string) tea.Cmd {
	s.statusText = text
	s.startTime = time.Now()
	s.active = true
	return s.spinner.Tick
}

// Stop hides the spinner. Pending ticks are dropped by Update.
func (s *Spinner) Stop() {
	s.active = false
}

// Active reports whether the spinner is shown.
func (s *Spinner) Active() bool {
	return s.active
}

// Elapsed returns the time since Start.
func (s *Spinner) Elapsed() time.Duration {
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}

// Update advances the animation while the spinner is active.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	if !s.active {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

// View renders the spinner and its status text.
func (s *Spinner) View() string {
	if !s.active {
		return ""
	}
	line := fmt.Sprintf("%s %s", s.spinner.View(),
		lipgloss.NewStyle().Foreground(styles.Foreground).Render(s.statusText))
	if elapsed := s.Elapsed(); elapsed >= time.Second {
		line += lipgloss.NewStyle().
			Foreground(styles.MutedLight).
			Render(fmt.Sprintf(" (%ds)", int(elapsed.Seconds())))
	}
	return line
}
