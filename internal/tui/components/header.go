package components

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/draftboard/internal/tui/styles"
)

// HeaderData contains the data to display in the header.
type HeaderData struct {
	FileName  string
	Watching  bool
	SessionID string
}

// Header displays the open file and session in a bar.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{data: HeaderData{FileName: "-"}}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetFile sets the shown file name from a path.
func (h *Header) SetFile(path string) {
	if path == "" {
		h.data.FileName = "-"
		return
	}
	h.data.FileName = filepath.Base(path)
}

// SetWatching marks whether the file is being watched.
func (h *Header) SetWatching(watching bool) {
	h.data.Watching = watching
}

// SetSessionID sets the session ID.
func (h *Header) SetSessionID(id string) {
	h.data.SessionID = id
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	content := styles.TitleStyle.Render("DRAFTBOARD") + sep +
		styles.HeaderLabelStyle.Render("File: ") +
		styles.HeaderValueStyle.Render(h.data.FileName)

	if h.data.Watching {
		content += sep + styles.HeaderLabelStyle.Render("watching")
	}

	if h.data.SessionID != "" {
		short := h.data.SessionID
		if len(short) > 8 {
			short = short[:8]
		}
		content += sep + styles.HeaderLabelStyle.Render("Session: ") +
			styles.HeaderValueStyle.Render(short)
	}

	headerStyle := lipgloss.NewStyle().
		Background(styles.Primary).
		Foreground(styles.Foreground).
		Padding(0, 1).
		MaxHeight(1)
	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width).MaxWidth(h.width)
	}
	return headerStyle.Render(content)
}
