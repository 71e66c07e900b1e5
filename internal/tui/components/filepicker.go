package components

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/draftboard/internal/tui/styles"
)

// PickerAllowedTypes are the file suffixes the picker lets the user open.
var PickerAllowedTypes = []string{".csv", ".txt", ".xlsx", ".gz", ".bz2", ".xz"}

// FilePickerMode is the current mode of the file picker.
type FilePickerMode int

const (
	// FilePickerModeBrowse walks the file system.
	FilePickerModeBrowse FilePickerMode = iota
	// FilePickerModeManual takes a typed path or glob pattern.
	FilePickerModeManual
)

// FileSelectedMsg is sent when a file or pattern is chosen.
type FileSelectedMsg struct {
	Path string
}

// FilePickerCanceledMsg is sent when the picker is closed without a choice.
type FilePickerCanceledMsg struct{}

// FilePicker lets the user browse for a player table or type a path.
type FilePicker struct {
	picker   filepicker.Model
	input    textinput.Model
	mode     FilePickerMode
	errorMsg string
	width    int
}

// NewFilePicker creates a picker rooted at dir. An empty dir means the
// working directory.
func NewFilePicker(dir string) *FilePicker {
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		} else {
			dir = "."
		}
	}

	fp := filepicker.New()
	fp.AllowedTypes = PickerAllowedTypes
	fp.CurrentDirectory = dir
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true

	ti := textinput.New()
	ti.Placeholder = "exports/**/*.csv"
	ti.CharLimit = 1024
	ti.Width = 40

	return &FilePicker{picker: fp, input: ti}
}

// Init starts reading the directory.
func (f *FilePicker) Init() tea.Cmd {
	return f.picker.Init()
}

// Mode returns the current mode.
func (f *FilePicker) Mode() FilePickerMode {
	return f.mode
}

// CurrentDirectory returns the directory being browsed.
func (f *FilePicker) CurrentDirectory() string {
	return f.picker.CurrentDirectory
}

// SetWidth sets the width of the manual entry field.
func (f *FilePicker) SetWidth(width int) {
	f.width = width
	f.input.Width = max(width-8, 10)
}

// Update handles input messages.
func (f *FilePicker) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		if f.mode == FilePickerModeManual {
			return f.updateManual(key)
		}
		switch key.String() {
		case "esc":
			// The picker binds esc to "parent directory"; here it closes.
			return func() tea.Msg { return FilePickerCanceledMsg{} }
		case "/":
			f.mode = FilePickerModeManual
			f.errorMsg = ""
			return f.input.Focus()
		}
	}

	var cmd tea.Cmd
	f.picker, cmd = f.picker.Update(msg)

	if ok, path := f.picker.DidSelectFile(msg); ok {
		return func() tea.Msg { return FileSelectedMsg{Path: path} }
	}
	if ok, path := f.picker.DidSelectDisabledFile(msg); ok {
		f.errorMsg = "Unsupported file: " + filepath.Base(path)
		return cmd
	}
	return cmd
}

func (f *FilePicker) updateManual(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		path := strings.TrimSpace(f.input.Value())
		if path == "" {
			f.errorMsg = "Please enter a path"
			return nil
		}
		if strings.HasPrefix(path, "~") {
			if home, err := os.UserHomeDir(); err == nil {
				path = filepath.Join(home, path[1:])
			}
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(f.picker.CurrentDirectory, path)
		}
		f.mode = FilePickerModeBrowse
		f.input.Blur()
		f.errorMsg = ""
		return func() tea.Msg { return FileSelectedMsg{Path: path} }
	case "esc":
		f.mode = FilePickerModeBrowse
		f.input.Blur()
		f.errorMsg = ""
		return nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// View renders the picker.
func (f *FilePicker) View() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Bold(true).
		Padding(0, 1).
		Render("Open Player Table"))
	b.WriteString("\n")

	help := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		PaddingLeft(2)

	if f.mode == FilePickerModeManual {
		b.WriteString(help.Render("Path or glob pattern (newest match is opened):"))
		b.WriteString("\n\n  ")
		b.WriteString(f.input.View())
		b.WriteString("\n")
	} else {
		b.WriteString(help.Render(f.picker.CurrentDirectory + "  (/ to type a path)"))
		b.WriteString("\n\n")
		b.WriteString(f.picker.View())
	}

	if f.errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(styles.Error).
			PaddingLeft(2).
			Render("⚠ " + f.errorMsg))
	}
	return b.String()
}
