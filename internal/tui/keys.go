package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/dbmrq/draftboard/internal/tui/components"
)

// KeyMap holds the board key bindings.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	Expand    key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Open      key.Binding
	Reload    key.Binding
	Copy      key.Binding
	Clear     key.Binding
	SelectAll key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "move up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "move down")),
		Top:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "go to top")),
		Bottom:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "go to bottom")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/←", "available players")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l/→", "board")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "add or remove player")),
		Expand:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand or collapse card")),
		NextTab:   key.NewBinding(key.WithKeys("tab", "]"), key.WithHelp("tab/]", "next category")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab", "["), key.WithHelp("shift+tab/[", "previous category")),
		Open:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open a file")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload the file")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy board to clipboard")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear the board")),
		SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select every ranked player")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Expand, k.NextTab, k.Copy, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Expand, k.Clear, k.SelectAll, k.Copy},
		{k.Up, k.Down, k.Top, k.Bottom, k.Left, k.Right, k.NextTab, k.PrevTab},
		{k.Open, k.Reload, k.Help, k.Quit},
	}
}

// HelpGroups returns the full help as shortcut groups for the overlay.
func (k KeyMap) HelpGroups() []components.ShortcutGroup {
	titles := []string{"Board", "Navigation", "General"}
	var groups []components.ShortcutGroup
	for i, bindings := range k.FullHelp() {
		g := components.ShortcutGroup{Title: titles[i]}
		for _, b := range bindings {
			h := b.Help()
			g.Shortcuts = append(g.Shortcuts, components.Shortcut{Key: h.Key, Desc: h.Desc})
		}
		if i == 1 {
			g.Shortcuts = append(g.Shortcuts, components.Shortcut{Key: "0-9", Desc: "All / nth category"})
		}
		groups = append(groups, g)
	}
	return groups
}

// pickerKeyMap describes the file picker keys for the footer.
type pickerKeyMap struct {
	Move key.Binding
	Open key.Binding
	Up   key.Binding
	Type key.Binding
	Back key.Binding
	Quit key.Binding
}

func newPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Move: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		Open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Up:   key.NewBinding(key.WithKeys("left", "h", "backspace"), key.WithHelp("←", "parent dir")),
		Type: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "type path")),
		Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Open, k.Up, k.Type, k.Back, k.Quit}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
