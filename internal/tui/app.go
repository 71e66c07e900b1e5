// Package tui provides the terminal user interface for draftboard.
package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/draftboard/internal/board"
	"github.com/dbmrq/draftboard/internal/config"
	"github.com/dbmrq/draftboard/internal/logging"
	"github.com/dbmrq/draftboard/internal/player"
	"github.com/dbmrq/draftboard/internal/tui/components"
	"github.com/dbmrq/draftboard/internal/tui/styles"
	"github.com/dbmrq/draftboard/internal/watcher"
)

// Phase is the screen the TUI shows.
type Phase int

const (
	// PhasePicker shows the file picker.
	PhasePicker Phase = iota
	// PhaseBoard shows the two card lists.
	PhaseBoard
)

// Default terminal size until the first WindowSizeMsg.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configure a Model.
type Options struct {
	Config *config.Config
	// Path is a file or glob pattern to open. Empty starts in the picker.
	Path string
	// Watch reloads the file when it changes on disk. The CLI resolves it
	// from --watch and watch.enabled.
	Watch bool
	// Dir is where the picker starts. Empty means the working directory.
	Dir string
	// Context is passed to loads. Defaults to context.Background.
	Context context.Context
}

// Model is the Bubble Tea model for the draftboard TUI. It owns the board
// state; every change to it happens in Update.
type Model struct {
	cfg  *config.Config
	ctx  context.Context
	keys KeyMap

	// Components
	header      *components.Header
	tabs        *components.TabBar
	available   *components.CardList
	selected    *components.CardList
	statusBar   *components.StatusBar
	helpOverlay *components.HelpOverlay
	confirmDlg  *components.ConfirmDialog
	alert       *components.AlertDialog
	picker      *components.FilePicker
	spinner     *components.Spinner
	footer      *components.ShortcutBar
	pickerHelp  help.Model
	pickerKeys  pickerKeyMap

	// State
	state      board.State
	phase      Phase
	focus      components.Pane
	path       string // resolved path of the loaded file
	pending    string // file or pattern of the load in flight
	generation uint64
	loading    bool

	// File watching
	watch       bool
	watcher     *watcher.Watcher
	watchCtx    context.Context
	watchCancel context.CancelFunc
	watchErrs   chan error

	// Layout
	hits   components.HitMap
	panes  [2]components.Rect
	width  int
	height int

	quitting bool
}

// New creates a new TUI model.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := &Model{
		cfg:         cfg,
		ctx:         ctx,
		keys:        DefaultKeyMap(),
		header:      components.NewHeader(),
		tabs:        components.NewTabBar(cfg.Categories),
		available:   components.NewCardList("Available", components.PaneAvailable, cfg),
		selected:    components.NewCardList("Board", components.PaneSelected, cfg),
		statusBar:   components.NewStatusBar(),
		helpOverlay: components.NewHelpOverlay(),
		confirmDlg:  components.NewConfirmDialog(),
		alert:       components.NewAlertDialog(),
		picker:      components.NewFilePicker(opts.Dir),
		spinner:     components.NewSpinner(),
		footer:      components.NewShortcutBar(),
		pickerHelp:  help.New(),
		pickerKeys:  newPickerKeyMap(),
		phase:       PhasePicker,
		focus:       components.PaneAvailable,
		pending:     opts.Path,
		watch:       opts.Watch,
		width:       defaultWidth,
		height:      defaultHeight,
	}
	m.helpOverlay.SetGroups(m.keys.HelpGroups())
	m.footer.SetShortcuts(components.LoadingShortcuts...)
	m.footer.SetCentered(true)
	m.selected.SetEmptyText("No players on the board")
	m.header.SetSessionID(logging.Global().SessionID())
	if opts.Path != "" {
		m.phase = PhaseBoard
	}
	m.applyFocus()
	m.resize()
	return m
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	if m.pending != "" {
		return m.startLoad(m.pending, false)
	}
	return m.picker.Init()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		// The picker sizes itself from the window.
		return m, m.picker.Update(msg)

	case DatasetLoadedMsg:
		return m, m.handleLoaded(msg)

	case LoadFailedMsg:
		return m, m.handleLoadFailed(msg)

	case FileChangedMsg:
		return m, m.handleFileChanged(msg)

	case WatchErrorMsg:
		return m, m.handleWatchError(msg)

	case ClipboardMsg:
		if msg.Err != nil {
			logging.Warn("clipboard write failed", "error", msg.Err)
			m.statusBar.SetMessage("Copy failed: "+msg.Err.Error(), components.MessageError)
		} else {
			m.statusBar.SetMessage(fmt.Sprintf("Copied %d players", msg.Count), components.MessageSuccess)
		}
		return m, nil

	case components.ConfirmYesMsg:
		m.handleConfirmYes(msg.Action)
		return m, nil

	case components.ConfirmNoMsg, components.HelpClosedMsg, components.AlertClosedMsg:
		return m, nil

	case components.FileSelectedMsg:
		m.phase = PhaseBoard
		return m, m.startLoad(msg.Path, false)

	case components.FilePickerCanceledMsg:
		if m.state.Loaded() || m.loading {
			m.phase = PhaseBoard
		}
		return m, nil
	}

	// Overlays capture input while visible.
	if m.alert.IsVisible() {
		return m, m.alert.Update(msg)
	}
	if m.confirmDlg.IsVisible() {
		return m, m.confirmDlg.Update(msg)
	}
	if m.helpOverlay.IsVisible() {
		return m, m.helpOverlay.Update(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}

	// Spinner ticks and picker directory reads.
	var cmds []tea.Cmd
	cmds = append(cmds, m.spinner.Update(msg))
	if m.phase == PhasePicker {
		cmds = append(cmds, m.picker.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input outside overlays.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, m.quit()
	}

	if m.phase == PhasePicker {
		if msg.String() == "q" && m.picker.Mode() == components.FilePickerModeBrowse {
			return m, m.quit()
		}
		return m, m.picker.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Help):
		m.helpOverlay.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Open):
		m.phase = PhasePicker
		return m, m.picker.Init()
	}

	if !m.state.Loaded() {
		// Only quitting, help and the picker work until the first load.
		return m, nil
	}

	list := m.activeList()
	switch {
	case key.Matches(msg, m.keys.Up):
		list.MoveUp()
	case key.Matches(msg, m.keys.Down):
		list.MoveDown()
	case key.Matches(msg, m.keys.Top):
		list.GoToTop()
	case key.Matches(msg, m.keys.Bottom):
		list.GoToBottom()
	case key.Matches(msg, m.keys.Left):
		m.setFocus(components.PaneAvailable)
	case key.Matches(msg, m.keys.Right):
		m.setFocus(components.PaneSelected)
	case key.Matches(msg, m.keys.Toggle):
		if r, ok := list.Focused(); ok {
			m.toggle(r.ID)
		}
	case key.Matches(msg, m.keys.Expand):
		if r, ok := list.Focused(); ok {
			list.ToggleExpanded(r.ID)
		}
	case key.Matches(msg, m.keys.NextTab):
		m.tabs.Next()
		m.applyFilter()
	case key.Matches(msg, m.keys.PrevTab):
		m.tabs.Prev()
		m.applyFilter()
	case key.Matches(msg, m.keys.Reload):
		if m.path != "" {
			return m, m.startLoad(m.path, false)
		}
	case key.Matches(msg, m.keys.Copy):
		recs := m.state.SelectedRecords()
		if len(recs) == 0 {
			m.statusBar.SetMessage("Board is empty", components.MessageWarning)
			return m, nil
		}
		return m, copyCmd(recs)
	case key.Matches(msg, m.keys.Clear):
		if n := len(m.state.SelectedIDs()); n > 0 {
			m.confirmDlg.ShowClear(n)
		} else {
			m.statusBar.SetMessage("Board is already empty", components.MessageInfo)
		}
	case key.Matches(msg, m.keys.SelectAll):
		m.confirmDlg.ShowSelectAll()
	default:
		if n, err := strconv.Atoi(msg.String()); err == nil && len(msg.String()) == 1 {
			if m.tabs.Select(n) {
				m.applyFilter()
			}
		}
	}
	return m, nil
}

// handleMouse routes left clicks through the hit map and scrolls the pane
// under the wheel.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.phase != PhaseBoard || !m.state.Loaded() {
		return
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		list := m.activeList()
		for i, r := range m.panes {
			if r.Contains(msg.X, msg.Y) {
				list = m.list(components.Pane(i))
			}
		}
		if msg.Button == tea.MouseButtonWheelUp {
			list.MoveUp()
		} else {
			list.MoveDown()
		}
		return
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return
		}
		if m.hits.Len() == 0 {
			logging.Debug("click before first render", "x", msg.X, "y", msg.Y)
			return
		}
	default:
		return
	}

	region, ok := m.hits.Resolve(msg.X, msg.Y)
	if !ok {
		return
	}
	switch region.Action {
	case components.ActionTab:
		if m.tabs.SelectCategory(region.Tab) {
			m.applyFilter()
		}
	case components.ActionToggle:
		m.setFocus(region.Pane)
		m.list(region.Pane).FocusID(region.RecordID)
		m.toggle(region.RecordID)
	case components.ActionExpand:
		m.setFocus(region.Pane)
		list := m.list(region.Pane)
		list.FocusID(region.RecordID)
		list.ToggleExpanded(region.RecordID)
	}
}

// startLoad begins loading arg under a new generation.
func (m *Model) startLoad(arg string, reload bool) tea.Cmd {
	m.generation++
	m.loading = true
	m.pending = arg
	m.statusBar.SetShortcuts(components.LoadingShortcuts)
	gen := m.generation

	logging.Info("loading player file", "path", arg, "generation", gen, "reload", reload)
	return tea.Batch(
		m.spinner.Start("Loading "+filepath.Base(arg)),
		loadCmd(m.ctx, gen, arg, m.cfg.Columns, reload),
	)
}

func (m *Model) stale(gen uint64) bool {
	if gen != m.generation {
		logging.Debug("discarding stale load", "generation", gen, "current", m.generation)
		return true
	}
	return false
}

// finishLoad ends the loading phase of the current generation.
func (m *Model) finishLoad() {
	m.loading = false
	m.spinner.Stop()
	m.statusBar.SetShortcuts(components.BoardShortcuts)
}

func (m *Model) handleLoaded(msg DatasetLoadedMsg) tea.Cmd {
	if m.stale(msg.Generation) {
		return nil
	}
	m.finishLoad()

	if msg.Reload && m.state.Loaded() && msg.Path == m.path &&
		msg.Dataset.Fingerprint == m.state.Dataset().Fingerprint {
		logging.Debug("file unchanged, keeping board", "path", msg.Path)
		return nil
	}

	m.state = board.New(msg.Dataset, msg.Generation)
	m.path = msg.Path
	m.phase = PhaseBoard
	m.header.SetFile(msg.Path)
	m.tabs.SetCategories(m.state.Categories())
	m.available.Reset()
	m.selected.Reset()
	m.refresh()

	ds := msg.Dataset
	verb := "Loaded"
	if msg.Reload {
		verb = "Reloaded"
	}
	status := fmt.Sprintf("%s %d players", verb, len(ds.Records))
	kind := components.MessageSuccess
	if ds.Skipped > 0 {
		status += fmt.Sprintf(", skipped %d rows without a name", ds.Skipped)
	}
	if dups := player.DuplicateKeys(ds.Records); len(dups) > 0 {
		status += fmt.Sprintf(", %d duplicate names (first: %s)", len(dups), dups[0])
		kind = components.MessageWarning
	}
	m.statusBar.SetMessage(status, kind)

	return m.ensureWatch(msg.Path)
}

func (m *Model) handleLoadFailed(msg LoadFailedMsg) tea.Cmd {
	if m.stale(msg.Generation) {
		return nil
	}
	m.finishLoad()

	logging.Error("failed to load player file", "path", msg.Path, "generation", msg.Generation, "error", msg.Err)
	m.alert.ShowError("Could not load "+filepath.Base(msg.Path), msg.Err)
	if !m.state.Loaded() {
		m.phase = PhasePicker
		return m.picker.Init()
	}
	m.statusBar.SetMessage("Load failed, showing previous board", components.MessageError)
	return nil
}

func (m *Model) handleFileChanged(msg FileChangedMsg) tea.Cmd {
	if m.watcher == nil || msg.Path != m.watcher.Path() {
		return nil
	}
	if m.loading && m.pending != m.path {
		// Another file is loading; it replaces this one.
		logging.Debug("ignoring change while another file loads", "path", msg.Path, "pending", m.pending)
		return waitForChange(m.watchCtx, m.watcher, m.watchErrs)
	}
	logging.Debug("watched file changed", "path", msg.Path)
	return tea.Batch(
		m.startLoad(m.path, true),
		waitForChange(m.watchCtx, m.watcher, m.watchErrs),
	)
}

func (m *Model) handleWatchError(msg WatchErrorMsg) tea.Cmd {
	if m.watcher == nil || msg.Path != m.watcher.Path() {
		return nil
	}
	logging.Warn("file watcher error", "path", msg.Path, "error", msg.Err)
	if errors.Is(msg.Err, watcher.ErrFileRemoved) {
		m.statusBar.SetMessage("File removed, keeping last board", components.MessageWarning)
	} else {
		m.statusBar.SetMessage("Watch error: "+msg.Err.Error(), components.MessageError)
	}
	return waitForChange(m.watchCtx, m.watcher, m.watchErrs)
}

// ensureWatch starts watching path when watching is enabled and it is not
// already the watched file.
func (m *Model) ensureWatch(path string) tea.Cmd {
	if !m.watch {
		return nil
	}
	abs, err := filepath.Abs(path)
	if err == nil && m.watcher != nil && m.watcher.Path() == abs {
		return nil
	}
	m.stopWatch()

	errs := make(chan error, 1)
	w, err := watcher.New(path,
		watcher.WithDebounce(m.cfg.Watch.Debounce),
		watcher.WithOnError(func(err error) {
			select {
			case errs <- err:
			default:
			}
		}),
	)
	if err == nil {
		err = w.Start()
	}
	if err != nil {
		logging.Warn("cannot watch file", "path", path, "error", err)
		m.statusBar.SetMessage("Cannot watch file: "+err.Error(), components.MessageWarning)
		return nil
	}

	m.watcher = w
	m.watchErrs = errs
	m.watchCtx, m.watchCancel = context.WithCancel(m.ctx)
	m.header.SetWatching(true)
	logging.Info("watching player file", "path", w.Path(), "polling", w.IsPolling())
	return waitForChange(m.watchCtx, w, errs)
}

func (m *Model) stopWatch() {
	if m.watcher == nil {
		return
	}
	m.watchCancel()
	m.watcher.Stop()
	m.watcher = nil
	m.header.SetWatching(false)
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.stopWatch()
	return tea.Quit
}

// toggle adds or removes a record and reports the result.
func (m *Model) toggle(id int) {
	next, res := m.state.Toggle(id)
	m.state = next
	r, _ := next.Record(id)

	switch res {
	case board.Added:
		m.statusBar.SetMessage("Added "+r.Name(), components.MessageSuccess)
	case board.Removed:
		m.statusBar.SetMessage("Removed "+r.Name(), components.MessageInfo)
	case board.Unranked:
		m.statusBar.SetMessage(r.Name()+" has no rank", components.MessageWarning)
	case board.Unknown:
		return
	}
	m.refresh()
}

func (m *Model) handleConfirmYes(action components.ConfirmAction) {
	switch action {
	case components.ConfirmActionClear:
		m.state = m.state.ClearSelection()
		m.statusBar.SetMessage("Board cleared", components.MessageInfo)
	case components.ConfirmActionSelectAll:
		m.state = m.state.SelectAll()
		m.statusBar.SetMessage("Selected every ranked player", components.MessageInfo)
	}
	m.refresh()
}

// applyFilter makes the active tab the board filter.
func (m *Model) applyFilter() {
	m.state = m.state.WithFilter(m.tabs.Filter())
	m.refresh()
	m.available.GoToTop()
}

// refresh pushes the board state into the lists and the status bar.
func (m *Model) refresh() {
	visible := m.state.Visible()
	m.available.SetRecords(visible, m.state.IsSelected)
	m.selected.SetRecords(m.state.SelectedRecords(), m.state.IsSelected)

	total := 0
	if ds := m.state.Dataset(); ds != nil {
		total = len(ds.Records)
	}
	m.statusBar.SetCounts(len(visible), total, m.state.Summary())
}

func (m *Model) list(p components.Pane) *components.CardList {
	if p == components.PaneSelected {
		return m.selected
	}
	return m.available
}

func (m *Model) activeList() *components.CardList {
	return m.list(m.focus)
}

func (m *Model) setFocus(p components.Pane) {
	m.focus = p
	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.available.SetActive(m.focus == components.PaneAvailable)
	m.selected.SetActive(m.focus == components.PaneSelected)
}

// split reports whether the panes sit side by side.
func (m *Model) split() bool {
	return m.width >= m.cfg.Display.SplitMinWidth
}

// resize lays out the panes below the header and tab bar and above the
// status bar.
func (m *Model) resize() {
	const top = 2
	bodyH := max(m.height-top-1, 2)

	if m.split() {
		leftW := (m.width - 1) / 2
		m.panes[components.PaneAvailable] = components.Rect{X: 0, Y: top, W: leftW, H: bodyH}
		m.panes[components.PaneSelected] = components.Rect{X: leftW + 1, Y: top, W: m.width - leftW - 1, H: bodyH}
	} else {
		availH := (bodyH + 1) / 2
		m.panes[components.PaneAvailable] = components.Rect{X: 0, Y: top, W: m.width, H: availH}
		m.panes[components.PaneSelected] = components.Rect{X: 0, Y: top + availH, W: m.width, H: bodyH - availH}
	}

	a, s := m.panes[components.PaneAvailable], m.panes[components.PaneSelected]
	m.available.SetSize(a.W, a.H)
	m.selected.SetSize(s.W, s.H)
	m.header.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.picker.SetWidth(m.width)
	m.pickerHelp.Width = m.width
	m.helpOverlay.SetSize(min(m.width, 72), m.height)
	m.confirmDlg.SetSize(min(m.width, 50))
	m.alert.SetSize(min(m.width, 64))
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var view string
	switch {
	case m.phase == PhasePicker:
		view = m.header.View() + "\n" + m.picker.View() + "\n" +
			m.pickerHelp.View(m.pickerKeys)
	case !m.state.Loaded():
		m.hits = components.HitMap{}
		view = m.header.View() + "\n" + lipgloss.Place(m.width, m.height-2,
			lipgloss.Center, lipgloss.Center, m.spinner.View()) + "\n" + m.footer.View()
	default:
		view = m.renderBoard()
	}

	switch {
	case m.alert.IsVisible():
		view = m.renderOverlay(m.alert.View())
	case m.confirmDlg.IsVisible():
		view = m.renderOverlay(m.confirmDlg.View())
	case m.helpOverlay.IsVisible():
		view = m.renderOverlay(m.helpOverlay.View())
	}
	return view
}

// renderBoard draws the header, tabs, both panes and the status bar and
// rebuilds the hit map to match.
func (m *Model) renderBoard() string {
	m.hits = components.HitMap{}

	tabs, tabRegions := m.tabs.Render(m.width)
	m.hits.Add(components.Offset(tabRegions, 0, 1)...)

	a, s := m.panes[components.PaneAvailable], m.panes[components.PaneSelected]
	aView, aRegions := m.available.Render()
	sView, sRegions := m.selected.Render()
	m.hits.Add(components.Offset(aRegions, a.X, a.Y)...)
	m.hits.Add(components.Offset(sRegions, s.X, s.Y)...)

	var body string
	if m.split() {
		gap := lipgloss.NewStyle().
			Foreground(styles.BorderColor).
			Render(repeatLines("│", a.H))
		body = lipgloss.JoinHorizontal(lipgloss.Top, aView, gap, sView)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, aView, sView)
	}

	activity := ""
	if m.loading {
		activity = m.spinner.View()
	}
	m.statusBar.SetActivity(activity)

	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), tabs, body, m.statusBar.View())
}

// renderOverlay centres an overlay on the screen.
func (m *Model) renderOverlay(overlay string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

func repeatLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	out := s
	for i := 1; i < n; i++ {
		out += "\n" + s
	}
	return out
}

// State returns the current board state.
func (m *Model) State() board.State {
	return m.state
}

// Phase returns the current screen.
func (m *Model) Phase() Phase {
	return m.phase
}

// Run starts the TUI and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	m.stopWatch()
	return err
}
