package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/clipscope/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/clipscope/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/clipscope/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/clipscope/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/clipscope/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/clipscope/internal/adapters/driving/tui/views/detail"
	"github.com/custodia-labs/clipscope/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driving"
)

// historyHeight is the number of rows the history panel occupies.
const historyHeight = 8

// eventBuffer bounds listener results waiting for the UI.
const eventBuffer = 16

// errWatchUnavailable is reported when no clipboard watcher is wired.
var errWatchUnavailable = errors.New("clipboard watching is not available")

// errNothingToCopy is reported when the selected item has no text.
var errNothingToCopy = errors.New("selected item has no text to copy")

// listenerEvent wraps a message delivered from a listener goroutine.
type listenerEvent struct {
	msg tea.Msg
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	items     *list.ItemList
	detail    *detail.View
	history   *history.View
	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// historyFocused is true while keys drive the history panel.
	historyFocused bool
	historyVisible bool

	// result is the parse result on display; shownSeq guards against
	// slower, older cycles replacing it.
	result   *domain.ParseResult
	shownSeq uint64

	// sub is the active clipboard watcher.
	sub    driving.Subscription
	events chan tea.Msg
	quit   chan struct{}

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		keymap:         km,
		items:          list.NewItemList(s),
		detail:         detail.NewView(s),
		history:        history.NewView(s),
		statusBar:      status.NewBar(s, km),
		currentView:    messages.ViewItems,
		historyVisible: ports.History.Visible(),
		events:         make(chan tea.Msg, eventBuffer),
		quit:           make(chan struct{}),
	}
	a.refreshHistory()
	if current, ok := ports.Inspector.Current(); ok {
		a.showResult(current)
	}
	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("clipscope"),
		a.waitForEvent(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case listenerEvent:
		_, cmd := a.Update(msg.msg)
		return a, tea.Batch(cmd, a.waitForEvent())

	case messages.ParseCompleted:
		a.refreshHistory()
		if msg.Result.Sequence >= a.shownSeq {
			a.showResult(msg.Result)
		}
		return a, nil

	case messages.CopyCompleted:
		if msg.Result.Success {
			a.statusBar.SetState(status.StateCopied)
			a.statusBar.SetMessage(msg.Result.Message)
		} else {
			a.setError(errors.New(msg.Result.Message))
		}
		return a, nil

	case messages.HistoryRestored:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.showResult(msg.Result)
		a.history.SetCurrent(msg.ID)
		a.statusBar.SetMessage("Restored: " + domain.Summarise(msg.Result))
		a.historyFocused = false
		return a, nil

	case messages.WatchToggled:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.statusBar.SetWatching(msg.Active)
		return a, nil

	case messages.WatchStopped:
		if a.sub != nil {
			select {
			case <-a.sub.Done():
				a.sub = nil
				a.statusBar.SetWatching(false)
			default:
			}
		}
		if msg.Err != nil {
			a.setError(fmt.Errorf("watcher stopped: %w", msg.Err))
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		a.shutdown()
		return a, tea.Quit
	}

	return a, nil
}

// handleKey routes key presses.
//
//nolint:gocyclo // central key handler
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		a.shutdown()
		return a, tea.Quit
	}

	if msg.Paste {
		a.statusBar.SetState(status.StateReading)
		return a, a.pasteCmd(string(msg.Runes))
	}

	if a.currentView == messages.ViewHelp {
		switch {
		case keymap.Matches(key, a.keymap.Quit):
			a.shutdown()
			return a, tea.Quit
		case keymap.Matches(key, a.keymap.Back), keymap.Matches(key, a.keymap.Help):
			a.currentView = messages.ViewItems
		}
		return a, nil
	}

	switch {
	case keymap.Matches(key, a.keymap.Quit):
		a.shutdown()
		return a, tea.Quit

	case keymap.Matches(key, a.keymap.Help):
		a.currentView = messages.ViewHelp

	case keymap.Matches(key, a.keymap.Read):
		a.statusBar.SetState(status.StateReading)
		return a, a.readCmd()

	case keymap.Matches(key, a.keymap.Watch):
		return a, a.toggleWatch()

	case keymap.Matches(key, a.keymap.History):
		a.historyVisible = a.ports.History.ToggleVisible()
		if !a.historyVisible {
			a.historyFocused = false
		}
		a.layout()

	case keymap.Matches(key, a.keymap.Focus):
		a.historyFocused = a.historyVisible && !a.historyFocused

	case keymap.Matches(key, a.keymap.Back):
		a.historyFocused = false

	case keymap.Matches(key, a.keymap.Clear):
		a.ports.History.Clear()
		a.refreshHistory()

	case keymap.Matches(key, a.keymap.Up):
		if a.historyFocused {
			a.history.MoveUp()
		} else {
			a.items.MoveUp()
			a.detail.SetItem(a.items.SelectedItem())
		}

	case keymap.Matches(key, a.keymap.Down):
		if a.historyFocused {
			a.history.MoveDown()
		} else {
			a.items.MoveDown()
			a.detail.SetItem(a.items.SelectedItem())
		}

	case keymap.Matches(key, a.keymap.ScrollUp):
		a.detail.ScrollUp()

	case keymap.Matches(key, a.keymap.ScrollDown):
		a.detail.ScrollDown()

	case keymap.Matches(key, a.keymap.Restore):
		if a.historyFocused {
			if e := a.history.SelectedEntry(); e != nil {
				return a, a.restoreCmd(e.ID)
			}
		}

	case keymap.Matches(key, a.keymap.Copy):
		return a, a.copyCmd(false)

	case keymap.Matches(key, a.keymap.CopyPlain):
		return a, a.copyCmd(true)
	}

	if a.historyFocused {
		a.statusBar.SetState(status.StateHistory)
	} else if a.statusBar.State() == status.StateHistory {
		a.statusBar.SetState(status.StateParsed)
	}
	return a, nil
}

// showResult puts r on display.
func (a *App) showResult(r domain.ParseResult) {
	a.result = &r
	if r.Sequence > a.shownSeq {
		a.shownSeq = r.Sequence
	}
	a.items.SetItems(r.Items)
	a.detail.SetItem(a.items.SelectedItem())
	a.err = nil

	if !r.Success {
		a.statusBar.SetState(status.StateError)
	} else {
		a.statusBar.SetState(status.StateParsed)
	}
	a.statusBar.SetMessage(r.Message)
	a.statusBar.SetItemCount(len(r.Items))

	for _, e := range a.history.Entries() {
		if e.Result.Sequence == r.Sequence && e.Timestamp.Equal(r.Timestamp) {
			a.history.SetCurrent(e.ID)
			break
		}
	}
}

func (a *App) refreshHistory() {
	a.history.SetEntries(a.ports.History.List())
}

func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetState(status.StateError)
	a.statusBar.SetMessage(err.Error())
}

// shutdown stops the watcher and releases pending listener sends.
func (a *App) shutdown() {
	if a.sub != nil {
		a.sub.Disable()
		a.sub = nil
	}
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.currentView == messages.ViewHelp {
		return a.viewHelp()
	}

	sections := []string{a.viewHeader(), a.viewBody()}
	if a.historyVisible {
		sections = append(sections, a.panel(a.historyFocused, a.width).Render(a.history.View(a.historyFocused)))
	}
	sections = append(sections, a.statusBar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) viewHeader() string {
	title := a.styles.Title.Render("clipscope")
	if a.result == nil {
		return title
	}
	origin := fmt.Sprintf("  %s · %s", a.result.Origin, a.result.Timestamp.Format("15:04:05"))
	return title + a.styles.Muted.Render(origin)
}

func (a *App) viewBody() string {
	listWidth, detailWidth := a.columnWidths()
	left := a.panel(!a.historyFocused, listWidth).Render(a.items.View())
	right := a.panel(false, detailWidth).Render(a.detail.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// panel returns the pane style for an outer width.
func (a *App) panel(focused bool, outer int) lipgloss.Style {
	style := a.styles.Panel
	if focused {
		style = a.styles.FocusedPanel
	}
	return style.Width(max(outer-2, 1))
}

func (a *App) columnWidths() (int, int) {
	listWidth := a.width * 2 / 5
	return listWidth, a.width - listWidth
}

// layout sizes the panes for the current dimensions.
func (a *App) layout() {
	a.statusBar.SetWidth(a.width)

	// Header, status bar and two border rows.
	bodyHeight := a.height - 4
	if a.historyVisible {
		bodyHeight -= historyHeight
	}
	bodyHeight = max(bodyHeight, 3)

	listWidth, detailWidth := a.columnWidths()
	a.items.SetDimensions(max(listWidth-4, 1), bodyHeight)
	a.detail.SetDimensions(max(detailWidth-4, 1), bodyHeight)
	a.history.SetDimensions(max(a.width-4, 1), historyHeight-2)
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString("Paste into the terminal to parse pasted text.\n")
	b.WriteString("Pasting file paths parses the files as a drop.\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	a.shutdown()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Result returns the parse result on display, if any.
func (a *App) Result() (domain.ParseResult, bool) {
	if a.result == nil {
		return domain.ParseResult{}, false
	}
	return *a.result, true
}

// SelectedItem returns the selected item, or nil if none.
func (a *App) SelectedItem() *domain.DataItem {
	return a.items.SelectedItem()
}

// HistoryVisible reports whether the history panel is shown.
func (a *App) HistoryVisible() bool {
	return a.historyVisible
}

// HistoryFocused reports whether keys drive the history panel.
func (a *App) HistoryFocused() bool {
	return a.historyFocused
}

// Watching reports whether the clipboard watcher is active.
func (a *App) Watching() bool {
	return a.sub != nil
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.layout()
}
