// Package app wires the board, query engine, notification log, and the UI
// sub-models into the root Bubble Tea program.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/taskboard/internal/board"
	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/notify"
	"github.com/nhle/taskboard/internal/query"
	"github.com/nhle/taskboard/internal/store"
	"github.com/nhle/taskboard/internal/ui"
	"github.com/nhle/taskboard/internal/ui/notifpanel"
	"github.com/nhle/taskboard/internal/ui/settingsform"
	"github.com/nhle/taskboard/internal/ui/statsview"
	"github.com/nhle/taskboard/internal/ui/taskform"
	"github.com/nhle/taskboard/internal/ui/tasklist"
)

// viewState identifies which screen currently owns the content area.
type viewState int

const (
	viewBoard viewState = iota
	viewForm
	viewStats
	viewNotifications
	viewSettings
)

// statusFilters and sortKeys define the cycle order for the f and tab keys.
var statusFilters = []string{query.StatusAll, query.StatusPending, query.StatusCompleted, query.StatusHigh}

var sortKeys = []string{query.SortDateDesc, query.SortDateAsc, query.SortPriority, query.SortAlpha}

// Model is the root application model.
type Model struct {
	board *board.Board
	log   *notify.Log
	store *store.SQLiteStore
	keys  *KeyMap

	view        query.View
	currentView viewState
	layout      ui.Layout
	ready       bool

	taskList     tasklist.Model
	taskForm     taskform.Model
	statsView    statsview.Model
	notifPanel   notifpanel.Model
	settingsForm settingsform.Model

	// status is the transient message line; cleared on the next key press.
	status string
	// pendingDelete holds the task awaiting y/n confirmation, if any.
	pendingDelete *model.Task
}

// New creates the root model. The board must already be loaded.
func New(b *board.Board, l *notify.Log, s *store.SQLiteStore) Model {
	return Model{
		board: b,
		log:   l,
		store: s,
		keys:  DefaultKeyMap(),
		view:  query.View{Status: query.StatusAll, Sort: query.SortDateDesc},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case tasklist.SearchChangedMsg:
		m.view.Search = msg.Term
		return m, m.refreshTasks()

	case taskform.SubmitMsg:
		m.currentView = viewBoard
		if msg.EditID == "" {
			return m, m.createTask(msg.Fields)
		}
		return m, m.updateTask(msg.EditID, msg.Fields)

	case taskform.CancelMsg:
		m.currentView = viewBoard
		return m, nil

	case settingsform.SavedMsg:
		m.currentView = viewBoard
		return m, m.saveSettings(msg.Settings)

	case settingsform.CancelMsg:
		m.currentView = viewBoard
		return m, nil

	case settingsLoadedMsg:
		m.currentView = viewSettings
		return m, m.settingsForm.Start(msg.settings)

	case settingsSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Saving settings failed: %v", msg.err)
		} else {
			m.status = "Settings saved"
		}
		return m, nil

	case notifpanel.MarkReadMsg:
		m.log.MarkRead(msg.ID)
		m.notifPanel.SetRecords(m.log.All())
		return m, nil

	case taskMutatedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}
		return m, m.refreshTasks()
	}

	return m.updateActiveView(msg)
}

// handleResize propagates new terminal dimensions to every sub-model.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.layout = ui.NewLayout(msg.Width, msg.Height)

	w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
	if !m.ready {
		m.taskList = tasklist.New(w, h)
		m.taskForm = taskform.New(w, h)
		m.statsView = statsview.New(w, h)
		m.notifPanel = notifpanel.New(w, h)
		m.settingsForm = settingsform.New(w, h)
		m.ready = true
		return m, m.refreshTasks()
	}

	m.taskList.SetSize(w, h)
	m.taskForm.SetSize(w, h)
	m.statsView.SetSize(w, h)
	m.notifPanel.SetSize(w, h)
	m.settingsForm.SetSize(w, h)
	return m, nil
}

// handleKeys routes key input: confirmation prompt first, then the active
// view's own input modes, then the global bindings.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.pendingDelete != nil {
		return m.handleConfirmKeys(msg)
	}

	// Forms and search own all key input while active.
	if m.currentView == viewForm || m.currentView == viewSettings {
		return m.updateActiveView(msg)
	}
	if m.currentView == viewBoard && m.taskList.Searching() {
		return m.updateActiveView(msg)
	}

	m.status = ""

	switch m.currentView {
	case viewBoard:
		return m.handleBoardKeys(msg)
	case viewStats, viewNotifications:
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Quit) {
			m.currentView = viewBoard
			return m, nil
		}
		return m.updateActiveView(msg)
	}

	return m.updateActiveView(msg)
}

// handleConfirmKeys resolves a pending delete confirmation. Only y
// confirms; any other key cancels.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task := *m.pendingDelete
	m.pendingDelete = nil

	if msg.String() == "y" {
		return m, m.deleteTask(task)
	}

	m.status = "Delete cancelled"
	return m, nil
}

// handleBoardKeys processes the global bindings on the board view.
func (m Model) handleBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NewTask):
		m.currentView = viewForm
		return m, m.taskForm.StartCreate()

	case key.Matches(msg, m.keys.EditTask):
		task, ok := m.taskList.SelectedTask()
		if !ok {
			return m, nil
		}
		m.currentView = viewForm
		return m, m.taskForm.StartEdit(task)

	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.taskList.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, m.toggleTask(task.ID)

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.taskList.SelectedTask()
		if !ok {
			return m, nil
		}
		m.pendingDelete = &task
		return m, nil

	case key.Matches(msg, m.keys.Search):
		return m, m.taskList.StartSearch()

	case key.Matches(msg, m.keys.CycleFilter):
		m.view.Status = cycle(statusFilters, m.view.Status)
		return m, m.refreshTasks()

	case key.Matches(msg, m.keys.CycleSort):
		m.view.Sort = cycle(sortKeys, m.view.Sort)
		return m, m.refreshTasks()

	case key.Matches(msg, m.keys.Stats):
		m.refreshStats()
		m.currentView = viewStats
		return m, nil

	case key.Matches(msg, m.keys.Notifications):
		m.notifPanel.SetRecords(m.log.All())
		m.currentView = viewNotifications
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		return m, m.loadSettings()
	}

	return m.updateActiveView(msg)
}

// updateActiveView forwards a message to whichever sub-model owns the
// content area.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case viewBoard:
		m.taskList, cmd = m.taskList.Update(msg)
	case viewForm:
		m.taskForm, cmd = m.taskForm.Update(msg)
	case viewStats:
		// Display-only view; nothing to forward.
	case viewNotifications:
		m.notifPanel, cmd = m.notifPanel.Update(msg)
	case viewSettings:
		m.settingsForm, cmd = m.settingsForm.Update(msg)
	}
	return m, cmd
}

// refreshTasks recomputes the filtered, sorted snapshot and hands it to
// the list view.
func (m *Model) refreshTasks() tea.Cmd {
	if !m.ready {
		return nil
	}

	visible := query.Sort(query.Filter(m.board.All(), m.view), m.view.Sort)
	m.taskList.SetFilterActive(m.view.Search != "" || m.view.Status != query.StatusAll)
	return m.taskList.SetTasks(visible)
}

// refreshStats recomputes the dashboard aggregates over the unfiltered
// collection.
func (m *Model) refreshStats() {
	tasks := m.board.All()
	m.statsView.SetData(
		query.Stats(tasks),
		query.CompletionRate(tasks),
		query.PriorityDistribution(tasks),
		query.CategoryDistribution(tasks, model.DefaultCategories),
	)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Task Board", m.headerBadge())
	statusBar := m.layout.RenderStatusBar(m.statusLine())

	var content string
	switch m.currentView {
	case viewBoard:
		content = m.taskList.View()
	case viewForm:
		content = m.taskForm.View()
	case viewStats:
		content = m.statsView.View()
	case viewNotifications:
		content = m.notifPanel.View()
	case viewSettings:
		content = m.settingsForm.View()
	}

	return m.layout.RenderFrame(header, content, statusBar)
}

// headerBadge renders the unread notification counter.
func (m Model) headerBadge() string {
	unread := m.log.UnreadCount()
	if unread == 0 {
		return ""
	}
	return fmt.Sprintf("● %d unread", unread)
}

// statusLine picks what the bottom bar shows: the confirmation prompt, a
// transient message, or the standing filter/sort summary with key hints.
func (m Model) statusLine() string {
	if m.pendingDelete != nil {
		return fmt.Sprintf("Delete %q? (y/n)", m.pendingDelete.Title)
	}
	if m.status != "" {
		return m.status
	}
	return fmt.Sprintf(
		"filter: %s · sort: %s · n new · x toggle · d delete · / search · f filter · tab sort · s stats · b inbox · u settings · q quit",
		m.view.Status, m.view.Sort,
	)
}

// cycle returns the element after current, wrapping around. Unknown
// values restart the cycle.
func cycle(values []string, current string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
