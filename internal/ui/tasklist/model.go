package tasklist

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/theme"
)

// SearchChangedMsg is sent when the user commits or clears the search term.
type SearchChangedMsg struct {
	Term string
}

// Model is the task list view. It renders whatever snapshot it is given;
// filtering and sorting happen upstream in the query engine.
type Model struct {
	list        list.Model
	searchMode  bool
	searchInput textinput.Model
	hasFilters  bool
	width       int
	height      int
}

// New creates a new task list model.
func New(width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height-2)
	l.Title = "Tasks"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	si := textinput.New()
	si.Placeholder = "search tasks..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		list:        l,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// SetTasks replaces the displayed snapshot.
func (m *Model) SetTasks(tasks []model.Task) tea.Cmd {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = TaskItem{Task: t}
	}
	return m.list.SetItems(items)
}

// SetFilterActive tells the empty state whether a filter or search term is
// in effect.
func (m *Model) SetFilterActive(active bool) {
	m.hasFilters = active
}

// SelectedTask returns the currently highlighted task, if any.
func (m Model) SelectedTask() (model.Task, bool) {
	item, ok := m.list.SelectedItem().(TaskItem)
	if !ok {
		return model.Task{}, false
	}
	return item.Task, true
}

// Searching reports whether the search input currently has focus.
func (m Model) Searching() bool {
	return m.searchMode
}

// StartSearch focuses the search input.
func (m *Model) StartSearch() tea.Cmd {
	m.searchMode = true
	m.searchInput.Reset()
	return m.searchInput.Focus()
}

// Update handles messages for the task list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.searchMode {
		return m.handleSearchKeys(key)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while in search mode.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		term := m.searchInput.Value()
		return m, func() tea.Msg { return SearchChangedMsg{Term: term} }

	case "esc":
		m.searchMode = false
		m.searchInput.Reset()
		return m, func() tea.Msg { return SearchChangedMsg{Term: ""} }
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// View renders the task list view.
func (m Model) View() string {
	if m.searchMode {
		searchBar := lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.searchInput.View())
		return lipgloss.JoinVertical(lipgloss.Left, searchBar, m.list.View())
	}

	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}

	return m.list.View()
}

// renderEmptyState shows guidance text when no tasks are visible.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	if m.hasFilters {
		return style.Render("No matching tasks.\nTry adjusting your filters or search.")
	}

	return style.Render("No tasks yet.\n\nPress n to create your first task.")
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.searchInput.Width = width - 4
}
