package notifpanel

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/theme"
)

// MarkReadMsg is sent when the user opens a notification.
type MarkReadMsg struct {
	ID string
}

// Model is the notifications panel: a cursor-navigable list of event
// records with unread highlighting.
type Model struct {
	records []model.Notification
	cursor  int
	width   int
	height  int
}

// New creates a new notifications panel model.
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// SetRecords replaces the displayed snapshot, clamping the cursor.
func (m *Model) SetRecords(records []model.Notification) {
	m.records = records
	if m.cursor >= len(records) {
		m.cursor = len(records) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetSize updates the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles navigation and mark-read keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor < len(m.records) {
			id := m.records[m.cursor].ID
			return m, func() tea.Msg { return MarkReadMsg{ID: id} }
		}
	}

	return m, nil
}

// View renders the notifications panel.
func (m Model) View() string {
	if len(m.records) == 0 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No notifications.")
	}

	var lines []string
	for i, n := range m.records {
		marker := " "
		if !n.Read {
			marker = "●"
		}

		line := fmt.Sprintf("%s %s — %s  %s", marker, n.Title, n.Message, theme.DueDateStyle.Render(n.Time))
		if n.Read {
			line = theme.DimmedStyle.Render(line)
		}

		if i == m.cursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		lines = append(lines, line)
	}

	body := theme.PanelTitleStyle.Render("Notifications") + "\n" + strings.Join(lines, "\n")
	return theme.PanelStyle.Render(body)
}
