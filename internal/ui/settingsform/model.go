package settingsform

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/theme"
)

// SavedMsg is dispatched when the settings form is submitted.
type SavedMsg struct {
	Settings model.Settings
}

// CancelMsg is dispatched when the user aborts the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	displayName string
	email       string
	role        string
	notifEmail  bool
	notifPush   bool
	reminders   bool
}

// Model is the Bubble Tea model for the user settings form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a new settings form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start initializes the form with the current settings record.
func (m *Model) Start(s model.Settings) tea.Cmd {
	m.fb.displayName = s.DisplayName
	m.fb.email = s.Email
	m.fb.role = s.Role
	m.fb.notifEmail = s.Notifications.Email
	m.fb.notifPush = s.Notifications.Push
	m.fb.reminders = s.Notifications.Reminders

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Display Name").
				Value(&m.fb.displayName),
			huh.NewInput().
				Title("Email").
				Value(&m.fb.email),
			huh.NewInput().
				Title("Role").
				Value(&m.fb.role),
			huh.NewConfirm().
				Title("Email notifications").
				Value(&m.fb.notifEmail),
			huh.NewConfirm().
				Title("Push notifications").
				Value(&m.fb.notifPush),
			huh.NewConfirm().
				Title("Task reminders").
				Value(&m.fb.reminders),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())

	return m.form.Init()
}

// Update handles messages for the settings form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		settings := model.Settings{
			DisplayName: m.fb.displayName,
			Email:       m.fb.email,
			Role:        m.fb.role,
			Notifications: model.NotificationPrefs{
				Email:     m.fb.notifEmail,
				Push:      m.fb.notifPush,
				Reminders: m.fb.reminders,
			},
		}
		return m, func() tea.Msg { return SavedMsg{Settings: settings} }
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the settings form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	content := theme.PanelTitleStyle.Render("Settings") + "\n" + m.form.View()
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}
