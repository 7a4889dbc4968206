package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/taskboard/internal/board"
	"github.com/nhle/taskboard/internal/model"
)

// taskMutatedMsg is sent after a board mutation completes. status carries
// the toast-style message for the status bar.
type taskMutatedMsg struct {
	status string
	err    error
}

// settingsLoadedMsg carries the persisted settings record for the form.
type settingsLoadedMsg struct {
	settings model.Settings
}

// settingsSavedMsg is sent after the settings slot has been written.
type settingsSavedMsg struct {
	err error
}

// createTask persists a new task via the board.
func (m *Model) createTask(f board.Fields) tea.Cmd {
	b := m.board
	return func() tea.Msg {
		task, err := b.Create(context.Background(), f)
		return mutationResult(task, err, "created")
	}
}

// updateTask applies edited fields to an existing task.
func (m *Model) updateTask(id string, f board.Fields) tea.Cmd {
	b := m.board
	return func() tea.Msg {
		task, err := b.Update(context.Background(), id, f)
		return mutationResult(task, err, "updated")
	}
}

// toggleTask flips a task between pending and completed.
func (m *Model) toggleTask(id string) tea.Cmd {
	b := m.board
	return func() tea.Msg {
		task, err := b.ToggleComplete(context.Background(), id)
		verb := "completed"
		if !task.Completed {
			verb = "reopened"
		}
		return mutationResult(task, err, verb)
	}
}

// deleteTask removes a task. The confirmation prompt has already been
// answered by the time this runs.
func (m *Model) deleteTask(task model.Task) tea.Cmd {
	b := m.board
	return func() tea.Msg {
		err := b.Delete(context.Background(), task.ID)
		return mutationResult(task, err, "deleted")
	}
}

// mutationResult converts a board call outcome into a taskMutatedMsg.
// Persistence failures leave the in-memory mutation applied, so they are
// reported as a warning on an otherwise successful operation.
func mutationResult(task model.Task, err error, verb string) taskMutatedMsg {
	if err == nil {
		return taskMutatedMsg{status: fmt.Sprintf("Task %q %s", task.Title, verb)}
	}
	if isUserError(err) {
		return taskMutatedMsg{err: err}
	}
	return taskMutatedMsg{
		status: fmt.Sprintf("Task %q %s, but saving failed: %v", task.Title, verb, err),
	}
}

// isUserError reports whether err is a recoverable domain error that
// should be surfaced verbatim.
func isUserError(err error) bool {
	var ve *board.ValidationError
	var nfe *board.NotFoundError
	return errors.As(err, &ve) || errors.As(err, &nfe)
}

// loadSettings reads the settings slot for the settings form. A missing
// slot yields the zero record.
func (m *Model) loadSettings() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		settings, _, err := s.LoadSettings(context.Background())
		if err != nil {
			settings = model.Settings{}
		}
		return settingsLoadedMsg{settings: settings}
	}
}

// saveSettings writes the settings slot.
func (m *Model) saveSettings(settings model.Settings) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		return settingsSavedMsg{err: s.SaveSettings(context.Background(), settings)}
	}
}
