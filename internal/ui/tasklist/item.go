package tasklist

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/theme"
)

// TaskItem wraps a model.Task so it can be used in a bubbles/list.
type TaskItem struct {
	Task model.Task
}

// FilterValue returns the string used for fuzzy filtering.
func (i TaskItem) FilterValue() string { return i.Task.Title }

// ItemDelegate implements list.ItemDelegate for rendering task lines.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single task line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(TaskItem)
	if !ok {
		return
	}
	t := ti.Task

	prefix := "○"
	if t.Completed {
		prefix = "✓"
	}

	priBadge := theme.PriorityStyle(t.Priority).Render(priorityLabel(t.Priority))

	catBadge := ""
	if t.Category != "" {
		catBadge = theme.CategoryStyle.Render(" [" + t.Category + "]")
	}

	dueStr := ""
	if due, ok := t.DueDateValue(); ok {
		dueStr = theme.DueDateStyle.Render(" due " + due.Format("Jan 02"))
	}

	overdueStr := ""
	if t.IsOverdue(time.Now()) {
		overdueStr = theme.OverdueStyle.Render(" OVERDUE")
	}

	line := fmt.Sprintf("%s %s %s%s%s%s", prefix, priBadge, t.Title, catBadge, dueStr, overdueStr)

	if t.Completed {
		line = theme.DimmedStyle.Render(line)
	}

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

// priorityLabel returns a short badge label for the given priority.
func priorityLabel(p string) string {
	switch p {
	case model.PriorityHigh:
		return "HIGH"
	case model.PriorityMedium:
		return "MED "
	case model.PriorityLow:
		return "LOW "
	default:
		return "??? "
	}
}
