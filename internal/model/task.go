package model

import "time"

// Task priority levels. The total order for sorting and weighting is
// high > medium > low.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Priorities lists the known priority levels from highest to lowest.
var Priorities = []string{PriorityHigh, PriorityMedium, PriorityLow}

// PriorityWeight returns the numeric sort weight for a priority level.
// Unknown values weigh 0 and sort below low.
func PriorityWeight(p string) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// DefaultCategories is the suggested category set offered by the task form.
// Category is free-form text; a task may carry any value.
var DefaultCategories = []string{"work", "personal", "design", "development"}

// DueDateLayout is the calendar-date format used for due dates.
// Due dates carry no time component.
const DueDateLayout = "2006-01-02"

// Task is a unit of user work tracked by the board.
//
// The JSON field names form the persistence contract for the tasks slot;
// unknown extra fields are ignored on load.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`

	// DueDate is a date in DueDateLayout form; empty means no due date.
	DueDate string `json:"dueDate"`

	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// DueDateValue parses the due date. ok is false when the task has no due
// date or the stored value does not parse.
func (t Task) DueDateValue() (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DueDateLayout, t.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// IsOverdue reports whether an uncompleted task's due date has passed.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Completed {
		return false
	}
	d, ok := t.DueDateValue()
	if !ok {
		return false
	}
	return d.Before(now.Truncate(24 * time.Hour))
}
