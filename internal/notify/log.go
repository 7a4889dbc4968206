// Package notify holds the session-lifetime notification log. Unlike the
// task collection it is deliberately not persisted: records exist only for
// the lifetime of the process.
package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/taskboard/internal/model"
)

// Log owns the notification collection. Records are never deleted; the
// read flag is the only mutation after append.
type Log struct {
	records []model.Notification
}

// New returns an empty notification log.
func New() *Log {
	return &Log{}
}

// NewSeeded returns a log pre-populated with the startup demonstration
// records, newest first.
func NewSeeded(now time.Time) *Log {
	l := &Log{}
	l.records = []model.Notification{
		{
			ID:        uuid.New().String(),
			Title:     "New task assigned",
			Message:   "You have been assigned a new task",
			Time:      "5 minutes ago",
			Icon:      "task",
			CreatedAt: now.Add(-5 * time.Minute),
		},
		{
			ID:        uuid.New().String(),
			Title:     "Task completed",
			Message:   `Sarah completed "Design Review"`,
			Time:      "1 hour ago",
			Icon:      "check",
			CreatedAt: now.Add(-time.Hour),
		},
		{
			ID:        uuid.New().String(),
			Title:     "Meeting reminder",
			Message:   "Team standup in 30 minutes",
			Time:      "2 hours ago",
			Read:      true,
			Icon:      "calendar",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        uuid.New().String(),
			Title:     "Deadline approaching",
			Message:   "Project deadline is tomorrow",
			Time:      "5 hours ago",
			Icon:      "clock",
			CreatedAt: now.Add(-5 * time.Hour),
		},
	}
	return l
}

// Append inserts a new unread record at the front. A missing ID or
// CreatedAt is filled in.
func (l *Log) Append(n model.Notification) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	n.Read = false
	l.records = append([]model.Notification{n}, l.records...)
}

// MarkRead sets the read flag on the matching record. A missing id is a
// no-op, not an error.
func (l *Log) MarkRead(id string) {
	for i := range l.records {
		if l.records[i].ID == id {
			l.records[i].Read = true
			return
		}
	}
}

// UnreadCount returns the number of unread records.
func (l *Log) UnreadCount() int {
	count := 0
	for _, n := range l.records {
		if !n.Read {
			count++
		}
	}
	return count
}

// All returns a snapshot of the records, newest first.
func (l *Log) All() []model.Notification {
	snapshot := make([]model.Notification, len(l.records))
	copy(snapshot, l.records)
	return snapshot
}

// TaskCreated implements the board's event sink by recording a
// task-created notification.
func (l *Log) TaskCreated(task model.Task) {
	l.Append(model.Notification{
		Title:   "New task created",
		Message: fmt.Sprintf("Task %q has been created", task.Title),
		Time:    "Just now",
		Icon:    "plus",
	})
}
