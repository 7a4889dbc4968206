package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/notify"
)

func TestAppend(t *testing.T) {
	l := notify.New()

	l.Append(model.Notification{Title: "first", Message: "one"})
	l.Append(model.Notification{Title: "second", Message: "two"})

	records := l.All()
	require.Len(t, records, 2)
	assert.Equal(t, "second", records[0].Title, "newest record comes first")
	assert.NotEmpty(t, records[0].ID)
	assert.False(t, records[0].CreatedAt.IsZero())
	assert.False(t, records[0].Read, "appended records start unread")
}

func TestAppendForcesUnread(t *testing.T) {
	l := notify.New()

	l.Append(model.Notification{Title: "t", Read: true})

	assert.Equal(t, 1, l.UnreadCount())
}

func TestMarkRead(t *testing.T) {
	l := notify.New()
	l.Append(model.Notification{ID: "n1", Title: "t"})

	l.MarkRead("n1")

	records := l.All()
	require.Len(t, records, 1)
	assert.True(t, records[0].Read)
	assert.Zero(t, l.UnreadCount())
}

func TestMarkReadUnknownIDIsNoOp(t *testing.T) {
	l := notify.New()
	l.Append(model.Notification{ID: "n1", Title: "t"})

	l.MarkRead("nope")

	assert.Equal(t, 1, l.UnreadCount())
}

func TestNewSeeded(t *testing.T) {
	l := notify.NewSeeded(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))

	records := l.All()
	require.Len(t, records, 4)
	assert.Equal(t, 3, l.UnreadCount(), "one seeded record is already read")

	for _, n := range records {
		assert.NotEmpty(t, n.ID)
		assert.NotEmpty(t, n.Title)
		assert.NotEmpty(t, n.Time)
	}
}

func TestAllReturnsSnapshot(t *testing.T) {
	l := notify.New()
	l.Append(model.Notification{ID: "n1", Title: "original"})

	records := l.All()
	records[0].Title = "mutated"

	assert.Equal(t, "original", l.All()[0].Title)
}

func TestTaskCreatedEvent(t *testing.T) {
	l := notify.New()

	l.TaskCreated(model.Task{ID: "t1", Title: "Ship it"})

	records := l.All()
	require.Len(t, records, 1)
	assert.Equal(t, "New task created", records[0].Title)
	assert.Contains(t, records[0].Message, `"Ship it"`)
	assert.Equal(t, "Just now", records[0].Time)
	assert.Equal(t, 1, l.UnreadCount())
}
