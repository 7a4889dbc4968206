package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/taskboard/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// writeSlot bypasses the typed API to plant an arbitrary payload.
func writeSlot(t *testing.T, s *SQLiteStore, key, payload string) {
	t.Helper()

	_, err := s.db.Exec(`
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, payload, time.Now().UTC(),
	)
	require.NoError(t, err)
}

func TestTasksRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tasks := []model.Task{
		{
			ID:          "id-1",
			Title:       "Write docs",
			Description: "API reference",
			Priority:    model.PriorityHigh,
			Category:    "work",
			DueDate:     "2026-09-10",
			Completed:   false,
			CreatedAt:   time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        "id-2",
			Title:     "Ship release",
			Priority:  model.PriorityLow,
			Completed: true,
			CreatedAt: time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC),
		},
	}

	require.NoError(t, s.SaveTasks(ctx, tasks))

	got, ok, err := s.LoadTasks(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, tasks, got)
}

func TestLoadTasksMissingSlot(t *testing.T) {
	s := newTestStore(t)

	got, ok, err := s.LoadTasks(context.Background())
	require.NoError(t, err)
	assert.False(t, ok, "a never-written slot is absent, not empty")
	assert.Nil(t, got)
}

func TestSaveTasksEmptyCollection(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveTasks(ctx, []model.Task{}))

	got, ok, err := s.LoadTasks(ctx)
	require.NoError(t, err)
	assert.True(t, ok, "an explicitly saved empty collection is present")
	assert.Empty(t, got)
}

func TestSaveTasksOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := []model.Task{{ID: "a", Title: "a", CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}}
	second := []model.Task{{ID: "b", Title: "b", CreatedAt: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)}}

	require.NoError(t, s.SaveTasks(ctx, first))
	require.NoError(t, s.SaveTasks(ctx, second))

	got, ok, err := s.LoadTasks(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestLoadTasksMalformedPayload(t *testing.T) {
	s := newTestStore(t)
	writeSlot(t, s, taskSlotKey, "{not json")

	_, ok, err := s.LoadTasks(context.Background())
	assert.True(t, ok)

	var de *DeserializationError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, taskSlotKey, de.Key)
}

func TestLoadTasksIgnoresUnknownFields(t *testing.T) {
	s := newTestStore(t)
	writeSlot(t, s, taskSlotKey, `[{"id":"x","title":"from the future","futureField":42}]`)

	got, ok, err := s.LoadTasks(context.Background())
	require.NoError(t, err, "unknown fields from newer versions must not break loading")
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "from the future", got[0].Title)
}

func TestSettingsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	settings := model.Settings{
		DisplayName: "Alex Chen",
		Email:       "alex@example.com",
		Role:        "Product Designer",
		Notifications: model.NotificationPrefs{
			Email:     true,
			Push:      false,
			Reminders: true,
		},
	}

	require.NoError(t, s.SaveSettings(ctx, settings))

	got, ok, err := s.LoadSettings(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, settings, got)
}

func TestLoadSettingsMissingSlot(t *testing.T) {
	s := newTestStore(t)

	got, ok, err := s.LoadSettings(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, model.Settings{}, got)
}

func TestLoadSettingsMalformedPayload(t *testing.T) {
	s := newTestStore(t)
	writeSlot(t, s, settingsSlotKey, "!!")

	_, _, err := s.LoadSettings(context.Background())

	var de *DeserializationError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, settingsSlotKey, de.Key)
}

func TestSlotsAreIndependent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSettings(ctx, model.Settings{DisplayName: "Alex"}))

	_, ok, err := s.LoadTasks(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "writing settings must not create the tasks slot")
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.runMigrations())
	require.NoError(t, s.runMigrations())
}
