package board_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/taskboard/internal/board"
	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/store"
	"github.com/nhle/taskboard/tests/testutil"
)

// stubPersister lets tests control what Load returns and whether Save
// fails.
type stubPersister struct {
	loadTasks []model.Task
	loadOK    bool
	loadErr   error
	saveErr   error
	saved     [][]model.Task
}

func (p *stubPersister) SaveTasks(_ context.Context, tasks []model.Task) error {
	snapshot := make([]model.Task, len(tasks))
	copy(snapshot, tasks)
	p.saved = append(p.saved, snapshot)
	return p.saveErr
}

func (p *stubPersister) LoadTasks(_ context.Context) ([]model.Task, bool, error) {
	return p.loadTasks, p.loadOK, p.loadErr
}

// recordingSink captures emitted events.
type recordingSink struct {
	created []model.Task
}

func (s *recordingSink) TaskCreated(task model.Task) {
	s.created = append(s.created, task)
}

func TestCreate(t *testing.T) {
	b := testutil.NewTestBoard(t)
	ctx := context.Background()

	task, err := b.Create(ctx, board.Fields{
		Title:       "  Write release notes  ",
		Description: " Summarize the changes ",
		Priority:    model.PriorityHigh,
		Category:    "work",
		DueDate:     "2026-09-15",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Write release notes", task.Title)
	assert.Equal(t, "Summarize the changes", task.Description)
	assert.Equal(t, model.PriorityHigh, task.Priority)
	assert.Equal(t, "work", task.Category)
	assert.Equal(t, "2026-09-15", task.DueDate)
	assert.False(t, task.Completed)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestCreateInsertsAtFront(t *testing.T) {
	b := testutil.NewTestBoard(t)
	ctx := context.Background()

	_, err := b.Create(ctx, board.Fields{Title: "first"})
	require.NoError(t, err)
	second, err := b.Create(ctx, board.Fields{Title: "second"})
	require.NoError(t, err)

	all := b.All()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, "second", all[0].Title)
}

func TestCreateEmptyTitle(t *testing.T) {
	b := testutil.NewTestBoard(t)
	ctx := context.Background()

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := b.Create(ctx, board.Fields{Title: title})

		var ve *board.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "title", ve.Field)
	}

	assert.Empty(t, b.All(), "rejected creates must not grow the collection")
}

func TestCreateUniqueIDs(t *testing.T) {
	b := testutil.NewTestBoard(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		task, err := b.Create(ctx, board.Fields{Title: "task"})
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestCreateNormalizesPriority(t *testing.T) {
	b := testutil.NewTestBoard(t)
	ctx := context.Background()

	task, err := b.Create(ctx, board.Fields{Title: "t", Priority: "urgent"})
	require.NoError(t, err)
	assert.Equal(t, model.PriorityMedium, task.Priority)
}

func TestUpdate(t *testing.T) {
	b := testutil.NewTestBoard(t)
	ctx := context.Background()

	created, err := b.Create(ctx, board.Fields{Title: "draft", Priority: model.PriorityLow})
	require.NoError(t, err)
	_, err = b.ToggleComplete(ctx, created.ID)
	require.NoError(t, err)

	updated, err := b.Update(ctx, created.ID, board.Fields{
		Title:    "final",
		Priority: model.PriorityHigh,
		Category: "design",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.Completed, "completion state must survive edits")
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, model.PriorityHigh, updated.Priority)
	assert.Equal(t, "design", updated.Category)
}

func TestUpdateNotFound(t *testing.T) {
	b := testutil.NewTestBoard(t)

	_, err := b.Update(context.Background(), "no-such-id", board.Fields{Title: "t"})

	var nfe *board.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "no-such-id", nfe.ID)
}

func TestToggleCompleteInvolution(t *testing.T) {
	b := testutil.NewTestBoard(t)
	ctx := context.Background()

	created, err := b.Create(ctx, board.Fields{Title: "t"})
	require.NoError(t, err)

	toggled, err := b.ToggleComplete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = b.ToggleComplete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestDelete(t *testing.T) {
	b := testutil.NewTestBoard(t)
	ctx := context.Background()

	keep, err := b.Create(ctx, board.Fields{Title: "keep"})
	require.NoError(t, err)
	drop, err := b.Create(ctx, board.Fields{Title: "drop"})
	require.NoError(t, err)

	require.NoError(t, b.Delete(ctx, drop.ID))

	_, found := b.Get(drop.ID)
	assert.False(t, found)
	_, found = b.Get(keep.ID)
	assert.True(t, found)
	assert.Len(t, b.All(), 1)
}

func TestDeleteNotFound(t *testing.T) {
	b := testutil.NewTestBoard(t)

	err := b.Delete(context.Background(), "no-such-id")

	var nfe *board.NotFoundError
	assert.ErrorAs(t, err, &nfe)
}

func TestLoadSeedsFirstRun(t *testing.T) {
	s := testutil.NewTestStore(t)
	b := board.New(s, nil)

	require.NoError(t, b.Load(context.Background()))

	all := b.All()
	require.NotEmpty(t, all)
	for _, task := range all {
		assert.NotEmpty(t, task.ID)
		assert.NotEmpty(t, task.Title)
	}
}

func TestLoadKeepsExplicitlyEmptyCollection(t *testing.T) {
	s := testutil.NewTestStore(t)
	require.NoError(t, s.SaveTasks(context.Background(), []model.Task{}))

	b := board.New(s, nil)
	require.NoError(t, b.Load(context.Background()))

	assert.Empty(t, b.All(), "a saved empty collection must not be reseeded")
}

func TestLoadUnreadableDataFallsBackToSeed(t *testing.T) {
	p := &stubPersister{
		loadOK:  true,
		loadErr: &store.DeserializationError{Key: "tasks", Cause: errors.New("bad json")},
	}
	b := board.New(p, nil)

	require.NoError(t, b.Load(context.Background()), "unreadable data is a fallback, not a failure")
	assert.NotEmpty(t, b.All())
}

func TestLoadPropagatesStoreErrors(t *testing.T) {
	p := &stubPersister{loadErr: errors.New("disk on fire")}
	b := board.New(p, nil)

	err := b.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk on fire")
}

func TestAllReturnsDefensiveCopy(t *testing.T) {
	b := testutil.NewTestBoard(t)
	ctx := context.Background()

	created, err := b.Create(ctx, board.Fields{Title: "original"})
	require.NoError(t, err)

	snapshot := b.All()
	snapshot[0].Title = "mutated"

	got, found := b.Get(created.ID)
	require.True(t, found)
	assert.Equal(t, "original", got.Title)
}

func TestCreateEmitsEvent(t *testing.T) {
	p := &stubPersister{loadOK: true}
	sink := &recordingSink{}
	b := board.New(p, sink)
	require.NoError(t, b.Load(context.Background()))

	task, err := b.Create(context.Background(), board.Fields{Title: "notify me"})
	require.NoError(t, err)

	require.Len(t, sink.created, 1)
	assert.Equal(t, task.ID, sink.created[0].ID)
}

func TestPersistFailureKeepsMutation(t *testing.T) {
	p := &stubPersister{loadOK: true, saveErr: errors.New("readonly fs")}
	b := board.New(p, nil)
	require.NoError(t, b.Load(context.Background()))

	task, err := b.Create(context.Background(), board.Fields{Title: "survives"})
	require.Error(t, err)

	_, found := b.Get(task.ID)
	assert.True(t, found, "in-memory state must not roll back on a failed write")
}

func TestMutationsPersistAcrossReload(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.SaveTasks(ctx, []model.Task{}))

	b := board.New(s, nil)
	require.NoError(t, b.Load(ctx))

	created, err := b.Create(ctx, board.Fields{Title: "durable", Priority: model.PriorityLow})
	require.NoError(t, err)
	_, err = b.ToggleComplete(ctx, created.ID)
	require.NoError(t, err)

	reloaded := board.New(s, nil)
	require.NoError(t, reloaded.Load(ctx))

	got, found := reloaded.Get(created.ID)
	require.True(t, found)
	assert.Equal(t, "durable", got.Title)
	assert.True(t, got.Completed)
}

func TestSeedTasksCoverAllPriorities(t *testing.T) {
	tasks := board.SeedTasks(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))

	byPriority := make(map[string]int)
	for _, task := range tasks {
		byPriority[task.Priority]++
		assert.NotEmpty(t, task.ID)
		assert.False(t, task.CreatedAt.IsZero())
	}

	for _, p := range model.Priorities {
		assert.Positive(t, byPriority[p], "seed set should include priority %s", p)
	}
}
