package board

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/store"
)

// Persister is the durable boundary the board flushes to after every
// successful mutation.
type Persister interface {
	SaveTasks(ctx context.Context, tasks []model.Task) error
	LoadTasks(ctx context.Context) ([]model.Task, bool, error)
}

// EventSink receives domain events emitted by the board. The notification
// log implements it; a nil sink disables event delivery.
type EventSink interface {
	TaskCreated(task model.Task)
}

// Fields carries the caller-supplied attributes for Create and Update.
// ID, CreatedAt, and Completed are managed by the board and cannot be set
// through Fields.
type Fields struct {
	Title       string
	Description string
	Priority    string
	Category    string
	DueDate     string
}

// Board owns the authoritative in-memory task collection. It is the only
// component that mutates task state; everything else works on snapshots.
// It is not safe for concurrent use — all access runs on the single
// Bubble Tea update loop.
type Board struct {
	tasks  []model.Task
	store  Persister
	events EventSink
}

// New creates a board backed by the given persister. events may be nil.
func New(p Persister, events EventSink) *Board {
	return &Board{store: p, events: events}
}

// Load initializes the collection from the persisted snapshot. On first
// run, or when the stored data is unreadable, it falls back to the seed
// set; an unreadable snapshot is logged as a non-fatal diagnostic, never
// propagated.
func (b *Board) Load(ctx context.Context) error {
	tasks, ok, err := b.store.LoadTasks(ctx)
	if err != nil {
		var de *store.DeserializationError
		if errors.As(err, &de) {
			log.Printf("taskboard: discarding unreadable task data: %v", err)
			b.tasks = SeedTasks(time.Now())
			return nil
		}
		return err
	}

	if !ok {
		b.tasks = SeedTasks(time.Now())
		return nil
	}

	b.tasks = tasks
	return nil
}

// Create validates the fields, inserts a new task at the front of the
// collection (most-recent-first), persists, and returns the new task.
// An empty title after trimming yields a *ValidationError and leaves the
// collection unchanged.
func (b *Board) Create(ctx context.Context, f Fields) (model.Task, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return model.Task{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	task := model.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: strings.TrimSpace(f.Description),
		Priority:    normalizePriority(f.Priority),
		Category:    f.Category,
		DueDate:     f.DueDate,
		Completed:   false,
		CreatedAt:   time.Now(),
	}

	b.tasks = append([]model.Task{task}, b.tasks...)

	if b.events != nil {
		b.events.TaskCreated(task)
	}

	return task, b.flush(ctx)
}

// Update replaces all caller-editable fields of the task with the given id.
// ID, CreatedAt, and Completed are carried over. Title emptiness is
// validated identically to Create.
func (b *Board) Update(ctx context.Context, id string, f Fields) (model.Task, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return model.Task{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}

	i := b.indexOf(id)
	if i < 0 {
		return model.Task{}, &NotFoundError{ID: id}
	}

	t := b.tasks[i]
	t.Title = title
	t.Description = strings.TrimSpace(f.Description)
	t.Priority = normalizePriority(f.Priority)
	t.Category = f.Category
	t.DueDate = f.DueDate
	b.tasks[i] = t

	return t, b.flush(ctx)
}

// ToggleComplete flips the completed flag of the task with the given id.
func (b *Board) ToggleComplete(ctx context.Context, id string) (model.Task, error) {
	i := b.indexOf(id)
	if i < 0 {
		return model.Task{}, &NotFoundError{ID: id}
	}

	b.tasks[i].Completed = !b.tasks[i].Completed
	return b.tasks[i], b.flush(ctx)
}

// Delete removes the task with the given id. Removal is irreversible;
// the caller is responsible for having confirmed the action with the user
// before calling.
func (b *Board) Delete(ctx context.Context, id string) error {
	i := b.indexOf(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}

	b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
	return b.flush(ctx)
}

// Get returns the task with the given id, if present.
func (b *Board) Get(id string) (model.Task, bool) {
	i := b.indexOf(id)
	if i < 0 {
		return model.Task{}, false
	}
	return b.tasks[i], true
}

// All returns a defensive copy of the current collection. Callers must
// not treat it as live state.
func (b *Board) All() []model.Task {
	snapshot := make([]model.Task, len(b.tasks))
	copy(snapshot, b.tasks)
	return snapshot
}

// flush persists the full collection. A write failure is reported to the
// caller but the in-memory mutation is not rolled back: the design accepts
// transient durability loss over blocking the UI.
func (b *Board) flush(ctx context.Context) error {
	if err := b.store.SaveTasks(ctx, b.tasks); err != nil {
		log.Printf("taskboard: persisting tasks: %v", err)
		return err
	}
	return nil
}

// indexOf returns the position of the task with the given id, or -1.
func (b *Board) indexOf(id string) int {
	for i := range b.tasks {
		if b.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// normalizePriority maps unrecognized priority values to medium.
func normalizePriority(p string) string {
	switch p {
	case model.PriorityHigh, model.PriorityMedium, model.PriorityLow:
		return p
	default:
		return model.PriorityMedium
	}
}
