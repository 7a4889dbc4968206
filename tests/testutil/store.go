// Package testutil provides shared helpers for package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nhle/taskboard/internal/board"
	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/store"
)

// NewTestStore opens an in-memory SQLite store and registers cleanup.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// NewTestBoard returns a loaded, empty board backed by a fresh in-memory
// store and no event sink. An empty collection is written first so that
// Load does not fall back to the seed set.
func NewTestBoard(t *testing.T) *board.Board {
	t.Helper()

	s := NewTestStore(t)
	require.NoError(t, s.SaveTasks(context.Background(), []model.Task{}))

	b := board.New(s, nil)
	require.NoError(t, b.Load(context.Background()))
	return b
}
