package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/taskboard/internal/model"
)

// Fixed slot keys for the two persisted records.
const (
	taskSlotKey     = "tasks"
	settingsSlotKey = "settings"
)

// SQLiteStore persists the task collection and the settings record as
// serialized JSON values under fixed keys in a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// SaveTasks serializes the full task collection into the tasks slot,
// overwriting any prior value.
func (s *SQLiteStore) SaveTasks(ctx context.Context, tasks []model.Task) error {
	payload, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshaling tasks: %w", err)
	}
	return s.saveSlot(ctx, taskSlotKey, payload)
}

// LoadTasks reads and deserializes the tasks slot. ok is false when the
// slot has never been written. A present but unreadable value yields a
// *DeserializationError.
func (s *SQLiteStore) LoadTasks(ctx context.Context) ([]model.Task, bool, error) {
	payload, ok, err := s.loadSlot(ctx, taskSlotKey)
	if err != nil || !ok {
		return nil, ok, err
	}

	var tasks []model.Task
	if err := json.Unmarshal(payload, &tasks); err != nil {
		return nil, true, &DeserializationError{Key: taskSlotKey, Cause: err}
	}
	return tasks, true, nil
}

// SaveSettings serializes the settings record into the settings slot,
// overwriting any prior value.
func (s *SQLiteStore) SaveSettings(ctx context.Context, settings model.Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	return s.saveSlot(ctx, settingsSlotKey, payload)
}

// LoadSettings reads and deserializes the settings slot. ok is false when
// the slot has never been written.
func (s *SQLiteStore) LoadSettings(ctx context.Context) (model.Settings, bool, error) {
	var settings model.Settings

	payload, ok, err := s.loadSlot(ctx, settingsSlotKey)
	if err != nil || !ok {
		return settings, ok, err
	}

	if err := json.Unmarshal(payload, &settings); err != nil {
		return model.Settings{}, true, &DeserializationError{Key: settingsSlotKey, Cause: err}
	}
	return settings, true, nil
}

// saveSlot upserts a serialized value under the given key.
func (s *SQLiteStore) saveSlot(ctx context.Context, key string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(payload), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("writing slot %q: %w", key, err)
	}
	return nil
}

// loadSlot reads the raw value stored under the given key.
func (s *SQLiteStore) loadSlot(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.GetContext(ctx, &value, "SELECT value FROM slots WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading slot %q: %w", key, err)
	}
	return []byte(value), true, nil
}
