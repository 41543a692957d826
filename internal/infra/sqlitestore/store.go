// Package sqlitestore provides a SQLite implementation of UserRepository.
package sqlitestore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/runoshun/taskpulse/internal/domain"
)

// Store implements domain.UserRepository on a local SQLite database.
// Tasks keep their full JSON form in the data column; the other task
// columns are denormalized for ad-hoc queries.
type Store struct {
	db   *sqlx.DB
	path string
}

// userRow mirrors the users table.
type userRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Preferences string `db:"preferences"`
	History     string `db:"history"`
}

// New creates a Store for the database at path. The database is opened
// lazily by Initialize or the first repository call.
func New(path string) *Store {
	return &Store{path: path}
}

// Open opens (or creates) the database, enables WAL mode and foreign
// keys, and runs any pending schema migrations.
func Open(path string) (*Store, error) {
	s := New(path)
	if err := s.Initialize(); err != nil {
		return nil, err
	}
	return s, nil
}

// Initialize opens the database and applies migrations. It is idempotent.
func (s *Store) Initialize() error {
	if s.db != nil {
		return nil
	}

	db, err := sqlx.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("opening sqlite db: %w", err)
	}
	// PRAGMAs are per connection; a single connection keeps them in effect.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return fmt.Errorf("enabling WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return fmt.Errorf("enabling foreign keys: %w", err)
	}

	s.db = db
	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		s.db = nil
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *Store) runMigrations() error {
	currentVersion := 0

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

// Get retrieves a user by ID. Returns nil if not found.
func (s *Store) Get(id string) (*domain.User, error) {
	if err := s.Initialize(); err != nil {
		return nil, err
	}

	var rows []userRow
	if err := s.db.Select(&rows, "SELECT id, name, preferences, history FROM users WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("getting user %s: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return s.load(rows[0])
}

// List retrieves all users ordered by name.
func (s *Store) List() ([]*domain.User, error) {
	if err := s.Initialize(); err != nil {
		return nil, err
	}

	var rows []userRow
	if err := s.db.Select(&rows, "SELECT id, name, preferences, history FROM users ORDER BY name, id"); err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}

	users := make([]*domain.User, 0, len(rows))
	for _, row := range rows {
		u, err := s.load(row)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// load decodes a user row and attaches its tasks in stored order.
func (s *Store) load(row userRow) (*domain.User, error) {
	user := &domain.User{ID: row.ID, Name: row.Name}
	if err := json.Unmarshal([]byte(row.Preferences), &user.Preferences); err != nil {
		return nil, fmt.Errorf("unmarshaling preferences for user %s: %w", row.ID, err)
	}
	if err := json.Unmarshal([]byte(row.History), &user.History); err != nil {
		return nil, fmt.Errorf("unmarshaling history for user %s: %w", row.ID, err)
	}

	var data []string
	if err := s.db.Select(&data, "SELECT data FROM tasks WHERE user_id = ? ORDER BY position", row.ID); err != nil {
		return nil, fmt.Errorf("querying tasks for user %s: %w", row.ID, err)
	}
	user.Tasks = make([]domain.Task, 0, len(data))
	for _, d := range data {
		var t domain.Task
		if err := json.Unmarshal([]byte(d), &t); err != nil {
			return nil, fmt.Errorf("unmarshaling task for user %s: %w", row.ID, err)
		}
		user.Tasks = append(user.Tasks, t)
	}
	return user, nil
}

// Save creates or updates a user, replacing its task list.
func (s *Store) Save(user *domain.User) error {
	if err := s.Initialize(); err != nil {
		return err
	}

	prefs, err := json.Marshal(user.Preferences)
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}
	history := user.History
	if history == nil {
		history = []domain.ProductivityRecord{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO users (id, name, preferences, history, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			preferences = excluded.preferences,
			history = excluded.history,
			updated_at = excluded.updated_at`,
		user.ID, user.Name, string(prefs), string(historyJSON), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting user %s: %w", user.ID, err)
	}

	if _, err := tx.Exec("DELETE FROM tasks WHERE user_id = ?", user.ID); err != nil {
		return fmt.Errorf("clearing tasks for user %s: %w", user.ID, err)
	}

	stmt, err := tx.Preparex(`
		INSERT INTO tasks (user_id, id, position, name, type, completed, end_at, data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing task insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range user.Tasks {
		t := &user.Tasks[i]
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("marshaling task %s: %w", t.ID, err)
		}
		_, err = stmt.Exec(
			user.ID, t.ID, i, t.Name, string(t.Type), boolToInt(t.Completed),
			t.End.UTC(), string(data),
		)
		if err != nil {
			return fmt.Errorf("inserting task %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

// Delete removes a user and its tasks.
func (s *Store) Delete(id string) error {
	if err := s.Initialize(); err != nil {
		return err
	}
	// Task rows go with it through ON DELETE CASCADE.
	if _, err := s.db.Exec("DELETE FROM users WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting user %s: %w", id, err)
	}
	return nil
}

// boolToInt converts a boolean to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Ensure Store implements UserRepository and StoreInitializer.
var (
	_ domain.UserRepository   = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
