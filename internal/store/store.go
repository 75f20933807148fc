// Package store provides the SQLite-backed activity log.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/m4cbeth/16dollars/internal/model"
)

// Store persists logged activities.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the activity database path under the user's data
// directory.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "16dollars", "activities.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "16dollars", "activities.db")
}

// Open opens or creates the activity database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening activity db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveActivity inserts or replaces an activity.
func (s *Store) SaveActivity(a model.Activity) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO activities
		(id, name, category, start_time, end_time, cost, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, string(a.Category),
		a.StartTime.Format(time.RFC3339),
		a.EndTime.Format(time.RFC3339),
		a.Cost,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving activity: %w", err)
	}
	return nil
}

// LoadActivities reads all activities, oldest first.
func (s *Store) LoadActivities() ([]model.Activity, error) {
	rows, err := s.db.Query(`SELECT id, name, category, start_time, end_time, cost
		FROM activities ORDER BY start_time`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var activities []model.Activity
	for rows.Next() {
		var a model.Activity
		var category, startStr, endStr string
		if err := rows.Scan(&a.ID, &a.Name, &category, &startStr, &endStr, &a.Cost); err != nil {
			return nil, err
		}
		a.Category = model.Category(category)
		if t, err := time.Parse(time.RFC3339, startStr); err == nil {
			a.StartTime = t.Local()
		}
		if t, err := time.Parse(time.RFC3339, endStr); err == nil {
			a.EndTime = t.Local()
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// DeleteActivity removes an activity by ID.
func (s *Store) DeleteActivity(id string) error {
	_, err := s.db.Exec("DELETE FROM activities WHERE id = ?", id)
	return err
}

// ActivityCount returns the number of stored activities.
func (s *Store) ActivityCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM activities").Scan(&count)
	return count, err
}
