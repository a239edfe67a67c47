// Package archive provides sqlite-based storage for archived tasks.
// Completed tasks moved out of the live list land here, keyed by a
// generated id since archived rows outlive their list positions.
package archive

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/atishaydeveloper/taskdeck/pkg/models"
)

// DB wraps an sqlite connection with archive operations.
type DB struct {
	conn *sql.DB
	path string
}

// Entry is one archived task row.
type Entry struct {
	// ID is the generated identifier for the archived row.
	ID string
	// Task is the archived task record.
	Task models.Task
	// ArchivedAt is when the task was archived.
	ArchivedAt time.Time
}

// Open opens the archive database at the given path.
// It creates the parent directories if they don't exist.
func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create archive directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	return &DB{conn: conn, path: path}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Path returns the path to the database file.
func (db *DB) Path() string {
	return db.path
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}

	var currentVersion int
	row := db.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("get schema version: %w", err)
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, migrationV1ArchivedTasks},
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		tx, err := db.conn.Begin()
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply migration v%d: %w", m.version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", m.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration v%d: %w", m.version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration v%d: %w", m.version, err)
		}
	}

	return nil
}

const migrationV1ArchivedTasks = `
CREATE TABLE IF NOT EXISTS archived_tasks (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	priority INTEGER NOT NULL,
	due_date TEXT NOT NULL,
	archived_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_archived_tasks_archived_at ON archived_tasks(archived_at);
`

// ArchiveTasks inserts the given tasks as archived rows.
// Returns the generated ids in insertion order.
func (db *DB) ArchiveTasks(tasks []models.Task) ([]string, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	now := formatTime(time.Now())
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		id := uuid.New().String()
		_, err := tx.Exec(`
			INSERT INTO archived_tasks (id, title, description, priority, due_date, archived_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, t.Title, t.Description, int(t.Priority), t.DueDate, now)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("insert archived task: %w", err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit archive: %w", err)
	}
	return ids, nil
}

// List returns archived entries, most recent first. A non-positive
// limit returns all entries.
func (db *DB) List(limit int) ([]Entry, error) {
	query := `
		SELECT id, title, description, priority, due_date, archived_at
		FROM archived_tasks
		ORDER BY archived_at DESC, id
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list archived tasks: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var priority int
		var archivedAt string
		if err := rows.Scan(&e.ID, &e.Task.Title, &e.Task.Description, &priority, &e.Task.DueDate, &archivedAt); err != nil {
			return nil, fmt.Errorf("scan archived task: %w", err)
		}
		e.Task.Priority = models.Priority(priority)
		e.Task.Completed = true
		if t, err := parseTime(archivedAt); err == nil {
			e.ArchivedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// PurgeOlderThan deletes entries archived before the cutoff.
// Returns the number of rows deleted.
func (db *DB) PurgeOlderThan(olderThan time.Duration) (int64, error) {
	cutoff := formatTime(time.Now().Add(-olderThan))

	result, err := db.conn.Exec(`DELETE FROM archived_tasks WHERE archived_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge archived tasks: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return count, nil
}

// formatTime formats a time.Time for sqlite storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses a time string from sqlite.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
