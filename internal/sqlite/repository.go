package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Sole248k/Task-Management-Application/pkg/types"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "tasks.db"

// ErrNoFields is returned by Update when the partial field-map names no
// recognized column.
var ErrNoFields = errors.New("no recognized fields to update")

// Compile-time interface check: Repository must implement types.Repository.
var _ types.Repository = (*Repository)(nil)

// Repository implements types.Repository backed by the tasks table.
// The database file persists between runs; Open creates the schema only
// when it does not already exist.
type Repository struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens <DataDir>/tasks.db,
// and ensures the schema exists.
func Open(config types.Config) (*Repository, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, err
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("initializing schema: %w", err)
		}
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection. Idempotent.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

// Insert persists a new task row and returns the assigned task_id.
func (r *Repository) Insert(fields types.FieldMap) (int64, error) {
	res, err := r.db.Exec(
		`INSERT INTO tasks (title, description, due_date, priority, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		fields[types.FieldTitle],
		fields[types.FieldDescription],
		fields[types.FieldDueDate],
		fields[types.FieldPriority],
		fields[types.FieldStatus],
		timestampText(fields[types.FieldCreatedAt]),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted task id: %w", err)
	}
	return id, nil
}

// FetchAll returns a field-map per stored task, ordered by task_id.
// Timestamp columns stay in their textual form; the entity layer parses them.
func (r *Repository) FetchAll() ([]types.FieldMap, error) {
	rows, err := r.db.Query(
		`SELECT task_id, title, description, due_date, priority, status, created_at
		 FROM tasks ORDER BY task_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching tasks: %w", err)
	}
	defer rows.Close()

	var results []types.FieldMap
	for rows.Next() {
		fields, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		results = append(results, fields)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return results, nil
}

// FetchOne returns the field-map for a single task.
// Returns types.ErrNotFound if no row exists with that id.
func (r *Repository) FetchOne(id int64) (types.FieldMap, error) {
	row := r.db.QueryRow(
		`SELECT task_id, title, description, due_date, priority, status, created_at
		 FROM tasks WHERE task_id = ?`,
		id,
	)
	fields, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("fetching task %d: %w", id, err)
	}
	return fields, nil
}

// Update applies a partial field-map to one row, building the SET clause
// from the recognized mutable columns only. Keys naming anything else are
// skipped, so a caller-supplied map can carry extra entries without turning
// into a SQL error. Returns types.ErrNotFound if no row was changed.
func (r *Repository) Update(id int64, fields types.FieldMap) error {
	var clauses []string
	var args []any
	for _, name := range types.MutableTaskFields {
		if v, ok := fields[name]; ok {
			clauses = append(clauses, name+" = ?")
			args = append(args, v)
		}
	}
	if len(clauses) == 0 {
		return ErrNoFields
	}
	args = append(args, id)

	query := "UPDATE tasks SET " + strings.Join(clauses, ", ") + " WHERE task_id = ?"
	res, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("updating task %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading update result: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Delete removes one row. Returns types.ErrNotFound if no row was removed.
func (r *Repository) Delete(id int64) error {
	res, err := r.db.Exec("DELETE FROM tasks WHERE task_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading delete result: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTask hydrates one row into a field-map.
func scanTask(s scanner) (types.FieldMap, error) {
	var (
		id          int64
		title       string
		description string
		dueDate     string
		priority    string
		status      string
		createdAt   string
	)
	if err := s.Scan(&id, &title, &description, &dueDate, &priority, &status, &createdAt); err != nil {
		return nil, err
	}
	return types.FieldMap{
		types.FieldTaskID:      id,
		types.FieldTitle:       title,
		types.FieldDescription: description,
		types.FieldDueDate:     dueDate,
		types.FieldPriority:    priority,
		types.FieldStatus:      status,
		types.FieldCreatedAt:   createdAt,
	}, nil
}

// timestampText renders a created_at value as RFC 3339 text for storage.
// A missing value falls back to the current time.
func timestampText(v any) string {
	switch ts := v.(type) {
	case time.Time:
		return ts.UTC().Format(time.RFC3339)
	case string:
		if ts != "" {
			return ts
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}
