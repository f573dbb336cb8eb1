// Package sqlite implements the persistence port on a single SQLite table.
package sqlite

// Schema DDL for the tasks table. Unlike an engine-side ENUM, the value sets
// are enforced here with CHECK constraints; the entity layer normalizes
// input to these exact forms before anything reaches the driver.
const createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    task_id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    due_date TEXT NOT NULL,
    priority TEXT NOT NULL CHECK (priority IN ('Low', 'Medium', 'High')),
    status TEXT NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'In progress', 'Completed')),
    created_at TEXT NOT NULL
);`

// Indexes matching the filterable columns.
const (
	createStatusIndex   = `CREATE INDEX IF NOT EXISTS idx_status ON tasks (status);`
	createDueDateIndex  = `CREATE INDEX IF NOT EXISTS idx_due_date ON tasks (due_date);`
	createPriorityIndex = `CREATE INDEX IF NOT EXISTS idx_priority ON tasks (priority);`
)

// schemaStatements lists every DDL statement executed on Open, in order.
var schemaStatements = []string{
	createTasks,
	createStatusIndex,
	createDueDateIndex,
	createPriorityIndex,
}
