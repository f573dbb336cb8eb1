// Package tasks implements the in-memory task store and the filter and
// sort algorithms over task collections. The store owns the authoritative
// mapping of task ID to Task and mirrors every change to a persistence
// repository.
package tasks

import (
	"fmt"
	"log/slog"

	"github.com/Sole248k/Task-Management-Application/pkg/types"
)

// Store maps task IDs to cached tasks and keeps the mapping synchronized
// with the repository. The mapping is the source of truth for reads; the
// repository confirming a write is the commit point for mutations.
//
// A Store is exclusively owned by a single caller and performs no locking.
type Store struct {
	repo  types.Repository
	log   *slog.Logger
	tasks map[int64]*types.Task
}

// NewStore fetches every stored row and reconstructs it as a validated
// Task. A row that fails validation is logged and skipped, never fatal.
// A repository failure aborts construction: without a complete load the
// mapping cannot act as the read source of truth.
func NewStore(repo types.Repository, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	rows, err := repo.FetchAll()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	s := &Store{
		repo:  repo,
		log:   logger,
		tasks: make(map[int64]*types.Task, len(rows)),
	}
	for _, fields := range rows {
		task, err := types.NewTaskFromFields(fields)
		if err != nil {
			s.log.Warn("skipping invalid task row",
				"task_id", fields[types.FieldTaskID],
				"error", err)
			continue
		}
		s.tasks[task.ID()] = task
	}
	return s, nil
}

// Add validates and persists a new task. Validation errors propagate with
// no side effects. The task enters the mapping only after the repository
// assigns an ID, so a failed insert leaves no orphan in memory.
func (s *Store) Add(title, description, dueDate, priority, status string) (*types.Task, error) {
	task, err := types.NewTask(title, description, dueDate, priority, status)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Insert(task.Fields())
	if err != nil {
		return nil, fmt.Errorf("persisting task: %w", err)
	}
	if err := task.SetID(id); err != nil {
		return nil, err
	}

	s.tasks[id] = task
	return task, nil
}

// Get returns the cached task for id. Reads never touch the repository.
// Returns types.ErrNotFound when the id is not in the mapping.
func (s *Store) Get(id int64) (*types.Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return task, nil
}

// All returns every cached task in arbitrary order. Callers sort
// explicitly via SortTasks.
func (s *Store) All() []*types.Task {
	out := make([]*types.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		out = append(out, task)
	}
	return out
}

// Len returns the number of cached tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Update applies a partial field-map to the cached task, then pushes the
// applied map to the repository: recognized fields carry the normalized
// values the task now holds, unrecognized keys flow through unchanged and
// are dropped silently downstream. A validation error on any recognized
// field aborts before the task or the repository is touched.
//
// The cache mutates before the repository confirms. When the repository
// call fails the cached task keeps the new values while the durable row
// does not; callers must treat a failed Update as "durable state unknown,
// cache optimistic". This ordering is kept deliberately (see DESIGN.md)
// rather than silently reordered.
func (s *Store) Update(id int64, fields types.FieldMap) error {
	task, ok := s.tasks[id]
	if !ok {
		return types.ErrNotFound
	}

	applied, err := task.ApplyFields(fields)
	if err != nil {
		return err
	}

	if err := s.repo.Update(id, applied); err != nil {
		return fmt.Errorf("persisting update for task %d: %w", id, err)
	}
	return nil
}

// MarkCompleted sets the task's status to Completed.
func (s *Store) MarkCompleted(id int64) error {
	return s.Update(id, types.FieldMap{types.FieldStatus: types.StatusCompleted})
}

// Delete removes the task from the repository first and drops it from the
// mapping only when the repository confirms, so a failed delete leaves the
// cache intact. Returns types.ErrNotFound when the id is not cached.
func (s *Store) Delete(id int64) error {
	if _, ok := s.tasks[id]; !ok {
		return types.ErrNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}

	delete(s.tasks, id)
	return nil
}

// Filter narrows the cached tasks by the supplied criteria.
func (s *Store) Filter(opts FilterOptions) []*types.Task {
	return Filter(s.All(), opts)
}
