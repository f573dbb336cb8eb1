package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sole248k/Task-Management-Application/pkg/types"
)

// mustTask builds a valid task for sort/filter tests.
func mustTask(t *testing.T, title, dueDate, priority string) *types.Task {
	t.Helper()
	task, err := types.NewTask(title, "d", dueDate, priority, "Pending")
	require.NoError(t, err)
	return task
}

// mustStoredTask builds a task with an explicit id and creation timestamp,
// as if loaded from storage.
func mustStoredTask(t *testing.T, id int64, title string, createdAt time.Time) *types.Task {
	t.Helper()
	task, err := types.NewTaskFromFields(types.FieldMap{
		types.FieldTaskID:      id,
		types.FieldTitle:       title,
		types.FieldDescription: "d",
		types.FieldDueDate:     "2026-09-15",
		types.FieldPriority:    "Low",
		types.FieldStatus:      "Pending",
		types.FieldCreatedAt:   createdAt,
	})
	require.NoError(t, err)
	return task
}

func titles(taskList []*types.Task) []string {
	out := make([]string, len(taskList))
	for i, t := range taskList {
		out[i] = t.Title()
	}
	return out
}

func TestSortTasksByPriorityIsStable(t *testing.T) {
	input := []*types.Task{
		mustTask(t, "high", "2026-09-15", "High"),
		mustTask(t, "low-1", "2026-09-15", "Low"),
		mustTask(t, "medium", "2026-09-15", "Medium"),
		mustTask(t, "low-2", "2026-09-15", "Low"),
	}

	got := SortTasks(input, SortByPriority, false)
	assert.Equal(t, []string{"low-1", "low-2", "medium", "high"}, titles(got),
		"equal priorities keep their relative input order")
}

func TestSortTasksDescendingReversesTies(t *testing.T) {
	input := []*types.Task{
		mustTask(t, "high", "2026-09-15", "High"),
		mustTask(t, "low-1", "2026-09-15", "Low"),
		mustTask(t, "medium", "2026-09-15", "Medium"),
		mustTask(t, "low-2", "2026-09-15", "Low"),
	}

	got := SortTasks(input, SortByPriority, true)
	// Reversal of the full ascending result, tie order included.
	assert.Equal(t, []string{"high", "medium", "low-2", "low-1"}, titles(got))
}

func TestSortTasksByDueDate(t *testing.T) {
	input := []*types.Task{
		mustTask(t, "march", "2024-03-01", "Low"),
		mustTask(t, "january", "2024-01-15", "Low"),
		mustTask(t, "february", "2024-02-20", "Low"),
	}

	got := SortTasks(input, SortByDueDate, false)
	assert.Equal(t, []string{"january", "february", "march"}, titles(got))
}

func TestSortTasksByCreatedAt(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	input := []*types.Task{
		mustStoredTask(t, 1, "newest", base.Add(2*time.Hour)),
		mustStoredTask(t, 2, "oldest", base),
		mustStoredTask(t, 3, "middle", base.Add(time.Hour)),
	}

	got := SortTasks(input, SortByCreatedAt, false)
	assert.Equal(t, []string{"oldest", "middle", "newest"}, titles(got))

	got = SortTasks(input, SortByCreatedAt, true)
	assert.Equal(t, []string{"newest", "middle", "oldest"}, titles(got))
}

func TestSortTasksUnknownKeyFallsBackToDueDate(t *testing.T) {
	input := []*types.Task{
		mustTask(t, "later", "2026-12-01", "Low"),
		mustTask(t, "sooner", "2026-01-01", "Low"),
	}

	got := SortTasks(input, "nonsense", false)
	assert.Equal(t, []string{"sooner", "later"}, titles(got))
}

func TestSortTasksDoesNotMutateInput(t *testing.T) {
	input := []*types.Task{
		mustTask(t, "b", "2026-09-16", "Low"),
		mustTask(t, "a", "2026-09-15", "Low"),
	}

	_ = SortTasks(input, SortByDueDate, false)
	assert.Equal(t, []string{"b", "a"}, titles(input), "input order is preserved")
}
