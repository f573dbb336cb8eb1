// Integration tests exercising the task store over the real SQLite
// repository: the full create/read/update/complete/delete cycle plus
// filtering, sorting, and reloading the mirror from disk.
package integration

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sole248k/Task-Management-Application/internal/sqlite"
	"github.com/Sole248k/Task-Management-Application/pkg/tasks"
	"github.com/Sole248k/Task-Management-Application/pkg/types"
)

func openStore(t *testing.T, dataDir string) (*tasks.Store, *sqlite.Repository) {
	t.Helper()

	repo, err := sqlite.Open(types.Config{Backend: types.BackendSQLite, DataDir: dataDir})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	store, err := tasks.NewStore(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return store, repo
}

func TestTaskLifecycle(t *testing.T) {
	store, repo := openStore(t, t.TempDir())

	task, err := store.Add("Write report", "Q3 summary", "2026-09-15", "HIGH", "")
	require.NoError(t, err)
	require.Positive(t, task.ID())
	assert.Equal(t, types.PriorityHigh, task.Priority())
	assert.Equal(t, types.StatusPending, task.Status())

	got, err := store.Get(task.ID())
	require.NoError(t, err)
	assert.True(t, got.Equal(task))

	require.NoError(t, store.Update(task.ID(), types.FieldMap{
		types.FieldStatus:  "in progress",
		types.FieldDueDate: "2026-09-20",
	}))
	assert.Equal(t, types.StatusInProgress, got.Status())
	assert.Equal(t, "2026-09-20", got.DueDate())

	// The durable row holds the canonical forms, not the raw input.
	row, err := repo.FetchOne(task.ID())
	require.NoError(t, err)
	assert.Equal(t, types.StatusInProgress, row[types.FieldStatus])

	require.NoError(t, store.Update(task.ID(), types.FieldMap{
		types.FieldPriority: "low",
	}))
	assert.Equal(t, types.PriorityLow, got.Priority())
	row, err = repo.FetchOne(task.ID())
	require.NoError(t, err)
	assert.Equal(t, types.PriorityLow, row[types.FieldPriority])

	require.NoError(t, store.MarkCompleted(task.ID()))
	assert.Equal(t, types.StatusCompleted, got.Status())

	require.NoError(t, store.Delete(task.ID()))
	_, err = store.Get(task.ID())
	assert.ErrorIs(t, err, types.ErrNotFound)

	err = store.Delete(task.ID())
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestStoreReloadsFromDisk(t *testing.T) {
	dataDir := t.TempDir()

	store, repo := openStore(t, dataDir)
	first, err := store.Add("persisted", "survives reload", "2026-09-15", "medium", "in progress")
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reloaded, _ := openStore(t, dataDir)
	assert.Equal(t, 1, reloaded.Len())

	got, err := reloaded.Get(first.ID())
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Title())
	assert.Equal(t, "survives reload", got.Description())
	assert.Equal(t, "2026-09-15", got.DueDate())
	assert.Equal(t, types.PriorityMedium, got.Priority())
	assert.Equal(t, types.StatusInProgress, got.Status())
	assert.False(t, got.CreatedAt().IsZero())
}

func TestFilterAndSortOverStore(t *testing.T) {
	store, _ := openStore(t, t.TempDir())

	seed := []struct {
		title    string
		dueDate  string
		priority string
		status   string
	}{
		{"pay invoice", "2026-09-01", "High", "Pending"},
		{"weekly review", "2026-09-01", "Low", "Completed"},
		{"ship release", "2026-09-03", "High", "In progress"},
		{"water plants", "2026-09-02", "Low", "Pending"},
	}
	for _, s := range seed {
		_, err := store.Add(s.title, "d", s.dueDate, s.priority, s.status)
		require.NoError(t, err)
	}

	high := store.Filter(tasks.FilterOptions{Priority: "high"})
	require.Len(t, high, 2)

	sorted := tasks.SortTasks(high, tasks.SortByDueDate, false)
	assert.Equal(t, "pay invoice", sorted[0].Title())
	assert.Equal(t, "ship release", sorted[1].Title())

	pendingOnFirst := store.Filter(tasks.FilterOptions{
		DueDate: "2026-09-01",
		Status:  "pending",
	})
	require.Len(t, pendingOnFirst, 1)
	assert.Equal(t, "pay invoice", pendingOnFirst[0].Title())

	none := store.Filter(tasks.FilterOptions{Priority: "medium"})
	assert.Empty(t, none)
}

func TestStoreSkipsCorruptRowOnLoad(t *testing.T) {
	dataDir := t.TempDir()

	store, repo := openStore(t, dataDir)
	_, err := store.Add("good", "d", "2026-09-15", "Low", "")
	require.NoError(t, err)

	// Corrupt a row behind the store's back; priority passes the schema
	// CHECK but the title does not survive entity validation.
	_, err = repo.Insert(types.FieldMap{
		types.FieldTitle:       "   ",
		types.FieldDescription: "d",
		types.FieldDueDate:     "2026-09-15",
		types.FieldPriority:    "Low",
		types.FieldStatus:      "Pending",
	})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reloaded, _ := openStore(t, dataDir)
	assert.Equal(t, 1, reloaded.Len(), "corrupt row is skipped, good row loads")
}
