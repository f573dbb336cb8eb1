package tasks

import (
	"sort"
	"strings"

	"github.com/Sole248k/Task-Management-Application/pkg/types"
)

// Sort keys accepted by SortTasks. Any other value falls back to due date.
const (
	SortByDueDate   = "due_date"
	SortByPriority  = "priority"
	SortByCreatedAt = "created_at"
)

// priorityRank orders priorities for sorting. An unrecognized priority
// ranks 0 and sorts before all known priorities.
var priorityRank = map[string]int{
	"low":    1,
	"medium": 2,
	"high":   3,
}

// SortTasks returns a new slice of tasks ordered by the given key; the
// input is never mutated. The sort is stable: equal keys preserve their
// relative input order. Due dates order lexicographically, which is
// calendar order for the zero-padded YYYY-MM-DD form.
//
// Descending output is the reversal of the fully-sorted ascending result,
// not a reversed comparator, so equal keys appear in reverse input order.
// That is the tracker's observed contract and is replicated as such.
func SortTasks(tasks []*types.Task, key string, descending bool) []*types.Task {
	sorted := make([]*types.Task, len(tasks))
	copy(sorted, tasks)

	switch key {
	case SortByPriority:
		sort.SliceStable(sorted, func(i, j int) bool {
			return priorityRank[strings.ToLower(sorted[i].Priority())] <
				priorityRank[strings.ToLower(sorted[j].Priority())]
		})
	case SortByCreatedAt:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt().Before(sorted[j].CreatedAt())
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].DueDate() < sorted[j].DueDate()
		})
	}

	if descending {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	return sorted
}
