package tasks

import (
	"strings"

	"github.com/Sole248k/Task-Management-Application/pkg/types"
)

// FilterOptions holds the narrowing criteria. An empty field is a no-op.
type FilterOptions struct {
	DueDate  string
	Priority string
	Status   string
}

// Filter narrows tasks by each supplied criterion in sequence: due date by
// exact string match, then priority, then status, the latter two compared
// case-insensitively. The input slice is never mutated; an empty result is
// valid, not an error.
func Filter(tasks []*types.Task, opts FilterOptions) []*types.Task {
	filtered := tasks

	if opts.DueDate != "" {
		filtered = keep(filtered, func(t *types.Task) bool {
			return t.DueDate() == opts.DueDate
		})
	}
	if opts.Priority != "" {
		want := strings.ToLower(opts.Priority)
		filtered = keep(filtered, func(t *types.Task) bool {
			return strings.ToLower(t.Priority()) == want
		})
	}
	if opts.Status != "" {
		want := strings.ToLower(opts.Status)
		filtered = keep(filtered, func(t *types.Task) bool {
			return strings.ToLower(t.Status()) == want
		})
	}

	return filtered
}

func keep(tasks []*types.Task, pred func(*types.Task) bool) []*types.Task {
	out := make([]*types.Task, 0, len(tasks))
	for _, t := range tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}
