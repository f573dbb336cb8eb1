// Shared helpers for taskman CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Sole248k/Task-Management-Application/pkg/types"
)

// parseTaskID parses a positional task ID argument.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID %q: expected a positive integer", arg)
	}
	return id, nil
}

// printTasks renders tasks as JSON or a table depending on the --json flag.
func printTasks(taskList []*types.Task) error {
	if flagJSON {
		return printTasksJSON(taskList)
	}
	printTaskTable(taskList)
	return nil
}

// printTasksJSON marshals task snapshots as an indented JSON array.
func printTasksJSON(taskList []*types.Task) error {
	snapshots := make([]types.FieldMap, len(taskList))
	for i, t := range taskList {
		snapshots[i] = t.Fields()
	}
	output, err := json.MarshalIndent(snapshots, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printTaskTable prints tasks in a human-readable table format.
func printTaskTable(taskList []*types.Task) {
	if len(taskList) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tDUE\tPRIORITY\tSTATUS\tCREATED")
	fmt.Fprintln(w, "--\t-----\t---\t--------\t------\t-------")
	for _, t := range taskList {
		title := truncate(t.Title(), 40)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID(),
			title,
			t.DueDate(),
			t.Priority(),
			t.Status(),
			t.CreatedAt().Format(time.DateOnly),
		)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d task(s)\n", len(taskList))
}

// truncate shortens s to at most max characters, counting runes so a
// multi-byte character is never split.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// printTaskDetail prints every field of one task, one per line.
func printTaskDetail(t *types.Task) {
	fmt.Printf("ID:          %d\n", t.ID())
	fmt.Printf("Title:       %s\n", t.Title())
	fmt.Printf("Description: %s\n", t.Description())
	fmt.Printf("Due date:    %s\n", t.DueDate())
	fmt.Printf("Priority:    %s\n", t.Priority())
	fmt.Printf("Status:      %s\n", t.Status())
	fmt.Printf("Created:     %s\n", t.CreatedAt().Format(time.RFC3339))
}
