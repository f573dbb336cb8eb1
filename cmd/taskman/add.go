// Add command creates a new task.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sole248k/Task-Management-Application/pkg/types"
)

var (
	addTitle       string
	addDescription string
	addDueDate     string
	addPriority    string
	addStatus      string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new task",
	Long: `Add creates a new task with the given fields.

Priority is one of Low, Medium, High; status is one of Pending,
In progress, Completed (case-insensitive, defaults to Pending).

Example:
  taskman add --title "Write report" --description "Q3 summary" --due-date 2026-09-15 --priority high
  taskman add --title "Review PR" --description "storage layer" --due-date 2026-09-02 --priority low --status "in progress"`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "task title (required)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "task description (required)")
	addCmd.Flags().StringVar(&addDueDate, "due-date", "", "due date in YYYY-MM-DD form (required)")
	addCmd.Flags().StringVar(&addPriority, "priority", "", "priority: Low, Medium, or High (required)")
	addCmd.Flags().StringVar(&addStatus, "status", "", "status: Pending, In progress, or Completed (default: Pending)")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("description")
	_ = addCmd.MarkFlagRequired("due-date")
	_ = addCmd.MarkFlagRequired("priority")
}

func runAdd(cmd *cobra.Command, args []string) error {
	task, err := store.Add(addTitle, addDescription, addDueDate, addPriority, addStatus)
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	if flagJSON {
		return printTasksJSON([]*types.Task{task})
	}
	fmt.Printf("Created task %d\n", task.ID())
	return nil
}
