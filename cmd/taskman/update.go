// Update command applies a partial update to one task.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sole248k/Task-Management-Application/pkg/types"
)

var (
	updateTitle       string
	updateDescription string
	updateDueDate     string
	updatePriority    string
	updateStatus      string
)

var updateCmd = &cobra.Command{
	Use:   "update <task-id>",
	Short: "Update fields of an existing task",
	Long: `Update changes only the fields whose flags were given; the rest
keep their current values.

Example:
  taskman update 3 --status "in progress"
  taskman update 3 --title "New title" --priority medium`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	updateCmd.Flags().StringVar(&updateDueDate, "due-date", "", "new due date (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&updatePriority, "priority", "", "new priority")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "new status")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	fields := types.FieldMap{}
	if cmd.Flags().Changed("title") {
		fields[types.FieldTitle] = updateTitle
	}
	if cmd.Flags().Changed("description") {
		fields[types.FieldDescription] = updateDescription
	}
	if cmd.Flags().Changed("due-date") {
		fields[types.FieldDueDate] = updateDueDate
	}
	if cmd.Flags().Changed("priority") {
		fields[types.FieldPriority] = updatePriority
	}
	if cmd.Flags().Changed("status") {
		fields[types.FieldStatus] = updateStatus
	}
	if len(fields) == 0 {
		fmt.Println("No changes given.")
		return nil
	}

	if err := store.Update(id, fields); err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	fmt.Printf("Updated task %d\n", id)
	return nil
}
