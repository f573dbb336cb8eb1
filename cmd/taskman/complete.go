// Complete command marks a task as completed.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	if err := store.MarkCompleted(id); err != nil {
		return fmt.Errorf("complete task %d: %w", id, err)
	}
	fmt.Printf("Task %d marked as completed\n", id)
	return nil
}
