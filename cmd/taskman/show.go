// Show command prints one task in full.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sole248k/Task-Management-Application/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show one task in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	task, err := store.Get(id)
	if err != nil {
		return fmt.Errorf("task %d: %w", id, err)
	}

	if flagJSON {
		return printTasksJSON([]*types.Task{task})
	}
	printTaskDetail(task)
	return nil
}
