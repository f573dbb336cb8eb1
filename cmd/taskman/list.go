// List command prints all tasks.
package main

import (
	"github.com/spf13/cobra"

	"github.com/Sole248k/Task-Management-Application/pkg/tasks"
)

var (
	listSortBy string
	listDesc   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Long: `List prints every task, sorted by the chosen key.

Example:
  taskman list
  taskman list --sort-by priority --desc
  taskman list --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSortBy, "sort-by", tasks.SortByDueDate, "sort key: due_date, priority, or created_at")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort in descending order")
}

func runList(cmd *cobra.Command, args []string) error {
	sorted := tasks.SortTasks(store.All(), listSortBy, listDesc)
	return printTasks(sorted)
}
