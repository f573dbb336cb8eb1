// Filter command narrows and sorts tasks.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sole248k/Task-Management-Application/pkg/tasks"
	"github.com/Sole248k/Task-Management-Application/pkg/types"
)

var (
	filterDueDate  string
	filterPriority string
	filterStatus   string
	filterSortBy   string
	filterDesc     bool
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter tasks by due date, priority, or status",
	Long: `Filter narrows tasks by each given criterion and sorts the result.
Criteria left out are ignored; an empty result is not an error.

Example:
  taskman filter --priority high
  taskman filter --status pending --due-date 2026-09-15
  taskman filter --priority low --sort-by created_at --desc`,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVar(&filterDueDate, "due-date", "", "filter by due date (YYYY-MM-DD)")
	filterCmd.Flags().StringVar(&filterPriority, "priority", "", "filter by priority")
	filterCmd.Flags().StringVar(&filterStatus, "status", "", "filter by status")
	filterCmd.Flags().StringVar(&filterSortBy, "sort-by", tasks.SortByDueDate, "sort key: due_date, priority, or created_at")
	filterCmd.Flags().BoolVar(&filterDesc, "desc", false, "sort in descending order")
}

func runFilter(cmd *cobra.Command, args []string) error {
	if filterDueDate != "" && !types.ValidDueDate(filterDueDate) {
		return fmt.Errorf("invalid due date %q: use YYYY-MM-DD", filterDueDate)
	}
	if filterPriority != "" && !types.ValidPriority(filterPriority) {
		return fmt.Errorf("invalid priority %q: choose Low, Medium, or High", filterPriority)
	}
	if filterStatus != "" && !types.ValidStatus(filterStatus) {
		return fmt.Errorf("invalid status %q: choose Pending, In progress, or Completed", filterStatus)
	}

	filtered := store.Filter(tasks.FilterOptions{
		DueDate:  filterDueDate,
		Priority: filterPriority,
		Status:   filterStatus,
	})
	sorted := tasks.SortTasks(filtered, filterSortBy, filterDesc)
	return printTasks(sorted)
}
