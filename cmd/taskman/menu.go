// Menu command runs the interactive prompt loop.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sole248k/Task-Management-Application/pkg/tasks"
	"github.com/Sole248k/Task-Management-Application/pkg/types"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive task menu",
	Long: `Menu starts an interactive session offering the full task workflow:
add, list, update, complete, delete, and filter/sort, until you exit.`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println()
		fmt.Println("TASK MANAGEMENT SYSTEM")
		fmt.Println("1. Add New Task")
		fmt.Println("2. List All Tasks")
		fmt.Println("3. Update Task")
		fmt.Println("4. Mark Task as Completed")
		fmt.Println("5. Delete Task")
		fmt.Println("6. Filter/Sort Tasks")
		fmt.Println("7. Exit")

		choice, ok := prompt(in, "Enter your choice (1-7): ")
		if !ok {
			return nil // stdin closed
		}

		switch choice {
		case "1":
			menuAdd(in)
		case "2":
			menuList()
		case "3":
			menuUpdate(in)
		case "4":
			menuComplete(in)
		case "5":
			menuDelete(in)
		case "6":
			menuFilter(in)
		case "7":
			fmt.Println("Goodbye!")
			return nil
		default:
			fmt.Println("Invalid choice. Please enter a number between 1 and 7.")
		}
	}
}

// prompt prints the label and reads one trimmed line. ok is false when
// stdin is closed.
func prompt(in *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

func menuAdd(in *bufio.Scanner) {
	title, _ := prompt(in, "Enter task title: ")
	description, _ := prompt(in, "Enter task description: ")
	dueDate, _ := prompt(in, "Enter due date (YYYY-MM-DD): ")
	priority, _ := prompt(in, "Enter priority (Low/Medium/High): ")
	status, _ := prompt(in, "Enter status (Pending/In progress/Completed) [default: Pending]: ")

	task, err := store.Add(title, description, dueDate, priority, status)
	if err != nil {
		fmt.Printf("Failed to add task: %v\n", err)
		return
	}
	fmt.Printf("Task added successfully. Task ID: %d\n", task.ID())
}

func menuList() {
	sorted := tasks.SortTasks(store.All(), tasks.SortByDueDate, false)
	printTaskTable(sorted)
}

func menuUpdate(in *bufio.Scanner) {
	task, ok := promptTask(in, "Enter task ID to update: ")
	if !ok {
		return
	}

	fmt.Println("Current task:")
	printTaskDetail(task)
	fmt.Println("Leave a field blank to keep its current value.")

	fields := types.FieldMap{}
	if v, _ := prompt(in, fmt.Sprintf("New title [%s]: ", task.Title())); v != "" {
		fields[types.FieldTitle] = v
	}
	if v, _ := prompt(in, fmt.Sprintf("New description [%s]: ", task.Description())); v != "" {
		fields[types.FieldDescription] = v
	}
	if v, _ := prompt(in, fmt.Sprintf("New due date [%s]: ", task.DueDate())); v != "" {
		fields[types.FieldDueDate] = v
	}
	if v, _ := prompt(in, fmt.Sprintf("New priority [%s]: ", task.Priority())); v != "" {
		fields[types.FieldPriority] = v
	}
	if v, _ := prompt(in, fmt.Sprintf("New status [%s]: ", task.Status())); v != "" {
		fields[types.FieldStatus] = v
	}

	if len(fields) == 0 {
		fmt.Println("No changes made.")
		return
	}
	if err := store.Update(task.ID(), fields); err != nil {
		fmt.Printf("Failed to update task: %v\n", err)
		return
	}
	fmt.Println("Task updated successfully.")
}

func menuComplete(in *bufio.Scanner) {
	task, ok := promptTask(in, "Enter task ID to mark as completed: ")
	if !ok {
		return
	}
	if err := store.MarkCompleted(task.ID()); err != nil {
		fmt.Printf("Failed to mark task as completed: %v\n", err)
		return
	}
	fmt.Printf("Task %d marked as completed.\n", task.ID())
}

func menuDelete(in *bufio.Scanner) {
	task, ok := promptTask(in, "Enter task ID to delete: ")
	if !ok {
		return
	}

	fmt.Println("Task to delete:")
	printTaskDetail(task)

	confirm, _ := prompt(in, "Are you sure you want to delete this task? (yes/no): ")
	if strings.ToLower(confirm) != "yes" {
		fmt.Println("Deletion cancelled.")
		return
	}
	if err := store.Delete(task.ID()); err != nil {
		fmt.Printf("Failed to delete task: %v\n", err)
		return
	}
	fmt.Printf("Task %d deleted.\n", task.ID())
}

func menuFilter(in *bufio.Scanner) {
	fmt.Println("Filter options (leave blank to skip):")
	dueDate, _ := prompt(in, "Filter by due date (YYYY-MM-DD): ")
	priority, _ := prompt(in, "Filter by priority (Low/Medium/High): ")
	status, _ := prompt(in, "Filter by status (Pending/In progress/Completed): ")

	if dueDate != "" && !types.ValidDueDate(dueDate) {
		fmt.Println("Invalid date format. Use YYYY-MM-DD.")
		return
	}
	if priority != "" && !types.ValidPriority(priority) {
		fmt.Println("Invalid priority. Choose Low, Medium, or High.")
		return
	}
	if status != "" && !types.ValidStatus(status) {
		fmt.Println("Invalid status. Choose Pending, In progress, or Completed.")
		return
	}

	filtered := store.Filter(tasks.FilterOptions{
		DueDate:  dueDate,
		Priority: priority,
		Status:   status,
	})
	if len(filtered) == 0 {
		fmt.Println("No tasks found matching the criteria.")
		return
	}

	fmt.Println("Sort by: 1. Due Date  2. Priority  3. Created At")
	sortChoice, _ := prompt(in, "Enter choice (1-3) [default: 1]: ")
	sortBy := tasks.SortByDueDate
	switch sortChoice {
	case "2":
		sortBy = tasks.SortByPriority
	case "3":
		sortBy = tasks.SortByCreatedAt
	}

	printTaskTable(tasks.SortTasks(filtered, sortBy, false))
}

// promptTask reads a task ID and resolves it in the store, reporting
// problems to the user instead of returning errors.
func promptTask(in *bufio.Scanner, label string) (*types.Task, bool) {
	raw, ok := prompt(in, label)
	if !ok {
		return nil, false
	}
	id, err := parseTaskID(raw)
	if err != nil {
		fmt.Println("Invalid task ID. Please enter a number.")
		return nil, false
	}
	task, err := store.Get(id)
	if err != nil {
		fmt.Printf("Task with ID %d not found.\n", id)
		return nil, false
	}
	return task, true
}
