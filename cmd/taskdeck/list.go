package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/atishaydeveloper/taskdeck/internal/store"
	"github.com/atishaydeveloper/taskdeck/pkg/models"
)

var listSortKey string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List all tasks with their 1-based number, due date, priority, and status.

By default tasks appear in the order they were added. Sorting is a
display-only view; it never changes the stored order or the numbers
used by 'taskdeck done'.

Examples:
  taskdeck list
  taskdeck list --sort due
  taskdeck list --sort priority`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSortKey, "sort", "", "Sort view: due or priority")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	s := openStore(cfg)

	var tasks []models.Task
	switch listSortKey {
	case "":
		tasks = s.List()
	case "due", "due_date":
		tasks = s.SortedBy(store.SortByDueDate)
	case "priority":
		tasks = s.SortedBy(store.SortByPriority)
	default:
		return fmt.Errorf("unknown sort key %q (use due or priority)", listSortKey)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	printTasks(tasks)
	return nil
}

// printTasks renders tasks with 1-based numbering.
func printTasks(tasks []models.Task) {
	done := color.New(color.FgGreen)
	open := color.New(color.FgYellow)
	meta := color.New(color.Faint)

	for i, task := range tasks {
		status := open.Sprint("Incomplete")
		if task.Completed {
			status = done.Sprint("Complete")
		}
		fmt.Printf("[%d] %s | Due: %s | Priority: %d | %s\n",
			i+1, task.Title, task.DueDate, task.Priority, status)
		if task.Description != "" {
			meta.Printf("    %s\n", task.Description)
		}
	}
}
