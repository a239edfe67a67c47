package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/atishaydeveloper/taskdeck/pkg/models"
)

var (
	addDescription string
	addPriority    int
	addDueDate     string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task to the list.

The priority must be an integer between 1 and 5, and the due date must
use the YYYY-MM-DD format. The task starts incomplete.

Examples:
  taskdeck add "Pay rent" -p 3 --due 2024-01-01
  taskdeck add "Call Bob" -p 1 --due 2024-01-02 -d "about the garden fence"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "desc", "d", "", "Task description")
	addCmd.Flags().IntVarP(&addPriority, "priority", "p", 0, "Task priority (1-5)")
	addCmd.Flags().StringVar(&addDueDate, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.MarkFlagRequired("priority")
	addCmd.MarkFlagRequired("due")
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return fmt.Errorf("task title must not be empty")
	}

	// The store trusts its inputs; validation happens here.
	priority := models.Priority(addPriority)
	if !priority.Valid() {
		return fmt.Errorf("priority must be an integer between 1 and 5, got %d", addPriority)
	}
	if _, err := models.ParseDueDate(addDueDate); err != nil {
		return fmt.Errorf("due date must use the YYYY-MM-DD format, got %q", addDueDate)
	}

	cfg := loadConfig()
	s := openStore(cfg)

	if err := s.Add(title, addDescription, priority, addDueDate); err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	color.Green("Added task %q (due %s, priority %d)", title, addDueDate, priority)
	return nil
}
