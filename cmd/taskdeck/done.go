package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/atishaydeveloper/taskdeck/internal/store"
)

var doneCmd = &cobra.Command{
	Use:   "done <number>",
	Short: "Mark a task as complete",
	Long: `Mark a task as complete by its number from 'taskdeck list'.

Task numbers are 1-based and refer to the unsorted list order.

Example:
  taskdeck done 2`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("task number must be an integer, got %q", args[0])
	}

	cfg := loadConfig()
	s := openStore(cfg)

	if err := s.MarkComplete(number - 1); err != nil {
		if errors.Is(err, store.ErrInvalidIndex) {
			return fmt.Errorf("no task numbered %d (have %d)", number, s.Len())
		}
		return fmt.Errorf("mark task complete: %w", err)
	}

	color.Green("Task %q marked as complete.", s.List()[number-1].Title)
	return nil
}
