package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show task counts and upcoming due dates",
	Long: `Show a summary of the task list: total tasks, incomplete tasks, and
incomplete tasks due within the next few days (3 by default; set
summary.due_soon_days in the config to change the window).`,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	s := openStore(cfg)

	sum := s.Summary(time.Now())

	fmt.Printf("Total tasks: %d\n", sum.Total)
	fmt.Printf("Incomplete tasks: %d\n", sum.Incomplete)
	fmt.Printf("Tasks due in next %d days: %d\n", cfg.Summary.DueSoonDays, len(sum.DueSoon))

	due := color.New(color.FgYellow)
	for _, task := range sum.DueSoon {
		due.Printf("    %s (Due: %s)\n", task.Title, task.DueDate)
	}
	return nil
}
