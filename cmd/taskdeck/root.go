package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/atishaydeveloper/taskdeck/internal/config"
	"github.com/atishaydeveloper/taskdeck/internal/store"
)

var tasksFileFlag string

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "Personal task tracker",
	Long: `Taskdeck tracks personal tasks with a title, description, priority,
and due date, persisted to a local JSON file between runs.

With no arguments, launches an interactive view where you can browse,
add, sort, and complete tasks.

Note: a tasks file that cannot be parsed is treated as empty and will
be overwritten by the next change. Back up the file before editing it
by hand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the effective configuration and applies the global
// --file override. Color output is toggled here as well.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	if tasksFileFlag != "" {
		cfg.Storage.Path = tasksFileFlag
	}
	color.NoColor = color.NoColor || !cfg.UI.Color
	return cfg
}

// openStore constructs the task store for the configured tasks file.
func openStore(cfg *config.Config) *store.Store {
	return store.NewWithWindow(cfg.Storage.Path, cfg.Summary.DueSoonDays)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tasksFileFlag, "file", "", "Tasks file to use (overrides config)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
