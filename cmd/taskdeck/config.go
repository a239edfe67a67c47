package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atishaydeveloper/taskdeck/internal/config"
)

var configShowPath bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration after merging defaults, the user
config file, any project .taskdeck.yaml, and environment variables.

Use --path to print the config file locations instead.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowPath, "path", false, "Print config file paths")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configShowPath {
		fmt.Printf("User config: %s\n", config.GetUserConfigPath())
		if project := config.GetProjectConfigPath(); project != "" {
			fmt.Printf("Project config: %s\n", project)
		}
		return nil
	}

	cfg := loadConfig()

	fmt.Printf("storage.path: %s\n", cfg.Storage.Path)
	fmt.Printf("storage.archive_path: %s\n", cfg.Storage.ArchivePath)
	fmt.Printf("summary.due_soon_days: %d\n", cfg.Summary.DueSoonDays)
	fmt.Printf("ui.color: %v\n", cfg.UI.Color)
	return nil
}
