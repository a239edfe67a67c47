package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/atishaydeveloper/taskdeck/pkg/models"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the task list",
	Long: `Export the current task list as JSON or YAML.

The export is read-only; the tasks file is never modified.

Examples:
  taskdeck export
  taskdeck export --format yaml
  taskdeck export --format yaml -o tasks.yaml`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	s := openStore(cfg)

	data, err := exportBytes(s.List(), exportFormat)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Print(string(data))
		return nil
	}

	if err := os.WriteFile(exportOutput, data, 0644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	fmt.Printf("Exported %d task(s) to %s\n", s.Len(), exportOutput)
	return nil
}

// exportBytes marshals tasks in the requested format.
func exportBytes(tasks []models.Task, format string) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode tasks: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(tasks)
		if err != nil {
			return nil, fmt.Errorf("encode tasks: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (use json or yaml)", format)
	}
}
