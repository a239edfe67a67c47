package main

import (
	"fmt"

	"github.com/atishaydeveloper/taskdeck/internal/tui"
)

// runInteractive launches the interactive terminal view.
func runInteractive() error {
	cfg := loadConfig()
	s := openStore(cfg)

	// Watch the tasks file so external edits show up live. If the
	// watcher cannot start, continue without reloads.
	watcher, err := tui.NewWatcher(cfg.Storage.Path)
	if err != nil {
		watcher = nil
	}
	if watcher != nil {
		defer watcher.Close()
	}

	app := tui.NewApp(s, watcher, cfg.Summary.DueSoonDays)
	p := tui.NewProgram(app)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run interactive mode: %w", err)
	}

	// A persistence write failure inside the session is fatal.
	if err := app.Err(); err != nil {
		return err
	}
	return nil
}
