package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/atishaydeveloper/taskdeck/internal/archive"
)

var (
	archiveList  bool
	archivePurge int
	archiveLimit int
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Move completed tasks into the archive",
	Long: `Move completed tasks out of the tasks file into the archive database.

Archived tasks no longer appear in 'taskdeck list'; they remain
queryable with --list until purged.

Examples:
  taskdeck archive              # Archive all completed tasks
  taskdeck archive --list       # Show archived tasks
  taskdeck archive --list -n 10 # Show the 10 most recent
  taskdeck archive --purge 90   # Delete entries archived over 90 days ago`,
	RunE: runArchive,
}

func init() {
	archiveCmd.Flags().BoolVar(&archiveList, "list", false, "List archived tasks instead of archiving")
	archiveCmd.Flags().IntVar(&archivePurge, "purge", 0, "Purge entries archived more than this many days ago")
	archiveCmd.Flags().IntVarP(&archiveLimit, "limit", "n", 0, "Limit --list output (0 for all)")
}

func runArchive(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	db, err := archive.Open(cfg.Storage.ArchivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrate archive: %w", err)
	}

	if archiveList {
		return listArchived(db)
	}
	if archivePurge > 0 {
		return purgeArchived(db, archivePurge)
	}

	s := openStore(cfg)
	removed, err := s.RemoveCompleted()
	if err != nil {
		return fmt.Errorf("remove completed tasks: %w", err)
	}
	if len(removed) == 0 {
		fmt.Println("No completed tasks to archive.")
		return nil
	}

	if _, err := db.ArchiveTasks(removed); err != nil {
		return fmt.Errorf("archive tasks: %w", err)
	}

	color.Green("Archived %d task(s); %d remaining.", len(removed), s.Len())
	return nil
}

func listArchived(db *archive.DB) error {
	entries, err := db.List(archiveLimit)
	if err != nil {
		return fmt.Errorf("list archive: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("Archive is empty.")
		return nil
	}

	meta := color.New(color.Faint)
	for _, e := range entries {
		fmt.Printf("%s | Due: %s | Priority: %d\n", e.Task.Title, e.Task.DueDate, e.Task.Priority)
		meta.Printf("    archived %s\n", e.ArchivedAt.Format(time.RFC3339))
	}
	return nil
}

func purgeArchived(db *archive.DB, days int) error {
	count, err := db.PurgeOlderThan(time.Duration(days) * 24 * time.Hour)
	if err != nil {
		return fmt.Errorf("purge archive: %w", err)
	}

	fmt.Printf("Purged %d archived task(s).\n", count)
	return nil
}
