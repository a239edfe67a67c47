// Package store owns the in-memory task list and its file persistence.
//
// The store trusts its inputs: priority range and due date format are
// the caller's responsibility to validate before Add. Every mutating
// operation rewrites the whole backing file; the store is intended for
// single-process, sequential use and carries no locking.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/atishaydeveloper/taskdeck/pkg/models"
)

// ErrInvalidIndex is returned when an operation addresses a task
// position outside the current list.
var ErrInvalidIndex = errors.New("task index out of range")

// DefaultDueSoonWindow is the due-soon horizon in days.
const DefaultDueSoonWindow = 3

// SortKey selects a derived ordering for SortedBy.
type SortKey string

const (
	// SortByDueDate orders tasks by ascending due date.
	SortByDueDate SortKey = "due_date"
	// SortByPriority orders tasks by ascending priority.
	SortByPriority SortKey = "priority"
)

// Summary holds the rollup counts and the due-soon view.
type Summary struct {
	// Total is the number of tasks in the store.
	Total int
	// Incomplete is the number of tasks not yet completed.
	Incomplete int
	// DueSoon lists incomplete tasks due within the window, in store order.
	DueSoon []models.Task
}

// Store is the owner of the task sequence and its backing file.
type Store struct {
	path       string
	windowDays int
	tasks      []models.Task
}

// New constructs a store backed by the given file and loads it.
// A missing file yields an empty list. A file that cannot be parsed
// into the expected array of task records also yields an empty list;
// the corrupt file is left untouched until the first successful save,
// which overwrites it. This best-effort reset is a known weakness,
// kept for compatibility with the original data contract.
func New(path string) *Store {
	return NewWithWindow(path, DefaultDueSoonWindow)
}

// NewWithWindow constructs a store with a custom due-soon window in days.
func NewWithWindow(path string, windowDays int) *Store {
	s := &Store{path: path, windowDays: windowDays}
	s.load()
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add appends a new incomplete task and persists the full list.
// No validation is performed at this layer.
func (s *Store) Add(title, description string, priority models.Priority, dueDate string) error {
	s.tasks = append(s.tasks, models.Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
	})
	return s.save()
}

// List returns the tasks in insertion order. An empty list is a valid
// result, not an error.
func (s *Store) List() []models.Task {
	return append([]models.Task(nil), s.tasks...)
}

// SortedBy returns a derived ordering of the tasks. Due dates compare
// lexicographically, which matches chronological order for the
// YYYY-MM-DD format. An unrecognized key returns the insertion order.
// The store's own persisted order is never changed.
func (s *Store) SortedBy(key SortKey) []models.Task {
	tasks := s.List()
	switch key {
	case SortByDueDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].DueDate < tasks[j].DueDate
		})
	case SortByPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Priority < tasks[j].Priority
		})
	}
	return tasks
}

// MarkComplete sets the task at the zero-based index to completed and
// persists. An out-of-range index returns ErrInvalidIndex and leaves
// both the list and the file untouched.
func (s *Store) MarkComplete(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return fmt.Errorf("mark complete at %d: %w", index, ErrInvalidIndex)
	}
	s.tasks[index].Completed = true
	return s.save()
}

// Summary computes the rollup for the given reference time. Tasks whose
// due date does not parse are excluded from the due-soon view.
func (s *Store) Summary(now time.Time) Summary {
	sum := Summary{Total: len(s.tasks)}
	for _, task := range s.tasks {
		if task.Completed {
			continue
		}
		sum.Incomplete++
		if task.DueWithin(now, s.windowDays) {
			sum.DueSoon = append(sum.DueSoon, task)
		}
	}
	return sum
}

// RemoveCompleted removes all completed tasks from the list, persists,
// and returns the removed tasks. When nothing is completed the list
// and file are left untouched.
func (s *Store) RemoveCompleted() ([]models.Task, error) {
	var kept, removed []models.Task
	for _, task := range s.tasks {
		if task.Completed {
			removed = append(removed, task)
		} else {
			kept = append(kept, task)
		}
	}
	if len(removed) == 0 {
		return nil, nil
	}

	s.tasks = kept
	if err := s.save(); err != nil {
		return nil, err
	}
	return removed, nil
}

// save rewrites the entire backing file. Write failures propagate to
// the caller; an unsaved mutation must not be silently kept.
func (s *Store) save() error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []models.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}
	return nil
}

// load populates the list from the backing file, once, at construction.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.tasks = nil
		return
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		// Malformed file: abandon the load and start empty.
		s.tasks = nil
		return
	}
	s.tasks = tasks
}
