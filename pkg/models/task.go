package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DueDateLayout is the wire format for due dates.
const DueDateLayout = "2006-01-02"

// Priority represents a task priority level.
type Priority int

const (
	// PriorityMin is the lowest accepted priority.
	PriorityMin Priority = 1
	// PriorityMax is the highest accepted priority.
	PriorityMax Priority = 5
)

// Valid returns true if the priority is within the accepted range.
// Validation is an input-time concern only; values already persisted
// are passed through untouched.
func (p Priority) Valid() bool {
	return p >= PriorityMin && p <= PriorityMax
}

// Task represents one unit of work in the tracker.
type Task struct {
	// Title is the short description of the task.
	Title string `json:"title" yaml:"title"`
	// Description provides detailed information about the task.
	Description string `json:"description" yaml:"description"`
	// Priority is the task priority (1-5, enforced at input time).
	Priority Priority `json:"priority" yaml:"priority"`
	// DueDate is the due date in YYYY-MM-DD form.
	DueDate string `json:"due_date" yaml:"due_date"`
	// Completed indicates whether the task is done.
	Completed bool `json:"completed" yaml:"completed"`
}

// UnmarshalJSON decodes a task, requiring the title, description,
// priority, and due_date keys to be present. A missing completed key
// defaults to false. No range checking or coercion is performed.
func (t *Task) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title       *string   `json:"title"`
		Description *string   `json:"description"`
		Priority    *Priority `json:"priority"`
		DueDate     *string   `json:"due_date"`
		Completed   *bool     `json:"completed"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Title == nil:
		return fmt.Errorf("task record missing required key %q", "title")
	case raw.Description == nil:
		return fmt.Errorf("task record missing required key %q", "description")
	case raw.Priority == nil:
		return fmt.Errorf("task record missing required key %q", "priority")
	case raw.DueDate == nil:
		return fmt.Errorf("task record missing required key %q", "due_date")
	}

	t.Title = *raw.Title
	t.Description = *raw.Description
	t.Priority = *raw.Priority
	t.DueDate = *raw.DueDate
	t.Completed = raw.Completed != nil && *raw.Completed
	return nil
}

// ParseDueDate parses a YYYY-MM-DD due date string.
func ParseDueDate(s string) (time.Time, error) {
	return time.Parse(DueDateLayout, s)
}

// Due returns the task's due date as a calendar date.
func (t Task) Due() (time.Time, error) {
	return ParseDueDate(t.DueDate)
}

// DueWithin reports whether the task's due date falls within the next
// windowDays days, inclusive of both today and the window's last day.
// A due date that does not parse is never within the window.
func (t Task) DueWithin(now time.Time, windowDays int) bool {
	due, err := t.Due()
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(due.Sub(today).Hours() / 24)
	return days >= 0 && days <= windowDays
}
