package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestPriorityValid(t *testing.T) {
	tests := []struct {
		priority Priority
		want     bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{5, true},
		{6, false},
		{-1, false},
	}

	for _, tt := range tests {
		if got := tt.priority.Valid(); got != tt.want {
			t.Errorf("Priority(%d).Valid() = %v, want %v", tt.priority, got, tt.want)
		}
	}
}

func TestUnmarshalCompletedDefaultsFalse(t *testing.T) {
	data := `{"title":"Pay rent","description":"","priority":3,"due_date":"2024-01-01"}`

	var task Task
	if err := json.Unmarshal([]byte(data), &task); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if task.Completed {
		t.Error("expected completed to default to false")
	}
	if task.Title != "Pay rent" {
		t.Errorf("expected title 'Pay rent', got %q", task.Title)
	}
	if task.Priority != 3 {
		t.Errorf("expected priority 3, got %d", task.Priority)
	}
}

func TestUnmarshalMissingRequiredKeys(t *testing.T) {
	tests := []struct {
		name string
		data string
		key  string
	}{
		{"missing title", `{"description":"","priority":1,"due_date":"2024-01-01"}`, "title"},
		{"missing description", `{"title":"x","priority":1,"due_date":"2024-01-01"}`, "description"},
		{"missing priority", `{"title":"x","description":"","due_date":"2024-01-01"}`, "priority"},
		{"missing due_date", `{"title":"x","description":"","priority":1}`, "due_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var task Task
			err := json.Unmarshal([]byte(tt.data), &task)
			if err == nil {
				t.Fatal("expected error for missing required key")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("expected error to name %q, got %v", tt.key, err)
			}
		})
	}
}

func TestUnmarshalOutOfRangePriorityPassesThrough(t *testing.T) {
	data := `{"title":"x","description":"","priority":99,"due_date":"2024-01-01"}`

	var task Task
	if err := json.Unmarshal([]byte(data), &task); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if task.Priority != 99 {
		t.Errorf("expected out-of-range priority 99 to pass through, got %d", task.Priority)
	}
}

func TestDueWithin(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate string
		want    bool
	}{
		{"due today", "2024-06-10", true},
		{"due tomorrow", "2024-06-11", true},
		{"due on window edge", "2024-06-13", true},
		{"due past window", "2024-06-14", false},
		{"overdue", "2024-06-09", false},
		{"unparseable", "not-a-date", false},
		{"wrong format", "06/10/2024", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{Title: "x", DueDate: tt.dueDate}
			if got := task.DueWithin(now, 3); got != tt.want {
				t.Errorf("DueWithin(%s, 3) = %v, want %v", tt.dueDate, got, tt.want)
			}
		})
	}
}
