package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atishaydeveloper/taskdeck/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tasks.json"))
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	titles := []string{"first", "second", "third"}
	for i, title := range titles {
		if err := s.Add(title, "", models.Priority(i+1), "2024-01-01"); err != nil {
			t.Fatalf("Add(%q) failed: %v", title, err)
		}
	}

	tasks := s.List()
	if len(tasks) != len(titles) {
		t.Fatalf("expected %d tasks, got %d", len(titles), len(tasks))
	}
	for i, task := range tasks {
		if task.Title != titles[i] {
			t.Errorf("task %d: expected title %q, got %q", i, titles[i], task.Title)
		}
		if task.Completed {
			t.Errorf("task %d: expected completed false after Add", i)
		}
	}
}

func TestMarkComplete(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add("a", "", 1, "2024-01-01"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add("b", "", 2, "2024-01-02"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := s.MarkComplete(0); err != nil {
		t.Fatalf("MarkComplete(0) failed: %v", err)
	}

	tasks := s.List()
	if !tasks[0].Completed {
		t.Error("expected task 0 completed")
	}
	if tasks[1].Completed {
		t.Error("expected task 1 untouched")
	}
}

func TestMarkCompleteInvalidIndex(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add("a", "", 1, "2024-01-01"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	for _, index := range []int{-1, 1, 99} {
		err := s.MarkComplete(index)
		if !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("MarkComplete(%d): expected ErrInvalidIndex, got %v", index, err)
		}
	}

	if s.List()[0].Completed {
		t.Error("failed MarkComplete must not mutate the list")
	}
}

func TestPersistReloadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")

	s := New(path)
	if err := s.Add("Pay rent", "transfer before the 1st", 3, "2024-01-01"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add("Call Bob", "", 1, "2024-01-02"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.MarkComplete(1); err != nil {
		t.Fatalf("MarkComplete failed: %v", err)
	}

	reloaded := New(path)
	want := s.List()
	got := reloaded.List()
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks after reload, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("task %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if s.Len() != 0 {
		t.Errorf("expected empty store for missing file, got %d tasks", s.Len())
	}
}

func TestLoadMalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated json", `[{"title":"x","desc`},
		{"wrong shape", `{"tasks":[]}`},
		{"not json", `hello world`},
		{"record missing required key", `[{"title":"x","priority":1,"due_date":"2024-01-01"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("write fixture: %v", err)
			}

			s := New(path)
			if s.Len() != 0 {
				t.Errorf("expected empty store for malformed file, got %d tasks", s.Len())
			}
		})
	}
}

func TestLoadDoesNotRewriteCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	corrupt := []byte(`not json at all`)
	if err := os.WriteFile(path, corrupt, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	New(path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != string(corrupt) {
		t.Error("load must not rewrite a corrupt file before the first save")
	}
}

func TestSortedBy(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add("late low", "", 1, "2024-03-01"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add("early high", "", 5, "2024-01-15"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add("mid mid", "", 3, "2024-02-01"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	byDue := s.SortedBy(SortByDueDate)
	for i := 1; i < len(byDue); i++ {
		if byDue[i-1].DueDate > byDue[i].DueDate {
			t.Errorf("due dates not ascending: %q > %q", byDue[i-1].DueDate, byDue[i].DueDate)
		}
	}

	byPriority := s.SortedBy(SortByPriority)
	for i := 1; i < len(byPriority); i++ {
		if byPriority[i-1].Priority > byPriority[i].Priority {
			t.Errorf("priorities not ascending: %d > %d", byPriority[i-1].Priority, byPriority[i].Priority)
		}
	}

	// Unknown key falls back to insertion order.
	fallback := s.SortedBy(SortKey("bogus"))
	original := s.List()
	for i := range original {
		if fallback[i].Title != original[i].Title {
			t.Errorf("unknown sort key must keep insertion order, got %q at %d", fallback[i].Title, i)
		}
	}

	// Sorting never mutates the persisted order.
	if got := s.List()[0].Title; got != "late low" {
		t.Errorf("store order mutated by sort: first task is %q", got)
	}
}

func TestSummary(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	today := now.Format(models.DueDateLayout)
	farOut := now.AddDate(0, 0, 10).Format(models.DueDateLayout)

	s := newTestStore(t)
	if err := s.Add("done today", "", 2, today); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add("open today", "", 2, today); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add("open far out", "", 2, farOut); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add("open bad date", "", 2, "soonish"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.MarkComplete(0); err != nil {
		t.Fatalf("MarkComplete failed: %v", err)
	}

	sum := s.Summary(now)
	if sum.Total != 4 {
		t.Errorf("expected total 4, got %d", sum.Total)
	}
	if sum.Incomplete != 3 {
		t.Errorf("expected incomplete 3, got %d", sum.Incomplete)
	}
	if len(sum.DueSoon) != 1 {
		t.Fatalf("expected 1 due-soon task, got %d", len(sum.DueSoon))
	}
	if sum.DueSoon[0].Title != "open today" {
		t.Errorf("expected due-soon task 'open today', got %q", sum.DueSoon[0].Title)
	}
}

func TestRemoveCompleted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	s := New(path)
	if err := s.Add("keep", "", 1, "2024-01-01"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add("drop", "", 2, "2024-01-02"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.MarkComplete(1); err != nil {
		t.Fatalf("MarkComplete failed: %v", err)
	}

	removed, err := s.RemoveCompleted()
	if err != nil {
		t.Fatalf("RemoveCompleted failed: %v", err)
	}
	if len(removed) != 1 || removed[0].Title != "drop" {
		t.Fatalf("expected removed = [drop], got %+v", removed)
	}
	if s.Len() != 1 || s.List()[0].Title != "keep" {
		t.Errorf("expected only 'keep' to remain, got %+v", s.List())
	}

	// Removal persists.
	reloaded := New(path)
	if reloaded.Len() != 1 {
		t.Errorf("expected 1 task after reload, got %d", reloaded.Len())
	}

	// Nothing completed: no-op.
	removed, err = s.RemoveCompleted()
	if err != nil {
		t.Fatalf("RemoveCompleted failed: %v", err)
	}
	if removed != nil {
		t.Errorf("expected nil removal with nothing completed, got %+v", removed)
	}
}

func TestEndToEnd(t *testing.T) {
	s := newTestStore(t)
	if err := s.Add("Pay rent", "", 3, "2024-01-01"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add("Call Bob", "", 1, "2024-01-02"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	tasks := s.List()
	if tasks[0].Title != "Pay rent" || tasks[1].Title != "Call Bob" {
		t.Fatalf("expected insertion order [Pay rent, Call Bob], got %+v", tasks)
	}

	byPriority := s.SortedBy(SortByPriority)
	if byPriority[0].Title != "Call Bob" || byPriority[1].Title != "Pay rent" {
		t.Errorf("expected priority order [Call Bob, Pay rent], got [%s, %s]",
			byPriority[0].Title, byPriority[1].Title)
	}

	if err := s.MarkComplete(0); err != nil {
		t.Fatalf("MarkComplete failed: %v", err)
	}
	tasks = s.List()
	if !tasks[0].Completed {
		t.Error("expected 'Pay rent' completed")
	}
	if tasks[1].Completed {
		t.Error("expected 'Call Bob' still incomplete")
	}
}

func TestSaveFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	// The backing path is a directory, so every write must fail.
	s := New(dir)

	if err := s.Add("x", "", 1, "2024-01-01"); err == nil {
		t.Error("expected Add to propagate the write failure")
	}
}
