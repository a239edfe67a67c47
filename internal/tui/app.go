// Package tui implements the interactive terminal interface.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atishaydeveloper/taskdeck/internal/store"
	"github.com/atishaydeveloper/taskdeck/pkg/models"
)

// appMode selects which view the app is showing.
type appMode int

const (
	modeList appMode = iota
	modeAdd
)

// sortModes is the rotation for the s key. The empty key is the
// insertion-order view.
var sortModes = []store.SortKey{"", store.SortByDueDate, store.SortByPriority}

// App is the bubbletea model for interactive mode.
type App struct {
	store      *store.Store
	watcher    *Watcher
	form       *AddForm
	windowDays int

	mode     appMode
	tasks    []models.Task
	cursor   int
	sortMode int
	status   string
	width    int
	height   int
	quitting bool

	// err is the fatal error to surface after the program exits.
	err error

	headerStyle lipgloss.Style
	cursorStyle lipgloss.Style
	doneStyle   lipgloss.Style
	titleStyle  lipgloss.Style
	metaStyle   lipgloss.Style
	footerStyle lipgloss.Style
	statusStyle lipgloss.Style
}

// NewApp creates the interactive app over the given store.
// The watcher may be nil, in which case external edits are not picked up.
func NewApp(s *store.Store, watcher *Watcher, windowDays int) *App {
	a := &App{
		store:      s,
		watcher:    watcher,
		form:       NewAddForm(),
		windowDays: windowDays,

		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),

		cursorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),

		doneStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true),

		titleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		metaStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		footerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true),

		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
	}
	a.refresh()
	return a
}

// Err returns the fatal error that ended the session, if any.
func (a *App) Err() error {
	return a.err
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.waitForChange()
}

// waitForChange returns a command that blocks on the next file change.
func (a *App) waitForChange() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-a.watcher.Changes(); !ok {
			return nil
		}
		return FileChangedMsg{}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.form.SetWidth(msg.Width)
		return a, nil

	case FileChangedMsg:
		// The file changed on disk; rebuild the store from it.
		a.store = store.NewWithWindow(a.store.Path(), a.windowDays)
		a.refresh()
		a.status = "tasks file reloaded"
		return a, a.waitForChange()

	case TaskSubmittedMsg:
		if err := a.store.Add(msg.Title, msg.Description, msg.Priority, msg.DueDate); err != nil {
			a.err = err
			a.quitting = true
			return a, tea.Quit
		}
		a.mode = modeList
		a.refresh()
		a.status = fmt.Sprintf("added %q", msg.Title)
		return a, nil

	case FormCancelledMsg:
		a.mode = modeList
		a.form.Reset()
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true
			return a, tea.Quit
		}
		if a.mode == modeAdd {
			var cmd tea.Cmd
			a.form, cmd = a.form.Update(msg)
			return a, cmd
		}
		return a.updateList(msg)
	}

	if a.mode == modeAdd {
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return a, cmd
	}
	return a, nil
}

// updateList handles keys in the list view.
func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		a.quitting = true
		return a, tea.Quit

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}

	case "down", "j":
		if a.cursor < len(a.tasks)-1 {
			a.cursor++
		}

	case "a":
		a.mode = modeAdd
		a.status = ""
		return a, nil

	case "s":
		a.sortMode = (a.sortMode + 1) % len(sortModes)
		a.refresh()
		a.status = ""

	case "c":
		if len(a.tasks) == 0 {
			return a, nil
		}
		// Positions are only meaningful against the insertion order;
		// sorted views are read-only.
		if sortModes[a.sortMode] != "" {
			a.status = "switch to insertion order (s) to mark tasks complete"
			return a, nil
		}
		if err := a.store.MarkComplete(a.cursor); err != nil {
			a.err = err
			a.quitting = true
			return a, tea.Quit
		}
		a.refresh()
		a.status = fmt.Sprintf("completed %q", a.tasks[a.cursor].Title)
	}
	return a, nil
}

// refresh rebuilds the visible task slice from the store.
func (a *App) refresh() {
	key := sortModes[a.sortMode]
	if key == "" {
		a.tasks = a.store.List()
	} else {
		a.tasks = a.store.SortedBy(key)
	}
	if a.cursor >= len(a.tasks) {
		a.cursor = len(a.tasks) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return "Goodbye!\n"
	}

	if a.mode == modeAdd {
		return a.form.View()
	}

	header := a.headerStyle.Render(a.headerLabel())
	body := a.renderTasks()
	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// headerLabel names the current ordering.
func (a *App) headerLabel() string {
	switch sortModes[a.sortMode] {
	case store.SortByDueDate:
		return "Tasks — by due date"
	case store.SortByPriority:
		return "Tasks — by priority"
	default:
		return "Tasks"
	}
}

// renderTasks renders the visible task lines.
func (a *App) renderTasks() string {
	if len(a.tasks) == 0 {
		return a.metaStyle.Render("\nNo tasks yet. Press a to add one.\n")
	}

	var lines string
	for i, task := range a.tasks {
		cursor := "  "
		if i == a.cursor {
			cursor = a.cursorStyle.Render("> ")
		}

		title := a.titleStyle.Render(task.Title)
		if task.Completed {
			title = a.doneStyle.Render(task.Title)
		}

		meta := a.metaStyle.Render(fmt.Sprintf("  due %s  p%d", task.DueDate, task.Priority))
		lines += fmt.Sprintf("%s[%d] %s%s\n", cursor, i+1, title, meta)
	}
	return lines
}

// renderFooter renders the summary bar and key hints.
func (a *App) renderFooter() string {
	sum := a.store.Summary(time.Now())
	line := fmt.Sprintf("%d tasks · %d open · %d due soon", sum.Total, sum.Incomplete, len(sum.DueSoon))
	hints := "a: add  c: complete  s: sort  j/k: move  q: quit"

	out := a.footerStyle.Render(line + "\n" + hints)
	if a.status != "" {
		out += "\n" + a.statusStyle.Render(a.status)
	}
	return out
}

// NewProgram creates the bubbletea program for interactive mode.
func NewProgram(app *App) *tea.Program {
	return tea.NewProgram(app, tea.WithAltScreen())
}
