package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atishaydeveloper/taskdeck/pkg/models"
)

// TaskSubmittedMsg is sent when the user submits a valid add form.
type TaskSubmittedMsg struct {
	Title       string
	Description string
	Priority    models.Priority
	DueDate     string
}

// FormCancelledMsg is sent when the user dismisses the add form.
type FormCancelledMsg struct{}

// Form field positions.
const (
	fieldTitle = iota
	fieldDescription
	fieldPriority
	fieldDueDate
	fieldCount
)

// AddForm collects the fields of a new task, validating priority and
// due date before submitting. The store itself performs no validation,
// so everything must be checked here.
type AddForm struct {
	inputs  []textinput.Model
	focused int
	errMsg  string
	width   int

	labelStyle lipgloss.Style
	errStyle   lipgloss.Style
	boxStyle   lipgloss.Style
}

// NewAddForm creates an empty add form with the title field focused.
func NewAddForm() *AddForm {
	labels := []string{"Title", "Description", "Priority (1-5)", "Due date (YYYY-MM-DD)"}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 200
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[fieldPriority].CharLimit = 1
	inputs[fieldDueDate].CharLimit = 10
	inputs[fieldTitle].Focus()

	return &AddForm{
		inputs: inputs,

		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(24),

		errStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		boxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

// SetWidth sets the rendered width of the form.
func (f *AddForm) SetWidth(width int) {
	f.width = width
	for i := range f.inputs {
		f.inputs[i].Width = width - 30
	}
}

// Update handles messages for the form.
func (f *AddForm) Update(msg tea.Msg) (*AddForm, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return FormCancelledMsg{} }

		case "tab", "down":
			f.setFocus((f.focused + 1) % fieldCount)
			return f, nil

		case "shift+tab", "up":
			f.setFocus((f.focused + fieldCount - 1) % fieldCount)
			return f, nil

		case "enter":
			if f.focused < fieldDueDate {
				f.setFocus(f.focused + 1)
				return f, nil
			}
			return f.submit()
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return f, cmd
}

// submit validates the form and emits a TaskSubmittedMsg on success.
func (f *AddForm) submit() (*AddForm, tea.Cmd) {
	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	description := strings.TrimSpace(f.inputs[fieldDescription].Value())
	priorityRaw := strings.TrimSpace(f.inputs[fieldPriority].Value())
	dueDate := strings.TrimSpace(f.inputs[fieldDueDate].Value())

	priority, err := ValidateInput(title, priorityRaw, dueDate)
	if err != nil {
		f.errMsg = err.Error()
		return f, nil
	}

	f.Reset()
	return f, func() tea.Msg {
		return TaskSubmittedMsg{
			Title:       title,
			Description: description,
			Priority:    priority,
			DueDate:     dueDate,
		}
	}
}

// ValidateInput checks the user-entered task fields: a non-empty title,
// a priority between 1 and 5, and a YYYY-MM-DD due date. Returns the
// parsed priority.
func ValidateInput(title, priority, dueDate string) (models.Priority, error) {
	if title == "" {
		return 0, fmt.Errorf("title must not be empty")
	}

	n, err := strconv.Atoi(priority)
	if err != nil || !models.Priority(n).Valid() {
		return 0, fmt.Errorf("priority must be an integer between 1 and 5")
	}

	if _, err := models.ParseDueDate(dueDate); err != nil {
		return 0, fmt.Errorf("due date must use the YYYY-MM-DD format")
	}

	return models.Priority(n), nil
}

// Reset clears all fields and refocuses the title.
func (f *AddForm) Reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.errMsg = ""
	f.setFocus(fieldTitle)
}

// setFocus moves focus to the given field.
func (f *AddForm) setFocus(field int) {
	f.inputs[f.focused].Blur()
	f.focused = field
	f.inputs[f.focused].Focus()
}

// View renders the form.
func (f *AddForm) View() string {
	labels := []string{"Title", "Description", "Priority (1-5)", "Due date"}

	var b strings.Builder
	b.WriteString("New task\n\n")
	for i, input := range f.inputs {
		b.WriteString(f.labelStyle.Render(labels[i]))
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(f.errStyle.Render(f.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\nenter: next/save  esc: cancel")

	return f.boxStyle.Render(b.String())
}
