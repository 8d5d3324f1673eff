// Package ui is the terminal front end of the task list: a new-task field
// with an Add control above the incomplete and completed containers.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/tasklist"
)

type focus int

const (
	focusInput focus = iota
	focusList
	focusEdit
)

// notifiedMsg reports the outcome of notifying about an added task.
type notifiedMsg struct {
	task tasklist.Task
	err  error
}

// notify runs the add notification as a command, outside Update.
func notify(ctx context.Context, tasks *tasklist.Manager, t tasklist.Task) tea.Cmd {
	return func() tea.Msg {
		return notifiedMsg{task: t, err: tasks.Notify(ctx, t)}
	}
}

// Model is the bubbletea model of the widget.
type Model struct {
	ctx   context.Context
	tasks *tasklist.Manager

	input textinput.Model
	edit  textinput.Model

	// editing is the task whose edit field has keyboard focus.
	editing tasklist.ID

	focus  focus
	cursor int
	status string

	keys KeyMap
	help help.Model
}

// New builds a Model over tasks with the new-task field focused.
func New(ctx context.Context, tasks *tasklist.Manager) Model {
	input := textinput.New()
	input.Placeholder = "New task"
	input.CharLimit = 256
	input.Width = 40
	input.Focus()

	// Edit text is never truncated.
	edit := textinput.New()
	edit.Prompt = ""
	edit.CharLimit = 0
	edit.Width = 40

	return Model{
		ctx:   ctx,
		tasks: tasks,
		input: input,
		edit:  edit,
		focus: focusInput,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

// Run starts the widget and blocks until the user quits or ctx is done.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	_, err := tea.NewProgram(m, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if msg.Width > 20 {
			m.input.Width = msg.Width - 20
			m.edit.Width = msg.Width - 20
		}
		return m, nil

	case notifiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("sync failed for %q: %v", msg.task.Label, msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.status = ""

		switch m.focus {
		case focusInput:
			return m.updateInput(msg)
		case focusEdit:
			return m.updateEdit(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

// updateInput handles keys while the new-task field has focus.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		t, ok := m.tasks.Submit(&m.input)
		if !ok {
			return m, nil
		}
		m.status = "Added"
		return m, notify(m.ctx, m.tasks, t)

	case msg.Type == tea.KeyTab, key.Matches(msg, m.keys.Back):
		m.input.Blur()
		m.focus = focusList
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateEdit handles keys while a task's edit field has focus. Every
// change is written through to the task.
func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		if _, err := m.tasks.ToggleEdit(m.editing); err != nil {
			m.status = err.Error()
		}
		m.blurEdit()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.blurEdit()
		return m, nil
	}

	before := m.edit.Value()
	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	if m.edit.Value() == before {
		return m, cmd
	}
	if err := m.tasks.SetEditText(m.editing, m.edit.Value()); err != nil {
		m.status = err.Error()
		m.blurEdit()
	}
	return m, cmd
}

// updateList handles keys while the containers have focus.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Focus):
		m.focus = focusInput
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		m.activate(tasklist.ControlCheckbox)

	case key.Matches(msg, m.keys.Delete):
		m.activate(tasklist.ControlDelete)

	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.activate(tasklist.ControlEdit); ok && t.Editing() {
			return m, m.focusEditField(t)
		}

	case key.Matches(msg, m.keys.Enter):
		if t, ok := m.selected(); ok && t.Editing() {
			return m, m.focusEditField(t)
		}
	}

	return m, nil
}

// activate fires a control of the selected task.
func (m *Model) activate(c tasklist.Control) (tasklist.Task, bool) {
	t, ok := m.selected()
	if !ok {
		return tasklist.Task{}, false
	}
	t, err := m.tasks.Activate(t.ID, c)
	if err != nil {
		m.status = err.Error()
		return tasklist.Task{}, false
	}
	m.clampCursor()
	return t, true
}

func (m *Model) focusEditField(t tasklist.Task) tea.Cmd {
	m.editing = t.ID
	m.edit.SetValue(t.EditText)
	m.edit.CursorEnd()
	m.focus = focusEdit
	return m.edit.Focus()
}

func (m *Model) blurEdit() {
	m.edit.Blur()
	m.editing = ""
	m.focus = focusList
}

// rows returns the incomplete container followed by the completed one;
// the cursor indexes into it.
func (m Model) rows() []tasklist.Task {
	return append(m.tasks.Incompletes(), m.tasks.Completed()...)
}

func (m Model) selected() (tasklist.Task, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return tasklist.Task{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
