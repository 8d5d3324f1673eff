package tasklist

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"
)

// Control is a per-task control a user can activate.
type Control int

const (
	// ControlCheckbox toggles completion.
	ControlCheckbox Control = iota

	// ControlEdit toggles between Edit and Save.
	ControlEdit

	// ControlDelete removes the task.
	ControlDelete
)

func (c Control) String() string {
	switch c {
	case ControlCheckbox:
		return "checkbox"
	case ControlEdit:
		return "edit"
	case ControlDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Manager owns every task and the two containers that order them.
// It is not safe for concurrent use; callers drive it from a single
// event loop.
type Manager struct {
	tasks      map[ID]*Task
	incomplete []ID
	completed  []ID

	notifier Notifier
	logger   *log.Logger
	newID    func() ID
}

// Option configures a Manager.
type Option func(*Manager)

// WithNotifier sets the hook fired after each added task.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) {
		if n != nil {
			m.notifier = n
		}
	}
}

// WithLogger sets the logger used for debug output and notifier failures.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithIDGenerator replaces the uuid based id source.
func WithIDGenerator(fn func() ID) Option {
	return func(m *Manager) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// New creates an empty Manager.
func New(opts ...Option) *Manager {
	m := &Manager{
		tasks:    make(map[ID]*Task),
		notifier: NopNotifier{},
		logger:   log.New(io.Discard, "", 0),
		newID:    func() ID { return ID(uuid.NewString()) },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add reads the text from src and creates a task from it. On success the
// source is cleared; blank input is ignored and leaves src untouched.
func (m *Manager) Add(ctx context.Context, src InputSource) (Task, bool) {
	t, ok := m.Submit(src)
	if ok {
		m.Notify(ctx, t)
	}
	return t, ok
}

// Submit is Add without the notification. Callers that must not block on
// the notifier deliver it later through Notify.
func (m *Manager) Submit(src InputSource) (Task, bool) {
	t, ok := m.create(src.Value())
	if ok {
		src.SetValue("")
	}
	return t, ok
}

// Create appends a new incomplete task labelled text and fires the
// notifier. Empty or whitespace-only text creates nothing and returns false.
func (m *Manager) Create(ctx context.Context, text string) (Task, bool) {
	t, ok := m.create(text)
	if ok {
		m.Notify(ctx, t)
	}
	return t, ok
}

func (m *Manager) create(text string) (Task, bool) {
	if strings.TrimSpace(text) == "" {
		return Task{}, false
	}
	t := m.insert(text, StatusIncomplete)
	m.logger.Printf("create %s", t.ID)
	return *t, true
}

// Notify tells the notifier about an added task. A failure is logged and
// returned; it never changes the list. Notify reads no task state, so it
// may run off the event loop.
func (m *Manager) Notify(ctx context.Context, t Task) error {
	if err := m.notifier.TaskAdded(ctx, t); err != nil {
		m.logger.Printf("notify %s: %v", t.ID, err)
		return err
	}
	return nil
}

// Load appends tasks directly to a container without notifying. Blank
// labels are skipped. Any status other than StatusCompleted loads into the
// incomplete container.
func (m *Manager) Load(status Status, labels ...string) []Task {
	var out []Task
	for _, label := range labels {
		if strings.TrimSpace(label) == "" {
			continue
		}
		out = append(out, *m.insert(label, status))
	}
	return out
}

func (m *Manager) insert(label string, status Status) *Task {
	if status != StatusCompleted {
		status = StatusIncomplete
	}
	t := &Task{
		ID:     m.newID(),
		Label:  label,
		Status: status,
		Mode:   ModeDisplay,
	}
	m.tasks[t.ID] = t
	if status == StatusCompleted {
		m.completed = append(m.completed, t.ID)
	} else {
		m.incomplete = append(m.incomplete, t.ID)
	}
	return t
}

// ToggleEdit switches a task between Display and Editing. Entering Editing
// copies the label into the edit field; leaving it copies the edit field
// back into the label, empty or not.
func (m *Manager) ToggleEdit(id ID) (Task, error) {
	t, err := m.lookup("edit", id)
	if err != nil {
		return Task{}, err
	}

	if t.Mode == ModeEditing {
		t.Label = t.EditText
		t.Mode = ModeDisplay
	} else {
		t.EditText = t.Label
		t.Mode = ModeEditing
	}
	return *t, nil
}

// SetEditText replaces the contents of a task's edit field.
func (m *Manager) SetEditText(id ID, text string) error {
	t, err := m.lookup("set edit text", id)
	if err != nil {
		return err
	}
	if t.Mode != ModeEditing {
		return violation("set edit text", id, ErrNotEditing)
	}
	t.EditText = text
	return nil
}

// Delete removes a task from its container. Deleted ids are gone for good.
func (m *Manager) Delete(id ID) error {
	t, err := m.lookup("delete", id)
	if err != nil {
		return err
	}

	if t.Status == StatusCompleted {
		m.completed = remove(m.completed, id)
	} else {
		m.incomplete = remove(m.incomplete, id)
	}
	delete(m.tasks, id)
	m.logger.Printf("delete %s", id)
	return nil
}

// Complete moves an incomplete task to the end of the completed container.
func (m *Manager) Complete(id ID) (Task, error) {
	t, err := m.lookup("complete", id)
	if err != nil {
		return Task{}, err
	}
	if t.Status != StatusIncomplete {
		return Task{}, violation("complete", id, ErrAlreadyCompleted)
	}

	m.incomplete = remove(m.incomplete, id)
	m.completed = append(m.completed, id)
	t.Status = StatusCompleted
	m.logger.Printf("complete %s", id)
	return *t, nil
}

// Incomplete moves a completed task back to the end of the incomplete
// container.
func (m *Manager) Incomplete(id ID) (Task, error) {
	t, err := m.lookup("incomplete", id)
	if err != nil {
		return Task{}, err
	}
	if t.Status != StatusCompleted {
		return Task{}, violation("incomplete", id, ErrNotCompleted)
	}

	m.completed = remove(m.completed, id)
	m.incomplete = append(m.incomplete, id)
	t.Status = StatusIncomplete
	m.logger.Printf("incomplete %s", id)
	return *t, nil
}

// Toggle is the checkbox handler: it completes an incomplete task and
// reopens a completed one.
func (m *Manager) Toggle(id ID) (Task, error) {
	t, err := m.lookup("toggle", id)
	if err != nil {
		return Task{}, err
	}
	if t.Status == StatusCompleted {
		return m.Incomplete(id)
	}
	return m.Complete(id)
}

// Activate is the single handler bound to every control of a task. It
// reads the task's current state on each call, so nothing is rebound when
// the task moves between containers.
func (m *Manager) Activate(id ID, c Control) (Task, error) {
	switch c {
	case ControlCheckbox:
		return m.Toggle(id)
	case ControlEdit:
		return m.ToggleEdit(id)
	case ControlDelete:
		t, err := m.lookup("delete", id)
		if err != nil {
			return Task{}, err
		}
		snapshot := *t
		return snapshot, m.Delete(id)
	default:
		return Task{}, fmt.Errorf("activate %s: unknown control %d", id, int(c))
	}
}

// Get returns a copy of the task with the given id.
func (m *Manager) Get(id ID) (Task, bool) {
	t, ok := m.tasks[id]
	if !ok {
		return Task{}, false
	}
	return *t, true
}

// Incompletes returns the incomplete container in order.
func (m *Manager) Incompletes() []Task {
	return m.snapshot(m.incomplete)
}

// Completed returns the completed container in order.
func (m *Manager) Completed() []Task {
	return m.snapshot(m.completed)
}

// Tasks returns the container for status.
func (m *Manager) Tasks(status Status) []Task {
	if status == StatusCompleted {
		return m.Completed()
	}
	return m.Incompletes()
}

// Len returns the number of live tasks.
func (m *Manager) Len() int {
	return len(m.tasks)
}

// At returns the n-th (1-based) task of a container.
func (m *Manager) At(status Status, n int) (Task, error) {
	ids := m.incomplete
	if status == StatusCompleted {
		ids = m.completed
	}
	if n < 1 || n > len(ids) {
		return Task{}, fmt.Errorf("task number out of range: %d", n)
	}
	return *m.tasks[ids[n-1]], nil
}

func (m *Manager) lookup(op string, id ID) (*Task, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, violation(op, id, ErrNotFound)
	}
	return t, nil
}

func (m *Manager) snapshot(ids []ID) []Task {
	out := make([]Task, 0, len(ids))
	for _, id := range ids {
		out = append(out, *m.tasks[id])
	}
	return out
}

func remove(ids []ID, id ID) []ID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
