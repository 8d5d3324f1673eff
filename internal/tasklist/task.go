// Package tasklist manages an in-memory list of tasks split into an
// incomplete and a completed container.
package tasklist

// ID identifies a task for its whole lifetime.
type ID string

// Status is the container a task lives in.
type Status int

const (
	// StatusIncomplete means the task is held by the incomplete container.
	StatusIncomplete Status = iota

	// StatusCompleted means the task is held by the completed container.
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusIncomplete:
		return "incomplete"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Mode is the edit state of a task.
type Mode int

const (
	// ModeDisplay shows the label.
	ModeDisplay Mode = iota

	// ModeEditing shows the edit field instead of the label.
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeDisplay:
		return "display"
	case ModeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// Control labels for the edit toggle.
const (
	EditLabel = "Edit"
	SaveLabel = "Save"
)

// Task is a single to-do item.
type Task struct {
	ID       ID
	Label    string
	EditText string
	Status   Status
	Mode     Mode
}

// Checked reports whether the task's checkbox is ticked.
func (t Task) Checked() bool {
	return t.Status == StatusCompleted
}

// Editing reports whether the task shows its edit field.
func (t Task) Editing() bool {
	return t.Mode == ModeEditing
}

// ControlLabel returns the current label of the edit toggle.
func (t Task) ControlLabel() string {
	if t.Mode == ModeEditing {
		return SaveLabel
	}
	return EditLabel
}
