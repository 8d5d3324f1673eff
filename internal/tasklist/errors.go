package tasklist

import (
	"errors"
	"fmt"
)

// ErrPrecondition is wrapped by every error returned for an operation that
// was called on a task in the wrong state.
var ErrPrecondition = errors.New("precondition violation")

var (
	// ErrNotFound means the id does not name a live task. Deleted tasks are
	// never found again.
	ErrNotFound = fmt.Errorf("%w: task not found", ErrPrecondition)

	// ErrAlreadyCompleted is returned by Complete on a completed task.
	ErrAlreadyCompleted = fmt.Errorf("%w: task is already completed", ErrPrecondition)

	// ErrNotCompleted is returned by Incomplete on an incomplete task.
	ErrNotCompleted = fmt.Errorf("%w: task is not completed", ErrPrecondition)

	// ErrNotEditing is returned by SetEditText outside Editing mode.
	ErrNotEditing = fmt.Errorf("%w: task is not being edited", ErrPrecondition)
)

// PreconditionViolation reports which operation was refused for which task.
type PreconditionViolation struct {
	Op  string
	ID  ID
	Err error
}

func (e *PreconditionViolation) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.ID, e.Err)
}

func (e *PreconditionViolation) Unwrap() error {
	return e.Err
}

func violation(op string, id ID, err error) error {
	return &PreconditionViolation{Op: op, ID: id, Err: err}
}
