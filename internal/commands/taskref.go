package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"tasklist/internal/tasklist"
)

// Container letters accepted in task references.
const (
	LetterIncomplete = 'i'
	LetterCompleted  = 'c'
)

// TaskRef is a parsed positional task reference.
type TaskRef struct {
	Status  tasklist.Status // container the number indexes
	TaskNum int             // 1-based position in the container
	Raw     string
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseTaskRef parses a task reference.
//
// Parsing rules:
//  1. All digits (e.g. 3) → incomplete container
//  2. 'i' or 'c' followed by digits (e.g. i3, c12) → that container
//  3. Anything else → error: invalid task reference: <ref>
func ParseTaskRef(s string) (TaskRef, error) {
	if s == "" {
		return TaskRef{}, ErrTaskRefRequired
	}

	status := tasklist.StatusIncomplete
	digits := s
	switch rune(s[0]) {
	case LetterIncomplete:
		digits = s[1:]
	case LetterCompleted:
		status = tasklist.StatusCompleted
		digits = s[1:]
	}

	if !isAllDigits(digits) {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", s)
	}
	num, err := strconv.Atoi(digits)
	if err != nil {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", s)
	}
	if num < 1 {
		return TaskRef{}, fmt.Errorf("task number out of range: %d", num)
	}
	return TaskRef{Status: status, TaskNum: num, Raw: s}, nil
}

// Resolve looks the reference up in m.
func (r TaskRef) Resolve(m *tasklist.Manager) (tasklist.Task, error) {
	return m.At(r.Status, r.TaskNum)
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
