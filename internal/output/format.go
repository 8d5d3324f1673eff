// Package output provides plain-text formatters for the task containers.
package output

import (
	"fmt"
	"io"
	"strings"

	"tasklist/internal/tasklist"
)

const (
	// ListSeparator is the separator line for container sections.
	ListSeparator = "------------"

	// IncompleteTitle and CompletedTitle head the two containers.
	IncompleteTitle = "Todo"
	CompletedTitle  = "Completed"
)

// FormatTask formats one task line.
// Format: "{N:>4}  [{X}] {LABEL}\n", with `  (editing: "{TEXT}")` appended
// before the newline while the task is in edit mode.
func FormatTask(w io.Writer, num int, task tasklist.Task) {
	fmt.Fprintf(w, "%4d  %s %s", num, Checkbox(task), normalizeLabel(task.Label))
	if task.Editing() {
		fmt.Fprintf(w, "  (editing: %q)", task.EditText)
	}
	fmt.Fprintln(w)
}

// FormatContainerHeader formats a container section header.
func FormatContainerHeader(w io.Writer, title string) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, ListSeparator)
}

// FormatContainer formats a header followed by numbered tasks.
func FormatContainer(w io.Writer, title string, tasks []tasklist.Task) {
	FormatContainerHeader(w, title)
	for i, task := range tasks {
		FormatTask(w, i+1, task)
	}
}

// FormatLists formats both containers of m, incomplete first.
func FormatLists(w io.Writer, m *tasklist.Manager) {
	FormatContainer(w, IncompleteTitle, m.Incompletes())
	FormatContainer(w, CompletedTitle, m.Completed())
}

// Checkbox renders the checkbox control of a task.
func Checkbox(task tasklist.Task) string {
	if task.Checked() {
		return "[x]"
	}
	return "[ ]"
}

// normalizeLabel keeps a label on one line. Empty labels stay empty.
func normalizeLabel(label string) string {
	label = strings.ReplaceAll(label, "\r", " ")
	return strings.ReplaceAll(label, "\n", " ")
}
