package output_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"tasklist/internal/output"
	"tasklist/internal/tasklist"
	"tasklist/internal/testutil"
)

func newManager() *tasklist.Manager {
	n := 0
	return tasklist.New(tasklist.WithIDGenerator(func() tasklist.ID {
		n++
		return tasklist.ID(fmt.Sprintf("t%d", n))
	}))
}

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name string
		num  int
		task tasklist.Task
		want string
	}{
		{"open", 1, tasklist.Task{Label: "Buy milk"}, "   1  [ ] Buy milk\n"},
		{"done", 12, tasklist.Task{Label: "Pay bills", Status: tasklist.StatusCompleted}, "  12  [x] Pay bills\n"},
		{"newlines", 3, tasklist.Task{Label: "a\nb\r\nc"}, "   3  [ ] a b  c\n"},
		{"empty", 2, tasklist.Task{Label: ""}, "   2  [ ] \n"},
		{"editing", 4, tasklist.Task{Label: "old", EditText: "new", Mode: tasklist.ModeEditing}, "   4  [ ] old  (editing: \"new\")\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			output.FormatTask(&buf, tt.num, tt.task)
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestFormatLists_Empty(t *testing.T) {
	var buf bytes.Buffer
	output.FormatLists(&buf, newManager())

	testutil.GoldenString(t, "empty", buf.String())
}

func TestFormatLists_Mixed(t *testing.T) {
	m := newManager()
	ctx := context.Background()
	m.Create(ctx, "Buy milk")
	eggs, _ := m.Create(ctx, "Buy eggs")
	bills, _ := m.Create(ctx, "Pay bills")
	m.Complete(bills.ID)
	m.ToggleEdit(eggs.ID)
	m.SetEditText(eggs.ID, "Buy 12 eggs")

	var buf bytes.Buffer
	output.FormatLists(&buf, m)

	testutil.GoldenString(t, "mixed", buf.String())
}
