package commands

import (
	"testing"

	"tasklist/internal/tasklist"
)

func TestParseTaskRef_NumericOnly(t *testing.T) {
	ref, err := ParseTaskRef("5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Status != tasklist.StatusIncomplete {
		t.Errorf("expected incomplete container, got %v", ref.Status)
	}
	if ref.TaskNum != 5 {
		t.Errorf("expected TaskNum 5, got %d", ref.TaskNum)
	}
}

func TestParseTaskRef_Completed(t *testing.T) {
	ref, err := ParseTaskRef("c12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Status != tasklist.StatusCompleted {
		t.Errorf("expected completed container, got %v", ref.Status)
	}
	if ref.TaskNum != 12 {
		t.Errorf("expected TaskNum 12, got %d", ref.TaskNum)
	}
}

func TestParseTaskRef_ExplicitIncomplete(t *testing.T) {
	ref, err := ParseTaskRef("i2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Status != tasklist.StatusIncomplete || ref.TaskNum != 2 {
		t.Errorf("unexpected ref %+v", ref)
	}
}

func TestParseTaskRef_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "task reference required"},
		{"c", "invalid task reference: c"},
		{"a1", "invalid task reference: a1"},
		{"1a", "invalid task reference: 1a"},
		{"c-1", "invalid task reference: c-1"},
		{"0", "task number out of range: 0"},
		{"c0", "task number out of range: 0"},
		{"١", "invalid task reference: ١"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseTaskRef(tt.in)
			if err == nil {
				t.Fatalf("expected error for %q", tt.in)
			}
			if err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestTaskRef_Resolve(t *testing.T) {
	m := tasklist.New()
	m.Load(tasklist.StatusIncomplete, "a", "b")
	m.Load(tasklist.StatusCompleted, "c")

	ref, _ := ParseTaskRef("2")
	task, err := ref.Resolve(m)
	if err != nil || task.Label != "b" {
		t.Errorf("expected b, got %q (%v)", task.Label, err)
	}

	ref, _ = ParseTaskRef("c1")
	task, err = ref.Resolve(m)
	if err != nil || task.Label != "c" {
		t.Errorf("expected c, got %q (%v)", task.Label, err)
	}

	ref, _ = ParseTaskRef("c2")
	if _, err := ref.Resolve(m); err == nil || err.Error() != "task number out of range: 2" {
		t.Errorf("expected out of range error, got %v", err)
	}
}
