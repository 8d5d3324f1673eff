// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"tasklist/internal/tasklist"
)

// FakeNotifier records every added task.
type FakeNotifier struct {
	mu    sync.Mutex
	added []tasklist.Task

	// Err is returned from every TaskAdded call when set.
	Err error
}

// NewFakeNotifier creates an empty FakeNotifier.
func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

// TaskAdded implements tasklist.Notifier.
func (f *FakeNotifier) TaskAdded(ctx context.Context, t tasklist.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, t)
	return f.Err
}

// Added returns the tasks seen so far, in order.
func (f *FakeNotifier) Added() []tasklist.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]tasklist.Task, len(f.added))
	copy(out, f.added)
	return out
}

// Labels returns the labels of the tasks seen so far.
func (f *FakeNotifier) Labels() []string {
	var out []string
	for _, t := range f.Added() {
		out = append(out, t.Label)
	}
	return out
}
