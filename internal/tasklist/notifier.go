package tasklist

import (
	"context"
	"log"
)

// Notifier is told about every task that was added through Create or Add.
// It is the hook for sync or persistence; the manager never changes state
// based on its result.
type Notifier interface {
	TaskAdded(ctx context.Context, t Task) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, t Task) error

func (f NotifierFunc) TaskAdded(ctx context.Context, t Task) error {
	return f(ctx, t)
}

// NopNotifier ignores every notification.
type NopNotifier struct{}

func (NopNotifier) TaskAdded(context.Context, Task) error { return nil }

// LogNotifier writes one line per added task.
type LogNotifier struct {
	Logger *log.Logger
}

// NewLogNotifier returns a LogNotifier writing to logger.
// A nil logger falls back to the standard logger.
func NewLogNotifier(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) TaskAdded(ctx context.Context, t Task) error {
	n.Logger.Printf("task added: id=%s label=%q", t.ID, t.Label)
	return nil
}
