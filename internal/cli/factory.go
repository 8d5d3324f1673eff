package cli

import (
	"context"

	"tasklist/internal/backend/googletasks"
	"tasklist/internal/config"
	"tasklist/internal/tasklist"
)

// DefaultFactory builds the notifier selected by cfg.Sync.
func DefaultFactory(ctx context.Context, cfg *config.Config) (tasklist.Notifier, error) {
	switch cfg.Sync {
	case config.SyncNone:
		return tasklist.NopNotifier{}, nil
	case config.SyncGoogle:
		c, err := googletasks.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return tasklist.NewLogNotifier(cfg.Log()), nil
	}
}
