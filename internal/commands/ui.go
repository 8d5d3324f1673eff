package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/tasklist"
	"tasklist/internal/ui"
)

func init() {
	Register(&UICmd{})
}

// UICmd implements the ui command, the interactive widget.
type UICmd struct {
	in io.Reader

	// run replaces ui.Run in tests.
	run func(ctx context.Context, m ui.Model, in io.Reader, out io.Writer) error
}

func (c *UICmd) Name() string        { return "ui" }
func (c *UICmd) Aliases() []string   { return nil }
func (c *UICmd) Synopsis() string    { return "Open the interactive task list" }
func (c *UICmd) Usage() string       { return "tasklist ui [common flags] [label...]" }
func (c *UICmd) NeedsNotifier() bool { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

// SetInput sets the terminal input. nil means stdin.
func (c *UICmd) SetInput(r io.Reader) {
	c.in = r
}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, n tasklist.Notifier, args []string, out, errOut io.Writer) int {
	// The widget owns the terminal; log lines go to the log file or nowhere.
	logger := cfg.Log()
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, config.AppName)
		if err != nil {
			fmt.Fprintf(errOut, "error: failed to open log file: %v\n", err)
			return exitcode.UserError
		}
		defer f.Close()
		logger.SetOutput(f)
	} else {
		logger.SetOutput(io.Discard)
	}

	tasks := tasklist.New(tasklist.WithNotifier(n), tasklist.WithLogger(logger))
	seeded := tasks.Load(tasklist.StatusIncomplete, args...)
	logger.Printf("ui: seeded %d tasks", len(seeded))

	run := c.run
	if run == nil {
		run = ui.Run
	}
	if err := run(ctx, ui.New(ctx, tasks), c.in, out); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
