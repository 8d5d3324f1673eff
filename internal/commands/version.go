package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"runtime"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/tasklist"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

func init() {
	Register(&VersionCmd{})
}

// VersionCmd implements the version command.
type VersionCmd struct {
	verbose bool
}

func (c *VersionCmd) Name() string        { return "version" }
func (c *VersionCmd) Aliases() []string   { return nil }
func (c *VersionCmd) Synopsis() string    { return "Print version" }
func (c *VersionCmd) Usage() string       { return "tasklist version [--verbose]" }
func (c *VersionCmd) NeedsNotifier() bool { return false }

func (c *VersionCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.verbose, "verbose", false, "")
}

func (c *VersionCmd) Run(ctx context.Context, cfg *config.Config, n tasklist.Notifier, args []string, out, errOut io.Writer) int {
	fmt.Fprintf(out, "%s %s\n", config.AppName, Version)
	if !c.verbose {
		return exitcode.Success
	}

	fmt.Fprintf(out, "go:     %s\n", runtime.Version())
	fmt.Fprintf(out, "config: %s\n", cfg.Dir)
	sync := cfg.Sync
	if sync == config.SyncGoogle && cfg.SyncList != "" {
		sync += " (" + cfg.SyncList + ")"
	}
	fmt.Fprintf(out, "sync:   %s\n", sync)
	return exitcode.Success
}
