package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/tasklist"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct {
	// Registry lists the commands to describe. nil means DefaultRegistry.
	Registry *Registry
}

func (c *HelpCmd) Name() string        { return "help" }
func (c *HelpCmd) Aliases() []string   { return nil }
func (c *HelpCmd) Synopsis() string    { return "Print usage" }
func (c *HelpCmd) Usage() string       { return "tasklist help" }
func (c *HelpCmd) NeedsNotifier() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, n tasklist.Notifier, args []string, out, errOut io.Writer) int {
	reg := c.Registry
	if reg == nil {
		reg = DefaultRegistry
	}

	fmt.Fprintln(out, "Usage:")
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  tasklist\tOpen the interactive task list\n")
	for _, cmd := range reg.All() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Usage(), cmd.Synopsis())
	}
	tw.Flush()

	fmt.Fprint(out, helpFooter)
	return exitcode.Success
}

const helpFooter = `
Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
  --sync <mode>    Notify added tasks: log (default), none, google

Script operations (run):
  add <text...>         Add an incomplete task
  done <ref>            Complete a task
  undo <ref>            Move a completed task back
  toggle <ref>          Flip completion
  edit <ref>            Enter edit mode, or save the edit text
  type <ref> <text...>  Replace the edit text of a task in edit mode
  rm <ref>              Delete a task
  list                  Print both containers

Task references: N or iN (Todo #N), cN (Completed #N).
`
