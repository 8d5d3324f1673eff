package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/tasklist"
)

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd implements the logout command. By default only the token goes,
// so the next login can reuse the OAuth client; --all removes both files.
type LogoutCmd struct {
	all bool
}

func (c *LogoutCmd) Name() string        { return "logout" }
func (c *LogoutCmd) Aliases() []string   { return nil }
func (c *LogoutCmd) Synopsis() string    { return "Remove stored Google Tasks credentials" }
func (c *LogoutCmd) Usage() string       { return "tasklist logout [common flags] [--all]" }
func (c *LogoutCmd) NeedsNotifier() bool { return false }

func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.all, "all", false, "")
}

func (c *LogoutCmd) Run(ctx context.Context, cfg *config.Config, n tasklist.Notifier, args []string, out, errOut io.Writer) int {
	removeClient := c.all && cfg.HasOAuthClient()
	if !cfg.HasToken() && !removeClient {
		if !cfg.Quiet {
			fmt.Fprintln(out, "not logged in")
		}
		return exitcode.Success
	}

	if cfg.HasToken() {
		if err := cfg.RemoveToken(); err != nil {
			fmt.Fprintf(errOut, "error: failed to remove token: %v\n", err)
			return exitcode.AuthError
		}
		cfg.Log().Printf("logout: removed %s", cfg.TokenPath())
	}
	if removeClient {
		if err := cfg.RemoveOAuthClient(); err != nil {
			fmt.Fprintf(errOut, "error: failed to remove %s: %v\n", config.OAuthClientFile, err)
			return exitcode.AuthError
		}
		cfg.Log().Printf("logout: removed %s", cfg.OAuthClientPath())
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
		if cfg.Sync == config.SyncGoogle {
			fmt.Fprintf(errOut, "warning: google sync stays off until you run: %s login\n", config.AppName)
		}
	}
	return exitcode.Success
}
