// Package cli parses the command line and dispatches to registered commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasklist/internal/commands"
	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/tasklist"
)

// defaultCommand runs when no command is named.
const defaultCommand = "ui"

// NotifierFactory creates the add notifier from config.
// Used to inject the sync backend during dispatch.
type NotifierFactory func(ctx context.Context, cfg *config.Config) (tasklist.Notifier, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  NotifierFactory
}

// NewDispatcher creates a new dispatcher with the given registry and notifier factory.
func NewDispatcher(registry *commands.Registry, factory NotifierFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return d.dispatch(ctx, defaultCommand, nil, out, errOut)
	}

	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

// commonFlags are accepted by every command.
type commonFlags struct {
	configDir string
	quiet     bool
	debug     bool
	sync      string
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configDir, "config", "", "")
	fs.BoolVar(&f.quiet, "quiet", false, "")
	fs.BoolVar(&f.debug, "debug", false, "")
	fs.StringVar(&f.sync, "sync", "", "")
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors are reported below

	var common commonFlags
	common.register(fs)
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	// A dash-prefixed positional means a flag was placed after "--" or misspelled
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") && positionalArgs[0] != "-" {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(common.configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	// Flags override the environment only when given
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "quiet":
			cfg.Quiet = common.quiet
		case "debug":
			cfg.Debug = common.debug
		}
	})
	if common.sync != "" {
		if err := cfg.SetSync(common.sync); err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.UserError
		}
	}
	cfg.Logger = cfg.NewLogger(errOut)
	cfg.Logger.Printf("dispatch %s (sync=%s, config=%s)", cmd.Name(), cfg.Sync, cfg.Dir)

	var n tasklist.Notifier
	if cmd.NeedsNotifier() {
		if code, ok := preflight(cfg, errOut); !ok {
			return code
		}
		if d.factory != nil {
			n, err = d.factory(ctx, cfg)
			if err != nil {
				return notifierError(err, errOut)
			}
		}
	}

	return cmd.Run(ctx, cfg, n, positionalArgs, out, errOut)
}

// preflight checks the files the google sync mode needs before any
// backend call is made.
func preflight(cfg *config.Config, errOut io.Writer) (int, bool) {
	if cfg.Sync != config.SyncGoogle {
		return exitcode.Success, true
	}
	if !cfg.HasOAuthClient() {
		fmt.Fprintf(errOut, "error: %s not found in %s\n", config.OAuthClientFile, cfg.Dir)
		return exitcode.AuthError, false
	}
	if !cfg.HasToken() {
		fmt.Fprintf(errOut, "error: not logged in (run: %s login)\n", config.AppName)
		return exitcode.AuthError, false
	}
	return exitcode.Success, true
}

func notifierError(err error, errOut io.Writer) int {
	msg := err.Error()
	if strings.Contains(msg, "token") || strings.Contains(msg, "auth") || strings.Contains(msg, "login") {
		fmt.Fprintf(errOut, "error: auth error: %s\n", err)
		return exitcode.AuthError
	}
	fmt.Fprintf(errOut, "error: backend error: %s\n", err)
	return exitcode.BackendError
}

// flagError rewrites flag package errors into the CLI's wording.
func flagError(err error) string {
	errStr := err.Error()

	switch {
	case strings.HasPrefix(errStr, "flag needs an argument:"):
		name := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		return "flag needs an argument: " + name
	case strings.HasPrefix(errStr, "flag provided but not defined:"):
		name := strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
		return "unknown flag: " + name
	default:
		return errStr
	}
}
