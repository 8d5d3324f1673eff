package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tasklist/internal/cli"
	"tasklist/internal/commands"
	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/tasklist"
	"tasklist/internal/testutil"
)

// testFactory creates a notifier factory that returns the given FakeNotifier.
func testFactory(n *testutil.FakeNotifier) cli.NotifierFactory {
	return func(ctx context.Context, cfg *config.Config) (tasklist.Notifier, error) {
		return n, nil
	}
}

func failingFactory(err error) cli.NotifierFactory {
	return func(ctx context.Context, cfg *config.Config) (tasklist.Notifier, error) {
		return nil, err
	}
}

// clearEnv keeps the caller's environment out of config parsing.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"TASKLIST_CONFIG_DIR", "TASKLIST_DEBUG", "TASKLIST_QUIET", "TASKLIST_SYNC", "TASKLIST_SYNC_LIST", "TASKLIST_LOG_FILE"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeScript(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.txt")
	if err := os.WriteFile(path, []byte(script), 0600); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeNotifier()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeNotifier()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	clearEnv(t)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, failingFactory(errors.New("factory must not run")))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--config", t.TempDir()}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !strings.Contains(stdout.String(), "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	clearEnv(t)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeNotifier()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version", "--config", t.TempDir()}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if stdout.String() != "tasklist 0.1.0\n" {
		t.Errorf("expected 'tasklist 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeNotifier()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagNeedsArgument(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeNotifier()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"run", "--config"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -config\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_InvalidSyncMode(t *testing.T) {
	clearEnv(t)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeNotifier()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version", "--config", t.TempDir(), "--sync", "fax"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: invalid sync mode: fax\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_RunScript(t *testing.T) {
	clearEnv(t)
	notifier := testutil.NewFakeNotifier()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(notifier))
	path := writeScript(t, "add Buy milk\nadd Pay bills\ndone 2\n")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"run", "--config", t.TempDir(), path}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr.String())
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !strings.Contains(stdout.String(), "   1  [ ] Buy milk\n") || !strings.Contains(stdout.String(), "   1  [x] Pay bills\n") {
		t.Errorf("unexpected output:\n%s", stdout.String())
	}
	if got := notifier.Labels(); len(got) != 2 || got[0] != "Buy milk" || got[1] != "Pay bills" {
		t.Errorf("expected two notifications, got %q", got)
	}
}

func TestDispatcher_ScriptAlias(t *testing.T) {
	clearEnv(t)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeNotifier()))
	path := writeScript(t, "add a\n")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"script", "--quiet", "--config", t.TempDir(), path}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "" {
		t.Errorf("expected no stdout with --quiet, got %q", stdout.String())
	}
}

func TestDispatcher_QuietFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TASKLIST_QUIET", "true")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeNotifier()))
	path := writeScript(t, "add a\n")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"run", "--config", t.TempDir(), path}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "" {
		t.Errorf("expected no stdout with TASKLIST_QUIET, got %q", stdout.String())
	}
}

func TestDispatcher_DebugLogsToStderr(t *testing.T) {
	clearEnv(t)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeNotifier()))
	path := writeScript(t, "add a\n")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"run", "--debug", "--quiet", "--config", t.TempDir(), path}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stderr.String(), "dispatch run (sync=log") {
		t.Errorf("expected debug line on stderr, got %q", stderr.String())
	}
	if !strings.HasPrefix(stderr.String(), "tasklist: ") {
		t.Errorf("expected log prefix, got %q", stderr.String())
	}
}

func TestDispatcher_GoogleSyncNeedsOAuthClient(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, failingFactory(errors.New("factory must not run")))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"run", "--sync", "google", "--config", dir, "-"}, &stdout, &stderr)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	expected := "error: oauth_client.json not found in " + dir + "\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_GoogleSyncNeedsLogin(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.OAuthClientFile), []byte(`{"installed":{}}`), 0600); err != nil {
		t.Fatalf("failed to write oauth client: %v", err)
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, failingFactory(errors.New("factory must not run")))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"run", "--sync", "google", "--config", dir}, &stdout, &stderr)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	expected := "error: not logged in (run: tasklist login)\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FactoryErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		want string
	}{
		{"auth", errors.New("token expired"), exitcode.AuthError, "error: auth error: token expired\n"},
		{"backend", errors.New("connection refused"), exitcode.BackendError, "error: backend error: connection refused\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dispatcher := cli.NewDispatcher(commands.DefaultRegistry, failingFactory(tt.err))

			var stdout, stderr bytes.Buffer
			code := dispatcher.Run(context.Background(), []string{"run", "--config", t.TempDir()}, &stdout, &stderr)

			if code != tt.code {
				t.Errorf("expected exit code %d, got %d", tt.code, code)
			}
			if stderr.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, stderr.String())
			}
		})
	}
}

func TestDefaultFactory(t *testing.T) {
	ctx := context.Background()

	n, err := cli.DefaultFactory(ctx, &config.Config{Sync: config.SyncNone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := n.(tasklist.NopNotifier); !ok {
		t.Errorf("expected NopNotifier for sync=none, got %T", n)
	}

	n, err = cli.DefaultFactory(ctx, &config.Config{Sync: config.SyncLog})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := n.(*tasklist.LogNotifier); !ok {
		t.Errorf("expected LogNotifier for sync=log, got %T", n)
	}

	n, err = cli.DefaultFactory(ctx, &config.Config{Sync: config.SyncGoogle, Dir: t.TempDir()})
	if err == nil {
		t.Errorf("expected error without credentials, got notifier %T", n)
	}
	if n != nil {
		t.Errorf("expected nil notifier on error, got %T", n)
	}
}
