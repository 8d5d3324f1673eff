package commands

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/output"
	"tasklist/internal/tasklist"
)

func init() {
	Register(&RunCmd{})
}

// RunCmd implements the run command. It applies a script of operations to a
// fresh task list and prints both containers.
type RunCmd struct {
	in io.Reader
}

func (c *RunCmd) Name() string        { return "run" }
func (c *RunCmd) Aliases() []string   { return []string{"script"} }
func (c *RunCmd) Synopsis() string    { return "Apply a script of operations" }
func (c *RunCmd) Usage() string       { return "tasklist run [common flags] [file]" }
func (c *RunCmd) NeedsNotifier() bool { return true }

func (c *RunCmd) RegisterFlags(fs *flag.FlagSet) {}

// SetInput sets the reader used when no file argument is given.
// Defaults to os.Stdin.
func (c *RunCmd) SetInput(r io.Reader) {
	c.in = r
}

func (c *RunCmd) Run(ctx context.Context, cfg *config.Config, n tasklist.Notifier, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	in := c.in
	if in == nil {
		in = os.Stdin
	}
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		defer f.Close()
		in = f
	}

	logger := cfg.Log()
	s := &script{
		tasks: tasklist.New(tasklist.WithNotifier(n), tasklist.WithLogger(logger)),
		field: tasklist.NewField(""),
		out:   out,
	}

	scanner := bufio.NewScanner(in)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(errOut, "error: cancelled")
			return exitcode.UserError
		}
		if err := s.exec(ctx, scanner.Text()); err != nil {
			fmt.Fprintf(errOut, "error: line %d: %s\n", lineNum, describe(err))
			return exitcode.UserError
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "error: failed to read script: %v\n", err)
		return exitcode.UserError
	}
	logger.Printf("run: %d lines, %d tasks", lineNum, s.tasks.Len())

	if !cfg.Quiet {
		output.FormatLists(out, s.tasks)
	}
	return exitcode.Success
}

// script holds the state of one run.
type script struct {
	tasks *tasklist.Manager
	field *tasklist.Field
	out   io.Writer
}

// opError ties a failed operation to the reference the script used, so the
// report names the task the way the user did.
type opError struct {
	ref string
	err error
}

func (e *opError) Error() string { return e.ref + ": " + e.err.Error() }
func (e *opError) Unwrap() error { return e.err }

// exec applies one script line.
func (s *script) exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	op, rest := cutField(line)

	switch op {
	case "add":
		s.field.SetValue(rest)
		s.tasks.Add(ctx, s.field)
		return nil
	case "list":
		if rest != "" {
			return fmt.Errorf("list takes no arguments")
		}
		output.FormatLists(s.out, s.tasks)
		return nil
	case "done", "undo", "toggle", "edit", "rm":
		refArg, extra := cutField(rest)
		if extra != "" {
			return fmt.Errorf("%s takes one task reference", op)
		}
		return s.apply(op, refArg, "")
	case "type":
		refArg, text := cutField(rest)
		return s.apply(op, refArg, text)
	default:
		return fmt.Errorf("unknown operation: %s", op)
	}
}

// cutField splits s at the first run of blanks. Both parts come back
// without leading blanks.
func cutField(s string) (field, rest string) {
	s = strings.TrimLeft(s, blanks)
	i := strings.IndexAny(s, blanks)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeft(s[i:], blanks)
}

const blanks = " \t"

func (s *script) apply(op, refArg, text string) error {
	ref, err := ParseTaskRef(refArg)
	if err != nil {
		return err
	}
	t, err := ref.Resolve(s.tasks)
	if err != nil {
		return err
	}

	switch op {
	case "done":
		_, err = s.tasks.Complete(t.ID)
	case "undo":
		_, err = s.tasks.Incomplete(t.ID)
	case "toggle":
		_, err = s.tasks.Activate(t.ID, tasklist.ControlCheckbox)
	case "edit":
		_, err = s.tasks.Activate(t.ID, tasklist.ControlEdit)
	case "rm":
		_, err = s.tasks.Activate(t.ID, tasklist.ControlDelete)
	case "type":
		err = s.tasks.SetEditText(t.ID, text)
	}
	if err != nil {
		return &opError{ref: ref.Raw, err: err}
	}
	return nil
}

// describe renders a script error without the internal task id.
func describe(err error) string {
	var oe *opError
	var pv *tasklist.PreconditionViolation
	if errors.As(err, &oe) && errors.As(oe.err, &pv) {
		return fmt.Sprintf("%s %s: %v", pv.Op, oe.ref, pv.Err)
	}
	return err.Error()
}
