// Package cli is the scorebook terminal client: KPI and innings tables, one-shot and
// interactive Q&A, and chart and workbook export.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Exit codes
const (
	ExitOK      = 0
	ExitRuntime = 1
	ExitUsage   = 2
)

// usageError marks a failure the user can fix by changing the command line
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, a ...any) error { return usageError{msg: fmt.Sprintf(format, a...)} }

// IO carries the streams commands read and write
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Println writes to stdout
func (o *IO) Println(a ...any) { _, _ = fmt.Fprintln(o.Out, a...) }

// Printf writes formatted output to stdout
func (o *IO) Printf(format string, a ...any) { _, _ = fmt.Fprintf(o.Out, format, a...) }

// ErrPrintln writes to stderr
func (o *IO) ErrPrintln(a ...any) { _, _ = fmt.Fprintln(o.Err, a...) }

// Command is one subcommand with its own flags
type Command struct {
	Flags *flag.FlagSet

	// Usage is shown after "scorebook" in help, e.g. "chart <name> [flags]"
	Usage string
	Short string

	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name is the first word of Usage
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

// HelpLine is the command's row in the global help
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-34s %s", c.Usage, c.Short)
}

// PrintHelp prints "scorebook <cmd> --help"
func (c *Command) PrintHelp(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Usage: scorebook", c.Usage)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, c.Short)
	if c.Flags != nil && c.Flags.HasFlags() {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "Flags:")
		var buf strings.Builder
		c.Flags.SetOutput(&buf)
		c.Flags.PrintDefaults()
		_, _ = fmt.Fprint(w, buf.String())
	}
}

// Run parses flags and executes the command, returning the exit code
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(io.Discard)
	if err := c.Flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.PrintHelp(o.Out)
			return ExitOK
		}
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		c.PrintHelp(o.Err)
		return ExitUsage
	}

	if err := c.Exec(ctx, o, c.Flags.Args()); err != nil {
		o.ErrPrintln("error:", err)
		var ue usageError
		if errors.As(err, &ue) {
			return ExitUsage
		}
		return ExitRuntime
	}
	return ExitOK
}
