package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	"scorebook/internal/core/innings"
	"scorebook/internal/core/version"
	"scorebook/internal/platform/config"
	"scorebook/internal/platform/logger"
	"scorebook/internal/platform/store"
	"scorebook/internal/services/dataset"
)

// HistoryFile is the REPL history file name under the home directory
const HistoryFile = ".scorebook_history"

// app is the state shared by commands: where the innings come from and how to prompt
type app struct {
	cfg     dataset.Config
	st      *store.Store
	data    dataset.Provider
	history string
	prompt  func(history string) (prompter, error)
}

// Dataset opens the configured source on first use and caches the result
func (a *app) Dataset(ctx context.Context) (*innings.Dataset, error) {
	if a.data == nil {
		st, err := store.Open(ctx, store.FromEnv(config.New(), "scorebook-cli", a.cfg.Kind),
			store.WithLogger(*logger.Named("store")))
		if err != nil {
			return nil, err
		}
		a.st = st
		src, err := dataset.NewSource(a.cfg, st)
		if err != nil {
			return nil, err
		}
		a.data = dataset.NewCached(src)
	}
	return a.data.Dataset(ctx)
}

func (a *app) close() {
	if a.st != nil {
		_ = a.st.Close(context.Background())
	}
}

func (a *app) commands() []*Command {
	return []*Command{
		a.overviewCmd(),
		a.inningsCmd(),
		a.askCmd(),
		a.replCmd(),
		a.chartCmd(),
		a.exportCmd(),
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, HistoryFile)
}

// Run executes the command line args (without the program name) and returns the exit code
func Run(ctx context.Context, args []string, o *IO) int {
	return run(ctx, args, o, &app{history: historyPath(), prompt: newLiner})
}

func run(ctx context.Context, args []string, o *IO, a *app) int {
	env := dataset.ConfigFromEnv(config.New())

	global := flag.NewFlagSet("scorebook", flag.ContinueOnError)
	global.SetInterspersed(false)
	global.SetOutput(io.Discard)
	csvPath := global.String("csv", env.CSVPath, "innings CSV file")
	source := global.String("source", env.Kind, "innings source: csv, pg or ch")
	table := global.String("table", env.Table, "table name for the pg and ch sources")
	showVersion := global.Bool("version", false, "print version and exit")

	cmds := a.commands()

	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(o.Out, global, cmds)
			return ExitOK
		}
		o.ErrPrintln("error:", err)
		printUsage(o.Err, global, cmds)
		return ExitUsage
	}
	if *showVersion {
		o.Println(version.Info().String())
		return ExitOK
	}

	switch k := strings.ToLower(*source); k {
	case dataset.KindCSV, dataset.KindPG, dataset.KindCH:
		a.cfg = dataset.Config{Kind: k, CSVPath: *csvPath, Table: *table}
	default:
		o.ErrPrintln(fmt.Sprintf("error: unknown --source %q (want csv, pg or ch)", *source))
		return ExitUsage
	}
	defer a.close()

	rest := global.Args()
	if len(rest) == 0 || rest[0] == "help" {
		w := o.Out
		code := ExitOK
		if len(rest) == 0 {
			w, code = o.Err, ExitUsage
		}
		printUsage(w, global, cmds)
		return code
	}

	for _, c := range cmds {
		if c.Name() == rest[0] {
			return c.Run(ctx, o, rest[1:])
		}
	}
	o.ErrPrintln(fmt.Sprintf("error: unknown command %q", rest[0]))
	printUsage(o.Err, global, cmds)
	return ExitUsage
}

func printUsage(w io.Writer, global *flag.FlagSet, cmds []*Command) {
	_, _ = fmt.Fprintln(w, "Usage: scorebook [flags] <command> [args]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Commands:")
	for _, c := range cmds {
		_, _ = fmt.Fprintln(w, c.HelpLine())
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Flags:")
	var buf strings.Builder
	global.SetOutput(&buf)
	global.PrintDefaults()
	global.SetOutput(io.Discard)
	_, _ = fmt.Fprint(w, buf.String())
}
