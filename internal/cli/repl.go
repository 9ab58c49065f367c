package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"scorebook/internal/core/intent"
)

// prompter is the line editor surface the REPL needs
type prompter interface {
	Prompt(p string) (string, error)
	AppendHistory(item string)
	Close() error
}

// linerPrompter is the interactive editor, with history persisted on Close
type linerPrompter struct {
	*liner.State
	history string
}

func newLiner(history string) (prompter, error) {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	st.SetCompleter(func(line string) []string {
		var out []string
		for _, w := range []string{"help", "exit", "quit"} {
			if strings.HasPrefix(w, strings.ToLower(line)) {
				out = append(out, w)
			}
		}
		return out
	})
	if history != "" {
		if f, err := os.Open(history); err == nil {
			_, _ = st.ReadHistory(f)
			_ = f.Close()
		}
	}
	return &linerPrompter{State: st, history: history}, nil
}

func (p *linerPrompter) Close() error {
	if p.history != "" {
		if f, err := os.Create(p.history); err == nil {
			_, _ = p.WriteHistory(f)
			_ = f.Close()
		}
	}
	return p.State.Close()
}

// scanPrompter reads lines from a plain reader, for pipes and tests
type scanPrompter struct {
	sc *bufio.Scanner
	w  io.Writer
}

func (p *scanPrompter) Prompt(s string) (string, error) {
	_, _ = io.WriteString(p.w, s)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.sc.Text(), nil
}

func (p *scanPrompter) AppendHistory(string) {}
func (p *scanPrompter) Close() error         { return nil }

func printIntents(o *IO) {
	o.Println("Ask about:")
	for i, r := range intent.Rules() {
		o.Printf("  %d. %-14s %s\n", i+1, r.Name, r.Describe())
	}
	o.Println("Type exit or quit to leave.")
}

func (a *app) replCmd() *Command {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	plain := fs.Bool("plain", false, "read questions line by line from stdin without line editing")
	return &Command{
		Flags: fs,
		Usage: "repl [flags]",
		Short: "Ask questions interactively (history in ~/" + HistoryFile + ")",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			ds, err := a.Dataset(ctx)
			if err != nil {
				return err
			}

			var p prompter
			if *plain || a.prompt == nil {
				p = &scanPrompter{sc: bufio.NewScanner(o.In), w: o.Out}
			} else if p, err = a.prompt(a.history); err != nil {
				return err
			}
			defer func() { _ = p.Close() }()

			o.Printf("scorebook: %d innings loaded. Type help for the questions I understand.\n", ds.Len())
			for {
				if err := ctx.Err(); err != nil {
					return nil
				}
				line, err := p.Prompt("> ")
				if err != nil {
					if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
						o.Println()
						return nil
					}
					return err
				}
				if line == "" {
					o.Println(EmptyQuestion)
					continue
				}
				switch strings.ToLower(strings.TrimSpace(line)) {
				case "exit", "quit":
					return nil
				case "help", "?":
					printIntents(o)
					continue
				}
				p.AppendHistory(line)
				answer(o, ds, line)
			}
		},
	}
}
