package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/olekukonko/tablewriter"
	flag "github.com/spf13/pflag"

	"scorebook/internal/core/innings"
	"scorebook/internal/core/intent"
	"scorebook/internal/core/plot"
	"scorebook/internal/core/workbook"
)

// EmptyQuestion is printed instead of consulting the matcher for a blank question
const EmptyQuestion = "Please enter a question."

func newTable(o *IO, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(o.Out)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	return t
}

func (a *app) overviewCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("overview", flag.ContinueOnError),
		Usage: "overview",
		Short: "Print the KPI table",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			ds, err := a.Dataset(ctx)
			if err != nil {
				return err
			}
			s := ds.Summarize()
			t := newTable(o, "Metric", "Value")
			t.AppendBulk([][]string{
				{"Matches", strconv.Itoa(s.Matches)},
				{"Total runs", strconv.Itoa(s.TotalRuns)},
				{"Average runs", strconv.FormatFloat(s.AverageRuns, 'f', 2, 64)},
				{"Highest score", strconv.Itoa(s.HighestScore)},
				{"Centuries", strconv.Itoa(s.Centuries)},
				{"Fifties", strconv.Itoa(s.Fifties)},
			})
			t.Render()
			return nil
		},
	}
}

// filterFlags registers --opponent, --match and --year on fs
func filterFlags(fs *flag.FlagSet) *innings.Filter {
	f := &innings.Filter{}
	fs.StringVar(&f.Opponent, "opponent", "", "only innings against this opponent")
	fs.StringVar(&f.Match, "match", "", "only this match type (ODI, T20I, Test)")
	fs.IntVar(&f.Year, "year", 0, "only innings in this year")
	return f
}

func (a *app) inningsCmd() *Command {
	fs := flag.NewFlagSet("innings", flag.ContinueOnError)
	f := filterFlags(fs)
	return &Command{
		Flags: fs,
		Usage: "innings [flags]",
		Short: "Print the innings table",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			ds, err := a.Dataset(ctx)
			if err != nil {
				return err
			}
			rows := ds.Select(*f)
			t := newTable(o, "Match No", "Date", "Opponent", "Ground", "Match", "Runs", "Total")
			for _, in := range rows {
				t.Append([]string{
					strconv.Itoa(in.MatchNo),
					in.Date.Format("2006-01-02"),
					in.Opponent,
					in.Ground,
					in.Match,
					strconv.Itoa(in.Runs),
					strconv.Itoa(in.Total),
				})
			}
			t.SetFooter([]string{"", "", "", "", "Innings", strconv.Itoa(len(rows)), ""})
			t.Render()
			return nil
		},
	}
}

// answer prints the reply for one submitted question
func answer(o *IO, ds *innings.Dataset, question string) {
	if question == "" {
		o.Println(EmptyQuestion)
		return
	}
	o.Println(intent.Answer(question, ds))
}

func (a *app) askCmd() *Command {
	return &Command{
		Flags: flag.NewFlagSet("ask", flag.ContinueOnError),
		Usage: "ask <question...>",
		Short: "Answer one question",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			q := strings.Join(args, " ")
			if q == "" {
				return usagef("%s", EmptyQuestion)
			}
			ds, err := a.Dataset(ctx)
			if err != nil {
				return err
			}
			answer(o, ds, q)
			return nil
		},
	}
}

func (a *app) chartCmd() *Command {
	fs := flag.NewFlagSet("chart", flag.ContinueOnError)
	format := fs.String("format", "", "svg or png (default: from --out extension, else svg)")
	out := fs.String("out", "", "file to write")
	return &Command{
		Flags: fs,
		Usage: "chart <name> --out FILE [flags]",
		Short: "Render a chart image: " + joinNames(),
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) != 1 {
				return usagef("chart needs exactly one name (%s)", joinNames())
			}
			if *out == "" {
				return usagef("--out is required")
			}
			f, err := imageFormat(*format, *out)
			if err != nil {
				return usagef("%v", err)
			}
			ds, err := a.Dataset(ctx)
			if err != nil {
				return err
			}
			spec, err := plot.Build(plot.Name(args[0]), ds)
			if err != nil {
				return usagef("%v", err)
			}
			b, err := plot.Render(spec, f)
			if err != nil {
				return err
			}
			if err := atomic.WriteFile(*out, bytes.NewReader(b)); err != nil {
				return fmt.Errorf("write %s: %w", *out, err)
			}
			o.Printf("wrote %s (%s, %d bytes)\n", *out, spec.Title, len(b))
			return nil
		},
	}
}

func joinNames() string {
	names := plot.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return strings.Join(out, ", ")
}

// imageFormat prefers an explicit --format, then the output extension, then svg
func imageFormat(explicit, out string) (plot.Format, error) {
	if explicit != "" {
		return plot.ParseFormat(explicit)
	}
	if ext := strings.TrimPrefix(filepath.Ext(out), "."); ext != "" {
		if f, err := plot.ParseFormat(ext); err == nil {
			return f, nil
		}
	}
	return plot.SVG, nil
}

func (a *app) exportCmd() *Command {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	f := filterFlags(fs)
	out := fs.String("out", "", "xlsx file to write")
	return &Command{
		Flags: fs,
		Usage: "export --out FILE [flags]",
		Short: "Write the innings table and summary as an xlsx workbook",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			if *out == "" {
				return usagef("--out is required")
			}
			ds, err := a.Dataset(ctx)
			if err != nil {
				return err
			}
			rows := ds.Select(*f)
			b, err := workbook.Build(rows, innings.New(ds.Source(), rows).Summarize())
			if err != nil {
				return err
			}
			if err := atomic.WriteFile(*out, bytes.NewReader(b)); err != nil {
				return fmt.Errorf("write %s: %w", *out, err)
			}
			o.Printf("wrote %s (%d innings)\n", *out, len(rows))
			return nil
		},
	}
}
