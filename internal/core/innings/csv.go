package innings

import (
	"encoding/csv"
	stderrs "errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	perr "scorebook/internal/platform/errors"
)

// DefaultPath is where the innings file lives relative to the working directory
const DefaultPath = "Sources/Source.csv"

type columns struct {
	date, runs, opponent, match int
	matchNo, ground, total      int
}

func indexHeader(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}
	col := func(name string) int {
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}
	c := columns{
		date: col("date"), runs: col("runs"), opponent: col("opponent"), match: col("match"),
		matchNo: col("match_no"), ground: col("ground"), total: col("total"),
	}
	var missing []string
	for _, req := range []struct {
		name string
		i    int
	}{{"date", c.date}, {"runs", c.runs}, {"opponent", c.opponent}, {"match", c.match}} {
		if req.i < 0 {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return c, perr.Datasetf("header is missing required columns: %s", strings.Join(missing, ", "))
	}
	return c, nil
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// optInt parses an optional integer column; blank or malformed means unknown (0)
func optInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// ParseDate parses a source date such as 18Aug2008 or 5mar2011
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// Decode reads a header row followed by one innings per row.
// Any malformed row fails the whole decode, naming the line.
func Decode(r io.Reader) ([]Innings, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if stderrs.Is(err, io.EOF) {
		return nil, perr.Datasetf("empty input: no header row")
	}
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDataset, "read header")
	}
	cols, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	var out []Innings
	for {
		rec, err := cr.Read()
		if stderrs.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDataset, "read row")
		}
		line, _ := cr.FieldPos(0)

		date, err := ParseDate(field(rec, cols.date))
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeDataset, "line %d: bad date %q (want e.g. 18Aug2008)", line, field(rec, cols.date))
		}
		runs, err := strconv.Atoi(field(rec, cols.runs))
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeDataset, "line %d: runs %q is not an integer", line, field(rec, cols.runs))
		}
		if runs < 0 {
			return nil, perr.Datasetf("line %d: negative runs %d", line, runs)
		}

		out = append(out, Innings{
			MatchNo:  optInt(field(rec, cols.matchNo)),
			Runs:     runs,
			Opponent: field(rec, cols.opponent),
			Ground:   field(rec, cols.ground),
			Date:     date,
			Match:    field(rec, cols.match),
			Total:    optInt(field(rec, cols.total)),
		})
	}
	if len(out) == 0 {
		return nil, perr.Datasetf("no innings rows after the header")
	}
	return out, nil
}

// LoadFile decodes the innings file at path into a Dataset
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDataset, "open innings file %s", path)
	}
	defer f.Close()

	rows, err := Decode(f)
	if err != nil {
		return nil, perr.Wrapf(err, perr.CodeOf(err), "decode %s", path)
	}
	return New(path, rows), nil
}
