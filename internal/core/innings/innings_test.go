package innings

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

// worked example: 45 vs A (2010), 112 vs B (2011), 70 vs A (2011)
func sample() *Dataset {
	return New("test", []Innings{
		{MatchNo: 1, Runs: 45, Opponent: "A", Date: day(2010, time.August, 18), Match: "ODI"},
		{MatchNo: 2, Runs: 112, Opponent: "B", Date: day(2011, time.December, 24), Match: "ODI"},
		{MatchNo: 3, Runs: 70, Opponent: "A", Date: day(2011, time.February, 28), Match: "T20I"},
	})
}

func TestAggregates(t *testing.T) {
	t.Parallel()
	ds := sample()

	if got := ds.TotalRuns(); got != 227 {
		t.Fatalf("TotalRuns = %d, want 227", got)
	}
	if got := ds.AverageRuns(); got < 75.666 || got > 75.667 {
		t.Fatalf("AverageRuns = %v, want ~75.67", got)
	}
	if got := ds.HighestScore(); got != 112 {
		t.Fatalf("HighestScore = %d, want 112", got)
	}
	if ds.Centuries() != 1 || ds.Fifties() != 1 || ds.Matches() != 3 {
		t.Fatalf("centuries/fifties/matches = %d/%d/%d", ds.Centuries(), ds.Fifties(), ds.Matches())
	}

	opp, ok := ds.TopOpponent()
	if !ok || opp != (Bucket[string]{Key: "A", Runs: 115}) {
		t.Fatalf("TopOpponent = %+v,%v", opp, ok)
	}
	yr, ok := ds.TopYear()
	if !ok || yr != (Bucket[int]{Key: 2011, Runs: 182}) {
		t.Fatalf("TopYear = %+v,%v", yr, ok)
	}

	want := Summary{Matches: 3, TotalRuns: 227, AverageRuns: ds.AverageRuns(), HighestScore: 112, Centuries: 1, Fifties: 1}
	if diff := cmp.Diff(want, ds.Summarize()); diff != "" {
		t.Fatalf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestMilestoneBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		runs           int
		century, fifty bool
	}{
		{49, false, false},
		{50, false, true},
		{99, false, true},
		{100, true, false},
		{183, true, false},
	}
	for _, c := range cases {
		in := Innings{Runs: c.runs}
		if in.IsCentury() != c.century || in.IsFifty() != c.fifty {
			t.Fatalf("runs=%d: century=%v fifty=%v", c.runs, in.IsCentury(), in.IsFifty())
		}
	}
}

func TestEmptyDataset(t *testing.T) {
	t.Parallel()
	ds := New("empty", nil)

	if ds.AverageRuns() != 0 || ds.HighestScore() != 0 || ds.TotalRuns() != 0 {
		t.Fatalf("empty aggregates should be zero")
	}
	if _, ok := ds.TopOpponent(); ok {
		t.Fatalf("TopOpponent on empty should be !ok")
	}
	if _, ok := ds.TopYear(); ok {
		t.Fatalf("TopYear on empty should be !ok")
	}
	if len(ds.RunsByOpponent()) != 0 || len(ds.RunsOverTime()) != 0 {
		t.Fatalf("empty series should be empty")
	}
}

func TestTieBreaks(t *testing.T) {
	t.Parallel()
	ds := New("ties", []Innings{
		{Runs: 60, Opponent: "Sri Lanka", Date: day(2013, time.May, 1)},
		{Runs: 60, Opponent: "Australia", Date: day(2012, time.May, 1)},
		{Runs: 10, Opponent: "England", Date: day(2014, time.May, 1)},
	})
	opp, _ := ds.TopOpponent()
	if opp.Key != "Australia" {
		t.Fatalf("tie should go to smallest name, got %q", opp.Key)
	}
	yr, _ := ds.TopYear()
	if yr.Key != 2012 {
		t.Fatalf("tie should go to earliest year, got %d", yr.Key)
	}

	want := []Bucket[string]{{"Australia", 60}, {"Sri Lanka", 60}, {"England", 10}}
	if diff := cmp.Diff(want, ds.RunsByOpponent()); diff != "" {
		t.Fatalf("RunsByOpponent mismatch (-want +got):\n%s", diff)
	}
}

func TestSeries(t *testing.T) {
	t.Parallel()
	ds := sample()

	if diff := cmp.Diff([]Bucket[string]{{"ODI", 157}, {"T20I", 70}}, ds.RunsByMatch()); diff != "" {
		t.Fatalf("RunsByMatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Bucket[int]{{2010, 45}, {2011, 182}}, ds.RunsByYear()); diff != "" {
		t.Fatalf("RunsByYear (-want +got):\n%s", diff)
	}
	wantLine := []Point{
		{day(2010, time.August, 18), 45},
		{day(2011, time.February, 28), 70},
		{day(2011, time.December, 24), 112},
	}
	if diff := cmp.Diff(wantLine, ds.RunsOverTime()); diff != "" {
		t.Fatalf("RunsOverTime (-want +got):\n%s", diff)
	}
}

func TestSelectAndImmutability(t *testing.T) {
	t.Parallel()
	ds := sample()

	got := ds.Select(Filter{Opponent: "A", Year: 2011})
	if len(got) != 1 || got[0].Runs != 70 {
		t.Fatalf("Select = %+v", got)
	}
	if n := len(ds.Select(Filter{Match: "ODI"})); n != 2 {
		t.Fatalf("Select ODI = %d rows, want 2", n)
	}
	if n := len(ds.Select(Filter{})); n != 3 {
		t.Fatalf("empty filter should keep all rows, got %d", n)
	}

	rows := ds.Rows()
	rows[0].Runs = 999
	if ds.TotalRuns() != 227 {
		t.Fatalf("mutating Rows() copy leaked into the dataset")
	}
	if ds.ID() == New("test", nil).ID() {
		t.Fatalf("each dataset should get its own id")
	}
}
