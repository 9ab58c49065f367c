package intent

import (
	"strings"
	"testing"
	"time"

	"scorebook/internal/core/innings"
)

func dataset(rows ...innings.Innings) *innings.Dataset { return innings.New("test", rows) }

func inn(runs int, opp string, year int) innings.Innings {
	return innings.Innings{Runs: runs, Opponent: opp, Match: "ODI", Date: time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)}
}

func worked() *innings.Dataset {
	return dataset(inn(45, "A", 2010), inn(112, "B", 2011), inn(70, "A", 2011))
}

func TestAnswerWorkedExample(t *testing.T) {
	t.Parallel()
	ds := worked()

	cases := []struct {
		q    string
		want string
	}{
		{"What are the total runs?", "Total runs scored: 227"},
		{"sum of runs please", "Total runs scored: 227"},
		{"What is the AVERAGE RUNS?", "Average runs per match: 75.67"},
		{"mean runs", "Average runs per match: 75.67"},
		{"highest score ever", "Highest score: 112"},
		{"maximum runs in an innings", "Highest score: 112"},
		{"How many centuries?", "Number of centuries: 1"},
		{"how many fifties", "Number of fifties: 1"},
		{"total matches played", "Total matches played: 3"},
		{"Which opponent did he score the most runs against?", "Most runs against A: 115"},
		{"Which year had the most runs?", "Most runs in 2011: 182"},
	}
	for _, c := range cases {
		t.Run(c.q, func(t *testing.T) {
			if got := Answer(c.q, ds); got != c.want {
				t.Fatalf("Answer(%q) = %q, want %q", c.q, got, c.want)
			}
		})
	}
}

func TestFirstMatchWins(t *testing.T) {
	t.Parallel()
	ds := worked()

	cases := []struct {
		q    string
		want Name
	}{
		{"total runs and average runs", TotalRuns},
		{"average runs and highest score", AverageRuns},
		{"centuries and fifties", Centuries},
		// "total runs" is a substring, so rule 1 beats total matches
		{"total runs across all matches", TotalRuns},
		{"opponent with most runs in a year", TopOpponent},
		{"fifties in total matches", Fifties},
	}
	for _, c := range cases {
		r, ok := Match(c.q)
		if !ok || r.Name != c.want {
			t.Fatalf("Match(%q) = %v,%v want %v", c.q, r.Name, ok, c.want)
		}
		if Answer(c.q, ds) != r.Answer(ds) {
			t.Fatalf("Answer and Match disagree for %q", c.q)
		}
	}
}

func TestMilestoneBoundaries(t *testing.T) {
	t.Parallel()
	ds := dataset(inn(100, "A", 2010), inn(50, "A", 2010), inn(99, "B", 2011), inn(49, "B", 2011))

	if got := Answer("centuries", ds); got != "Number of centuries: 1" {
		t.Fatalf("centuries: %q", got)
	}
	if got := Answer("fifties", ds); got != "Number of fifties: 2" {
		t.Fatalf("fifties: %q", got)
	}
}

func TestFallback(t *testing.T) {
	t.Parallel()
	ds := worked()

	for _, q := range []string{
		"",
		"who is the captain?",
		"totalruns",   // no space
		"most runs",   // needs opponent or year
		"matches",     // needs total
		"total",       // needs matches
		"hundreds",    // no synonyms
		"TOTAL  RUNS", // no whitespace normalization
	} {
		if got := Answer(q, ds); got != Fallback {
			t.Fatalf("Answer(%q) = %q, want fallback", q, got)
		}
		if _, ok := Match(q); ok {
			t.Fatalf("Match(%q) should not fire", q)
		}
	}
}

func TestIdempotent(t *testing.T) {
	t.Parallel()
	ds := worked()

	q := "Which year had the most runs?"
	first := Answer(q, ds)
	for i := 0; i < 5; i++ {
		if got := Answer(q, ds); got != first {
			t.Fatalf("call %d = %q, want %q", i, got, first)
		}
	}
}

func TestEmptyDatasetNeverEmptyAnswer(t *testing.T) {
	t.Parallel()
	ds := dataset()

	for _, r := range Rules() {
		q := strings.Join(append(append([]string{}, r.AllOf...), r.AnyOf...), " ")
		got := Answer(q, ds)
		if got == "" {
			t.Fatalf("rule %s produced an empty answer", r.Name)
		}
	}
	if got := Answer("average runs", ds); got != "Average runs per match: 0.00" {
		t.Fatalf("average on empty = %q", got)
	}
	if got := Answer("opponent most runs", ds); got != "No innings recorded." {
		t.Fatalf("top opponent on empty = %q", got)
	}
}

func TestRulesOrderAndDescribe(t *testing.T) {
	t.Parallel()

	want := []Name{TotalRuns, AverageRuns, HighestScore, Centuries, Fifties, TotalMatches, TopOpponent, TopYear}
	got := Rules()
	if len(got) != len(want) {
		t.Fatalf("len(Rules) = %d", len(got))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Fatalf("rule %d = %s, want %s", i, got[i].Name, want[i])
		}
	}
	if d := got[0].Describe(); d != `"total runs" or "sum of runs"` {
		t.Fatalf("Describe any = %s", d)
	}
	if d := got[6].Describe(); d != `"opponent" and "most runs"` {
		t.Fatalf("Describe all = %s", d)
	}

	got[0].Name = "mutated"
	if Rules()[0].Name != TotalRuns {
		t.Fatalf("Rules() must return a copy")
	}
}

func TestNormalizeUnicode(t *testing.T) {
	t.Parallel()

	if got := Normalize("  HÖCHSTE Total RUNS? "); got != "  höchste total runs? " {
		t.Fatalf("Normalize = %q", got)
	}
}
