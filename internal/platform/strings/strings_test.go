package strings

import (
	"testing"

	kit "scorebook/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	if got := IfEmpty(nil, []string{"GET"}); len(got) != 1 || got[0] != "GET" {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	if got := IfEmpty([]int{1, 2}, []int{9}); len(got) != 2 {
		t.Fatalf("IfEmpty(non-empty) = %v", got)
	}
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{"charts": "/charts", " /qa/ ": "/qa", "/meta": "/meta"}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	kit.MustPanic(t, func() { MustPrefix(" / ") })
}

func TestFilename(t *testing.T) {
	cases := map[string]string{
		"Total Runs by Year":        "total_runs_by_year",
		"Runs per Match Over Time!": "runs_per_match_over_time",
		"  --T20I--  ":              "t20i",
		"":                          "",
	}
	for in, want := range cases {
		if got := Filename(in); got != want {
			t.Fatalf("Filename(%q) = %q, want %q", in, got, want)
		}
	}
}
