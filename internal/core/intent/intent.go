// Package intent answers free-text questions about an innings dataset.
//
// A question is lowercased and tested against an ordered list of rules. The first
// rule whose predicate holds produces the answer; if none holds, Fallback is returned.
// Matching is plain substring containment: no trimming, stemming or punctuation handling.
package intent

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"scorebook/internal/core/innings"
)

// Fallback is the answer when no rule matches
const Fallback = "Sorry, I can answer questions about total runs, average runs, highest score, " +
	"centuries, fifties, total matches, most runs against an opponent, or most runs in a year. " +
	"Please rephrase your question."

// Name identifies a rule
type Name string

// Rule names in priority order
const (
	TotalRuns    Name = "total_runs"
	AverageRuns  Name = "average_runs"
	HighestScore Name = "highest_score"
	Centuries    Name = "centuries"
	Fifties      Name = "fifties"
	TotalMatches Name = "total_matches"
	TopOpponent  Name = "top_opponent"
	TopYear      Name = "top_year"
)

// Rule is one (predicate, handler) pair.
// AnyOf holds alternative phrases; AllOf holds phrases that must all appear.
type Rule struct {
	Name   Name
	AnyOf  []string
	AllOf  []string
	answer func(ds *innings.Dataset) string
}

// Matches reports whether the lowercased question q satisfies the rule
func (r Rule) Matches(q string) bool {
	for _, p := range r.AllOf {
		if !strings.Contains(q, p) {
			return false
		}
	}
	if len(r.AnyOf) == 0 {
		return len(r.AllOf) > 0
	}
	for _, p := range r.AnyOf {
		if strings.Contains(q, p) {
			return true
		}
	}
	return false
}

// Answer renders the rule's answer for ds
func (r Rule) Answer(ds *innings.Dataset) string { return r.answer(ds) }

// Describe returns the trigger phrases in human form, e.g. `"opponent" and "most runs"`
func (r Rule) Describe() string {
	quote := func(ps []string) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = fmt.Sprintf("%q", p)
		}
		return out
	}
	if len(r.AllOf) > 0 {
		return strings.Join(quote(r.AllOf), " and ")
	}
	return strings.Join(quote(r.AnyOf), " or ")
}

const noInnings = "No innings recorded."

var rules = []Rule{
	{
		Name:  TotalRuns,
		AnyOf: []string{"total runs", "sum of runs"},
		answer: func(ds *innings.Dataset) string {
			return fmt.Sprintf("Total runs scored: %d", ds.TotalRuns())
		},
	},
	{
		Name:  AverageRuns,
		AnyOf: []string{"average runs", "mean runs"},
		answer: func(ds *innings.Dataset) string {
			return fmt.Sprintf("Average runs per match: %.2f", ds.AverageRuns())
		},
	},
	{
		Name:  HighestScore,
		AnyOf: []string{"highest score", "maximum runs"},
		answer: func(ds *innings.Dataset) string {
			return fmt.Sprintf("Highest score: %d", ds.HighestScore())
		},
	},
	{
		Name:  Centuries,
		AnyOf: []string{"centuries"},
		answer: func(ds *innings.Dataset) string {
			return fmt.Sprintf("Number of centuries: %d", ds.Centuries())
		},
	},
	{
		Name:  Fifties,
		AnyOf: []string{"fifties"},
		answer: func(ds *innings.Dataset) string {
			return fmt.Sprintf("Number of fifties: %d", ds.Fifties())
		},
	},
	{
		Name:  TotalMatches,
		AllOf: []string{"matches", "total"},
		answer: func(ds *innings.Dataset) string {
			return fmt.Sprintf("Total matches played: %d", ds.Matches())
		},
	},
	{
		Name:  TopOpponent,
		AllOf: []string{"opponent", "most runs"},
		answer: func(ds *innings.Dataset) string {
			b, ok := ds.TopOpponent()
			if !ok {
				return noInnings
			}
			return fmt.Sprintf("Most runs against %s: %d", b.Key, b.Runs)
		},
	},
	{
		Name:  TopYear,
		AllOf: []string{"year", "most runs"},
		answer: func(ds *innings.Dataset) string {
			b, ok := ds.TopYear()
			if !ok {
				return noInnings
			}
			return fmt.Sprintf("Most runs in %d: %d", b.Key, b.Runs)
		},
	},
}

// Rules returns the rules in priority order
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Normalize lowercases q. Nothing else is touched.
func Normalize(q string) string {
	return cases.Lower(language.Und).String(q)
}

// Match returns the first rule that fires for question, if any
func Match(question string) (Rule, bool) {
	q := Normalize(question)
	for _, r := range rules {
		if r.Matches(q) {
			return r, true
		}
	}
	return Rule{}, false
}

// Answer returns the answer to question over ds. It never fails and never returns "".
func Answer(question string, ds *innings.Dataset) string {
	r, ok := Match(question)
	if !ok {
		return Fallback
	}
	return r.Answer(ds)
}
