// Package innings holds the innings-by-innings record, the immutable dataset built
// from it, and the aggregates the dashboard and the Q&A matcher read.
package innings

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the source date format, e.g. 18Aug2008. Single-digit days are accepted.
const DateLayout = "2Jan2006"

// Century and Fifty are the run thresholds for milestone innings
const (
	Century = 100
	Fifty   = 50
)

// Innings is one match appearance
type Innings struct {
	MatchNo  int
	Runs     int
	Opponent string
	Ground   string
	Date     time.Time
	Match    string // format label: ODI, T20I, Test
	Total    int    // team total, 0 when unknown
}

// Year is derived from Date and never stored
func (in Innings) Year() int { return in.Date.Year() }

// IsCentury reports runs >= 100
func (in Innings) IsCentury() bool { return in.Runs >= Century }

// IsFifty reports 50 <= runs < 100; a century is never also a fifty
func (in Innings) IsFifty() bool { return in.Runs >= Fifty && in.Runs < Century }

// Dataset is an immutable, ordered collection of innings.
// Build it once with New and share the pointer; nothing mutates it afterwards.
type Dataset struct {
	id       uuid.UUID
	source   string
	loadedAt time.Time
	rows     []Innings
}

// New copies rows into a fresh Dataset tagged with source
func New(source string, rows []Innings) *Dataset {
	cp := make([]Innings, len(rows))
	copy(cp, rows)
	return &Dataset{
		id:       uuid.New(),
		source:   source,
		loadedAt: time.Now().UTC(),
		rows:     cp,
	}
}

// ID identifies this snapshot; a reload yields a new ID
func (d *Dataset) ID() uuid.UUID { return d.id }

// Source describes where the rows came from (a file path or a table)
func (d *Dataset) Source() string { return d.source }

// LoadedAt is when the snapshot was built
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Len is the number of innings
func (d *Dataset) Len() int { return len(d.rows) }

// Rows returns a copy of the innings in source order
func (d *Dataset) Rows() []Innings {
	out := make([]Innings, len(d.rows))
	copy(out, d.rows)
	return out
}

// Filter narrows the table view. Zero fields match everything.
type Filter struct {
	Opponent string
	Match    string
	Year     int
}

func (f Filter) keep(in Innings) bool {
	if f.Opponent != "" && in.Opponent != f.Opponent {
		return false
	}
	if f.Match != "" && in.Match != f.Match {
		return false
	}
	if f.Year != 0 && in.Year() != f.Year {
		return false
	}
	return true
}

// Select returns the innings matching f, in source order
func (d *Dataset) Select(f Filter) []Innings {
	out := make([]Innings, 0, len(d.rows))
	for _, in := range d.rows {
		if f.keep(in) {
			out = append(out, in)
		}
	}
	return out
}
