package innings

import (
	"cmp"
	"slices"
	"time"
)

// Bucket is the summed runs for one group key
type Bucket[K cmp.Ordered] struct {
	Key  K
	Runs int
}

// Point is one innings on the runs-over-time line
type Point struct {
	Date time.Time
	Runs int
}

// TotalRuns is the sum of runs over all innings
func (d *Dataset) TotalRuns() int {
	n := 0
	for _, in := range d.rows {
		n += in.Runs
	}
	return n
}

// AverageRuns is the arithmetic mean of runs; 0 for an empty dataset
func (d *Dataset) AverageRuns() float64 {
	if len(d.rows) == 0 {
		return 0
	}
	return float64(d.TotalRuns()) / float64(len(d.rows))
}

// HighestScore is the maximum runs in a single innings; 0 for an empty dataset
func (d *Dataset) HighestScore() int {
	hi := 0
	for _, in := range d.rows {
		hi = max(hi, in.Runs)
	}
	return hi
}

// Centuries counts innings with runs >= 100
func (d *Dataset) Centuries() int { return d.count(Innings.IsCentury) }

// Fifties counts innings with 50 <= runs < 100
func (d *Dataset) Fifties() int { return d.count(Innings.IsFifty) }

// Matches is the number of innings
func (d *Dataset) Matches() int { return len(d.rows) }

func (d *Dataset) count(pred func(Innings) bool) int {
	n := 0
	for _, in := range d.rows {
		if pred(in) {
			n++
		}
	}
	return n
}

// groupSum sums runs by key and returns buckets in ascending key order
func groupSum[K cmp.Ordered](rows []Innings, key func(Innings) K) []Bucket[K] {
	sums := make(map[K]int)
	for _, in := range rows {
		sums[key(in)] += in.Runs
	}
	out := make([]Bucket[K], 0, len(sums))
	for k, v := range sums {
		out = append(out, Bucket[K]{Key: k, Runs: v})
	}
	slices.SortFunc(out, func(a, b Bucket[K]) int { return cmp.Compare(a.Key, b.Key) })
	return out
}

// top picks the bucket with the most runs. buckets must be in ascending key
// order so that ties go to the smallest key.
func top[K cmp.Ordered](buckets []Bucket[K]) (Bucket[K], bool) {
	if len(buckets) == 0 {
		return Bucket[K]{}, false
	}
	best := buckets[0]
	for _, b := range buckets[1:] {
		if b.Runs > best.Runs {
			best = b
		}
	}
	return best, true
}

func opponentOf(in Innings) string { return in.Opponent }
func matchOf(in Innings) string    { return in.Match }

// RunsByOpponent sums runs per opponent, most runs first; equal sums by name
func (d *Dataset) RunsByOpponent() []Bucket[string] {
	out := groupSum(d.rows, opponentOf)
	slices.SortStableFunc(out, func(a, b Bucket[string]) int { return cmp.Compare(b.Runs, a.Runs) })
	return out
}

// RunsByMatch sums runs per match format in ascending format order
func (d *Dataset) RunsByMatch() []Bucket[string] { return groupSum(d.rows, matchOf) }

// RunsByYear sums runs per calendar year in ascending year order
func (d *Dataset) RunsByYear() []Bucket[int] { return groupSum(d.rows, Innings.Year) }

// TopOpponent is the opponent with the largest summed runs. Ties go to the
// lexicographically smallest name. ok is false for an empty dataset.
func (d *Dataset) TopOpponent() (Bucket[string], bool) { return top(groupSum(d.rows, opponentOf)) }

// TopYear is the year with the largest summed runs. Ties go to the earliest year.
func (d *Dataset) TopYear() (Bucket[int], bool) { return top(groupSum(d.rows, Innings.Year)) }

// RunsOverTime lists every innings by date ascending; same-day innings keep source order
func (d *Dataset) RunsOverTime() []Point {
	out := make([]Point, len(d.rows))
	for i, in := range d.rows {
		out[i] = Point{Date: in.Date, Runs: in.Runs}
	}
	slices.SortStableFunc(out, func(a, b Point) int { return a.Date.Compare(b.Date) })
	return out
}

// Summary is the overview strip
type Summary struct {
	Matches      int
	TotalRuns    int
	AverageRuns  float64
	HighestScore int
	Centuries    int
	Fifties      int
}

// Summarize computes the overview strip in one pass
func (d *Dataset) Summarize() Summary {
	s := Summary{Matches: len(d.rows)}
	for _, in := range d.rows {
		s.TotalRuns += in.Runs
		s.HighestScore = max(s.HighestScore, in.Runs)
		if in.IsCentury() {
			s.Centuries++
		} else if in.IsFifty() {
			s.Fifties++
		}
	}
	if s.Matches > 0 {
		s.AverageRuns = float64(s.TotalRuns) / float64(s.Matches)
	}
	return s
}
