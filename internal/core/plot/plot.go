// Package plot turns dataset series into chart specs and renders them as SVG or PNG
package plot

import (
	"strconv"
	"time"

	"scorebook/internal/core/innings"
	perr "scorebook/internal/platform/errors"
)

// Kind is the chart shape
type Kind string

// Chart kinds
const (
	Line Kind = "line"
	Bar  Kind = "bar"
	Pie  Kind = "pie"
)

// Name identifies one dashboard chart
type Name string

// Dashboard charts in display order
const (
	RunsOverTime   Name = "runs_over_time"
	RunsByOpponent Name = "runs_by_opponent"
	RunsByMatch    Name = "runs_by_match"
	RunsByYear     Name = "runs_by_year"
)

// Point is one labelled value; At is set for time series only
type Point struct {
	Label string    `json:"label"`
	Value float64   `json:"value"`
	At    time.Time `json:"-"`
}

// Spec is everything a renderer needs to draw one chart
type Spec struct {
	Name   Name    `json:"name"`
	Kind   Kind    `json:"kind"`
	Title  string  `json:"title"`
	XLabel string  `json:"x_label,omitempty"`
	YLabel string  `json:"y_label,omitempty"`
	Points []Point `json:"points"`
}

type builder struct {
	name   Name
	kind   Kind
	title  string
	xLabel string
	yLabel string
	points func(*innings.Dataset) []Point
}

var builders = []builder{
	{RunsOverTime, Line, "Runs per Match Over Time", "Date", "Runs", overTime},
	{RunsByOpponent, Bar, "Total Runs by Opponent", "Opponent", "Runs", byOpponent},
	{RunsByMatch, Pie, "Runs Distribution by Match Type", "", "", byMatch},
	{RunsByYear, Bar, "Total Runs by Year", "Year", "Runs", byYear},
}

// Names lists the dashboard charts in display order
func Names() []Name {
	out := make([]Name, len(builders))
	for i, b := range builders {
		out[i] = b.name
	}
	return out
}

// Build computes one chart from ds; unknown names are NotFound
func Build(name Name, ds *innings.Dataset) (Spec, error) {
	for _, b := range builders {
		if b.name == name {
			return b.build(ds), nil
		}
	}
	return Spec{}, perr.NotFoundf("unknown chart %q", name)
}

// All computes every dashboard chart in display order
func All(ds *innings.Dataset) []Spec {
	out := make([]Spec, len(builders))
	for i, b := range builders {
		out[i] = b.build(ds)
	}
	return out
}

func (b builder) build(ds *innings.Dataset) Spec {
	pts := b.points(ds)
	if pts == nil {
		pts = []Point{}
	}
	return Spec{Name: b.name, Kind: b.kind, Title: b.title, XLabel: b.xLabel, YLabel: b.yLabel, Points: pts}
}

func overTime(ds *innings.Dataset) []Point {
	var out []Point
	for _, p := range ds.RunsOverTime() {
		out = append(out, Point{Label: p.Date.Format(time.DateOnly), Value: float64(p.Runs), At: p.Date})
	}
	return out
}

func byOpponent(ds *innings.Dataset) []Point { return labelled(ds.RunsByOpponent(), identity) }
func byMatch(ds *innings.Dataset) []Point    { return labelled(ds.RunsByMatch(), identity) }
func byYear(ds *innings.Dataset) []Point     { return labelled(ds.RunsByYear(), strconv.Itoa) }

func identity(s string) string { return s }

func labelled[K int | string](buckets []innings.Bucket[K], label func(K) string) []Point {
	var out []Point
	for _, b := range buckets {
		out = append(out, Point{Label: label(b.Key), Value: float64(b.Runs)})
	}
	return out
}
