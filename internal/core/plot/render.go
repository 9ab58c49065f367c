package plot

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	perr "scorebook/internal/platform/errors"
)

// Format is an image encoding
type Format string

// Image formats
const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormat accepts "svg" or "png" in any case
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case SVG, PNG:
		return f, nil
	}
	return "", perr.InvalidArgf("unsupported image format %q (want svg or png)", s)
}

// ContentType is the MIME type for f
func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() chart.RendererProvider {
	if f == PNG {
		return chart.PNG
	}
	return chart.SVG
}

const (
	width  = 960
	height = 480
)

var lineStyle = chart.Style{
	StrokeColor: drawing.ColorFromHex("1f77b4"),
	StrokeWidth: 2,
	DotColor:    drawing.ColorFromHex("1f77b4"),
	DotWidth:    3,
}

// Render draws s in format f. A chart without points has nothing to draw and fails with a Render error.
func Render(s Spec, f Format) ([]byte, error) {
	if len(s.Points) == 0 {
		return nil, perr.Newf(perr.ErrorCodeRender, "chart %q has no data to plot", s.Name)
	}

	var buf bytes.Buffer
	var err error
	switch s.Kind {
	case Line:
		err = renderLine(s, f, &buf)
	case Bar:
		err = renderBar(s, f, &buf)
	case Pie:
		err = renderPie(s, f, &buf)
	default:
		err = fmt.Errorf("unknown chart kind %q", s.Kind)
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeRender, "render %s as %s", s.Name, f)
	}
	return buf.Bytes(), nil
}

func renderLine(s Spec, f Format, buf *bytes.Buffer) error {
	xs := make([]time.Time, 0, len(s.Points)+1)
	ys := make([]float64, 0, len(s.Points)+1)
	for _, p := range s.Points {
		xs = append(xs, p.At)
		ys = append(ys, p.Value)
	}
	// a time series needs two distinct x values
	if xs[0].Equal(xs[len(xs)-1]) {
		xs = append(xs, xs[0].Add(24*time.Hour))
		ys = append(ys, ys[len(ys)-1])
	}

	ch := chart.Chart{
		Title:      s.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: s.XLabel, ValueFormatter: chart.TimeDateValueFormatter},
		YAxis:      chart.YAxis{Name: s.YLabel, Range: yRange(ys)},
		Series: []chart.Series{
			chart.TimeSeries{Name: s.YLabel, XValues: xs, YValues: ys, Style: lineStyle},
		},
	}
	return ch.Render(f.provider(), buf)
}

func renderBar(s Spec, f Format, buf *bytes.Buffer) error {
	bars := make([]chart.Value, len(s.Points))
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		bars[i] = chart.Value{Label: p.Label, Value: p.Value}
		ys[i] = p.Value
	}
	bc := chart.BarChart{
		Title:      s.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 48}},
		BarWidth:   barWidth(len(bars)),
		YAxis:      chart.YAxis{Name: s.YLabel, Range: yRange(ys)},
		Bars:       bars,
	}
	return bc.Render(f.provider(), buf)
}

func renderPie(s Spec, f Format, buf *bytes.Buffer) error {
	var vals []chart.Value
	for _, p := range s.Points {
		if p.Value > 0 {
			vals = append(vals, chart.Value{Label: p.Label, Value: p.Value})
		}
	}
	// an all-zero pie is drawn as one grey disc
	if len(vals) == 0 {
		vals = []chart.Value{{
			Label: "no runs",
			Value: 1,
			Style: chart.Style{FillColor: drawing.ColorFromHex("d9d9d9"), StrokeColor: drawing.ColorWhite},
		}}
	}
	pc := chart.PieChart{
		Title:  s.Title,
		Width:  height,
		Height: height,
		Values: vals,
	}
	return pc.Render(f.provider(), buf)
}

// yRange starts at zero and leaves headroom above the tallest value
func yRange(ys []float64) *chart.ContinuousRange {
	hi := 0.0
	for _, y := range ys {
		hi = max(hi, y)
	}
	if hi == 0 {
		hi = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: hi * 1.1}
}

// barWidth shrinks bars so many opponents still fit the canvas
func barWidth(n int) int {
	w := (width - 100) / max(n, 1) * 2 / 3
	return min(max(w, 8), 80)
}
