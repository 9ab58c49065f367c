// Package service serves the innings table and its workbook export
package service

import (
	"context"
	"net/url"
	"strconv"

	"scorebook/internal/core/innings"
	"scorebook/internal/core/workbook"
	"scorebook/internal/platform/metrics"
	pstrings "scorebook/internal/platform/strings"
	"scorebook/internal/services/api/innings/domain"
	"scorebook/internal/services/dataset"
)

// DateFormat is the table's date column layout
const DateFormat = "2006-01-02"

// Service implements domain.ServicePort
type Service struct {
	data    dataset.Provider
	metrics *metrics.Metrics
}

// New returns a Service; m may be nil
func New(data dataset.Provider, m *metrics.Metrics) *Service {
	return &Service{data: data, metrics: m}
}

func filter(q domain.Query) innings.Filter {
	return innings.Filter{Opponent: q.Opponent, Match: q.Match, Year: q.Year}
}

// version combines the dataset id with the canonical query so filtered views revalidate separately
func version(ds *innings.Dataset, q domain.Query, suffix string) string {
	v := url.Values{}
	if q.Opponent != "" {
		v.Set("opponent", q.Opponent)
	}
	if q.Match != "" {
		v.Set("match", q.Match)
	}
	if q.Year != 0 {
		v.Set("year", strconv.Itoa(q.Year))
	}
	tag := ds.ID().String() + suffix
	if enc := v.Encode(); enc != "" {
		tag += "?" + enc
	}
	return tag
}

// ToRow converts an innings to its table form
func ToRow(in innings.Innings) domain.Row {
	return domain.Row{
		MatchNo:  in.MatchNo,
		Runs:     in.Runs,
		Opponent: in.Opponent,
		Ground:   in.Ground,
		Date:     in.Date.Format(DateFormat),
		Match:    in.Match,
		Total:    in.Total,
		Year:     in.Year(),
	}
}

// List returns the matching innings in source order
func (s *Service) List(ctx context.Context, q domain.Query) ([]domain.Row, string, error) {
	ds, err := s.data.Dataset(ctx)
	if err != nil {
		return nil, "", err
	}
	sel := ds.Select(filter(q))
	out := make([]domain.Row, len(sel))
	for i, in := range sel {
		out[i] = ToRow(in)
	}
	return out, version(ds, q, ""), nil
}

// Export renders the matching innings plus a summary sheet as xlsx
func (s *Service) Export(ctx context.Context, q domain.Query) (domain.Workbook, string, error) {
	ds, err := s.data.Dataset(ctx)
	if err != nil {
		return domain.Workbook{}, "", err
	}
	sel := ds.Select(filter(q))
	b, err := workbook.Build(sel, innings.New(ds.Source(), sel).Summarize())
	if err != nil {
		return domain.Workbook{}, "", err
	}
	s.metrics.ObserveRender("workbook", "xlsx")
	return domain.Workbook{Filename: exportName(q), Bytes: b}, version(ds, q, ".xlsx"), nil
}

// exportName is "innings.xlsx", or e.g. "innings_australia_odi_2011.xlsx" when filtered
func exportName(q domain.Query) string {
	label := "innings " + q.Opponent + " " + q.Match
	if q.Year != 0 {
		label += " " + strconv.Itoa(q.Year)
	}
	return pstrings.Filename(label) + ".xlsx"
}
