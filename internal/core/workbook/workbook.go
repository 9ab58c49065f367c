// Package workbook writes the innings table and its summary as an XLSX file
package workbook

import (
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"scorebook/internal/core/innings"
	perr "scorebook/internal/platform/errors"
)

// Sheet names
const (
	InningsSheet = "Innings"
	SummarySheet = "Summary"
)

// ContentType is the XLSX MIME type
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []string{"Match No", "Date", "Year", "Opponent", "Ground", "Match", "Runs", "Team Total"}

// Build writes rows to the Innings sheet and s to the Summary sheet.
// rows may be a filtered subset; the summary is whatever the caller computed.
func Build(rows []innings.Innings, s innings.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", InningsSheet); err != nil {
		return nil, wrap(err)
	}
	if err := writeInnings(f, rows); err != nil {
		return nil, wrap(err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return nil, wrap(err)
	}
	if err := writeSummary(f, s); err != nil {
		return nil, wrap(err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, wrap(err)
	}
	return buf.Bytes(), nil
}

func wrap(err error) error { return perr.Wrap(err, perr.ErrorCodeRender, "build workbook") }

func writeInnings(f *excelize.File, rows []innings.Innings) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(InningsSheet, cell, h); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(InningsSheet, "A1", last, bold); err != nil {
		return err
	}

	for r, in := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		vals := []any{in.MatchNo, in.Date.Format(time.DateOnly), in.Year(), in.Opponent, in.Ground, in.Match, in.Runs, in.Total}
		if err := f.SetSheetRow(InningsSheet, cell, &vals); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(InningsSheet, "A", "H", 14); err != nil {
		return err
	}
	return f.SetPanes(InningsSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func writeSummary(f *excelize.File, s innings.Summary) error {
	kpis := [][]any{
		{"Metric", "Value"},
		{"Matches", s.Matches},
		{"Total Runs", s.TotalRuns},
		{"Average Runs", round2(s.AverageRuns)},
		{"Highest Score", s.HighestScore},
		{"Centuries", s.Centuries},
		{"Fifties", s.Fifties},
	}
	for i := range kpis {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &kpis[i]); err != nil {
			return err
		}
	}
	return f.SetColWidth(SummarySheet, "A", "A", 18)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
