// Package dataset loads the innings dataset from its configured source and caches it
// for the life of the process.
package dataset

import (
	"context"
	"fmt"
	"strings"
	"time"

	"scorebook/internal/core/innings"
	perr "scorebook/internal/platform/errors"
	"scorebook/internal/platform/store"
)

// Source yields innings rows in dataset order
type Source interface {
	// Name labels the source in logs and /meta/dataset, e.g. "csv:Sources/Source.csv"
	Name() string
	Load(ctx context.Context) ([]innings.Innings, error)
}

// CSV reads a local CSV file
type CSV struct{ Path string }

// Name implements Source
func (s CSV) Name() string { return "csv:" + s.Path }

// Load implements Source
func (s CSV) Load(ctx context.Context) ([]innings.Innings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds, err := innings.LoadFile(s.Path)
	if err != nil {
		return nil, err
	}
	return ds.Rows(), nil
}

// Columns is the table layout both database sources read and the seeder writes
var Columns = []string{"match_no", "runs", "opponent", "ground", "match_date", "match_type", "team_total"}

func selectSQL(table string) string {
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY match_no, match_date", strings.Join(Columns, ", "), table)
}

// scanRow reads one row in Columns order; integers are 32 bit in both schemas
func scanRow(r store.Row) (innings.Innings, error) {
	var (
		in                 innings.Innings
		matchNo, runs, tot int32
		date               time.Time
	)
	if err := r.Scan(&matchNo, &runs, &in.Opponent, &in.Ground, &date, &in.Match, &tot); err != nil {
		return in, err
	}
	in.MatchNo, in.Runs, in.Total = int(matchNo), int(runs), int(tot)
	in.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return in, nil
}

// checkRows applies the CSV decoder's invariants to rows that came from a table
func checkRows(table string, rows []innings.Innings) error {
	if len(rows) == 0 {
		return perr.Datasetf("table %s has no innings rows", table)
	}
	for i, in := range rows {
		if in.Runs < 0 {
			return perr.Datasetf("table %s row %d: negative runs %d", table, i+1, in.Runs)
		}
	}
	return nil
}

// Postgres reads the innings table through the store's pgx seam
type Postgres struct {
	DB    store.RowQuerier
	Table string
}

// Name implements Source
func (s Postgres) Name() string { return "pg:" + s.Table }

// Load implements Source
func (s Postgres) Load(ctx context.Context) ([]innings.Innings, error) {
	table, err := store.Ident(s.Table)
	if err != nil {
		return nil, err
	}
	rows, err := store.Many(ctx, s.DB, scanRow, selectSQL(table))
	if err != nil {
		return nil, perr.FromPostgres(err, "load innings from postgres")
	}
	return rows, checkRows(table, rows)
}

// ClickHouse reads the innings table over the native protocol
type ClickHouse struct {
	DB    store.Clickhouse
	Table string
}

// Name implements Source
func (s ClickHouse) Name() string { return "ch:" + s.Table }

// Load implements Source
func (s ClickHouse) Load(ctx context.Context) ([]innings.Innings, error) {
	table, err := store.Ident(s.Table)
	if err != nil {
		return nil, err
	}
	rows, err := store.Many(ctx, s.DB, scanRow, selectSQL(table))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "load innings from clickhouse")
	}
	return rows, checkRows(table, rows)
}
