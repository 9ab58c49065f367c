package dataset

import (
	"context"
	"fmt"

	"scorebook/internal/core/innings"
	perr "scorebook/internal/platform/errors"
	"scorebook/internal/platform/store"
)

const pgDDL = `CREATE TABLE IF NOT EXISTS %s (
	match_no   integer NOT NULL DEFAULT 0,
	runs       integer NOT NULL CHECK (runs >= 0),
	opponent   text    NOT NULL,
	ground     text    NOT NULL DEFAULT '',
	match_date date    NOT NULL,
	match_type text    NOT NULL,
	team_total integer NOT NULL DEFAULT 0
)`

const chDDL = `CREATE TABLE IF NOT EXISTS %s (
	match_no   Int32,
	runs       Int32,
	opponent   String,
	ground     String,
	match_date Date,
	match_type String,
	team_total Int32
) ENGINE = MergeTree ORDER BY (match_no, match_date)`

func values(in innings.Innings) []any {
	return []any{int32(in.MatchNo), int32(in.Runs), in.Opponent, in.Ground, in.Date, in.Match, int32(in.Total)}
}

// SeedPostgres creates table if needed and replaces its contents with rows in one transaction
func SeedPostgres(ctx context.Context, db store.TxRunner, table string, rows []innings.Innings) error {
	table, err := store.Ident(table)
	if err != nil {
		return err
	}
	insert := fmt.Sprintf(`INSERT INTO %s (match_no, runs, opponent, ground, match_date, match_type, team_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`, table)

	err = db.Tx(ctx, func(q store.RowQuerier) error {
		if _, err := q.Exec(ctx, fmt.Sprintf(pgDDL, table)); err != nil {
			return err
		}
		if _, err := q.Exec(ctx, "TRUNCATE "+table); err != nil {
			return err
		}
		for _, in := range rows {
			if _, err := q.Exec(ctx, insert, values(in)...); err != nil {
				return err
			}
		}
		return nil
	})
	return perr.FromPostgres(err, "seed postgres")
}

// SeedClickHouse creates table if needed, truncates it and sends rows as one batch
func SeedClickHouse(ctx context.Context, db store.Clickhouse, table string, rows []innings.Innings) error {
	table, err := store.Ident(table)
	if err != nil {
		return err
	}
	if err := db.Exec(ctx, fmt.Sprintf(chDDL, table)); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "create clickhouse table")
	}
	if err := db.Exec(ctx, "TRUNCATE TABLE "+table); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "truncate clickhouse table")
	}
	batch := make([][]any, len(rows))
	for i, in := range rows {
		batch[i] = values(in)
	}
	return perr.WrapIf(db.Insert(ctx, table, batch), perr.ErrorCodeDB, "insert into clickhouse")
}
