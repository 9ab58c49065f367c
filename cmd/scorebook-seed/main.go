// Command scorebook-seed loads the innings CSV into a postgres or clickhouse table
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"scorebook/internal/core/innings"
	"scorebook/internal/platform/config"
	"scorebook/internal/platform/logger"
	"scorebook/internal/platform/store"
	"scorebook/internal/services/dataset"
)

func main() {
	logger.Init(logger.FromEnv())
	l := logger.Named("seed")

	env := dataset.ConfigFromEnv(config.New())
	fs := flag.NewFlagSet("scorebook-seed", flag.ContinueOnError)
	target := fs.String("target", "", "pg or ch")
	csvPath := fs.String("csv", env.CSVPath, "innings CSV file")
	table := fs.String("table", env.Table, "destination table, created if missing and truncated")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if *target != dataset.KindPG && *target != dataset.KindCH {
		fmt.Fprintln(os.Stderr, "error: --target must be pg or ch")
		fs.PrintDefaults()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds, err := innings.LoadFile(*csvPath)
	if err != nil {
		l.Fatal().Err(err).Str("csv", *csvPath).Msg("load csv")
	}

	st, err := store.Open(ctx, store.FromEnv(config.New(), "scorebook-seed", *target), store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() { _ = st.Close(context.Background()) }()
	if err := st.Guard(ctx); err != nil {
		_ = st.Close(context.Background())
		l.Fatal().Err(err).Msg("store not ready")
	}

	start := time.Now()
	switch *target {
	case dataset.KindPG:
		err = dataset.SeedPostgres(ctx, st.PG, *table, ds.Rows())
	case dataset.KindCH:
		err = dataset.SeedClickHouse(ctx, st.CH, *table, ds.Rows())
	}
	if err != nil {
		_ = st.Close(context.Background())
		l.Fatal().Err(err).Str("target", *target).Str("table", *table).Msg("seed failed")
	}
	l.Info().Str("target", *target).Str("table", *table).Int("rows", ds.Len()).
		Dur("elapsed", time.Since(start)).Msg("seeded")
}
