package dataset

import (
	"scorebook/internal/core/innings"
	"scorebook/internal/platform/config"
	perr "scorebook/internal/platform/errors"
	"scorebook/internal/platform/store"
)

// Source kinds accepted by SCOREBOOK_DATA_SOURCE
const (
	KindCSV = "csv"
	KindPG  = "pg"
	KindCH  = "ch"
)

// Config selects and locates the innings source
type Config struct {
	Kind    string
	CSVPath string
	Table   string
}

// ConfigFromEnv reads SCOREBOOK_DATA_SOURCE, SCOREBOOK_DATA_CSV_PATH and SCOREBOOK_DATA_TABLE
func ConfigFromEnv(root config.Conf) Config {
	c := root.Prefix("SCOREBOOK_DATA_")
	return Config{
		Kind:    c.MayEnum("SOURCE", KindCSV, KindCSV, KindPG, KindCH),
		CSVPath: c.MayString("CSV_PATH", innings.DefaultPath),
		Table:   c.MayString("TABLE", "innings"),
	}
}

// NewSource builds the Source cfg names; st must carry the matching backend for pg and ch
func NewSource(cfg Config, st *store.Store) (Source, error) {
	switch cfg.Kind {
	case KindCSV, "":
		return CSV{Path: cfg.CSVPath}, nil
	case KindPG:
		if st == nil || st.PG == nil {
			return nil, perr.Unavailablef("data source pg: postgres is not configured")
		}
		return Postgres{DB: st.PG, Table: cfg.Table}, nil
	case KindCH:
		if st == nil || st.CH == nil {
			return nil, perr.Unavailablef("data source ch: clickhouse is not configured")
		}
		return ClickHouse{DB: st.CH, Table: cfg.Table}, nil
	}
	return nil, perr.InvalidArgf("unknown data source %q", cfg.Kind)
}
