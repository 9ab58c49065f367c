package store

import (
	"time"

	"scorebook/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
	Role    string
	Version string
}

// FromEnv reads SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_* and enables the backend named by source.
// source is one of "csv", "pg", "ch"; csv enables nothing.
func FromEnv(root config.Conf, appName, source string) Config {
	pgc := root.Prefix("SERVICE_PGSQL_")
	chc := root.Prefix("SERVICE_CLICKHOUSE_")

	cfg := Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:        source == "pg",
			MaxConns:       int32(pgc.MayInt("MAX_CONNS", 4)),
			LogSQL:         pgc.MayBool("LOG_SQL", false),
			SlowQueryMs:    pgc.MayInt("SLOW_MS", 200),
			ConnectRetries: pgc.MayInt("CONNECT_RETRIES", defaultConnectRetries),
			PingTimeout:    pgc.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			Enabled: source == "ch",
			Role:    appName,
		},
	}
	if cfg.PG.Enabled {
		cfg.PG.URL = pgc.MustString("DBURL")
	}
	if cfg.CH.Enabled {
		cfg.CH.URL = chc.MustString("DBURL")
	}
	return cfg
}
