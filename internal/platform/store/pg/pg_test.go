package pg

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	kit "scorebook/internal/platform/testkit"
)

func TestParseConfig(t *testing.T) {
	pcfg, err := ParseConfig(Config{URL: "postgres://u:p@localhost:5432/cricket", AppName: "scorebook-api", MaxConns: 3})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if pcfg.MaxConns != 3 {
		t.Fatalf("MaxConns = %d", pcfg.MaxConns)
	}
	if got := pcfg.ConnConfig.RuntimeParams["application_name"]; got != "scorebook-api" {
		t.Fatalf("application_name = %q", got)
	}

	pcfg, err = ParseConfig(Config{URL: "postgres://u:p@localhost:5432/cricket?application_name=psql", AppName: "scorebook-api"})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if got := pcfg.ConnConfig.RuntimeParams["application_name"]; got != "psql" {
		t.Fatalf("URL application_name should win, got %q", got)
	}
}

func TestOpenPropagatesPoolError(t *testing.T) {
	boom := errors.New("pool failed")
	kit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) { return nil, boom })

	mutated := false
	_, err := Open(context.Background(), Config{URL: "postgres://localhost/cricket"}, nil, func(*pgxpool.Config) { mutated = true })
	if !errors.Is(err, boom) {
		t.Fatalf("want pool error, got %v", err)
	}
	if !mutated {
		t.Fatalf("pool config mutator not called")
	}
}

func TestTracerLevels(t *testing.T) {
	var buf bytes.Buffer
	root := zerolog.New(&buf).Level(zerolog.ErrorLevel)
	tr := Tracer(root)

	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT\n\t runs\nFROM   innings", ElapsedUS: 1500})
	kit.MustContain(t, buf.String(), `"level":"info"`)
	kit.MustContain(t, buf.String(), `"sql":"SELECT runs FROM innings"`)
	kit.MustContain(t, buf.String(), `"elapsed_ms":1.5`)

	buf.Reset()
	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT 1", Slow: true})
	kit.MustContain(t, buf.String(), `"level":"warn"`)
	kit.MustContain(t, buf.String(), `"component":"pg"`)
}

func TestCloseNil(t *testing.T) {
	var p *PG
	p.Close()
}
