package dataset

import (
	"context"
	"errors"
	"sync"
	"time"

	"scorebook/internal/core/innings"
	"scorebook/internal/platform/logger"
)

// Provider hands out the shared dataset
type Provider interface {
	Dataset(ctx context.Context) (*innings.Dataset, error)
}

// LoadObserver is told about the one load (metrics)
type LoadObserver interface {
	ObserveLoad(rows int, elapsed time.Duration)
}

// Cached loads from its Source on first use and returns the same *innings.Dataset ever after.
// A failed load is cached too, unless it failed because the caller's context ended.
type Cached struct {
	src Source
	log logger.Logger
	obs LoadObserver

	mu   sync.Mutex
	done bool
	ds   *innings.Dataset
	err  error
}

// Option configures a Cached provider
type Option func(*Cached)

// WithLogger sets the logger the load is reported to
func WithLogger(l logger.Logger) Option { return func(c *Cached) { c.log = l } }

// WithObserver records the load duration and row count
func WithObserver(o LoadObserver) Option { return func(c *Cached) { c.obs = o } }

// NewCached wraps src; nothing is read until the first Dataset call
func NewCached(src Source, opts ...Option) *Cached {
	c := &Cached{src: src, log: *logger.Named("dataset")}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Dataset implements Provider
func (c *Cached) Dataset(ctx context.Context) (*innings.Dataset, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return c.ds, c.err
	}

	start := time.Now()
	rows, err := c.src.Load(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.log.Warn().Err(err).Str("source", c.src.Name()).Msg("dataset load interrupted")
			return nil, err
		}
		c.done, c.err = true, err
		c.log.Error().Err(err).Str("source", c.src.Name()).Msg("dataset load failed")
		return nil, err
	}
	c.done, c.ds = true, innings.New(c.src.Name(), rows)
	elapsed := time.Since(start)
	if c.obs != nil {
		c.obs.ObserveLoad(c.ds.Len(), elapsed)
	}
	c.log.Info().
		Str("source", c.src.Name()).
		Str("dataset_id", c.ds.ID().String()).
		Int("rows", c.ds.Len()).
		Dur("elapsed", elapsed).
		Msg("dataset loaded")
	return c.ds, nil
}
