// Package store opens the record store backends behind small seams
package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"piptrade/internal/platform/logger"
)

// Store holds whichever backends were enabled, the zero value is inert
type Store struct {
	Log logger.Logger

	PG TxRunner   // nil unless postgres is enabled
	CH Clickhouse // nil unless clickhouse is enabled
}

// Open dials the backends cfg enables; on failure nothing stays open
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: logger.Logger{}}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	if cfg.PG.Enabled {
		q, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.PG = q
	}
	if cfg.CH.Enabled {
		c, err := openCH(ctx, cfg, s)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.CH = c
	}
	return s, nil
}

// probes pairs each configured backend with its name
func (s *Store) probes() map[string]Pinger {
	out := map[string]Pinger{}
	if p, ok := s.PG.(Pinger); ok {
		out["pg"] = p
	}
	if s.CH != nil {
		out["clickhouse"] = s.CH
	}
	return out
}

// Guard pings every backend and joins what failed
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	var errs []error
	for name, p := range s.probes() {
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Close releases every backend that was opened
func (s *Store) Close(context.Context) error {
	var closers []io.Closer
	if s.CH != nil {
		closers = append(closers, s.CH)
	}
	if c, ok := s.PG.(io.Closer); ok {
		closers = append(closers, c)
	}
	var errs []error
	for _, c := range closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
