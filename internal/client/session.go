package client

import (
	"context"
	"slices"
	"sync"

	"piptrade/internal/core/chart"
	"piptrade/internal/core/filter"
	"piptrade/internal/core/record"
	"piptrade/internal/platform/logger"
)

// Fetcher loads the full record set
type Fetcher interface {
	FetchAll(ctx context.Context) ([]record.Record, error)
}

// Session is one dashboard page load
// It owns the record set, the criteria and the geometry derived from them.
// Every mutation recomputes synchronously under mu.
type Session struct {
	mu     sync.Mutex
	src    Fetcher
	view   *filter.View
	geom   chart.Geometry
	loaded bool
	log    logger.Logger
}

// NewSession returns an empty session reading from src
func NewSession(src Fetcher) *Session {
	s := &Session{src: src, view: filter.NewView(nil), log: *logger.Named("session")}
	s.geom = chart.Layout(nil)
	return s
}

// Load fetches the record set once
// A failed fetch is logged and leaves the session on an empty set.
func (s *Session) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.loaded = true

	recs, err := s.src.FetchAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("error fetching data")
		recs = nil
	}
	s.view.SetRecords(recs)
	s.recompute()
	s.log.Debug().Int("records", len(recs)).Msg("session loaded")
}

// SetFilter constrains key to value, an empty value lifts the constraint
func (s *Session) SetFilter(key filter.Key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.SetCriteria(s.view.Criteria().With(key, value))
	s.recompute()
}

// SetCriteria replaces every constraint at once
func (s *Session) SetCriteria(c filter.Criteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.SetCriteria(c)
	s.recompute()
}

// Reset clears every constraint
func (s *Session) Reset() { s.SetCriteria(filter.Criteria{}) }

// recompute refreshes the geometry, callers hold mu
func (s *Session) recompute() {
	s.geom = chart.Layout(s.view.Visible())
}

// Criteria returns the current criteria
func (s *Session) Criteria() filter.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Criteria()
}

// Records returns a copy of the full record set
func (s *Session) Records() []record.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.view.Records())
}

// Visible returns a copy of the visible set
func (s *Session) Visible() []record.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.view.Visible())
}

// Geometry returns the geometry of the visible set
func (s *Session) Geometry() chart.Geometry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.geom
}

// Options lists the selectable values per key over the full set
func (s *Session) Options() map[filter.Key][]filter.Option {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filter.Options(s.view.Records())
}

// Recomputations counts visible set rebuilds
func (s *Session) Recomputations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Recomputations()
}

// Render draws the visible set onto surface
func (s *Session) Render(surface *chart.Surface) (chart.Geometry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return chart.Render(surface, s.view.Visible())
}
