// Package service runs the filter and render pipeline over the stored records
package service

import (
	"context"

	"piptrade/internal/core/chart"
	"piptrade/internal/core/filter"
	"piptrade/internal/core/record"
	"piptrade/internal/platform/metrics"
	"piptrade/internal/services/api/dashboard/domain"
	recsdom "piptrade/internal/services/records/domain"
)

// Service defines the dashboard service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the dashboard service
type Svc struct {
	recs recsdom.RecordsPort
}

// New constructs a dashboard service reading through recs
func New(recs recsdom.RecordsPort) *Svc {
	if recs == nil {
		panic("dashboard.Service requires a non nil RecordsPort")
	}
	return &Svc{recs: recs}
}

// Chart lays out the visible records for c
func (s *Svc) Chart(ctx context.Context, c filter.Criteria) (domain.ChartResult, error) {
	all, visible, err := s.visible(ctx, c)
	if err != nil {
		return domain.ChartResult{}, err
	}
	g := chart.Layout(visible)
	metrics.RecordChart("json", len(g.Bars))
	return domain.ChartResult{
		Criteria: c,
		Active:   c.Active(),
		Total:    len(all),
		Visible:  len(visible),
		Geometry: g,
	}, nil
}

// SVG renders the visible records for c as an SVG document
func (s *Svc) SVG(ctx context.Context, c filter.Criteria) ([]byte, error) {
	_, visible, err := s.visible(ctx, c)
	if err != nil {
		return nil, err
	}
	surface := chart.NewSurface()
	g, err := chart.Render(surface, visible)
	if err != nil {
		return nil, err
	}
	metrics.RecordChart("svg", len(g.Bars))
	return surface.Bytes(), nil
}

// Options lists distinct values per filter key
func (s *Svc) Options(ctx context.Context) (domain.OptionsResult, error) {
	all, err := s.recs.FetchAll(ctx)
	if err != nil {
		return domain.OptionsResult{}, err
	}
	return domain.OptionsResult{Keys: filter.Keys(), Options: filter.Options(all)}, nil
}

func (s *Svc) visible(ctx context.Context, c filter.Criteria) (all, visible []record.Record, err error) {
	all, err = s.recs.FetchAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return all, filter.Apply(all, c), nil
}
