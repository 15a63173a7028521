// Package domain holds DTOs for the dashboard http and service contracts
package domain

import (
	"context"

	"piptrade/internal/core/chart"
	"piptrade/internal/core/filter"
)

// ChartResult is the geometry for one criteria plus the counts behind it
type ChartResult struct {
	Criteria filter.Criteria `json:"criteria"`
	Active   []filter.Key    `json:"active"`
	Total    int             `json:"total" example:"1000"`
	Visible  int             `json:"visible" example:"42"`
	Geometry chart.Geometry  `json:"geometry"`
}

// OptionsResult lists the selectable values for every filter key
type OptionsResult struct {
	Keys    []filter.Key                  `json:"keys"`
	Options map[filter.Key][]filter.Option `json:"options"`
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Chart(ctx context.Context, c filter.Criteria) (ChartResult, error)
	SVG(ctx context.Context, c filter.Criteria) ([]byte, error)
	Options(ctx context.Context) (OptionsResult, error)
}
