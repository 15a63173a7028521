// Package http serves liveness, readiness and build info under /api/v1/meta
package http

import (
	"context"
	"net/http"
	"time"

	"piptrade/internal/core/version"
	"piptrade/internal/modkit/httpkit"
	recsdom "piptrade/internal/services/records/domain"
)

// check outcomes, a skipped check never degrades readiness
const (
	StatusOK       = "ok"
	StatusFail     = "fail"
	StatusSkipped  = "skipped"
	StatusUnknown  = "unknown"
	StatusDegraded = "degraded"
)

const defaultReadyTimeout = 2 * time.Second

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Backend     string

	// PG and CH are the store handles, probed when they can Ping
	PG any
	CH any

	Records recsdom.RecordsPort

	// Modules lists what the API mounted
	Modules func() []string

	// ReadyTimeout bounds all readiness checks, zero means 2s
	ReadyTimeout time.Duration
}

type handlers struct{ Deps }

// Register mounts the meta routes on r
func Register(r httpkit.Router, d Deps) {
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = defaultReadyTimeout
	}
	h := &handlers{d}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"piptrade-api"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Now     string `json:"now"     example:"2026-10-01T13:05:00Z"`
}

// ReadyCheck is one dependency outcome
type ReadyCheck struct {
	Name   string `json:"name"            example:"pg"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432: connect: connection refused"`
}

// ReadyResponse summarizes readiness, Records is absent when the count failed
type ReadyResponse struct {
	Status  string       `json:"status"            example:"ok"`
	Backend string       `json:"backend"           example:"pg"`
	Records *int64       `json:"records,omitempty" example:"1000"`
	Checks  []ReadyCheck `json:"checks"`
	Now     string       `json:"now"               example:"2026-10-01T13:05:00Z"`
}

// ServiceResponse describes the running process
type ServiceResponse struct {
	Name    string   `json:"name"    example:"piptrade-api"`
	Backend string   `json:"backend" example:"pg"`
	Modules []string `json:"modules"`
	Started string   `json:"started" example:"2026-10-01T13:00:00Z"`
	Uptime  int64    `json:"uptime"  example:"300"`
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// swagger:route GET /api/v1/meta/health Meta metaHealth
// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /api/v1/meta/health [get]
func (h *handlers) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.ServiceName, Started: stamp(h.StartedAt), Now: stamp(time.Now())}, nil
}

// swagger:route GET /api/v1/meta/ready Meta metaReady
// @Summary Readiness with store checks and the record count
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /api/v1/meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), h.ReadyTimeout)
	defer cancel()

	out := ReadyResponse{
		Backend: h.Backend,
		Checks:  []ReadyCheck{probe(ctx, "pg", h.PG), probe(ctx, "ch", h.CH)},
	}
	if h.Records != nil {
		c := ReadyCheck{Name: "records", Status: StatusOK}
		if n, err := h.Records.Count(ctx); err != nil {
			c.Status, c.Error = StatusFail, err.Error()
		} else {
			out.Records = &n
		}
		out.Checks = append(out.Checks, c)
	}
	out.Status = overall(out.Checks)
	out.Now = stamp(time.Now())
	return out, nil
}

func probe(ctx context.Context, name string, dep any) ReadyCheck {
	if dep == nil {
		return ReadyCheck{Name: name, Status: StatusSkipped}
	}
	p, ok := dep.(interface{ Ping(context.Context) error })
	if !ok {
		return ReadyCheck{Name: name, Status: StatusUnknown}
	}
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: name, Status: StatusFail, Error: err.Error()}
	}
	return ReadyCheck{Name: name, Status: StatusOK}
}

// overall is fail on any failure, degraded on any unknown, else ok
func overall(checks []ReadyCheck) string {
	status := StatusOK
	for _, c := range checks {
		switch c.Status {
		case StatusFail:
			return StatusFail
		case StatusUnknown:
			status = StatusDegraded
		}
	}
	return status
}

// swagger:route GET /api/v1/meta/version Meta metaVersion
// @Summary Build info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /api/v1/meta/version [get]
func (h *handlers) version(*http.Request) (any, error) { return version.Info(), nil }

// swagger:route GET /api/v1/meta/service Meta metaService
// @Summary Service info, mounted modules and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /api/v1/meta/service [get]
func (h *handlers) service(*http.Request) (any, error) {
	mods := []string{}
	if h.Modules != nil {
		mods = h.Modules()
	}
	return ServiceResponse{
		Name:    h.ServiceName,
		Backend: h.Backend,
		Modules: mods,
		Started: stamp(h.StartedAt),
		Uptime:  int64(time.Since(h.StartedAt) / time.Second),
	}, nil
}
