// Package http provides http transport for the dashboard
package http

import (
	stdhttp "net/http"

	"piptrade/internal/core/filter"
	"piptrade/internal/modkit/httpkit"
	svc "piptrade/internal/services/api/dashboard/service"
)

// SVGContentType is what /chart.svg answers with
const SVGContentType = "image/svg+xml; charset=utf-8"

// Register mounts dashboard endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// geometry for the filtered record set
	httpkit.Get(r, "/chart", h.chart)
	httpkit.PostJSON(r, "/chart", h.chartBody)

	// the same chart drawn
	httpkit.GetResponse(r, "/chart.svg", h.svg)

	// selectable values per key
	httpkit.Get(r, "/options", h.options)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /api/v1/dashboard/chart Dashboard dashboardChart
// @Summary Chart geometry for the filtered records
// @Tags Dashboard
// @Produce json
// @Param endYear query string false "End year"
// @Param topic query string false "Topic"
// @Param sector query string false "Sector"
// @Param region query string false "Region"
// @Param pest query string false "PESTLE"
// @Param source query string false "Source"
// @Param swot query string false "SWOT (impact)"
// @Param country query string false "Country"
// @Param city query string false "City"
// @Success 200 {object} domain.ChartResult "ok"
// @Router /api/v1/dashboard/chart [get]
func (h *handlers) chart(r *stdhttp.Request) (any, error) {
	return h.svc.Chart(r.Context(), filter.ParseQuery(r.URL.Query()))
}

// swagger:route POST /api/v1/dashboard/chart Dashboard dashboardChartBody
// @Summary Chart geometry for criteria sent as a body
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param criteria body filter.Criteria true "Criteria"
// @Success 200 {object} domain.ChartResult "ok"
// @Failure 400 {object} net.Wire "bad criteria"
// @Router /api/v1/dashboard/chart [post]
func (h *handlers) chartBody(r *stdhttp.Request, c filter.Criteria) (any, error) {
	return h.svc.Chart(r.Context(), c)
}

// swagger:route GET /api/v1/dashboard/chart.svg Dashboard dashboardChartSVG
// @Summary The filtered chart as SVG
// @Tags Dashboard
// @Produce image/svg+xml
// @Success 200 {string} string "svg document"
// @Router /api/v1/dashboard/chart.svg [get]
func (h *handlers) svg(r *stdhttp.Request) httpkit.Response {
	b, err := h.svc.SVG(r.Context(), filter.ParseQuery(r.URL.Query()))
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.Raw(SVGContentType, b)
}

// swagger:route GET /api/v1/dashboard/options Dashboard dashboardOptions
// @Summary Distinct values per filter key
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.OptionsResult "ok"
// @Router /api/v1/dashboard/options [get]
func (h *handlers) options(r *stdhttp.Request) (any, error) {
	return h.svc.Options(r.Context())
}

