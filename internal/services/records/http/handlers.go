// Package http serves the /alldata routes
//
// These routes keep the original dashboard wire: bare JSON bodies, 201 on a
// successful save and a 500 carrying specificError for every failure, instead
// of the status envelope the /api/v1 routes speak.
package http

import (
	stdhttp "net/http"

	"piptrade/internal/core/record"
	"piptrade/internal/modkit/httpkit"
	"piptrade/internal/platform/logger"
	phttp "piptrade/internal/platform/net/http"
	"piptrade/internal/platform/net/http/bind"
	"piptrade/internal/platform/net/middleware"
	"piptrade/internal/services/records/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Records domain.RecordsPort
	// Ingest throttles POST per client ip
	Ingest middleware.RateLimitOptions
}

type handlers struct{ recs domain.RecordsPort }

// Register mounts POST and GET on r, r is already scoped to /alldata
func Register(r httpkit.Router, d Deps) {
	h := &handlers{recs: d.Records}

	r.With(middleware.RateLimitByIP(d.Ingest)).Post("/", h.save)
	r.Get("/", h.list)
}

// swagger:route POST /alldata Records saveRecords
// @Summary Bulk insert records
// @Tags Records
// @Accept json
// @Produce json
// @Param payload body []record.Record true "Records"
// @Success 201 {object} domain.SavedResponse
// @Failure 500 {object} domain.FailureResponse
// @Router /alldata [post]
func (h *handlers) save(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	recs, err := bind.ParseJSON[[]record.Record](r)
	if err != nil {
		fail(w, r, domain.MsgSaveFailed, err)
		return
	}
	saved, err := h.recs.InsertMany(r.Context(), recs)
	if err != nil {
		fail(w, r, domain.MsgSaveFailed, err)
		return
	}
	phttp.JSON(w, stdhttp.StatusCreated, domain.SavedResponse{Message: domain.MsgSaved, Data: saved})
}

// swagger:route GET /alldata Records listRecords
// @Summary Fetch every record
// @Tags Records
// @Produce json
// @Success 200 {object} domain.ListResponse
// @Failure 500 {object} domain.FailureResponse
// @Router /alldata [get]
func (h *handlers) list(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	recs, err := h.recs.FetchAll(r.Context())
	if err != nil {
		fail(w, r, domain.MsgFetchFailed, err)
		return
	}
	if recs == nil {
		recs = []record.Record{}
	}
	phttp.JSON(w, stdhttp.StatusOK, domain.ListResponse{Data: recs})
}

// fail answers 500 whatever went wrong
func fail(w stdhttp.ResponseWriter, r *stdhttp.Request, msg string, err error) {
	logger.C(r.Context()).Warn().Err(err).Str("path", r.URL.Path).Msg(msg)
	phttp.JSON(w, stdhttp.StatusInternalServerError, domain.FailureResponse{Error: msg, SpecificError: err.Error()})
}
