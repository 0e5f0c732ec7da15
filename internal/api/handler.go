package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tracecase/trace/internal/config"
	"github.com/tracecase/trace/internal/explain"
	"github.com/tracecase/trace/internal/ledger"
	"github.com/tracecase/trace/internal/metrics"
	"github.com/tracecase/trace/internal/repository"
	"github.com/tracecase/trace/internal/responsibility"
)

const notFoundMsg = "Case not found"

// Handler holds all HTTP handler dependencies.
type Handler struct {
	repo   repository.Repository
	loader *config.Loader
	mux    *http.ServeMux
	now    func() time.Time
}

// New creates an HTTP handler and registers all routes. Requests pass
// through request logging, panic recovery and CORS, in that order.
func New(repo repository.Repository, loader *config.Loader, corsOrigins []string) http.Handler {
	h := &Handler{repo: repo, loader: loader, mux: http.NewServeMux(), now: time.Now}

	h.mux.HandleFunc("GET /{$}", h.root)
	h.mux.HandleFunc("GET /api/health", h.health)
	h.mux.HandleFunc("GET /api/cases", h.listCases)
	h.mux.HandleFunc("GET /api/case/{caseId}", h.getCase)
	h.mux.HandleFunc("GET /api/case/{caseId}/responsibility", h.getResponsibility)
	h.mux.HandleFunc("GET /api/case/{caseId}/explanation", h.getExplanation)
	h.mux.HandleFunc("POST /api/catalog/reload", h.reloadCatalog)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	cors := handlers.CORS(
		handlers.AllowedOrigins(corsOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", requestIDHeader}),
		handlers.ExposedHeaders([]string{requestIDHeader}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError)),
	)
	return loggingMiddleware(h.mux, recovery(cors(h.mux)))
}

// GET /: service banner.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "TRACE Platform Backend",
		"status":  "running",
	})
}

// GET /api/health: always 200 (liveness probe).
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /api/cases: summaries of every known case, ordered by id.
func (h *Handler) listCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]caseSummary, 0, len(cases))
	for _, c := range cases {
		out = append(out, caseSummary{caseView: newCaseView(c), Events: c.Len()})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"cases": out})
}

// GET /api/case/{caseId}: case header and full ledger.
func (h *Handler) getCase(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newCaseResponse(c))
}

// GET /api/case/{caseId}/responsibility: day breakdown per actor.
// ?detail=periods adds the per-event partition.
func (h *Handler) getResponsibility(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	tl := responsibility.Allocate(c)
	metrics.AllocationsComputed.Inc()
	for _, a := range ledger.Actors() {
		metrics.AttributedDays.WithLabelValues(a.String()).Add(float64(tl.Breakdown.Days(a)))
	}

	resp := responsibilityResponse{Timeline: tl}
	if r.URL.Query().Get("detail") == "periods" {
		resp.Periods = responsibility.Periods(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /api/case/{caseId}/explanation: audit explanation plus generation time.
func (h *Handler) getExplanation(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	text := explain.Explain(c)
	metrics.ExplanationsGenerated.Inc()
	writeJSON(w, http.StatusOK, explanationResponse{
		Explanation: text,
		GeneratedAt: h.now().UTC().Format(time.RFC3339),
	})
}

// POST /api/catalog/reload: re-read the case catalog from its source.
// Listeners registered on the loader install the new cases.
func (h *Handler) reloadCatalog(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loader.Reload()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded": true,
		"version":  cfg.Version,
		"cases":    len(cfg.Cases),
	})
}

// lookup resolves the {caseId} path value, writing a 404 or 500 on failure.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*ledger.Case, bool) {
	id := r.PathValue("caseId")
	c, err := h.repo.Lookup(r.Context(), id)
	switch {
	case err == nil:
		metrics.CaseLookups.WithLabelValues("found").Inc()
		return c, true
	case errors.Is(err, repository.ErrCaseNotFound):
		metrics.CaseLookups.WithLabelValues("not_found").Inc()
		writeError(w, http.StatusNotFound, notFoundMsg)
	default:
		metrics.CaseLookups.WithLabelValues("error").Inc()
		slog.ErrorContext(r.Context(), "case lookup failed", "case_id", id, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
	return nil, false
}
