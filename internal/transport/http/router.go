// Package httptransport is the thin HTTP layer over the symbology parsers.
// Handlers delegate to the pure domain packages and translate their typed
// errors into JSON envelopes; no parsing logic lives here.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"symbology/internal/platform/metrics"
	"symbology/internal/platform/middleware"
	"symbology/pkg/platform/httputil"
	dErrors "symbology/pkg/domain-errors"
)

// Handler handles all parser endpoints.
type Handler struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates the Handler.
func New(logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{logger: logger, metrics: m}
}

// NewRouter wires all public endpoints with the standard middleware stack.
func NewRouter(h *Handler, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Latency(h.metrics))

	r.Get("/healthz", handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Post("/figi/validate", h.handleValidateFIGI)
		r.Post("/figi/validate/batch", h.handleValidateFIGIBatch)
		r.Post("/service/parse", h.handleParseService)
		r.Post("/quantity/parse", h.handleParseQuantity)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "unknown route"))
	})

	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
