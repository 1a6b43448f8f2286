package httptransport

import (
	"encoding/json"
	"net/http"

	"symbology/internal/blpapi"
	"symbology/internal/platform/middleware"
	"symbology/internal/quantity"
	"symbology/pkg/platform/httputil"
	dErrors "symbology/pkg/domain-errors"
)

type parseServiceRequest struct {
	Service string `json:"service"`
}

type parseServiceResponse struct {
	Service  string `json:"service"`
	Scheme   string `json:"scheme"`
	Provider string `json:"provider"`
}

// handleParseService parses a BLPAPI service name such as "//blp/refdata".
func (h *Handler) handleParseService(w http.ResponseWriter, r *http.Request) {
	var req parseServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid service parse request",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	svc, err := blpapi.ParseService(req.Service)
	if err != nil {
		h.metrics.ObserveServiceParse("invalid")
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInvalidInput, err.Error(), err))
		return
	}
	h.metrics.ObserveServiceParse("valid")

	httputil.WriteJSON(w, http.StatusOK, parseServiceResponse{
		Service:  svc.String(),
		Scheme:   string(svc.Scheme()),
		Provider: string(svc.Provider()),
	})
}

type parseQuantityRequest struct {
	Quantity string `json:"quantity"`
}

type parseQuantityResponse struct {
	Value    float64 `json:"value"`
	Factor   string  `json:"factor,omitempty"`
	Resolved float64 `json:"resolved"`
}

// handleParseQuantity parses a display quantity such as "(1.5MM)".
func (h *Handler) handleParseQuantity(w http.ResponseWriter, r *http.Request) {
	var req parseQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid quantity parse request",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	q, err := quantity.Parse(req.Quantity)
	if err != nil {
		h.metrics.ObserveQuantityParse("invalid")
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInvalidInput, err.Error(), err))
		return
	}
	h.metrics.ObserveQuantityParse("valid")

	httputil.WriteJSON(w, http.StatusOK, parseQuantityResponse{
		Value:    q.Value(),
		Factor:   string(q.Factor()),
		Resolved: q.Resolve(),
	})
}
