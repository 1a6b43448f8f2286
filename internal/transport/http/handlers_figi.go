package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/sync/errgroup"

	"symbology/internal/figi"
	"symbology/internal/platform/middleware"
	"symbology/pkg/platform/httputil"
	dErrors "symbology/pkg/domain-errors"
)

// maxBatchSize bounds one batch request; anything larger should be chunked
// by the caller.
const maxBatchSize = 1000

// batchParallelism caps concurrent validations per batch request.
const batchParallelism = 8

type validateFIGIRequest struct {
	FIGI string `json:"figi"`
}

type validateFIGIBatchRequest struct {
	FIGIs []string `json:"figis"`
}

// figiResult is one validation outcome. For valid identifiers the structural
// parts are echoed back; for invalid ones the stable reason code and a
// human-readable message are set instead.
type figiResult struct {
	FIGI       string `json:"figi"`
	Valid      bool   `json:"valid"`
	Prefix     string `json:"prefix,omitempty"`
	Marker     string `json:"marker,omitempty"`
	Body       string `json:"body,omitempty"`
	CheckDigit *int   `json:"check_digit,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Message    string `json:"message,omitempty"`
}

type validateFIGIBatchResponse struct {
	Results []figiResult `json:"results"`
}

// figiReason maps a validation failure to its stable client-facing reason.
func figiReason(err error) string {
	switch {
	case errors.Is(err, figi.ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, figi.ErrInvalidPrefix):
		return "invalid_prefix"
	case errors.Is(err, figi.ErrInvalidMarker):
		return "invalid_marker"
	case errors.Is(err, figi.ErrInvalidBodyCharacter):
		return "invalid_body_character"
	case errors.Is(err, figi.ErrInvalidCheckDigitFormat):
		return "invalid_check_digit_format"
	case errors.Is(err, figi.ErrInvalidChecksum):
		return "invalid_checksum"
	default:
		return "invalid"
	}
}

// validate runs one parse and records the outcome metric.
func (h *Handler) validate(raw string) figiResult {
	parsed, err := figi.Parse(raw)
	if err != nil {
		reason := figiReason(err)
		h.metrics.ObserveFigiParse(reason)
		return figiResult{FIGI: raw, Valid: false, Reason: reason, Message: err.Error()}
	}
	h.metrics.ObserveFigiParse("valid")
	checkDigit := parsed.CheckDigit()
	return figiResult{
		FIGI:       parsed.String(),
		Valid:      true,
		Prefix:     parsed.Prefix(),
		Marker:     parsed.Marker(),
		Body:       parsed.Body(),
		CheckDigit: &checkDigit,
	}
}

// handleValidateFIGI validates a single identifier. Invalid identifiers are
// an expected outcome and map to 422 with the reason, not to a generic error.
func (h *Handler) handleValidateFIGI(w http.ResponseWriter, r *http.Request) {
	var req validateFIGIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "invalid validate request",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	result := h.validate(req.FIGI)
	if !result.Valid {
		httputil.WriteJSON(w, http.StatusUnprocessableEntity, result)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// handleValidateFIGIBatch validates up to maxBatchSize identifiers,
// preserving input order. The response is always 200; per-item outcomes
// carry their own valid flag.
func (h *Handler) handleValidateFIGIBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req validateFIGIBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid batch request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if len(req.FIGIs) == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "figis must not be empty"))
		return
	}
	if len(req.FIGIs) > maxBatchSize {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "batch exceeds maximum size"))
		return
	}

	results := make([]figiResult, len(req.FIGIs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchParallelism)
	for i, raw := range req.FIGIs {
		i, raw := i, raw
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = h.validate(raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.logger.ErrorContext(ctx, "batch validation aborted",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "batch validation aborted", err))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, validateFIGIBatchResponse{Results: results})
}
