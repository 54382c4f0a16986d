package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"swedishid/internal/validation"
	"swedishid/pkg/platform/httputil"
	"swedishid/pkg/requestcontext"
	"swedishid/pkg/swedishid"
)

// Service defines the interface for validation operations.
type Service interface {
	Validate(ctx context.Context, kind swedishid.Kind, raw string) (*validation.Result, error)
	ValidateBatch(ctx context.Context, kind swedishid.Kind, raws []string) ([]validation.BatchItem, error)
}

// Handler wires validation endpoints to the validation service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a validation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts validation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/validate", h.HandleValidate)
	r.Post("/validate/batch", h.HandleValidateBatch)
	r.Get("/{kind}/{number}", h.HandleLookup)
}

// HandleLookup handles GET /v1/{kind}/{number} requests.
func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	kind, err := parseKind(chi.URLParam(r, "kind"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	number := chi.URLParam(r, "number")
	if err := checkNumberLength(number); err != nil {
		httputil.WriteError(w, err)
		return
	}
	h.validate(w, r, kind, number)
}

// HandleValidate handles POST /v1/validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	h.validate(w, r, req.ParsedKind(), req.Number)
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request, kind swedishid.Kind, raw string) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	result, err := h.service.Validate(ctx, kind, raw)
	if err != nil {
		h.logger.InfoContext(ctx, "identity number rejected",
			"request_id", requestID,
			"api_version", requestcontext.APIVersion(ctx).String(),
			"kind", kind.String(),
			"outcome", validation.OutcomeOf(err),
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "identity number validated",
		"request_id", requestID,
		"api_version", requestcontext.APIVersion(ctx).String(),
		"kind", kind.String(),
		"number", result.Masked,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleValidateBatch handles POST /v1/validate/batch requests.
func (h *Handler) HandleValidateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[BatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	items, err := h.service.ValidateBatch(ctx, req.ParsedKind(), req.Numbers)
	if err != nil {
		h.logger.ErrorContext(ctx, "batch validation failed",
			"request_id", requestID,
			"kind", req.ParsedKind().String(),
			"size", len(req.Numbers),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	resp := FromBatch(req.ParsedKind().String(), items)
	h.logger.InfoContext(ctx, "batch validated",
		"request_id", requestID,
		"kind", resp.Kind,
		"valid", resp.Valid,
		"invalid", resp.Invalid,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, resp)
}
