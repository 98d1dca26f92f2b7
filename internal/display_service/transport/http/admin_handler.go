package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/dialware/golang_services/internal/display_service/app"
	"github.com/dialware/golang_services/internal/display_service/domain"
)

// AdminHandler serves the override-management endpoints. Mount it behind
// the admin auth middleware; it does no authentication of its own.
type AdminHandler struct {
	service  *app.LabelService
	logger   *slog.Logger
	validate *validator.Validate
}

func NewAdminHandler(service *app.LabelService, logger *slog.Logger, validate *validator.Validate) *AdminHandler {
	return &AdminHandler{
		service:  service,
		logger:   logger.With("handler", "admin"),
		validate: validate,
	}
}

// RegisterRoutes registers the override routes with the given router.
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/overrides", h.handleListOverrides)
	r.Put("/overrides/{locale}/{key}", h.handleUpsertOverride)
	r.Delete("/overrides/{locale}/{key}", h.handleDeleteOverride)
}

func (h *AdminHandler) handleListOverrides(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries := h.service.ListOverrides(ctx, r.URL.Query().Get("locale"))
	resp := ListOverridesResponse{Overrides: make([]OverrideResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Overrides = append(resp.Overrides, OverrideResponse{
			Locale:    e.Locale,
			LabelKey:  string(e.Key),
			LabelText: e.Text,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *AdminHandler) handleUpsertOverride(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chimiddleware.GetReqID(ctx))

	locale := chi.URLParam(r, "locale")
	key := domain.LabelKey(chi.URLParam(r, "key"))

	var req UpsertOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "Failed to decode override request", "error", err)
		jsonError(w, logger, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		jsonError(w, logger, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	override, err := h.service.UpsertOverride(ctx, locale, key, req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownLabelKey) {
			jsonError(w, logger, "Unknown label key: "+string(key), http.StatusConflict)
			return
		}
		logger.ErrorContext(ctx, "Failed to upsert override", "error", err, "locale", locale, "label_key", key)
		jsonError(w, logger, "Failed to store override", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, OverrideResponse{
		Locale:    override.Locale,
		LabelKey:  string(override.LabelKey),
		LabelText: override.LabelText,
	})
}

func (h *AdminHandler) handleDeleteOverride(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chimiddleware.GetReqID(ctx))

	locale := chi.URLParam(r, "locale")
	key := domain.LabelKey(chi.URLParam(r, "key"))

	err := h.service.DeleteOverride(ctx, locale, key)
	if err != nil {
		if errors.Is(err, domain.ErrOverrideNotFound) {
			jsonError(w, logger, "Override not found", http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "Failed to delete override", "error", err, "locale", locale, "label_key", key)
		jsonError(w, logger, "Failed to delete override", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
