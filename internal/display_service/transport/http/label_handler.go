package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/dialware/golang_services/internal/display_service/app"
	"github.com/dialware/golang_services/internal/display_service/domain"
)

// LabelHandler serves the public label-resolution and annotation endpoints.
type LabelHandler struct {
	service  *app.LabelService
	logger   *slog.Logger
	validate *validator.Validate
}

func NewLabelHandler(service *app.LabelService, logger *slog.Logger, validate *validator.Validate) *LabelHandler {
	return &LabelHandler{
		service:  service,
		logger:   logger.With("handler", "label"),
		validate: validate,
	}
}

// RegisterRoutes registers the public display routes with the given router.
func (h *LabelHandler) RegisterRoutes(r chi.Router) {
	r.Post("/labels/interaction", h.handleInteractionLabel)
	r.Post("/labels/call", h.handleCallLabel)
	r.Post("/annotations/telephone", h.handleAnnotateTelephone)
	r.Post("/numbers/classify", h.handleClassifyNumber)
}

func (h *LabelHandler) handleInteractionLabel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chimiddleware.GetReqID(ctx))

	var req InteractionLabelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "Failed to decode interaction label request", "error", err)
		jsonError(w, logger, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		jsonError(w, logger, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	label, key := h.service.LabelForInteraction(ctx, phoneTypePtr(req.NumberType), req.CustomLabel, domain.Interaction(req.Interaction), req.Locale)
	respondJSON(w, http.StatusOK, InteractionLabelResponse{Label: label, LabelKey: string(key)})
}

func (h *LabelHandler) handleCallLabel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chimiddleware.GetReqID(ctx))

	var req CallLabelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "Failed to decode call label request", "error", err)
		jsonError(w, logger, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		jsonError(w, logger, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	label := h.service.CallLabel(ctx, req.Number, phoneTypePtr(req.NumberType), req.CustomLabel, req.PluginName, req.Locale)
	respondJSON(w, http.StatusOK, CallLabelResponse{Label: label})
}

func (h *LabelHandler) handleAnnotateTelephone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chimiddleware.GetReqID(ctx))

	var req AnnotateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "Failed to decode annotate request", "error", err)
		jsonError(w, logger, "Invalid request payload", http.StatusBadRequest)
		return
	}

	annotated := h.service.AnnotateTelephone(ctx, req.Message, req.Number)
	resp := AnnotateResponse{}
	if annotated != nil {
		resp.Message = &annotated.Text
		resp.Spans = annotated.Spans
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *LabelHandler) handleClassifyNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.With("request_id", chimiddleware.GetReqID(ctx))

	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "Failed to decode classify request", "error", err)
		jsonError(w, logger, "Invalid request payload", http.StatusBadRequest)
		return
	}

	possible, global := h.service.ClassifyNumber(ctx, req.Text)
	respondJSON(w, http.StatusOK, ClassifyResponse{
		PossiblePhoneNumber: possible,
		GlobalPhoneNumber:   global,
	})
}

// phoneTypePtr converts the wire *int into the domain pointer form. The
// distinction between absent and zero matters: absent means "no type on the
// contact row", zero is the custom type.
func phoneTypePtr(code *int) *domain.PhoneType {
	if code == nil {
		return nil
	}
	t := domain.PhoneType(*code)
	return &t
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			slog.Default().Error("Failed to write JSON response", "error", err)
		}
	}
}

func jsonError(w http.ResponseWriter, logger *slog.Logger, message string, statusCode int) {
	logger.Warn("API error response", "status_code", statusCode, "message", message)
	respondJSON(w, statusCode, GenericErrorResponse{Error: message})
}
