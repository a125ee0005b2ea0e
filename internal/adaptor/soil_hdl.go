package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"soil-farming-agent/internal/dto/request"
	"soil-farming-agent/internal/dto/response"
	"soil-farming-agent/internal/usecase"
	"soil-farming-agent/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SoilHandler struct {
	service usecase.SoilService
	log     *zap.Logger
}

func NewSoilHandler(service usecase.SoilService, log *zap.Logger) *SoilHandler {
	return &SoilHandler{
		service: service,
		log:     log.With(zap.String("handler", "soil")),
	}
}

// List handles GET /api/soil. The response is a bare array, no envelope.
func (h *SoilHandler) List(w http.ResponseWriter, r *http.Request) {
	soils, err := h.service.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list soils")
		return
	}

	utils.WriteJSON(w, http.StatusOK, soils)
}

// Create handles POST /api/soil
func (h *SoilHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.SoilCreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Soil name is required")
		return
	}

	soil, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create soil")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, response.SoilEnvelope{Success: true, Soil: *soil})
}

// Update handles PUT /api/soil/{id} (admin only, partial patch)
func (h *SoilHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.SoilUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	soil, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update soil")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.SoilEnvelope{Success: true, Soil: *soil})
}

// BulkDelete handles DELETE /api/soil (admin only)
func (h *SoilHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req request.BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "IDs required")
		return
	}

	deleted, err := h.service.BulkDelete(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "delete soils")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.BulkDeleteResponse{Success: true, DeletedCount: deleted})
}

func (h *SoilHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Soil not found")

	case strings.Contains(errMsg, "name is required"):
		h.log.Warn(operation+" failed - blank name", zap.Error(err))
		utils.ResponseBadRequest(w, "Soil name is required")

	case strings.Contains(errMsg, "ids required"):
		h.log.Warn(operation+" failed - no ids", zap.Error(err))
		utils.ResponseBadRequest(w, "IDs required")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Server error")
	}
}
