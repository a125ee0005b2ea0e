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

type DistributorHandler struct {
	service usecase.DistributorService
	log     *zap.Logger
}

func NewDistributorHandler(service usecase.DistributorService, log *zap.Logger) *DistributorHandler {
	return &DistributorHandler{
		service: service,
		log:     log.With(zap.String("handler", "distributor")),
	}
}

// List handles GET /api/distributors. Bare array, no envelope.
func (h *DistributorHandler) List(w http.ResponseWriter, r *http.Request) {
	dists, err := h.service.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list distributors")
		return
	}

	utils.WriteJSON(w, http.StatusOK, dists)
}

// Create handles POST /api/distributors
func (h *DistributorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.DistributorCreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	dist, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create distributor")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, response.DistributorEnvelope{
		Success:     true,
		Message:     "Distributor added successfully",
		Distributor: *dist,
	})
}

// Update handles PUT /api/distributors/{id} (admin only, partial patch)
func (h *DistributorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.DistributorUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	dist, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update distributor")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.DistributorEnvelope{Success: true, Distributor: *dist})
}

// BulkDelete handles DELETE /api/distributors (admin only)
func (h *DistributorHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req request.BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "IDs required")
		return
	}

	deleted, err := h.service.BulkDelete(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "delete distributors")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.BulkDeleteResponse{Success: true, DeletedCount: deleted})
}

func (h *DistributorHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Distributor not found")

	case strings.Contains(errMsg, "missing required fields"):
		h.log.Warn(operation+" failed - missing fields", zap.Error(err))
		utils.ResponseBadRequest(w, "Missing required fields (name, contact, seedType, price, quantity)")

	case strings.Contains(errMsg, "ids required"):
		h.log.Warn(operation+" failed - no ids", zap.Error(err))
		utils.ResponseBadRequest(w, "IDs required")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Server error")
	}
}
