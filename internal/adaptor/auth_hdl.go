package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"soil-farming-agent/internal/dto/request"
	"soil-farming-agent/internal/usecase"
	"soil-farming-agent/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing fields")
		return
	}

	if err := h.service.Register(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.ResponseSuccess(w, "Registration successful")
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing fields")
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// handleServiceError maps auth failures. Bad credentials are a 400 here, not a
// 401/404; the original surface treats every credential miss the same way.
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "already registered"):
		h.log.Warn(operation+" failed - duplicate email", zap.Error(err))
		utils.ResponseBadRequest(w, "Email already registered")

	case strings.Contains(errMsg, "user not found"):
		h.log.Warn(operation+" failed - unknown user", zap.Error(err))
		utils.ResponseBadRequest(w, "User not found")

	case strings.Contains(errMsg, "incorrect password"):
		h.log.Warn(operation+" failed - bad password", zap.Error(err))
		utils.ResponseBadRequest(w, "Incorrect password")

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Missing fields")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Server error")
	}
}
