package utils

import (
	"encoding/json"
	"net/http"
)

// Envelope is the common response shape: {success: bool, message?: string}.
// Payload-bearing responses embed it in a typed struct (see internal/dto/response).
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes any payload with the given status code
func WriteJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: message})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, Envelope{Success: false, Message: message})
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusForbidden, Envelope{Success: false, Message: message})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusNotFound, Envelope{Success: false, Message: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusInternalServerError, Envelope{Success: false, Message: message})
}
