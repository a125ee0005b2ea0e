package wire

import (
	"soil-farming-agent/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public routes, no auth middleware anywhere: login hands the client a
	// role string and the client asserts it back via headers.
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
}
