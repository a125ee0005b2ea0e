package wire

import (
	"soil-farming-agent/internal/adaptor"
	"soil-farming-agent/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDistributor(r chi.Router, distHandler *adaptor.DistributorHandler, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/distributors", distHandler.List)
	r.Post("/api/distributors", distHandler.Create)

	// ==================== ADMIN ROUTES ====================
	r.With(middleware.AdminOnly(log, "update")).Put("/api/distributors/{id}", distHandler.Update)
	r.With(middleware.AdminOnly(log, "delete")).Delete("/api/distributors", distHandler.BulkDelete)
}
