package wire

import (
	"soil-farming-agent/internal/adaptor"
	"soil-farming-agent/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSoil(r chi.Router, soilHandler *adaptor.SoilHandler, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/soil", soilHandler.List)
	r.Post("/api/soil", soilHandler.Create)

	// ==================== ADMIN ROUTES ====================
	// Gated on the client-asserted x-role header, checked before the id lookup
	r.With(middleware.AdminOnly(log, "update")).Put("/api/soil/{id}", soilHandler.Update)
	r.With(middleware.AdminOnly(log, "delete")).Delete("/api/soil", soilHandler.BulkDelete)
}
