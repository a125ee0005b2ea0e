package wire

import (
	"soil-farming-agent/internal/adaptor"
	"soil-farming-agent/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBlog(r chi.Router, blogHandler *adaptor.BlogHandler, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/blogs", blogHandler.List)
	r.Post("/api/blogs", blogHandler.Create)

	// Update is owner-or-admin; the ownership check needs the stored record,
	// so it lives in the service rather than route middleware.
	r.Put("/api/blogs/{id}", blogHandler.Update)

	// ==================== ADMIN ROUTES ====================
	// Delete is admin only, an intentional asymmetry from update
	r.With(middleware.AdminOnly(log, "delete")).Delete("/api/blogs/{id}", blogHandler.Delete)
}
