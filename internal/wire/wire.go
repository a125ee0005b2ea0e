package wire

import (
	"net/http"

	"soil-farming-agent/internal/adaptor"
	"soil-farming-agent/internal/data/repository"
	"soil-farming-agent/internal/usecase"
	"soil-farming-agent/pkg/middleware"
	"soil-farming-agent/pkg/upload"
	"soil-farming-agent/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	storage, err := upload.NewStorage(config.Upload, logger)
	if err != nil {
		return nil, err
	}

	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, storage, logger)

	router := setupRouter(handler, storage, logger)

	return &App{
		Router: router,
	}, nil
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, storage *upload.Storage, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Identity())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireSoil(r, handler.Soil, logger)
	wireDistributor(r, handler.Distributor, logger)
	wireBlog(r, handler.Blog, logger)

	// Uploaded images are served statically from the upload directory
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(storage.Dir())))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
