package adaptor

import (
	"soil-farming-agent/internal/usecase"
	"soil-farming-agent/pkg/upload"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Soil        *SoilHandler
	Distributor *DistributorHandler
	Blog        *BlogHandler
}

func NewHandler(service *usecase.Service, storage *upload.Storage, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Soil:        NewSoilHandler(service.Soil, log),
		Distributor: NewDistributorHandler(service.Distributor, log),
		Blog:        NewBlogHandler(service.Blog, storage, log),
	}
}
