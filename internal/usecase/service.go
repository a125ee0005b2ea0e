package usecase

import (
	"soil-farming-agent/internal/data/repository"
	"soil-farming-agent/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Soil        SoilService
	Distributor DistributorService
	Blog        BlogService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo.User, config, log),
		Soil:        NewSoilService(repo.Soil, log),
		Distributor: NewDistributorService(repo.Distributor, log),
		Blog:        NewBlogService(repo.Blog, log),
	}
}
