package repository

import (
	"soil-farming-agent/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Soil        SoilRepository
	Distributor DistributorRepository
	Blog        BlogRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Soil:        NewSoilRepository(db, log),
		Distributor: NewDistributorRepository(db, log),
		Blog:        NewBlogRepository(db, log),
	}
}
