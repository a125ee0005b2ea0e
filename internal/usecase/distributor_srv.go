package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"soil-farming-agent/internal/data/entity"
	"soil-farming-agent/internal/data/repository"
	"soil-farming-agent/internal/dto/request"
	"soil-farming-agent/internal/dto/response"
	"soil-farming-agent/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DistributorService interface {
	List(ctx context.Context) ([]response.DistributorResponse, error)
	Create(ctx context.Context, req *request.DistributorCreateRequest) (*response.DistributorResponse, error)
	Update(ctx context.Context, id string, req *request.DistributorUpdateRequest) (*response.DistributorResponse, error)
	BulkDelete(ctx context.Context, req *request.BulkDeleteRequest) (int64, error)
}

type distributorService struct {
	distributors repository.DistributorRepository
	log          *zap.Logger
}

func NewDistributorService(distributors repository.DistributorRepository, log *zap.Logger) DistributorService {
	return &distributorService{
		distributors: distributors,
		log:          log,
	}
}

func (s *distributorService) List(ctx context.Context) ([]response.DistributorResponse, error) {
	dists, err := s.distributors.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch distributors")
	}

	return response.DistributorsToResponse(dists), nil
}

// Create requires all five core fields. Price and quantity are checked for
// presence, not truthiness: an explicit zero is a valid value.
func (s *distributorService) Create(ctx context.Context, req *request.DistributorCreateRequest) (*response.DistributorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Distributor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("missing required fields (name, contact, seedType, price, quantity)")
	}

	now := time.Now()
	dist := &entity.Distributor{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Contact:  req.Contact,
		SeedType: req.SeedType,
		Price:    *req.Price,
		Quantity: *req.Quantity,
		Location: req.Location,
		Crops:    listOrEmpty(req.Crops),
	}

	if err := s.distributors.Create(ctx, dist); err != nil {
		return nil, fmt.Errorf("failed to create distributor")
	}

	s.log.Info("Distributor created",
		zap.String("distributor_id", dist.ID.String()),
		zap.String("name", dist.Name))

	resp := response.DistributorToResponse(dist)
	return &resp, nil
}

func (s *distributorService) Update(ctx context.Context, id string, req *request.DistributorUpdateRequest) (*response.DistributorResponse, error) {
	distID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("distributor not found")
	}

	dist, err := s.distributors.FindByID(ctx, distID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch distributor")
	}
	if dist == nil {
		return nil, fmt.Errorf("distributor not found")
	}

	// String fields ignore empty values; numeric fields apply whenever
	// present, zero included.
	if req.Name != nil && *req.Name != "" {
		dist.Name = *req.Name
	}
	if req.Contact != nil && *req.Contact != "" {
		dist.Contact = *req.Contact
	}
	if req.SeedType != nil && *req.SeedType != "" {
		dist.SeedType = *req.SeedType
	}
	if req.Price != nil {
		dist.Price = *req.Price
	}
	if req.Quantity != nil {
		dist.Quantity = *req.Quantity
	}
	if req.Location != nil {
		dist.Location = req.Location
	}
	if req.Crops != nil {
		dist.Crops = req.Crops
	}
	dist.UpdatedAt = time.Now()

	if err := s.distributors.Update(ctx, dist); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("distributor not found")
		}
		return nil, fmt.Errorf("failed to update distributor")
	}

	s.log.Info("Distributor updated", zap.String("distributor_id", dist.ID.String()))

	resp := response.DistributorToResponse(dist)
	return &resp, nil
}

func (s *distributorService) BulkDelete(ctx context.Context, req *request.BulkDeleteRequest) (int64, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return 0, fmt.Errorf("ids required")
	}

	ids := parseIDs(req.IDs)
	if len(ids) == 0 {
		return 0, nil
	}

	deleted, err := s.distributors.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete distributors")
	}

	return deleted, nil
}
