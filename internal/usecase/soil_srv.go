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

type SoilService interface {
	List(ctx context.Context) ([]response.SoilResponse, error)
	Create(ctx context.Context, req *request.SoilCreateRequest) (*response.SoilResponse, error)
	Update(ctx context.Context, id string, req *request.SoilUpdateRequest) (*response.SoilResponse, error)
	BulkDelete(ctx context.Context, req *request.BulkDeleteRequest) (int64, error)
}

type soilService struct {
	soils repository.SoilRepository
	log   *zap.Logger
}

func NewSoilService(soils repository.SoilRepository, log *zap.Logger) SoilService {
	return &soilService{
		soils: soils,
		log:   log,
	}
}

func (s *soilService) List(ctx context.Context) ([]response.SoilResponse, error) {
	soils, err := s.soils.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch soils")
	}

	return response.SoilsToResponse(soils), nil
}

func (s *soilService) Create(ctx context.Context, req *request.SoilCreateRequest) (*response.SoilResponse, error) {
	// Whitespace-only names are as invalid as missing ones
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("soil name is required")
	}

	now := time.Now()
	soil := &entity.Soil{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Description:   req.Description,
		SuitableCrops: listOrEmpty(req.SuitableCrops),
		PHLevel:       req.PHLevel,
		Nutrients:     listOrEmpty(req.Nutrients),
	}

	if err := s.soils.Create(ctx, soil); err != nil {
		return nil, fmt.Errorf("failed to create soil")
	}

	s.log.Info("Soil created",
		zap.String("soil_id", soil.ID.String()),
		zap.String("name", soil.Name))

	resp := response.SoilToResponse(soil)
	return &resp, nil
}

// Update applies a partial patch: only fields present in the request change.
// An empty name is ignored rather than applied, matching create's rule that a
// record can never hold a blank name.
func (s *soilService) Update(ctx context.Context, id string, req *request.SoilUpdateRequest) (*response.SoilResponse, error) {
	soilID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("soil not found")
	}

	soil, err := s.soils.FindByID(ctx, soilID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch soil")
	}
	if soil == nil {
		return nil, fmt.Errorf("soil not found")
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		soil.Name = *req.Name
	}
	if req.Description != nil {
		soil.Description = req.Description
	}
	if req.SuitableCrops != nil {
		soil.SuitableCrops = req.SuitableCrops
	}
	if req.PHLevel != nil {
		soil.PHLevel = req.PHLevel
	}
	if req.Nutrients != nil {
		soil.Nutrients = req.Nutrients
	}
	soil.UpdatedAt = time.Now()

	if err := s.soils.Update(ctx, soil); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("soil not found")
		}
		return nil, fmt.Errorf("failed to update soil")
	}

	s.log.Info("Soil updated", zap.String("soil_id", soil.ID.String()))

	resp := response.SoilToResponse(soil)
	return &resp, nil
}

func (s *soilService) BulkDelete(ctx context.Context, req *request.BulkDeleteRequest) (int64, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return 0, fmt.Errorf("ids required")
	}

	ids := parseIDs(req.IDs)
	if len(ids) == 0 {
		// every requested id was malformed; nothing can match
		return 0, nil
	}

	deleted, err := s.soils.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete soils")
	}

	return deleted, nil
}

// parseIDs drops unparsable ids instead of failing the whole request; they can
// never match a record, which is the same outcome as an unknown id.
func parseIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func listOrEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
