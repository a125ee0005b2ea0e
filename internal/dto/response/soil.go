package response

import (
	"time"

	"soil-farming-agent/internal/data/entity"
)

type SoilResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	SuitableCrops []string  `json:"suitableCrops"`
	PHLevel       *float64  `json:"phLevel"`
	Nutrients     []string  `json:"nutrients"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type SoilEnvelope struct {
	Success bool         `json:"success"`
	Soil    SoilResponse `json:"soil"`
}

type BulkDeleteResponse struct {
	Success      bool  `json:"success"`
	DeletedCount int64 `json:"deletedCount"`
}

func SoilToResponse(soil *entity.Soil) SoilResponse {
	return SoilResponse{
		ID:            soil.ID.String(),
		Name:          soil.Name,
		Description:   soil.Description,
		SuitableCrops: emptyIfNil(soil.SuitableCrops),
		PHLevel:       soil.PHLevel,
		Nutrients:     emptyIfNil(soil.Nutrients),
		CreatedAt:     soil.CreatedAt,
		UpdatedAt:     soil.UpdatedAt,
	}
}

func SoilsToResponse(soils []*entity.Soil) []SoilResponse {
	out := make([]SoilResponse, 0, len(soils))
	for _, soil := range soils {
		out = append(out, SoilToResponse(soil))
	}
	return out
}

// list fields always serialize as [] rather than null
func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
