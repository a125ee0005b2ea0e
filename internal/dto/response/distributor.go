package response

import (
	"time"

	"soil-farming-agent/internal/data/entity"
)

type DistributorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	SeedType  string    `json:"seedType"`
	Price     float64   `json:"price"`
	Quantity  float64   `json:"quantity"`
	Location  *string   `json:"location,omitempty"`
	Crops     []string  `json:"crops"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type DistributorEnvelope struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message,omitempty"`
	Distributor DistributorResponse `json:"distributor"`
}

func DistributorToResponse(dist *entity.Distributor) DistributorResponse {
	return DistributorResponse{
		ID:        dist.ID.String(),
		Name:      dist.Name,
		Contact:   dist.Contact,
		SeedType:  dist.SeedType,
		Price:     dist.Price,
		Quantity:  dist.Quantity,
		Location:  dist.Location,
		Crops:     emptyIfNil(dist.Crops),
		CreatedAt: dist.CreatedAt,
		UpdatedAt: dist.UpdatedAt,
	}
}

func DistributorsToResponse(dists []*entity.Distributor) []DistributorResponse {
	out := make([]DistributorResponse, 0, len(dists))
	for _, dist := range dists {
		out = append(out, DistributorToResponse(dist))
	}
	return out
}
