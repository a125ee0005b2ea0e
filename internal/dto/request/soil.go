package request

type SoilCreateRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   *string  `json:"description"`
	SuitableCrops []string `json:"suitableCrops"`
	PHLevel       *float64 `json:"phLevel"`
	Nutrients     []string `json:"nutrients"`
}

// SoilUpdateRequest carries a partial patch: nil means "leave untouched".
// List fields distinguish absent (nil) from explicit clear (empty array).
type SoilUpdateRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	SuitableCrops []string `json:"suitableCrops"`
	PHLevel       *float64 `json:"phLevel"`
	Nutrients     []string `json:"nutrients"`
}

// BulkDeleteRequest is shared by the soil and distributor bulk-delete routes
type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}
