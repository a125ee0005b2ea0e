package request

// Price and Quantity are pointers so that zero survives the required check:
// a missing or null value fails validation, an explicit 0 passes.
type DistributorCreateRequest struct {
	Name     string   `json:"name" validate:"required"`
	Contact  string   `json:"contact" validate:"required"`
	SeedType string   `json:"seedType" validate:"required"`
	Price    *float64 `json:"price" validate:"required"`
	Quantity *float64 `json:"quantity" validate:"required"`
	Location *string  `json:"location"`
	Crops    []string `json:"crops"`
}

type DistributorUpdateRequest struct {
	Name     *string  `json:"name"`
	Contact  *string  `json:"contact"`
	SeedType *string  `json:"seedType"`
	Price    *float64 `json:"price"`
	Quantity *float64 `json:"quantity"`
	Location *string  `json:"location"`
	Crops    []string `json:"crops"`
}
