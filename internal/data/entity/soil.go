package entity

type Soil struct {
	Base
	Name          string   `db:"name"`
	Description   *string  `db:"description"`
	SuitableCrops []string `db:"suitable_crops"`
	PHLevel       *float64 `db:"ph_level"`
	Nutrients     []string `db:"nutrients"`
}
