package entity

type Distributor struct {
	Base
	Name     string   `db:"name"`
	Contact  string   `db:"contact"`
	SeedType string   `db:"seed_type"`
	Price    float64  `db:"price"`
	Quantity float64  `db:"quantity"`
	Location *string  `db:"location"`
	Crops    []string `db:"crops"`
}
