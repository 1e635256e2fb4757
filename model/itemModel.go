// model/item.go
package model

type ItemStatus string

const (
	ItemAvailable ItemStatus = "Available"
	ItemBusy      ItemStatus = "Busy"
)

// Hourly price bounds for any listed or seeded item.
const (
	MinPricePerHour = 1
	MaxPricePerHour = 100000
)

// ValidPrice reports whether p is within the price bounds. NaN is rejected.
func ValidPrice(p float64) bool {
	return p >= MinPricePerHour && p <= MaxPricePerHour
}

type Item struct {
	ID           int64      `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Owner        string     `json:"owner" yaml:"owner"`
	PricePerHour float64    `json:"price_per_hour" yaml:"price_per_hour"`
	Status       ItemStatus `json:"status" yaml:"status"`
}

// ListItemReq is the Lend form payload.
// swagger:model ListItemReq
type ListItemReq struct {
	Name  string  `json:"name" validate:"required,notblank"`
	Owner string  `json:"owner"`
	Price float64 `json:"price" validate:"required,gte=1,lte=100000"`
}
