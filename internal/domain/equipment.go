package domain

import "time"

// PriceTiers maps minimum rental durations (in days) to discounted per-day
// rates. A zero rate means the tier is absent.
type PriceTiers struct {
	Day1  float64 `json:"price_1d"`
	Day2  float64 `json:"price_2d"`
	Day3  float64 `json:"price_3d"`
	Day7  float64 `json:"price_7d"`
	Day14 float64 `json:"price_14d"`
	Day30 float64 `json:"price_30d"`
}

// IsEmpty reports whether no tier is configured
func (t PriceTiers) IsEmpty() bool {
	return t.Day1 == 0 && t.Day2 == 0 && t.Day3 == 0 &&
		t.Day7 == 0 && t.Day14 == 0 && t.Day30 == 0
}

type Equipment struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Category          string            `json:"category"`
	Description       string            `json:"description"`
	PricePerDay       float64           `json:"price_per_day"`
	Tiers             PriceTiers        `json:"tiers"`
	Quantity          int               `json:"quantity"`
	AvailableQuantity int               `json:"available_quantity"`
	Images            []string          `json:"images"`
	Specifications    map[string]string `json:"specifications"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
