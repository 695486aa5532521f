package domain

import "time"

// Locker is a storage unit rented by the month, managed from the back office.
type Locker struct {
	ID           int64     `json:"id"`
	Label        string    `json:"label"`
	Size         string    `json:"size"`
	MonthlyPrice float64   `json:"monthly_price"`
	Occupied     bool      `json:"occupied"`
	TenantName   string    `json:"tenant_name"`
	RentedUntil  Date      `json:"rented_until"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
