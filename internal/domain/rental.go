package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusCompleted RentalStatus = "completed"
	// RentalStatusOverdue is derived only, never stored.
	RentalStatusOverdue RentalStatus = "overdue"
)

// EquipmentInstance identifies one physical unit of a catalog item inside a
// rental. Instance numbers disambiguate multiple units of the same equipment.
type EquipmentInstance struct {
	EquipmentID    int64 `json:"equipment_id"`
	InstanceNumber int   `json:"instance_number"`
}

type Rental struct {
	ID          int64 `json:"id"`
	EquipmentID int64 `json:"equipment_id"`
	// Instances holds the additional physical units beyond the primary item.
	Instances       []EquipmentInstance `json:"equipment_instances"`
	Name            string              `json:"name"`
	Phone           string              `json:"phone"`
	StartDate       Date                `json:"start_date"`
	EndDate         Date                `json:"end_date"` // inclusive
	RentalPrice     float64             `json:"rental_price"`
	Delivery        bool                `json:"delivery"`
	DeliveryAddress string              `json:"delivery_address"`
	DeliveryPrice   float64             `json:"delivery_price"`
	DeliveryCost    float64             `json:"delivery_cost"`
	Source          string              `json:"source"`
	Comment         string              `json:"comment"`
	// Status is the operator-set state; DisplayStatus is recomputed from the
	// dates on every read and is what listings and detail views show.
	Status        RentalStatus `json:"status"`
	DisplayStatus RentalStatus `json:"display_status"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// DeriveStatus computes the displayed status from the stored status and the
// rental dates. A stored "completed" is terminal; "overdue" is never stored,
// only reported.
func (r *Rental) DeriveStatus(now time.Time) RentalStatus {
	if r.Status == RentalStatusCompleted {
		return RentalStatusCompleted
	}
	today := DateOf(now)
	if today.After(r.EndDate.Time) {
		return RentalStatusOverdue
	}
	if !today.Before(r.StartDate.Time) {
		return RentalStatusActive
	}
	return RentalStatusPending
}
