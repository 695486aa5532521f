package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// BlockingBookingStatuses are the stored statuses that make a booking count
// in the availability check. Pending bookings join the set only when the
// block_on_pending policy is enabled.
var BlockingBookingStatuses = []BookingStatus{BookingStatusConfirmed, BookingStatusActive}

// Booking is a single-item reservation taken from the public site.
// Status transitions are operator-driven; nothing changes it automatically.
type Booking struct {
	ID          int64         `json:"id"`
	EquipmentID int64         `json:"equipment_id"`
	Name        string        `json:"name"`
	Phone       string        `json:"phone"`
	Email       string        `json:"email"`
	StartDate   Date          `json:"start_date"`
	EndDate     Date          `json:"end_date"` // inclusive
	TotalPrice  float64       `json:"total_price"`
	Status      BookingStatus `json:"status"`
	Comment     string        `json:"comment"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
