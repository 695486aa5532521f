package repository

import (
	"context"
	"errors"

	"rentgear-backend/internal/domain"
)

// ErrNoAvailableUnits is returned when a rental write would take more units
// of an equipment item than are currently available.
var ErrNoAvailableUnits = errors.New("no available units left")

type EquipmentRepository interface {
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Update(ctx context.Context, eq *domain.Equipment) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, category string) ([]domain.Equipment, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, status string) ([]domain.Booking, error)
	// HasConflict reports whether a booking in one of the blocking statuses
	// overlaps the inclusive date range. excludeID > 0 skips the booking
	// being edited.
	HasConflict(ctx context.Context, equipmentID int64, start, end domain.Date, excludeID int64, blocking []domain.BookingStatus) (bool, error)
}

type RentalRepository interface {
	// Create persists the rental, its full instance set and the equipment
	// availability decrement in a single transaction.
	Create(ctx context.Context, r *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	// Update replaces the rental row and its full instance set atomically;
	// a stored-status change to completed releases the equipment unit.
	Update(ctx context.Context, r *domain.Rental, previousStatus domain.RentalStatus) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Rental, error)
	ListByDateRange(ctx context.Context, from, to domain.Date) ([]domain.Rental, error)
	// MonthlyRevenue sums rental and delivery prices over rentals whose start
	// date falls in the given month; the second value sums delivery costs.
	MonthlyRevenue(ctx context.Context, year int, month int) (revenue, deliveryCosts float64, err error)
}

type ExpenseRepository interface {
	Create(ctx context.Context, e *domain.Expense) error
	GetByID(ctx context.Context, id int64) (*domain.Expense, error)
	Update(ctx context.Context, e *domain.Expense) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Expense, error)
	MonthlyTotal(ctx context.Context, year int, month int) (float64, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, query string) ([]domain.Customer, error)
}

type ArticleRepository interface {
	Create(ctx context.Context, a *domain.Article) error
	GetByID(ctx context.Context, id int64) (*domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Update(ctx context.Context, a *domain.Article) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, publishedOnly bool) ([]domain.Article, error)
}

type LockerRepository interface {
	Create(ctx context.Context, l *domain.Locker) error
	GetByID(ctx context.Context, id int64) (*domain.Locker, error)
	Update(ctx context.Context, l *domain.Locker) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Locker, error)
}

type AdminUserRepository interface {
	Create(ctx context.Context, u *domain.AdminUser) error
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
}
