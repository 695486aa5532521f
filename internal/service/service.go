package service

import (
	"context"
	"time"

	"rentgear-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	// EnsureAdminUser seeds the configured admin account on first start
	EnsureAdminUser(ctx context.Context, username, password string) error
}

type EquipmentService interface {
	CreateEquipment(ctx context.Context, eq *domain.Equipment) error
	GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, eq *domain.Equipment) error
	DeleteEquipment(ctx context.Context, id int64) error
	ListEquipment(ctx context.Context, category string) ([]domain.Equipment, error)
}

// BookingRequest is the raw public booking payload before validation
type BookingRequest struct {
	EquipmentID int64  `json:"equipment_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Comment     string `json:"comment"`
}

type BookingService interface {
	CreateBooking(ctx context.Context, req BookingRequest) (*domain.Booking, error)
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
	ListBookings(ctx context.Context, status string) ([]domain.Booking, error)
	// UpdateBookingStatus applies an operator transition; date-affecting
	// updates re-run the conflict check excluding the booking itself.
	UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
	UpdateBookingDates(ctx context.Context, id int64, startDate, endDate string) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

// RentalInput is the admin rental payload. EquipmentIDs is the legacy form:
// bare ids default to instance number 1.
type RentalInput struct {
	EquipmentID     int64                      `json:"equipment_id"`
	Instances       []domain.EquipmentInstance `json:"equipment_instances"`
	EquipmentIDs    []int64                    `json:"equipment_ids"`
	Name            string                     `json:"name"`
	Phone           string                     `json:"phone"`
	StartDate       string                     `json:"start_date"`
	EndDate         string                     `json:"end_date"`
	RentalPrice     float64                    `json:"rental_price"`
	Delivery        bool                       `json:"delivery"`
	DeliveryAddress string                     `json:"delivery_address"`
	DeliveryPrice   float64                    `json:"delivery_price"`
	DeliveryCost    float64                    `json:"delivery_cost"`
	Source          string                     `json:"source"`
	Comment         string                     `json:"comment"`
	Status          string                     `json:"status"`
}

type RentalService interface {
	CreateRental(ctx context.Context, in RentalInput) (*domain.Rental, error)
	GetRental(ctx context.Context, id int64) (*domain.Rental, error)
	UpdateRental(ctx context.Context, id int64, in RentalInput) (*domain.Rental, error)
	DeleteRental(ctx context.Context, id int64) error
	ListRentals(ctx context.Context) ([]domain.Rental, error)
}

type ExpenseService interface {
	CreateExpense(ctx context.Context, e *domain.Expense) error
	GetExpense(ctx context.Context, id int64) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, e *domain.Expense) error
	DeleteExpense(ctx context.Context, id int64) error
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, c *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
	ListCustomers(ctx context.Context, query string) ([]domain.Customer, error)
}

type ArticleService interface {
	CreateArticle(ctx context.Context, a *domain.Article) error
	GetArticle(ctx context.Context, id int64) (*domain.Article, error)
	GetPublishedArticle(ctx context.Context, slug string) (*domain.Article, error)
	UpdateArticle(ctx context.Context, a *domain.Article) error
	DeleteArticle(ctx context.Context, id int64) error
	ListArticles(ctx context.Context, publishedOnly bool) ([]domain.Article, error)
}

type LockerService interface {
	CreateLocker(ctx context.Context, l *domain.Locker) error
	GetLocker(ctx context.Context, id int64) (*domain.Locker, error)
	UpdateLocker(ctx context.Context, l *domain.Locker) error
	DeleteLocker(ctx context.Context, id int64) error
	ListLockers(ctx context.Context) ([]domain.Locker, error)
}

// MonthlyReport is the simple revenue/expense summary for one month
type MonthlyReport struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

type ReportService interface {
	MonthlySummary(ctx context.Context, year, month int) (*MonthlyReport, error)
	// DailyDigest builds the operator summary for the given day
	DailyDigest(ctx context.Context, now time.Time) (string, error)
}

// Notifier is the outbound operator channel. Send is fire-and-forget at call
// sites: failures are logged and swallowed, never surfaced to the caller.
type Notifier interface {
	Send(ctx context.Context, text string) error
}
