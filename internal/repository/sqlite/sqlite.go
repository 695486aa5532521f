package sqlite

import (
	"context"
	"database/sql"

	"rentgear-backend/internal/repository"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
	repository.EquipmentRepository
	repository.BookingRepository
	repository.RentalRepository
	repository.ExpenseRepository
	repository.CustomerRepository
	repository.ArticleRepository
	repository.LockerRepository
	repository.AdminUserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		EquipmentRepository: NewEquipmentRepository(db),
		BookingRepository:   NewBookingRepository(db),
		RentalRepository:    NewRentalRepository(db),
		ExpenseRepository:   NewExpenseRepository(db),
		CustomerRepository:  NewCustomerRepository(db),
		ArticleRepository:   NewArticleRepository(db),
		LockerRepository:    NewLockerRepository(db),
		AdminUserRepository: NewAdminUserRepository(db),
	}
}

// InitSchema creates tables and indices if they do not exist yet. SQLite is
// the only supported engine; the whole database lives in one file.
func (s *Store) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS equipment (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		price_per_day REAL NOT NULL DEFAULT 0,
		price_1d REAL NOT NULL DEFAULT 0,
		price_2d REAL NOT NULL DEFAULT 0,
		price_3d REAL NOT NULL DEFAULT 0,
		price_7d REAL NOT NULL DEFAULT 0,
		price_14d REAL NOT NULL DEFAULT 0,
		price_30d REAL NOT NULL DEFAULT 0,
		quantity INTEGER NOT NULL DEFAULT 1,
		available_quantity INTEGER NOT NULL DEFAULT 1,
		images TEXT NOT NULL DEFAULT '[]',
		specifications TEXT NOT NULL DEFAULT '{}',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_equipment_category ON equipment(category)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		equipment_id INTEGER NOT NULL REFERENCES equipment(id),
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		total_price REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending',
		comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_equipment_dates ON bookings(equipment_id, start_date, end_date)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)`,

	`CREATE TABLE IF NOT EXISTS rentals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		equipment_id INTEGER NOT NULL REFERENCES equipment(id),
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		rental_price REAL NOT NULL DEFAULT 0,
		delivery INTEGER NOT NULL DEFAULT 0,
		delivery_address TEXT NOT NULL DEFAULT '',
		delivery_price REAL NOT NULL DEFAULT 0,
		delivery_cost REAL NOT NULL DEFAULT 0,
		source TEXT NOT NULL DEFAULT '',
		comment TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rentals_dates ON rentals(start_date, end_date)`,

	`CREATE TABLE IF NOT EXISTS rental_equipment_items (
		rental_id INTEGER NOT NULL REFERENCES rentals(id) ON DELETE CASCADE,
		equipment_id INTEGER NOT NULL REFERENCES equipment(id),
		instance_number INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (rental_id, equipment_id, instance_number)
	)`,

	`CREATE TABLE IF NOT EXISTS expenses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		description TEXT NOT NULL,
		amount REAL NOT NULL DEFAULT 0,
		date TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)`,

	`CREATE TABLE IF NOT EXISTS customers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS articles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		body TEXT NOT NULL DEFAULT '',
		published INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS lockers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		label TEXT NOT NULL,
		size TEXT NOT NULL DEFAULT '',
		monthly_price REAL NOT NULL DEFAULT 0,
		occupied INTEGER NOT NULL DEFAULT 0,
		tenant_name TEXT NOT NULL DEFAULT '',
		rented_until TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS admin_users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
}
