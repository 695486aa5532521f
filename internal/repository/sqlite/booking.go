package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, equipment_id, name, phone, email, start_date, end_date,
	total_price, status, comment, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	now := time.Now()
	query := `INSERT INTO bookings (equipment_id, name, phone, email, start_date, end_date,
	          total_price, status, comment, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, b.EquipmentID, b.Name, b.Phone, b.Email,
		b.StartDate, b.EndDate, b.TotalPrice, b.Status, b.Comment, now, now)
	if err != nil {
		return err
	}
	b.ID, err = res.LastInsertId()
	b.CreatedAt = now
	b.UpdatedAt = now
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	return scanBooking(r.db.QueryRowContext(ctx, query, id))
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET equipment_id=?, name=?, phone=?, email=?, start_date=?,
	          end_date=?, total_price=?, status=?, comment=?, updated_at=? WHERE id=?`
	res, err := r.db.ExecContext(ctx, query, b.EquipmentID, b.Name, b.Phone, b.Email,
		b.StartDate, b.EndDate, b.TotalPrice, b.Status, b.Comment, time.Now(), b.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id=?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *bookingRepository) List(ctx context.Context, status string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY start_date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// HasConflict runs the inclusive-inclusive overlap test: two ranges conflict
// iff s1 <= e2 AND e1 >= s2. Dates are ISO strings so TEXT comparison is
// chronological.
func (r *bookingRepository) HasConflict(ctx context.Context, equipmentID int64, start, end domain.Date, excludeID int64, blocking []domain.BookingStatus) (bool, error) {
	if len(blocking) == 0 {
		return false, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(blocking)), ",")
	query := `SELECT COUNT(*) FROM bookings
	          WHERE equipment_id = ?
	            AND status IN (` + placeholders + `)
	            AND start_date <= ? AND end_date >= ?`
	args := []any{equipmentID}
	for _, s := range blocking {
		args = append(args, string(s))
	}
	args = append(args, end, start)
	if excludeID > 0 {
		query += ` AND id != ?`
		args = append(args, excludeID)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.EquipmentID, &b.Name, &b.Phone, &b.Email,
		&b.StartDate, &b.EndDate, &b.TotalPrice, &b.Status, &b.Comment,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}
