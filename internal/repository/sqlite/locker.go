package sqlite

import (
	"context"
	"database/sql"
	"time"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/repository"
)

type lockerRepository struct {
	db *sql.DB
}

func NewLockerRepository(db *sql.DB) repository.LockerRepository {
	return &lockerRepository{db: db}
}

const lockerColumns = `id, label, size, monthly_price, occupied, tenant_name, rented_until, created_at, updated_at`

func (r *lockerRepository) Create(ctx context.Context, l *domain.Locker) error {
	now := time.Now()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO lockers (label, size, monthly_price, occupied, tenant_name, rented_until, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		l.Label, l.Size, l.MonthlyPrice, l.Occupied, l.TenantName, lockerUntil(l), now, now)
	if err != nil {
		return err
	}
	l.ID, err = res.LastInsertId()
	l.CreatedAt = now
	l.UpdatedAt = now
	return err
}

func (r *lockerRepository) GetByID(ctx context.Context, id int64) (*domain.Locker, error) {
	return scanLocker(r.db.QueryRowContext(ctx,
		`SELECT `+lockerColumns+` FROM lockers WHERE id = ?`, id))
}

func (r *lockerRepository) Update(ctx context.Context, l *domain.Locker) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE lockers SET label=?, size=?, monthly_price=?, occupied=?, tenant_name=?, rented_until=?, updated_at=? WHERE id=?`,
		l.Label, l.Size, l.MonthlyPrice, l.Occupied, l.TenantName, lockerUntil(l), time.Now(), l.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *lockerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lockers WHERE id=?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *lockerRepository) List(ctx context.Context) ([]domain.Locker, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+lockerColumns+` FROM lockers ORDER BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lockers []domain.Locker
	for rows.Next() {
		l, err := scanLocker(rows)
		if err != nil {
			return nil, err
		}
		lockers = append(lockers, *l)
	}
	return lockers, rows.Err()
}

// lockerUntil keeps unset dates as empty strings in the TEXT column
func lockerUntil(l *domain.Locker) string {
	if l.RentedUntil.IsZero() {
		return ""
	}
	return l.RentedUntil.String()
}

func scanLocker(row rowScanner) (*domain.Locker, error) {
	l := &domain.Locker{}
	err := row.Scan(&l.ID, &l.Label, &l.Size, &l.MonthlyPrice, &l.Occupied,
		&l.TenantName, &l.RentedUntil, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}
