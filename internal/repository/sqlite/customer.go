package sqlite

import (
	"context"
	"database/sql"
	"time"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	now := time.Now()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO customers (name, phone, email, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		c.Name, c.Phone, c.Email, c.Notes, now, now)
	if err != nil {
		return err
	}
	c.ID, err = res.LastInsertId()
	c.CreatedAt = now
	c.UpdatedAt = now
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, phone, email, notes, created_at, updated_at FROM customers WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE customers SET name=?, phone=?, email=?, notes=?, updated_at=? WHERE id=?`,
		c.Name, c.Phone, c.Email, c.Notes, time.Now(), c.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id=?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *customerRepository) List(ctx context.Context, query string) ([]domain.Customer, error) {
	sqlQuery := `SELECT id, name, phone, email, notes, created_at, updated_at FROM customers`
	var args []any
	if query != "" {
		sqlQuery += ` WHERE name LIKE '%' || ? || '%' OR phone LIKE '%' || ? || '%'`
		args = append(args, query, query)
	}
	sqlQuery += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
