package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/repository"
)

type expenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	now := time.Now()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (description, amount, date, category, created_at) VALUES (?, ?, ?, ?, ?)`,
		e.Description, e.Amount, e.Date, e.Category, now)
	if err != nil {
		return err
	}
	e.ID, err = res.LastInsertId()
	e.CreatedAt = now
	return err
}

func (r *expenseRepository) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	e := &domain.Expense{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, description, amount, date, category, created_at FROM expenses WHERE id = ?`, id).
		Scan(&e.ID, &e.Description, &e.Amount, &e.Date, &e.Category, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *expenseRepository) Update(ctx context.Context, e *domain.Expense) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET description=?, amount=?, date=?, category=? WHERE id=?`,
		e.Description, e.Amount, e.Date, e.Category, e.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *expenseRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id=?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *expenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, amount, date, category, created_at FROM expenses ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Date, &e.Category, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *expenseRepository) MonthlyTotal(ctx context.Context, year, month int) (float64, error) {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	var total float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date LIKE ? || '%'`, prefix).
		Scan(&total)
	return total, err
}
