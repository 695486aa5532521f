package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/repository"
)

type expenseService struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(expenseRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo}
}

func (s *expenseService) CreateExpense(ctx context.Context, e *domain.Expense) error {
	if err := validateExpense(e); err != nil {
		return err
	}
	return s.expenseRepo.Create(ctx, e)
}

func (s *expenseService) GetExpense(ctx context.Context, id int64) (*domain.Expense, error) {
	e, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("expense %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, e *domain.Expense) error {
	if err := validateExpense(e); err != nil {
		return err
	}
	err := s.expenseRepo.Update(ctx, e)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("expense %d: %w", e.ID, ErrNotFound)
	}
	return err
}

func (s *expenseService) DeleteExpense(ctx context.Context, id int64) error {
	err := s.expenseRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("expense %d: %w", id, ErrNotFound)
	}
	return err
}

func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	return s.expenseRepo.List(ctx)
}

func validateExpense(e *domain.Expense) error {
	verr := &ValidationError{}
	if e.Description == "" {
		verr.add("description", "is required")
	}
	if e.Amount <= 0 {
		verr.add("amount", "must be positive")
	}
	if e.Date.IsZero() {
		verr.add("date", "is required")
	}
	return verr.orNil()
}
