package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	if c.Name == "" {
		verr := &ValidationError{}
		verr.add("name", "is required")
		return verr
	}
	return s.customerRepo.Create(ctx, c)
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("customer %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	if c.Name == "" {
		verr := &ValidationError{}
		verr.add("name", "is required")
		return verr
	}
	err := s.customerRepo.Update(ctx, c)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("customer %d: %w", c.ID, ErrNotFound)
	}
	return err
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	err := s.customerRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	return err
}

func (s *customerService) ListCustomers(ctx context.Context, query string) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx, query)
}
