package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/repository"
)

type lockerService struct {
	lockerRepo repository.LockerRepository
}

func NewLockerService(lockerRepo repository.LockerRepository) LockerService {
	return &lockerService{lockerRepo: lockerRepo}
}

func (s *lockerService) CreateLocker(ctx context.Context, l *domain.Locker) error {
	if err := validateLocker(l); err != nil {
		return err
	}
	return s.lockerRepo.Create(ctx, l)
}

func (s *lockerService) GetLocker(ctx context.Context, id int64) (*domain.Locker, error) {
	l, err := s.lockerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("locker %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return l, nil
}

func (s *lockerService) UpdateLocker(ctx context.Context, l *domain.Locker) error {
	if err := validateLocker(l); err != nil {
		return err
	}
	err := s.lockerRepo.Update(ctx, l)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("locker %d: %w", l.ID, ErrNotFound)
	}
	return err
}

func (s *lockerService) DeleteLocker(ctx context.Context, id int64) error {
	err := s.lockerRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("locker %d: %w", id, ErrNotFound)
	}
	return err
}

func (s *lockerService) ListLockers(ctx context.Context) ([]domain.Locker, error) {
	return s.lockerRepo.List(ctx)
}

func validateLocker(l *domain.Locker) error {
	verr := &ValidationError{}
	if l.Label == "" {
		verr.add("label", "is required")
	}
	if l.MonthlyPrice < 0 {
		verr.add("monthly_price", "must not be negative")
	}
	if l.Occupied && l.TenantName == "" {
		verr.add("tenant_name", "is required for occupied lockers")
	}
	return verr.orNil()
}
