package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/repository"
)

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo}
}

func (s *equipmentService) CreateEquipment(ctx context.Context, eq *domain.Equipment) error {
	if eq.AvailableQuantity == 0 {
		eq.AvailableQuantity = eq.Quantity
	}
	if err := validateEquipment(eq); err != nil {
		return err
	}
	return s.equipmentRepo.Create(ctx, eq)
}

func (s *equipmentService) GetEquipment(ctx context.Context, id int64) (*domain.Equipment, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("equipment %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return eq, nil
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, eq *domain.Equipment) error {
	if err := validateEquipment(eq); err != nil {
		return err
	}
	err := s.equipmentRepo.Update(ctx, eq)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("equipment %d: %w", eq.ID, ErrNotFound)
	}
	return err
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, id int64) error {
	err := s.equipmentRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("equipment %d: %w", id, ErrNotFound)
	}
	return err
}

func (s *equipmentService) ListEquipment(ctx context.Context, category string) ([]domain.Equipment, error) {
	return s.equipmentRepo.List(ctx, category)
}

func validateEquipment(eq *domain.Equipment) error {
	verr := &ValidationError{}
	if eq.Name == "" {
		verr.add("name", "is required")
	}
	if eq.PricePerDay <= 0 {
		verr.add("price_per_day", "must be positive")
	}
	if eq.Quantity < 1 {
		verr.add("quantity", "must be at least 1")
	}
	if eq.AvailableQuantity < 0 {
		verr.add("available_quantity", "must not be negative")
	}
	if eq.AvailableQuantity > eq.Quantity {
		verr.add("available_quantity", "must not exceed total quantity")
	}
	return verr.orNil()
}
