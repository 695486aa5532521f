package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/repository"
	"rentgear-backend/internal/utils"
)

type rentalService struct {
	rentalRepo    repository.RentalRepository
	equipmentRepo repository.EquipmentRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, equipmentRepo repository.EquipmentRepository) RentalService {
	return &rentalService{
		rentalRepo:    rentalRepo,
		equipmentRepo: equipmentRepo,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, in RentalInput) (*domain.Rental, error) {
	rt, durationDays, err := s.buildRental(ctx, in)
	if err != nil {
		return nil, err
	}

	// Admin-entered price wins; otherwise resolve from the tier schedule
	if rt.RentalPrice == 0 {
		eq, err := s.equipmentRepo.GetByID(ctx, rt.EquipmentID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("equipment %d: %w", rt.EquipmentID, ErrNotFound)
			}
			return nil, err
		}
		rt.RentalPrice = utils.TotalPrice(eq, durationDays)
	}

	if err := s.rentalRepo.Create(ctx, rt); err != nil {
		if errors.Is(err, repository.ErrNoAvailableUnits) {
			return nil, conflictf("%s", err.Error())
		}
		return nil, err
	}
	rt.DisplayStatus = rt.DeriveStatus(time.Now())
	return rt, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int64) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("rental %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	rt.DisplayStatus = rt.DeriveStatus(time.Now())
	return rt, nil
}

func (s *rentalService) UpdateRental(ctx context.Context, id int64, in RentalInput) (*domain.Rental, error) {
	existing, err := s.GetRental(ctx, id)
	if err != nil {
		return nil, err
	}

	rt, _, err := s.buildRental(ctx, in)
	if err != nil {
		return nil, err
	}
	rt.ID = existing.ID
	rt.CreatedAt = existing.CreatedAt

	if err := s.rentalRepo.Update(ctx, rt, existing.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("rental %d: %w", id, ErrNotFound)
		}
		if errors.Is(err, repository.ErrNoAvailableUnits) {
			return nil, conflictf("%s", err.Error())
		}
		return nil, err
	}
	rt.DisplayStatus = rt.DeriveStatus(time.Now())
	return rt, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, id int64) error {
	err := s.rentalRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("rental %d: %w", id, ErrNotFound)
	}
	return err
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range rentals {
		rentals[i].DisplayStatus = rentals[i].DeriveStatus(now)
	}
	return rentals, nil
}

// buildRental validates the input and normalizes the instance set. Legacy
// payloads carrying bare equipment id lists default to instance number 1.
func (s *rentalService) buildRental(ctx context.Context, in RentalInput) (*domain.Rental, int, error) {
	verr := &ValidationError{}
	if in.Name == "" {
		verr.add("name", "is required")
	}
	if in.Phone == "" {
		verr.add("phone", "is required")
	}
	if in.EquipmentID <= 0 {
		verr.add("equipment_id", "is required")
	}
	start, end, durationDays := validateDateRange(verr, in.StartDate, in.EndDate)

	status := domain.RentalStatus(in.Status)
	if in.Status == "" {
		status = domain.RentalStatusPending
	}
	switch status {
	case domain.RentalStatusPending, domain.RentalStatusActive, domain.RentalStatusCompleted:
	default:
		// overdue is derived from dates, never accepted as a stored state
		verr.add("status", fmt.Sprintf("cannot store status %q", in.Status))
	}

	instances := in.Instances
	if len(instances) == 0 && len(in.EquipmentIDs) > 0 {
		instances = make([]domain.EquipmentInstance, 0, len(in.EquipmentIDs))
		for _, id := range in.EquipmentIDs {
			instances = append(instances, domain.EquipmentInstance{EquipmentID: id, InstanceNumber: 1})
		}
	}
	for i := range instances {
		if instances[i].EquipmentID <= 0 {
			verr.add("equipment_instances", fmt.Sprintf("item %d: equipment_id is required", i))
		}
		if instances[i].InstanceNumber <= 0 {
			instances[i].InstanceNumber = 1
		}
	}

	if in.Delivery && in.DeliveryAddress == "" {
		verr.add("delivery_address", "is required for delivery rentals")
	}

	if err := verr.orNil(); err != nil {
		return nil, 0, err
	}

	return &domain.Rental{
		EquipmentID:     in.EquipmentID,
		Instances:       instances,
		Name:            in.Name,
		Phone:           in.Phone,
		StartDate:       start,
		EndDate:         end,
		RentalPrice:     in.RentalPrice,
		Delivery:        in.Delivery,
		DeliveryAddress: in.DeliveryAddress,
		DeliveryPrice:   in.DeliveryPrice,
		DeliveryCost:    in.DeliveryCost,
		Source:          in.Source,
		Comment:         in.Comment,
		Status:          status,
	}, durationDays, nil
}
