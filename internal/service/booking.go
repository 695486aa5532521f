package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/logger"
	"rentgear-backend/internal/metrics"
	"rentgear-backend/internal/repository"
	"rentgear-backend/internal/utils"
)

type bookingService struct {
	bookingRepo   repository.BookingRepository
	equipmentRepo repository.EquipmentRepository
	notifier      Notifier
	// blockOnPending widens the conflict check to unconfirmed bookings.
	// The default keeps the optimistic-hold behavior: two pending requests
	// for the same slot may coexist until an operator confirms one.
	blockOnPending bool
}

func NewBookingService(bookingRepo repository.BookingRepository, equipmentRepo repository.EquipmentRepository, notifier Notifier, blockOnPending bool) BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		equipmentRepo:  equipmentRepo,
		notifier:       notifier,
		blockOnPending: blockOnPending,
	}
}

func (s *bookingService) blockingStatuses() []domain.BookingStatus {
	blocking := domain.BlockingBookingStatuses
	if s.blockOnPending {
		blocking = append([]domain.BookingStatus{domain.BookingStatusPending}, blocking...)
	}
	return blocking
}

func (s *bookingService) CreateBooking(ctx context.Context, req BookingRequest) (*domain.Booking, error) {
	verr := &ValidationError{}
	if req.Name == "" {
		verr.add("name", "is required")
	}
	if req.Phone == "" {
		verr.add("phone", "is required")
	}
	if req.EquipmentID <= 0 {
		verr.add("equipment_id", "is required")
	}
	start, end, durationDays := validateDateRange(verr, req.StartDate, req.EndDate)
	if err := verr.orNil(); err != nil {
		metrics.IncBookingRejected("validation")
		return nil, err
	}

	eq, err := s.equipmentRepo.GetByID(ctx, req.EquipmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			metrics.IncBookingRejected("unknown_equipment")
			return nil, fmt.Errorf("equipment %d: %w", req.EquipmentID, ErrNotFound)
		}
		return nil, err
	}

	conflict, err := s.bookingRepo.HasConflict(ctx, eq.ID, start, end, 0, s.blockingStatuses())
	if err != nil {
		return nil, err
	}
	if conflict {
		metrics.IncBookingRejected("conflict")
		return nil, conflictf("%s is already booked between %s and %s", eq.Name, start, end)
	}

	booking := &domain.Booking{
		EquipmentID: eq.ID,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		StartDate:   start,
		EndDate:     end,
		TotalPrice:  utils.TotalPrice(eq, durationDays),
		Status:      domain.BookingStatusPending,
		Comment:     req.Comment,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	metrics.IncBookingCreated()

	s.notify(ctx, fmt.Sprintf("New booking #%d\n%s, %s\n%s: %s — %s (%d days)\nTotal: %.2f",
		booking.ID, booking.Name, booking.Phone, eq.Name, start, end, durationDays, booking.TotalPrice))

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (s *bookingService) ListBookings(ctx context.Context, status string) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx, status)
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	switch status {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusActive,
		domain.BookingStatusCompleted, domain.BookingStatusCancelled:
	default:
		verr := &ValidationError{}
		verr.add("status", fmt.Sprintf("unknown status %q", status))
		return nil, verr
	}

	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	// Confirming a booking claims the slot; make sure nobody else holds it.
	if status == domain.BookingStatusConfirmed && b.Status != domain.BookingStatusConfirmed {
		conflict, err := s.bookingRepo.HasConflict(ctx, b.EquipmentID, b.StartDate, b.EndDate, b.ID, domain.BlockingBookingStatuses)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, conflictf("cannot confirm: dates %s — %s are already taken", b.StartDate, b.EndDate)
		}
	}

	b.Status = status
	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookingService) UpdateBookingDates(ctx context.Context, id int64, startDate, endDate string) (*domain.Booking, error) {
	verr := &ValidationError{}
	start, end, durationDays := validateDateRange(verr, startDate, endDate)
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	// Exclude the booking itself so an edit never conflicts with its own row
	conflict, err := s.bookingRepo.HasConflict(ctx, b.EquipmentID, start, end, b.ID, s.blockingStatuses())
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, conflictf("dates %s — %s are already taken", start, end)
	}

	eq, err := s.equipmentRepo.GetByID(ctx, b.EquipmentID)
	if err != nil {
		return nil, err
	}

	b.StartDate = start
	b.EndDate = end
	b.TotalPrice = utils.TotalPrice(eq, durationDays)
	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id int64) error {
	err := s.bookingRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("booking %d: %w", id, ErrNotFound)
	}
	return err
}

// notify dispatches the operator message without blocking the caller's
// outcome: failures are logged and swallowed.
func (s *bookingService) notify(ctx context.Context, text string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Send(ctx, text); err != nil {
		logger.Error("Failed to send booking notification", "error", err)
	}
}

// validateDateRange parses both dates, rejects reversed and same-day ranges
// and returns the duration in whole days.
func validateDateRange(verr *ValidationError, startDate, endDate string) (domain.Date, domain.Date, int) {
	var start, end domain.Date
	var err error

	if startDate == "" {
		verr.add("start_date", "is required")
	} else if start, err = domain.ParseDate(startDate); err != nil {
		verr.add("start_date", err.Error())
	}
	if endDate == "" {
		verr.add("end_date", "is required")
	} else if end, err = domain.ParseDate(endDate); err != nil {
		verr.add("end_date", err.Error())
	}
	if start.IsZero() || end.IsZero() {
		return start, end, 0
	}

	durationDays, err := utils.RentalDuration(start, end)
	if err != nil {
		verr.add("end_date", "must not be before start date")
		return start, end, 0
	}
	if durationDays < 1 {
		verr.add("end_date", "rental must span at least one full day")
		return start, end, 0
	}
	return start, end, durationDays
}
