package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/service"
)

func testEquipment() *domain.Equipment {
	return &domain.Equipment{
		ID:          7,
		Name:        "Pressure Washer",
		PricePerDay: 1000,
		Tiers: domain.PriceTiers{
			Day1: 1000,
			Day2: 900,
			Day3: 800,
		},
		Quantity:          2,
		AvailableQuantity: 2,
	}
}

func validBookingRequest() service.BookingRequest {
	return service.BookingRequest{
		EquipmentID: 7,
		Name:        "Ivan",
		Phone:       "+7 900 000-00-00",
		Email:       "ivan@example.com",
		StartDate:   "2025-03-10",
		EndDate:     "2025-03-15",
	}
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		equipmentRepo := new(MockEquipmentRepo)
		notifier := new(MockNotifier)
		svc := service.NewBookingService(bookingRepo, equipmentRepo, notifier, false)

		equipmentRepo.On("GetByID", ctx, int64(7)).Return(testEquipment(), nil)
		bookingRepo.On("HasConflict", ctx, int64(7),
			domain.NewDate(2025, time.March, 10), domain.NewDate(2025, time.March, 15),
			int64(0), domain.BlockingBookingStatuses).Return(false, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		notifier.On("Send", ctx, mock.AnythingOfType("string")).Return(nil)

		b, err := svc.CreateBooking(ctx, validBookingRequest())
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, domain.BookingStatusPending, b.Status)
		// 5 days at the 3-day tier rate of 800
		assert.Equal(t, 4000.0, b.TotalPrice)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("Conflict is rejected", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		equipmentRepo := new(MockEquipmentRepo)
		svc := service.NewBookingService(bookingRepo, equipmentRepo, nil, false)

		equipmentRepo.On("GetByID", ctx, int64(7)).Return(testEquipment(), nil)
		bookingRepo.On("HasConflict", ctx, int64(7),
			mock.Anything, mock.Anything, int64(0), domain.BlockingBookingStatuses).
			Return(true, nil)

		b, err := svc.CreateBooking(ctx, validBookingRequest())
		assert.Nil(t, b)
		var cerr *service.ConflictError
		require.ErrorAs(t, err, &cerr)
		bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Pending bookings block when the policy is on", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		equipmentRepo := new(MockEquipmentRepo)
		svc := service.NewBookingService(bookingRepo, equipmentRepo, nil, true)

		blocking := []domain.BookingStatus{
			domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusActive,
		}
		equipmentRepo.On("GetByID", ctx, int64(7)).Return(testEquipment(), nil)
		bookingRepo.On("HasConflict", ctx, int64(7),
			mock.Anything, mock.Anything, int64(0), blocking).Return(false, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		_, err := svc.CreateBooking(ctx, validBookingRequest())
		require.NoError(t, err)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("Same-day range fails validation", func(t *testing.T) {
		svc := service.NewBookingService(new(MockBookingRepo), new(MockEquipmentRepo), nil, false)

		req := validBookingRequest()
		req.EndDate = req.StartDate
		_, err := svc.CreateBooking(ctx, req)
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("Reversed range fails validation", func(t *testing.T) {
		svc := service.NewBookingService(new(MockBookingRepo), new(MockEquipmentRepo), nil, false)

		req := validBookingRequest()
		req.StartDate, req.EndDate = req.EndDate, req.StartDate
		_, err := svc.CreateBooking(ctx, req)
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("Missing fields are reported together", func(t *testing.T) {
		svc := service.NewBookingService(new(MockBookingRepo), new(MockEquipmentRepo), nil, false)

		_, err := svc.CreateBooking(ctx, service.BookingRequest{})
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.GreaterOrEqual(t, len(verr.Fields), 3)
	})

	t.Run("Unknown equipment", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		equipmentRepo := new(MockEquipmentRepo)
		svc := service.NewBookingService(bookingRepo, equipmentRepo, nil, false)

		equipmentRepo.On("GetByID", ctx, int64(7)).Return(nil, sql.ErrNoRows)

		_, err := svc.CreateBooking(ctx, validBookingRequest())
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("Notifier failure does not fail the booking", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		equipmentRepo := new(MockEquipmentRepo)
		notifier := new(MockNotifier)
		svc := service.NewBookingService(bookingRepo, equipmentRepo, notifier, false)

		equipmentRepo.On("GetByID", ctx, int64(7)).Return(testEquipment(), nil)
		bookingRepo.On("HasConflict", ctx, int64(7),
			mock.Anything, mock.Anything, int64(0), domain.BlockingBookingStatuses).
			Return(false, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		notifier.On("Send", ctx, mock.AnythingOfType("string")).Return(errors.New("telegram down"))

		b, err := svc.CreateBooking(ctx, validBookingRequest())
		require.NoError(t, err)
		assert.NotNil(t, b)
	})
}

func TestBookingService_UpdateBookingStatus(t *testing.T) {
	ctx := context.Background()

	stored := func() *domain.Booking {
		return &domain.Booking{
			ID:          3,
			EquipmentID: 7,
			Name:        "Ivan",
			Phone:       "+7 900 000-00-00",
			StartDate:   domain.NewDate(2025, time.March, 10),
			EndDate:     domain.NewDate(2025, time.March, 15),
			Status:      domain.BookingStatusPending,
		}
	}

	t.Run("Confirm re-runs the conflict check excluding itself", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewBookingService(bookingRepo, new(MockEquipmentRepo), nil, false)

		b := stored()
		bookingRepo.On("GetByID", ctx, int64(3)).Return(b, nil)
		bookingRepo.On("HasConflict", ctx, int64(7), b.StartDate, b.EndDate,
			int64(3), domain.BlockingBookingStatuses).Return(false, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		updated, err := svc.UpdateBookingStatus(ctx, 3, domain.BookingStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, updated.Status)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("Confirm fails when another booking took the slot", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewBookingService(bookingRepo, new(MockEquipmentRepo), nil, false)

		bookingRepo.On("GetByID", ctx, int64(3)).Return(stored(), nil)
		bookingRepo.On("HasConflict", ctx, int64(7), mock.Anything, mock.Anything,
			int64(3), domain.BlockingBookingStatuses).Return(true, nil)

		_, err := svc.UpdateBookingStatus(ctx, 3, domain.BookingStatusConfirmed)
		var cerr *service.ConflictError
		require.ErrorAs(t, err, &cerr)
		bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Cancel skips the conflict check", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := service.NewBookingService(bookingRepo, new(MockEquipmentRepo), nil, false)

		bookingRepo.On("GetByID", ctx, int64(3)).Return(stored(), nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		updated, err := svc.UpdateBookingStatus(ctx, 3, domain.BookingStatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, updated.Status)
		bookingRepo.AssertNotCalled(t, "HasConflict",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown status is rejected", func(t *testing.T) {
		svc := service.NewBookingService(new(MockBookingRepo), new(MockEquipmentRepo), nil, false)

		_, err := svc.UpdateBookingStatus(ctx, 3, "archived")
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestBookingService_UpdateBookingDates(t *testing.T) {
	ctx := context.Background()

	t.Run("Reprices from the tier schedule", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		equipmentRepo := new(MockEquipmentRepo)
		svc := service.NewBookingService(bookingRepo, equipmentRepo, nil, false)

		b := &domain.Booking{
			ID:          3,
			EquipmentID: 7,
			StartDate:   domain.NewDate(2025, time.March, 10),
			EndDate:     domain.NewDate(2025, time.March, 15),
			TotalPrice:  4000,
			Status:      domain.BookingStatusPending,
		}
		bookingRepo.On("GetByID", ctx, int64(3)).Return(b, nil)
		bookingRepo.On("HasConflict", ctx, int64(7),
			domain.NewDate(2025, time.March, 10), domain.NewDate(2025, time.March, 12),
			int64(3), domain.BlockingBookingStatuses).Return(false, nil)
		equipmentRepo.On("GetByID", ctx, int64(7)).Return(testEquipment(), nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		updated, err := svc.UpdateBookingDates(ctx, 3, "2025-03-10", "2025-03-12")
		require.NoError(t, err)
		// 2 days at the 2-day tier rate of 900
		assert.Equal(t, 1800.0, updated.TotalPrice)
	})
}
