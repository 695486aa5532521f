package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/service"
)

func TestReportService_MonthlySummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Delivery costs count as expenses", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		expenseRepo := new(MockExpenseRepo)
		svc := service.NewReportService(rentalRepo, expenseRepo)

		rentalRepo.On("MonthlyRevenue", ctx, 2025, 3).Return(50000.0, 3000.0, nil)
		expenseRepo.On("MonthlyTotal", ctx, 2025, 3).Return(12000.0, nil)

		report, err := svc.MonthlySummary(ctx, 2025, 3)
		require.NoError(t, err)
		assert.Equal(t, 50000.0, report.Revenue)
		assert.Equal(t, 15000.0, report.Expenses)
		assert.Equal(t, 35000.0, report.Profit)
	})

	t.Run("Month out of range", func(t *testing.T) {
		svc := service.NewReportService(new(MockRentalRepo), new(MockExpenseRepo))

		for _, month := range []int{0, 13, -1} {
			_, err := svc.MonthlySummary(ctx, 2025, month)
			var verr *service.ValidationError
			require.ErrorAs(t, err, &verr, "month %d", month)
		}
	})
}

func TestReportService_DailyDigest(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)
	today := domain.DateOf(now)
	windowStart := domain.DateOf(now.AddDate(0, -1, 0))

	rentalRepo := new(MockRentalRepo)
	expenseRepo := new(MockExpenseRepo)
	svc := service.NewReportService(rentalRepo, expenseRepo)

	rentalRepo.On("ListByDateRange", ctx, windowStart, today).Return([]domain.Rental{
		// active, started earlier
		{ID: 1, Status: domain.RentalStatusPending,
			StartDate: domain.NewDate(2025, time.June, 10), EndDate: domain.NewDate(2025, time.June, 20)},
		// starts today
		{ID: 2, Status: domain.RentalStatusPending,
			StartDate: today, EndDate: domain.NewDate(2025, time.June, 18)},
		// due back today
		{ID: 3, Status: domain.RentalStatusActive,
			StartDate: domain.NewDate(2025, time.June, 12), EndDate: today},
		// overdue
		{ID: 4, Status: domain.RentalStatusActive,
			StartDate: domain.NewDate(2025, time.June, 1), EndDate: domain.NewDate(2025, time.June, 10)},
		// completed, ignored
		{ID: 5, Status: domain.RentalStatusCompleted,
			StartDate: domain.NewDate(2025, time.June, 1), EndDate: domain.NewDate(2025, time.June, 10)},
	}, nil)
	rentalRepo.On("MonthlyRevenue", ctx, 2025, 6).Return(42000.0, 0.0, nil)
	expenseRepo.On("MonthlyTotal", ctx, 2025, 6).Return(0.0, nil)

	text, err := svc.DailyDigest(ctx, now)
	require.NoError(t, err)
	assert.Contains(t, text, "Daily summary for 2025-06-15")
	assert.Contains(t, text, "Active rentals: 3")
	assert.Contains(t, text, "Starting today: 1")
	assert.Contains(t, text, "Due back today: 1")
	assert.Contains(t, text, "OVERDUE: 1")
	assert.Contains(t, text, "Revenue this month: 42000.00")
}
