package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rentgear-backend/internal/domain"
	"rentgear-backend/internal/repository"
)

type reportService struct {
	rentalRepo  repository.RentalRepository
	expenseRepo repository.ExpenseRepository
}

func NewReportService(rentalRepo repository.RentalRepository, expenseRepo repository.ExpenseRepository) ReportService {
	return &reportService{
		rentalRepo:  rentalRepo,
		expenseRepo: expenseRepo,
	}
}

// MonthlySummary computes revenue (rental + delivery prices of rentals
// starting in the month), expenses (ledger rows plus delivery costs) and the
// resulting profit.
func (s *reportService) MonthlySummary(ctx context.Context, year, month int) (*MonthlyReport, error) {
	if month < 1 || month > 12 {
		verr := &ValidationError{}
		verr.add("month", "must be between 1 and 12")
		return nil, verr
	}

	revenue, deliveryCosts, err := s.rentalRepo.MonthlyRevenue(ctx, year, month)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.MonthlyTotal(ctx, year, month)
	if err != nil {
		return nil, err
	}
	expenses += deliveryCosts

	return &MonthlyReport{
		Year:     year,
		Month:    month,
		Revenue:  revenue,
		Expenses: expenses,
		Profit:   revenue - expenses,
	}, nil
}

// DailyDigest builds the plain-text operator summary: rentals touching today,
// what starts and ends, overdue returns, plus month-to-date revenue. The scan
// is read-only; running it twice just produces the same text again.
func (s *reportService) DailyDigest(ctx context.Context, now time.Time) (string, error) {
	today := domain.DateOf(now)

	// Pull everything overlapping a window wide enough to include overdue
	// rentals from the last month.
	windowStart := domain.DateOf(now.AddDate(0, -1, 0))
	rentals, err := s.rentalRepo.ListByDateRange(ctx, windowStart, today)
	if err != nil {
		return "", err
	}

	var active, starting, ending, overdue int
	for i := range rentals {
		rt := &rentals[i]
		switch rt.DeriveStatus(now) {
		case domain.RentalStatusActive:
			active++
			if rt.StartDate.Equal(today.Time) {
				starting++
			}
			if rt.EndDate.Equal(today.Time) {
				ending++
			}
		case domain.RentalStatusOverdue:
			overdue++
		}
	}

	report, err := s.MonthlySummary(ctx, now.Year(), int(now.Month()))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Daily summary for %s\n", today)
	fmt.Fprintf(&b, "Active rentals: %d\n", active)
	fmt.Fprintf(&b, "Starting today: %d\n", starting)
	fmt.Fprintf(&b, "Due back today: %d\n", ending)
	if overdue > 0 {
		fmt.Fprintf(&b, "OVERDUE: %d\n", overdue)
	}
	fmt.Fprintf(&b, "Revenue this month: %.2f", report.Revenue)
	return b.String(), nil
}
