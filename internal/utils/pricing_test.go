package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentgear-backend/internal/domain"
)

func tieredEquipment() *domain.Equipment {
	return &domain.Equipment{
		ID:          1,
		Name:        "Generator",
		PricePerDay: 1000,
		Tiers: domain.PriceTiers{
			Day1:  1000,
			Day2:  900,
			Day3:  800,
			Day7:  600,
			Day14: 500,
			Day30: 400,
		},
	}
}

func TestResolveDailyRate(t *testing.T) {
	eq := tieredEquipment()

	t.Run("Exact thresholds", func(t *testing.T) {
		assert.Equal(t, 1000.0, ResolveDailyRate(eq, 1))
		assert.Equal(t, 900.0, ResolveDailyRate(eq, 2))
		assert.Equal(t, 800.0, ResolveDailyRate(eq, 3))
		assert.Equal(t, 600.0, ResolveDailyRate(eq, 7))
		assert.Equal(t, 500.0, ResolveDailyRate(eq, 14))
		assert.Equal(t, 400.0, ResolveDailyRate(eq, 30))
	})

	t.Run("Between thresholds the lower tier wins", func(t *testing.T) {
		// 5 days lands on the 3-day tier
		assert.Equal(t, 800.0, ResolveDailyRate(eq, 5))
		assert.Equal(t, 600.0, ResolveDailyRate(eq, 10))
		assert.Equal(t, 400.0, ResolveDailyRate(eq, 45))
	})

	t.Run("No schedule falls back to flat price", func(t *testing.T) {
		flat := &domain.Equipment{PricePerDay: 750}
		assert.Equal(t, 750.0, ResolveDailyRate(flat, 1))
		assert.Equal(t, 750.0, ResolveDailyRate(flat, 30))
	})

	t.Run("Zero tiers are skipped", func(t *testing.T) {
		partial := &domain.Equipment{
			PricePerDay: 1000,
			Tiers:       domain.PriceTiers{Day7: 600},
		}
		// 10 days hits the 7-day tier; below that nothing matches and
		// the flat price applies
		assert.Equal(t, 600.0, ResolveDailyRate(partial, 10))
		assert.Equal(t, 1000.0, ResolveDailyRate(partial, 3))
	})

	t.Run("Rate never increases with duration", func(t *testing.T) {
		prev := ResolveDailyRate(eq, 1)
		for days := 2; days <= 60; days++ {
			rate := ResolveDailyRate(eq, days)
			assert.LessOrEqual(t, rate, prev, "rate went up at %d days", days)
			prev = rate
		}
	})
}

func TestRentalDuration(t *testing.T) {
	t.Run("Whole days", func(t *testing.T) {
		start := domain.NewDate(2025, time.March, 10)
		end := domain.NewDate(2025, time.March, 15)
		days, err := RentalDuration(start, end)
		require.NoError(t, err)
		assert.Equal(t, 5, days)
	})

	t.Run("Same day yields zero", func(t *testing.T) {
		d := domain.NewDate(2025, time.March, 10)
		days, err := RentalDuration(d, d)
		require.NoError(t, err)
		assert.Equal(t, 0, days)
	})

	t.Run("Reversed range is an error", func(t *testing.T) {
		start := domain.NewDate(2025, time.March, 15)
		end := domain.NewDate(2025, time.March, 10)
		_, err := RentalDuration(start, end)
		assert.Error(t, err)
	})
}

func TestTotalPrice(t *testing.T) {
	eq := tieredEquipment()
	// 5 days at the 3-day tier rate
	assert.Equal(t, 4000.0, TotalPrice(eq, 5))
	assert.Equal(t, 1000.0, TotalPrice(eq, 1))
}

func TestRangesOverlap(t *testing.T) {
	d := func(day int) domain.Date { return domain.NewDate(2025, time.March, day) }

	tests := []struct {
		name           string
		s1, e1, s2, e2 domain.Date
		want           bool
	}{
		{"Partial overlap", d(10), d(15), d(14), d(20), true},
		{"Containment", d(10), d(20), d(12), d(14), true},
		{"Shared edge day", d(10), d(15), d(15), d(20), true},
		{"Identical", d(10), d(15), d(10), d(15), true},
		{"Adjacent", d(10), d(14), d(15), d(20), false},
		{"Disjoint", d(1), d(5), d(10), d(20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.s1, tt.e1, tt.s2, tt.e2))
			// overlap is symmetric
			assert.Equal(t, tt.want, RangesOverlap(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}
