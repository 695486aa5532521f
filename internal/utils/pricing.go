package utils

import (
	"fmt"

	"rentgear-backend/internal/domain"
)

// tierThresholds are checked in descending order; the first threshold that is
// <= the rental duration wins. A 5-day rental lands on the 3-day tier.
var tierThresholds = []int{30, 14, 7, 3, 2, 1}

// tierRate returns the configured rate for a threshold, zero if absent
func tierRate(tiers domain.PriceTiers, threshold int) float64 {
	switch threshold {
	case 30:
		return tiers.Day30
	case 14:
		return tiers.Day14
	case 7:
		return tiers.Day7
	case 3:
		return tiers.Day3
	case 2:
		return tiers.Day2
	case 1:
		return tiers.Day1
	}
	return 0
}

// ResolveDailyRate maps a rental duration in whole days to a per-day rate
// using the equipment's tier schedule. Without a schedule, or when no tier
// matches, the flat per-day price applies. Tiers with a zero rate are skipped
// so a partially filled schedule still resolves.
func ResolveDailyRate(eq *domain.Equipment, durationDays int) float64 {
	if eq.Tiers.IsEmpty() {
		return eq.PricePerDay
	}
	for _, threshold := range tierThresholds {
		if threshold > durationDays {
			continue
		}
		if rate := tierRate(eq.Tiers, threshold); rate > 0 {
			return rate
		}
	}
	return eq.PricePerDay
}

// RentalDuration returns the duration of a date range in whole days,
// ceil((end - start) / 1 day). A same-day range yields zero; callers must
// reject durations below one day before pricing.
func RentalDuration(start, end domain.Date) (int, error) {
	if end.Before(start.Time) {
		return 0, fmt.Errorf("end date %s is before start date %s", end, start)
	}
	hours := end.Sub(start.Time).Hours()
	days := int(hours / 24)
	if float64(days*24) < hours {
		days++
	}
	return days, nil
}

// TotalPrice computes the rental total for a duration at the resolved rate
func TotalPrice(eq *domain.Equipment, durationDays int) float64 {
	return float64(durationDays) * ResolveDailyRate(eq, durationDays)
}

// RangesOverlap reports whether two inclusive date ranges intersect:
// containment, partial overlap on either edge, and exact match all count.
func RangesOverlap(s1, e1, s2, e2 domain.Date) bool {
	return !s1.After(e2.Time) && !e1.Before(s2.Time)
}
