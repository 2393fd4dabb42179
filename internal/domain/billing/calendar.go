package billing

import "time"

// The engine works on date-only values; all comparisons truncate to
// midnight in the timestamp's own location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// addMonthsClamped advances t by the given number of months, clamping the
// day to the end of the target month. time.AddDate is not used because it
// rolls overflow into the following month (Jan 31 + 1 month = Mar 3),
// which would break the one-payment-per-month invariant.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	total := int(month) - 1 + months
	year += total / 12
	month = time.Month(total%12 + 1)
	if max := daysInMonth(year, month); day > max {
		day = max
	}
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// withDayOfMonth pins t to the given calendar day within its month,
// clamping to the month's last day when the month is shorter.
func withDayOfMonth(t time.Time, day int) time.Time {
	year, month, _ := t.Date()
	if max := daysInMonth(year, month); day > max {
		day = max
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func sameYearMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
