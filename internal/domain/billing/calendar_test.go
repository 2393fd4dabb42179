package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		months   int
		expected time.Time
	}{
		{
			name:     "mid_month_advance",
			start:    date(2024, time.January, 15),
			months:   1,
			expected: date(2024, time.February, 15),
		},
		{
			name:     "clamps_to_leap_february",
			start:    date(2024, time.January, 31),
			months:   1,
			expected: date(2024, time.February, 29),
		},
		{
			name:     "clamps_to_non_leap_february",
			start:    date(2023, time.January, 31),
			months:   1,
			expected: date(2023, time.February, 28),
		},
		{
			name:     "crosses_year_boundary",
			start:    date(2024, time.November, 30),
			months:   3,
			expected: date(2025, time.February, 28),
		},
		{
			name:     "quarterly_cadence",
			start:    date(2024, time.March, 31),
			months:   3,
			expected: date(2024, time.June, 30),
		},
		{
			name:     "twelve_months",
			start:    date(2024, time.February, 29),
			months:   12,
			expected: date(2025, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, addMonthsClamped(tt.start, tt.months))
		})
	}
}

func TestWithDayOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		day      int
		expected time.Time
	}{
		{
			name:     "moves_earlier_in_month",
			start:    date(2024, time.February, 10),
			day:      5,
			expected: date(2024, time.February, 5),
		},
		{
			name:     "moves_later_in_month",
			start:    date(2024, time.February, 5),
			day:      20,
			expected: date(2024, time.February, 20),
		},
		{
			name:     "clamps_day_31_in_february",
			start:    date(2023, time.February, 10),
			day:      31,
			expected: date(2023, time.February, 28),
		},
		{
			name:     "clamps_day_31_in_leap_february",
			start:    date(2024, time.February, 10),
			day:      31,
			expected: date(2024, time.February, 29),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, withDayOfMonth(tt.start, tt.day))
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	ts := time.Date(2024, time.April, 20, 15, 42, 7, 123, time.UTC)
	assert.Equal(t, date(2024, time.April, 20), truncateToDay(ts))
}
