package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		in       time.Time
		months   int
		expected time.Time
	}{
		{
			name:     "plain shift",
			in:       time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC),
			months:   -12,
			expected: time.Date(2025, 10, 17, 9, 30, 0, 0, time.UTC),
		},
		{
			name:     "clamps to end of february",
			in:       time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
			months:   -1,
			expected: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "leap year",
			in:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "crosses year forward",
			in:       time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC),
			months:   3,
			expected: time.Date(2027, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "thirty months back",
			in:       time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
			months:   -30,
			expected: time.Date(2024, 4, 17, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddMonths(tt.in, tt.months))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(now, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, DaysBetween(now, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 183, DaysBetween(time.Date(2026, 4, 17, 0, 0, 0, 0, time.UTC), now))
}

func TestStartOfMonth(t *testing.T) {
	in := time.Date(2026, 10, 17, 12, 34, 56, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(in))
	assert.Equal(t, 31, DaysInMonth(in))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 3.0, RoundHalfUp(2.5))
	assert.Equal(t, -2.0, RoundHalfUp(-2.5))
	assert.Equal(t, 16.7, RoundTo(16.6666, 1))
	assert.Equal(t, 11429.0, RoundHalfUp(11428.571))
}

func TestClampAndMean(t *testing.T) {
	assert.Equal(t, 0.98, Clamp(1.2, 0.1, 0.98))
	assert.Equal(t, 0.1, Clamp(-0.3, 0.1, 0.98))
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}
