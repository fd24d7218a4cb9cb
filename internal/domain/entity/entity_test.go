package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-10-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC), d.Time)

	d, err = ParseDate("2024-10-15T18:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-10-15", d.String())

	_, err = ParseDate("15/10/2024")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		D Date  `json:"d"`
		P *Date `json:"p,omitempty"`
		Z Date  `json:"z"`
	}

	data, err := json.Marshal(wrapper{D: NewDate(time.Date(2026, 1, 9, 13, 0, 0, 0, time.UTC))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2026-01-09","z":null}`, string(data))

	var back wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2026-01-09","p":"2026-02-01","z":null}`), &back))
	assert.Equal(t, "2026-01-09", back.D.String())
	require.NotNil(t, back.P)
	assert.Equal(t, "2026-02-01", back.P.String())
	assert.True(t, back.Z.IsZero())
}

func TestResolveSeason(t *testing.T) {
	seasons := []Season{
		{ID: "s1", Name: "Winter", StartMonth: 1, EndMonth: 3},
		{ID: "s2", Name: "Spring", StartMonth: 4, EndMonth: 6},
	}

	assert.Equal(t, "s2", ResolveSeason(seasons, 6).ID)
	assert.Equal(t, "s1", ResolveSeason(seasons, 11).ID, "falls back to the first season")
	assert.Equal(t, Season{}, ResolveSeason(nil, 5))
}

func TestProductTargets(t *testing.T) {
	p := Product{CurrentPrice: 1200, CurrentMargin: 16.7, TargetMargin: 30, CostBasis: 1000}

	assert.True(t, p.BelowTarget())
	assert.InDelta(t, 13.3, p.MarginGap(), 1e-9)
	assert.InDelta(t, 1428.5714, p.TargetPrice(), 1e-4)
	assert.InDelta(t, 16.6667, Margin(1200, 1000), 1e-4)
	assert.Equal(t, 0.0, Margin(0, 1000))
}

func TestDepartureSeats(t *testing.T) {
	d := Departure{Capacity: 16, Bookings: 12, CurrentPrice: 5000}
	assert.Equal(t, 4, d.AvailableSeats())
	assert.Equal(t, 60000.0, d.Revenue())

	d.Bookings = 18
	assert.Equal(t, 0, d.AvailableSeats())
}
