package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, Day("2024-06-01"), d)

	_, err = ParseDay("06/01/2024")
	assert.Error(t, err)

	_, err = ParseDay("")
	assert.Error(t, err)
}

func TestDayOf(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 23:30 local is still the same local day
	ts := time.Date(2024, 6, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, Day("2024-06-01"), DayOf(ts))
}

func TestDayOrdering(t *testing.T) {
	a := Day("2024-06-01")
	b := Day("2024-06-02")

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestDaysSince(t *testing.T) {
	a := Day("2024-06-01")

	assert.Equal(t, 0, a.DaysSince(a))
	assert.Equal(t, 1, Day("2024-06-02").DaysSince(a))
	assert.Equal(t, 30, Day("2024-07-01").DaysSince(a))
	assert.Equal(t, -1, Day("2024-05-31").DaysSince(a))

	// Crosses a leap day
	assert.Equal(t, 2, Day("2024-03-01").DaysSince(Day("2024-02-28")))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, Day("2024-06-02"), Day("2024-06-01").AddDays(1))
	assert.Equal(t, Day("2024-05-31"), Day("2024-06-01").AddDays(-1))
	assert.Equal(t, Day("2025-01-01"), Day("2024-12-31").AddDays(1))
}
