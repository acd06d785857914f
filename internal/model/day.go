package model

import (
	"fmt"
	"time"
)

// DayFormat is the canonical YYYY-MM-DD layout for game days
const DayFormat = "2006-01-02"

// Day is a calendar date in YYYY-MM-DD form. The zero value ("") means
// "no date". Because the format is fixed-width ISO, lexicographic
// comparison of two valid Days matches chronological order.
type Day string

// ParseDay validates and returns a Day from a YYYY-MM-DD string
func ParseDay(s string) (Day, error) {
	if _, err := time.Parse(DayFormat, s); err != nil {
		return "", fmt.Errorf("invalid day %q: %w", s, err)
	}
	return Day(s), nil
}

// DayOf returns the Day for the given time in its own location
func DayOf(t time.Time) Day {
	return Day(t.Format(DayFormat))
}

// IsZero reports whether the day is unset
func (d Day) IsZero() bool {
	return d == ""
}

// Time returns the day as a UTC midnight time.
// Returns the zero time for an unset or malformed day.
func (d Day) Time() time.Time {
	t, err := time.Parse(DayFormat, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Before reports whether d is chronologically before other
func (d Day) Before(other Day) bool {
	return string(d) < string(other)
}

// DaysSince returns the number of whole days from other to d.
// Negative if d is before other.
func (d Day) DaysSince(other Day) int {
	return int(d.Time().Sub(other.Time()).Hours() / 24)
}

// AddDays returns the day n days after d
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}
