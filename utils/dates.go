package utils

import (
	"time"
)

const DateLayout = "2006-01-02"

// NormalizeDate drops the time-of-day component so ledger lookups always hit
// the DATE column exactly.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts "2006-01-02" or RFC3339 and returns a normalized date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return NormalizeDate(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeDate(t), nil
}

// DatesInRange returns every night of a stay: [checkIn, checkOut) day by day.
// The checkout date itself is never part of the stay.
func DatesInRange(checkIn, checkOut time.Time) []time.Time {
	start := NormalizeDate(checkIn)
	end := NormalizeDate(checkOut)

	dates := []time.Time{}
	for current := start; current.Before(end); current = current.AddDate(0, 0, 1) {
		dates = append(dates, current)
	}
	return dates
}

// Nights counts the nights between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	start := NormalizeDate(checkIn)
	end := NormalizeDate(checkOut)
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}
