package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDatesInRangeExcludesCheckout(t *testing.T) {
	dates := DatesInRange(date(2024, time.January, 10), date(2024, time.January, 12))

	if len(dates) != 2 {
		t.Fatalf("expected 2 nights, got %d", len(dates))
	}
	if !dates[0].Equal(date(2024, time.January, 10)) {
		t.Fatalf("first night wrong: %v", dates[0])
	}
	if !dates[1].Equal(date(2024, time.January, 11)) {
		t.Fatalf("second night wrong: %v", dates[1])
	}
	for _, d := range dates {
		if d.Equal(date(2024, time.January, 12)) {
			t.Fatalf("checkout date must not be part of the stay")
		}
	}
}

func TestDatesInRangeZeroNights(t *testing.T) {
	dates := DatesInRange(date(2024, time.January, 15), date(2024, time.January, 15))
	if len(dates) != 0 {
		t.Fatalf("zero-night stay should produce no dates, got %d", len(dates))
	}

	dates = DatesInRange(date(2024, time.January, 16), date(2024, time.January, 15))
	if len(dates) != 0 {
		t.Fatalf("inverted range should produce no dates, got %d", len(dates))
	}
}

func TestDatesInRangeDropsTimeOfDay(t *testing.T) {
	checkIn := time.Date(2024, time.March, 1, 15, 30, 0, 0, time.UTC)
	checkOut := time.Date(2024, time.March, 3, 11, 0, 0, 0, time.UTC)

	dates := DatesInRange(checkIn, checkOut)
	if len(dates) != 2 {
		t.Fatalf("expected 2 nights, got %d", len(dates))
	}
	if !dates[0].Equal(date(2024, time.March, 1)) {
		t.Fatalf("expected normalized midnight date, got %v", dates[0])
	}
}

func TestNights(t *testing.T) {
	if n := Nights(date(2024, time.January, 10), date(2024, time.January, 12)); n != 2 {
		t.Fatalf("expected 2 nights, got %d", n)
	}
	if n := Nights(date(2024, time.January, 10), date(2024, time.January, 10)); n != 0 {
		t.Fatalf("expected 0 nights, got %d", n)
	}
	if n := Nights(date(2024, time.January, 12), date(2024, time.January, 10)); n != 0 {
		t.Fatalf("inverted range should count 0 nights, got %d", n)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-07-22")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !got.Equal(date(2024, time.July, 22)) {
		t.Fatalf("parsed wrong date: %v", got)
	}

	got, err = ParseDate("2024-07-22T09:15:00Z")
	if err != nil {
		t.Fatalf("expected RFC3339 to parse, got %v", err)
	}
	if !got.Equal(date(2024, time.July, 22)) {
		t.Fatalf("RFC3339 should normalize to midnight, got %v", got)
	}

	if _, err := ParseDate("22/07/2024"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
