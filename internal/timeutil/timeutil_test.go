package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestFormatCompactDatePadsMonthAndDay(t *testing.T) {
	cases := map[string]time.Time{
		"20240919": time.Date(2024, 9, 19, 0, 0, 0, 0, time.UTC),
		"20240101": time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC),
		"20231231": time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC),
	}
	for want, value := range cases {
		if got := FormatCompactDate(value); got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	}
}

func TestFormatCompactDateKeepsCallerCalendarFields(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	// 2024-09-19 01:00 KST is still 2024-09-18 in UTC.
	value := time.Date(2024, 9, 19, 1, 0, 0, 0, seoul)
	if got := FormatCompactDate(value); got != "20240919" {
		t.Fatalf("expected local calendar date 20240919, got %s", got)
	}
}

func TestParseCompactDate(t *testing.T) {
	parsed, err := ParseCompactDate("20240919")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	want := time.Date(2024, 9, 19, 0, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Fatalf("expected %s, got %s", want, parsed)
	}
}

func TestParseCompactDateRejectsMalformed(t *testing.T) {
	for _, value := range []string{"", "2024919", "2024-09-19", "2024AB19", "20241345"} {
		if _, err := ParseCompactDate(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestResolveLocationFallsBackToUTC(t *testing.T) {
	if loc := ResolveLocation(""); loc != time.UTC {
		t.Fatalf("expected UTC for empty name, got %s", loc)
	}
	if loc := ResolveLocation("Not/AZone"); loc != time.UTC {
		t.Fatalf("expected UTC for unknown zone, got %s", loc)
	}
}
