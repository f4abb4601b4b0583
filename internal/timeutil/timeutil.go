package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CompactLayout is the 8-digit YYYYMMDD form used by the KBO endpoint.
const CompactLayout = "20060102"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatCompactDate formats a time as YYYYMMDD using the calendar fields of
// its own location. No timezone conversion happens here.
func FormatCompactDate(t time.Time) string {
	return t.Format(CompactLayout)
}

// ParseCompactDate turns a YYYYMMDD string into a calendar date at midnight UTC.
func ParseCompactDate(value string) (time.Time, error) {
	if len(value) != len(CompactLayout) {
		return time.Time{}, fmt.Errorf("timeutil: compact date %q must have 8 digits", value)
	}
	return ParseDate(value[0:4] + "-" + value[4:6] + "-" + value[6:8])
}

// ResolveLocation loads the named location, falling back to UTC.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.UTC
}
