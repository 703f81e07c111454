// Package timeutil converts the lax date/time strings stored on events
// into concrete instants. Malformed input never produces an error or a
// panic; it yields ok=false, and callers treat such events as matching
// nothing (no view window, no overlap, no notification).
package timeutil

import (
	"strconv"
	"strings"
	"time"
)

// TimeRange is the half-open [Start, End) interval derived from an
// event's date and time-of-day fields. When either bound fails to parse,
// Valid is false and both endpoints are the zero time.
type TimeRange struct {
	Start time.Time
	End   time.Time
	Valid bool
}

// ParseDateTime combines a YYYY-MM-DD date string and an HH:MM time
// string into a single instant. ok is false when either string is empty,
// not shaped as expected, or carries a field outside its natural range
// (month 14, day 33, hour 25, ...).
//
// Within natural ranges the instant is built with time.Date, which
// normalizes impossible calendar dates forward: "2024-06-31" becomes
// July 1st rather than being rejected. That mirrors how the stored
// strings behaved in the original data set and keeps month-boundary
// entries visible.
func ParseDateTime(date, clock string) (time.Time, bool) {
	year, month, day, ok := splitDate(date)
	if !ok {
		return time.Time{}, false
	}
	hour, minute, ok := splitClock(clock)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local), true
}

// ParseDate parses a YYYY-MM-DD string as a midnight instant.
func ParseDate(date string) (time.Time, bool) {
	year, month, day, ok := splitDate(date)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}

// ParseClock parses an HH:MM string into minutes since midnight.
func ParseClock(clock string) (int, bool) {
	hour, minute, ok := splitClock(clock)
	if !ok {
		return 0, false
	}
	return hour*60 + minute, true
}

// WeekWindow returns the half-open 7-day window containing ref, starting
// at the most recent Sunday at or before ref (midnight).
func WeekWindow(ref time.Time) (time.Time, time.Time) {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	start := day.AddDate(0, 0, -int(day.Weekday()))
	return start, start.AddDate(0, 0, 7)
}

// SameMonth reports whether two instants fall in the same calendar month
// of the same year. It compares the month and year fields directly, so
// it cannot drift across months of differing lengths.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func splitDate(date string) (year, month, day int, ok bool) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	year, ok = parseField(parts[0], 1, 9999)
	if !ok {
		return 0, 0, 0, false
	}
	month, ok = parseField(parts[1], 1, 12)
	if !ok {
		return 0, 0, 0, false
	}
	day, ok = parseField(parts[2], 1, 31)
	if !ok {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

func splitClock(clock string) (hour, minute int, ok bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, ok = parseField(parts[0], 0, 23)
	if !ok {
		return 0, 0, false
	}
	minute, ok = parseField(parts[1], 0, 59)
	if !ok {
		return 0, 0, false
	}
	return hour, minute, true
}

func parseField(s string, min, max int) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < min || n > max {
		return 0, false
	}
	return n, true
}
