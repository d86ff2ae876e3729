// Package dates holds the calendar arithmetic and key formatting shared by
// the store and the projections. Everything here is a pure function of its
// inputs.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// LayoutISO is the date layout accepted by --on flags.
	LayoutISO = "2006-01-02"
	// LayoutUS is the long-form layout used in titles.
	LayoutUS = "January 2, 2006"
)

// DaysIn returns the number of days in the given month, accounting for leap
// years. Day zero of the next month is the last day of this one.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday the month starts on (Sunday == 0).
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// Midnight normalizes t to local midnight, so two times on the same calendar
// day compare equal after normalization.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WeekStart returns the Sunday on or before t, at local midnight.
func WeekStart(t time.Time) time.Time {
	return Midnight(t).AddDate(0, 0, -int(t.Weekday()))
}

// MonthKey formats the store key for a month. The month index is zero based
// in the persisted format, so January 2025 is "2025-0".
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%d-%d", year, int(month)-1)
}

// ParseMonthKey is the inverse of MonthKey.
func ParseMonthKey(key string) (int, time.Month, error) {
	i := strings.LastIndex(key, "-")
	if i <= 0 {
		return 0, 0, fmt.Errorf("dates: malformed month key %q", key)
	}
	year, err := strconv.Atoi(key[:i])
	if err != nil {
		return 0, 0, fmt.Errorf("dates: malformed month key %q: %w", key, err)
	}
	idx, err := strconv.Atoi(key[i+1:])
	if err != nil || idx < 0 || idx > 11 {
		return 0, 0, fmt.Errorf("dates: malformed month key %q", key)
	}
	return year, time.Month(idx + 1), nil
}

// DayKey formats the per-day key inside a month map.
func DayKey(day int) string {
	return strconv.Itoa(day)
}

// ParseDayKey is the inverse of DayKey.
func ParseDayKey(key string) (int, error) {
	day, err := strconv.Atoi(key)
	if err != nil || day < 1 || day > 31 {
		return 0, fmt.Errorf("dates: malformed day key %q", key)
	}
	return day, nil
}

// MonthByName resolves a full English month name, case insensitively.
func MonthByName(name string) (time.Month, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m := time.January; m <= time.December; m++ {
		if strings.ToLower(m.String()) == name {
			return m, true
		}
	}
	return 0, false
}

// MinutesOfDay parses a 24-hour "HH:MM" string into minutes since midnight.
func MinutesOfDay(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("dates: malformed time %q", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("dates: malformed time %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("dates: malformed time %q", hhmm)
	}
	return h*60 + m, nil
}

// FormatMinutes renders minutes since midnight back to "HH:MM".
func FormatMinutes(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// FormatDuration renders a minute count as "1h 30m" style text.
func FormatDuration(mins int) string {
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins%60 == 0 {
		return fmt.Sprintf("%dh", mins/60)
	}
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}
