// Package timefmt parses the timestamp and duration notations found in
// flight data and renders them for display in the en-US locale.
package timefmt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DateDisplayLayout = "Mon, Jan 2, 2006"
	TimeDisplayLayout = "03:04 PM"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700", // Without colon
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// ParseTimestamp accepts RFC 3339 and a few close variants. Timestamps without
// an offset are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &time.ParseError{
		Value:   s,
		Message: "unable to parse time string",
	}
}

var (
	humanDuration = regexp.MustCompile(`^\s*(?:(\d+)\s*h)?\s*(?:(\d+)\s*m)?\s*$`)
	isoDuration   = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)
)

// ParseDuration converts "7h 15m", "1h 05m", "45m" or ISO-8601 "PT3H20M" to
// total minutes.
func ParseDuration(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	m := isoDuration.FindStringSubmatch(strings.ToUpper(trimmed))
	if m == nil {
		m = humanDuration.FindStringSubmatch(strings.ToLower(trimmed))
	}
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	total := 0
	if m[1] != "" {
		h, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		total += h * 60
	}
	if m[2] != "" {
		mins, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		total += mins
	}
	return total, nil
}

func FormatDuration(totalMinutes int) string {
	return fmt.Sprintf("%dh %02dm", totalMinutes/60, totalMinutes%60)
}

func FormatDate(t time.Time) string {
	return t.Format(DateDisplayLayout)
}

func FormatTime(t time.Time) string {
	return t.Format(TimeDisplayLayout)
}

// SameDay reports whether t falls on the calendar date given as YYYY-MM-DD,
// in t's own location.
func SameDay(t time.Time, date string) bool {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return t.Year() == d.Year() && t.Month() == d.Month() && t.Day() == d.Day()
}

// MinuteOfDay parses "HH:MM" into minutes since midnight.
func MinuteOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
