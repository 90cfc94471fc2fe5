package dates

import (
	"fmt"
	"time"
)

// Layout is the canonical calendar-date format used for quota and price keys.
const Layout = "2006-01-02"

// Normalize truncates a timestamp to its UTC calendar date.
func Normalize(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Key formats a timestamp as a yyyy-MM-dd key.
func Key(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Parse parses a yyyy-MM-dd string into a UTC midnight.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Nights returns the charged dates of a stay: every date in
// [checkIn, checkOut), checkout day excluded. Returns nil when the range is
// empty or inverted.
func Nights(checkIn, checkOut time.Time) []string {
	checkIn = Normalize(checkIn)
	checkOut = Normalize(checkOut)
	if !checkOut.After(checkIn) {
		return nil
	}
	out := make([]string, 0, int(checkOut.Sub(checkIn).Hours()/24))
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		out = append(out, Key(d))
	}
	return out
}
