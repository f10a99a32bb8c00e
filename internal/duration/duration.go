// Package duration provides parsing for human-readable duration strings.
package duration

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spiffcs/ago/internal/clock"
)

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

// Parse parses human-readable durations like "90s", "5m", "1w", "30d", "6mo".
// Units are case-insensitive. Counts that would overflow time.Duration are rejected.
func Parse(s string) (time.Duration, error) {
	var n int64
	var unit string

	if _, err := fmt.Sscanf(s, "%d%s", &n, &unit); err != nil {
		return 0, fmt.Errorf("invalid duration format: %s (use e.g., 90s, 5m, 30d, 6mo)", s)
	}

	var d time.Duration
	switch strings.ToLower(unit) {
	case "s", "sec", "secs", "second", "seconds":
		d = time.Second
	case "m", "min", "mins", "minute", "minutes":
		d = time.Minute
	case "h", "hr", "hrs", "hour", "hours":
		d = time.Hour
	case "d", "day", "days":
		d = day
	case "w", "wk", "wks", "week", "weeks":
		d = week
	case "mo", "month", "months":
		d = month
	case "y", "yr", "yrs", "year", "years":
		d = year
	default:
		return 0, fmt.Errorf("unknown duration unit: %s", unit)
	}

	if n < 0 {
		return 0, fmt.Errorf("negative duration: %s", s)
	}
	if n > math.MaxInt64/int64(d) {
		return 0, fmt.Errorf("duration out of range: %s", s)
	}

	return time.Duration(n) * d, nil
}

// Ago parses s and returns the instant that far before the clock's now.
func Ago(s string, c clock.Clock) (time.Time, error) {
	d, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return c.Now().Add(-d), nil
}
