// Package instant parses user-supplied text into a point in time.
//
// Accepted forms, tried in order:
//
//	1718452800000          epoch milliseconds
//	90s, 5m, 3d, 6mo       offset before now (units ignore case)
//	2024-06-15T12:00:00Z   any layout understood by dateparse
//
// Layouts without a zone are read as UTC.
package instant

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/spiffcs/ago/internal/duration"
)

// ErrInvalidInput is returned when text is not a recognizable instant.
var ErrInvalidInput = errors.New("invalid input")

var (
	millisPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
	offsetPattern = regexp.MustCompile(`(?i)^[0-9]+[a-z]+$`)
)

// Parse converts s to an instant. Offsets are resolved against now.
func Parse(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidInput)
	}

	if millisPattern.MatchString(s) {
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidInput, s, err)
		}
		return time.UnixMilli(ms), nil
	}

	if offsetPattern.MatchString(s) {
		d, err := duration.Parse(s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return now.Add(-d), nil
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	return t, nil
}
