// Package reltime formats instants as coarse English relative-time phrases
// such as "5 minutes ago" or "3 days ago".
//
// The elapsed time is measured in whole seconds, floored, and reported in the
// largest of four buckets (seconds, minutes, hours, days) that it reaches.
package reltime

import (
	"errors"
	"fmt"
	"time"

	"github.com/spiffcs/ago/internal/clock"
)

// Bucket boundaries in seconds.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// ErrFuture is returned by Describe when the instant is after "now" and the
// formatter uses FutureReject.
var ErrFuture = errors.New("instant is in the future")

// Unit is the bucket an elapsed time was reported in.
type Unit string

const (
	UnitSecond Unit = "second"
	UnitMinute Unit = "minute"
	UnitHour   Unit = "hour"
	UnitDay    Unit = "day"
)

// rank orders units from smallest to largest.
func (u Unit) rank() int {
	switch u {
	case UnitSecond:
		return 0
	case UnitMinute:
		return 1
	case UnitHour:
		return 2
	case UnitDay:
		return 3
	default:
		return -1
	}
}

// Less reports whether u is a smaller unit than other.
func (u Unit) Less(other Unit) bool {
	return u.rank() < other.rank()
}

// Description is the breakdown behind a formatted phrase.
type Description struct {
	Elapsed int64  `json:"elapsed_seconds"`
	Value   int64  `json:"value"`
	Unit    Unit   `json:"unit"`
	Text    string `json:"text"`
}

// Formatter renders relative-time phrases against an injected clock.
// A Formatter is immutable and safe for concurrent use.
type Formatter struct {
	clock   clock.Clock
	seconds SecondsStyle
	future  FuturePolicy
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock sets the source of "now". Defaults to the system clock.
func WithClock(c clock.Clock) Option {
	return func(f *Formatter) {
		if c != nil {
			f.clock = c
		}
	}
}

// WithSecondsStyle controls the unit label used in the seconds bucket.
func WithSecondsStyle(s SecondsStyle) Option {
	return func(f *Formatter) {
		f.seconds = s
	}
}

// WithFuturePolicy controls how instants after "now" are handled.
func WithFuturePolicy(p FuturePolicy) Option {
	return func(f *Formatter) {
		f.future = p
	}
}

// New creates a Formatter. With no options it reads the system clock, always
// writes "seconds" and passes future instants through as negative values.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		clock:   clock.System{},
		seconds: SecondsPlural,
		future:  FuturePassThrough,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFormatter = New()

// Format formats t relative to the system clock with default options.
func Format(t time.Time) string {
	return defaultFormatter.Format(t)
}

// Now returns the formatter's current instant.
func (f *Formatter) Now() time.Time {
	return f.clock.Now()
}

// At returns a copy of f whose clock is fixed at now.
func (f *Formatter) At(now time.Time) *Formatter {
	pinned := *f
	pinned.clock = clock.Fixed(now)
	return &pinned
}

// Format returns the relative-time phrase for t. It never fails: under
// FutureReject a future instant is rendered as under FuturePassThrough.
func (f *Formatter) Format(t time.Time) string {
	d, err := f.Describe(t)
	if err != nil {
		return describe(ElapsedSeconds(f.clock.Now(), t), f.seconds).Text
	}
	return d.Text
}

// FormatMillis formats an instant given as milliseconds since the Unix epoch.
func (f *Formatter) FormatMillis(ms int64) string {
	return f.Format(time.UnixMilli(ms))
}

// Describe returns the phrase for t together with the bucket it fell in.
func (f *Formatter) Describe(t time.Time) (Description, error) {
	elapsed := ElapsedSeconds(f.clock.Now(), t)
	if elapsed < 0 {
		switch f.future {
		case FutureClamp:
			elapsed = 0
		case FutureReject:
			return Description{}, fmt.Errorf("%w: %d seconds ahead", ErrFuture, -elapsed)
		}
	}
	return describe(elapsed, f.seconds), nil
}

// ElapsedSeconds returns floor((now - t) / 1s) at millisecond precision.
func ElapsedSeconds(now, t time.Time) int64 {
	return floorDiv(now.UnixMilli()-t.UnixMilli(), 1000)
}

// Phrase buckets an elapsed number of seconds. Buckets are tried smallest
// first and the first match wins.
func Phrase(elapsed int64, style SecondsStyle) (int64, Unit, string) {
	d := describe(elapsed, style)
	return d.Value, d.Unit, d.Text
}

func describe(elapsed int64, style SecondsStyle) Description {
	var (
		value int64
		unit  Unit
	)
	switch {
	case elapsed < secondsPerMinute:
		value, unit = elapsed, UnitSecond
	case elapsed < secondsPerHour:
		value, unit = elapsed/secondsPerMinute, UnitMinute
	case elapsed < secondsPerDay:
		value, unit = elapsed/secondsPerHour, UnitHour
	default:
		value, unit = elapsed/secondsPerDay, UnitDay
	}

	return Description{
		Elapsed: elapsed,
		Value:   value,
		Unit:    unit,
		Text:    fmt.Sprintf("%d %s ago", value, label(value, unit, style)),
	}
}

func label(value int64, unit Unit, style SecondsStyle) string {
	if unit == UnitSecond && style == SecondsPlural {
		return "seconds"
	}
	if value == 1 {
		return string(unit)
	}
	return string(unit) + "s"
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
