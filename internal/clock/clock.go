// Package clock provides the "now" source used by the relative-time formatter.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// System returns the wall-clock time.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time { return time.Time(f) }

// Func adapts a plain function to the Clock interface.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time { return f() }
