package reltime

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spiffcs/ago/internal/clock"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func fixed(opts ...Option) *Formatter {
	return New(append([]Option{WithClock(clock.Fixed(testNow))}, opts...)...)
}

func secondsAgo(s int64) time.Time {
	return testNow.Add(-time.Duration(s) * time.Second)
}

func TestFormat(t *testing.T) {
	f := fixed()

	tests := []struct {
		name     string
		elapsed  int64
		expected string
	}{
		// Seconds
		{"zero", 0, "0 seconds ago"},
		{"1 second", 1, "1 seconds ago"},
		{"30 seconds", 30, "30 seconds ago"},
		{"59 seconds", 59, "59 seconds ago"},

		// Minutes
		{"60 seconds", 60, "1 minute ago"},
		{"119 seconds", 119, "1 minute ago"},
		{"2 minutes", 120, "2 minutes ago"},
		{"3599 seconds", 3599, "59 minutes ago"},

		// Hours
		{"3600 seconds", 3600, "1 hour ago"},
		{"7199 seconds", 7199, "1 hour ago"},
		{"2 hours", 7200, "2 hours ago"},
		{"86399 seconds", 86399, "23 hours ago"},

		// Days
		{"86400 seconds", 86400, "1 day ago"},
		{"2 days", 2 * 86400, "2 days ago"},
		{"400 days", 400 * 86400, "400 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Format(secondsAgo(tt.elapsed))
			if got != tt.expected {
				t.Errorf("Format(-%ds) = %q, want %q", tt.elapsed, got, tt.expected)
			}
		})
	}
}

func TestFormatSubSecondFloors(t *testing.T) {
	f := fixed()

	tests := []struct {
		name     string
		ago      time.Duration
		expected string
	}{
		{"999ms", 999 * time.Millisecond, "0 seconds ago"},
		{"1999ms", 1999 * time.Millisecond, "1 seconds ago"},
		{"59.999s", 59999 * time.Millisecond, "59 seconds ago"},
		// Instants are truncated to the millisecond before subtracting.
		{"60s minus 1us", time.Minute - time.Microsecond, "1 minute ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Format(testNow.Add(-tt.ago)); got != tt.expected {
				t.Errorf("Format(-%v) = %q, want %q", tt.ago, got, tt.expected)
			}
		})
	}
}

func TestFormatSingularSeconds(t *testing.T) {
	f := fixed(WithSecondsStyle(SecondsSingular))

	tests := []struct {
		elapsed  int64
		expected string
	}{
		{0, "0 seconds ago"},
		{1, "1 second ago"},
		{2, "2 seconds ago"},
		{60, "1 minute ago"},
	}

	for _, tt := range tests {
		if got := f.Format(secondsAgo(tt.elapsed)); got != tt.expected {
			t.Errorf("Format(-%ds) = %q, want %q", tt.elapsed, got, tt.expected)
		}
	}
}

func TestFormatFuture(t *testing.T) {
	future := testNow.Add(4500 * time.Millisecond)

	tests := []struct {
		name     string
		policy   FuturePolicy
		expected string
	}{
		// floor(-4.5) is -5
		{"pass through", FuturePassThrough, "-5 seconds ago"},
		{"clamp", FutureClamp, "0 seconds ago"},
		{"reject falls back to pass through", FutureReject, "-5 seconds ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fixed(WithFuturePolicy(tt.policy))
			if got := f.Format(future); got != tt.expected {
				t.Errorf("Format(+4.5s) = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatFarFutureStaysInSecondsBucket(t *testing.T) {
	f := fixed()
	got := f.Format(testNow.Add(3 * 24 * time.Hour))
	if got != "-259200 seconds ago" {
		t.Errorf("Format(+3d) = %q, want %q", got, "-259200 seconds ago")
	}
}

func TestDescribeReject(t *testing.T) {
	f := fixed(WithFuturePolicy(FutureReject))

	_, err := f.Describe(testNow.Add(time.Minute))
	if !errors.Is(err, ErrFuture) {
		t.Fatalf("expected ErrFuture, got %v", err)
	}

	d, err := f.Describe(secondsAgo(90))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Value != 1 || d.Unit != UnitMinute || d.Elapsed != 90 {
		t.Errorf("Describe(-90s) = %+v", d)
	}
}

func TestFormatMillis(t *testing.T) {
	f := fixed()
	ms := testNow.UnixMilli() - 3*3600*1000
	if got := f.FormatMillis(ms); got != "3 hours ago" {
		t.Errorf("FormatMillis(%d) = %q, want %q", ms, got, "3 hours ago")
	}
}

func TestPhrasePlurals(t *testing.T) {
	tests := []struct {
		elapsed  int64
		unit     Unit
		expected string
	}{
		{60, UnitMinute, "1 minute ago"},
		{120, UnitMinute, "2 minutes ago"},
		{3600, UnitHour, "1 hour ago"},
		{7200, UnitHour, "2 hours ago"},
		{86400, UnitDay, "1 day ago"},
		{172800, UnitDay, "2 days ago"},
	}

	for _, tt := range tests {
		_, unit, text := Phrase(tt.elapsed, SecondsPlural)
		if unit != tt.unit || text != tt.expected {
			t.Errorf("Phrase(%d) = (%s, %q), want (%s, %q)", tt.elapsed, unit, text, tt.unit, tt.expected)
		}
	}
}

func TestPhraseMonotonic(t *testing.T) {
	samples := []int64{-100, -1, 0, 1, 59, 60, 61, 3599, 3600, 3601, 86399, 86400, 86401, 10 * 86400, 1 << 40}

	prev := UnitSecond
	for _, s := range samples {
		_, unit, text := Phrase(s, SecondsPlural)
		if unit.Less(prev) {
			t.Errorf("Phrase(%d) unit %s is smaller than previous %s", s, unit, prev)
		}
		if !strings.HasSuffix(text, " ago") {
			t.Errorf("Phrase(%d) = %q, missing \" ago\" suffix", s, text)
		}
		prev = unit
	}
}

func TestElapsedSeconds(t *testing.T) {
	tests := []struct {
		ago      time.Duration
		expected int64
	}{
		{0, 0},
		{1500 * time.Millisecond, 1},
		{-1500 * time.Millisecond, -2},
		{-1000 * time.Millisecond, -1},
		{-1 * time.Millisecond, -1},
	}

	for _, tt := range tests {
		if got := ElapsedSeconds(testNow, testNow.Add(-tt.ago)); got != tt.expected {
			t.Errorf("ElapsedSeconds(-%v) = %d, want %d", tt.ago, got, tt.expected)
		}
	}
}

func TestNewDefaults(t *testing.T) {
	f := New(WithClock(nil))
	if _, ok := f.clock.(clock.System); !ok {
		t.Errorf("expected system clock, got %T", f.clock)
	}
	if f.seconds != SecondsPlural {
		t.Errorf("expected plural seconds, got %s", f.seconds)
	}
	if f.future != FuturePassThrough {
		t.Errorf("expected pass-through, got %s", f.future)
	}
}

func TestAt(t *testing.T) {
	f := New(WithSecondsStyle(SecondsSingular))
	pinned := f.At(testNow)

	if got := pinned.Format(secondsAgo(1)); got != "1 second ago" {
		t.Errorf("pinned Format(-1s) = %q, want %q", got, "1 second ago")
	}
	if !pinned.Now().Equal(testNow) {
		t.Errorf("pinned Now() = %v, want %v", pinned.Now(), testNow)
	}
	if _, ok := f.clock.(clock.System); !ok {
		t.Errorf("At modified the original formatter clock: %T", f.clock)
	}
}

func TestPackageFormat(t *testing.T) {
	got := Format(time.Now().Add(-2 * time.Hour))
	if got != "2 hours ago" {
		t.Errorf("Format(-2h) = %q, want %q", got, "2 hours ago")
	}
}
