package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spiffcs/ago/internal/clock"
	"github.com/spiffcs/ago/internal/reltime"
)

var testStart = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// steppingClock advances by one minute every time it is read.
type steppingClock struct {
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(time.Minute)
	return t
}

func testEntries() []Entry {
	return []Entry{
		{Input: "30s", Instant: testStart.Add(-30 * time.Second)},
		{Input: "2024-06-14T12:00:00Z", Instant: testStart.Add(-24 * time.Hour)},
		{Input: "bogus", Err: errors.New("invalid input")},
	}
}

func TestViewRendersEntries(t *testing.T) {
	f := reltime.New(reltime.WithClock(clock.Fixed(testStart)))
	m := NewModel(f, testEntries())

	view := m.View()
	for _, want := range []string{"30 seconds ago", "1 day ago", "invalid input", "Press q to quit", "2024-06-15 12:00:00 UTC"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestTickRereadsClock(t *testing.T) {
	c := &steppingClock{now: testStart}
	f := reltime.New(reltime.WithClock(c))
	m := NewModel(f, testEntries())

	updated, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("expected tick to schedule the next tick")
	}

	view := updated.(Model).View()
	if !strings.Contains(view, "1 minute ago") {
		t.Errorf("expected 30s entry to read \"1 minute ago\" after one tick:\n%s", view)
	}
}

func TestViewFutureReject(t *testing.T) {
	f := reltime.New(
		reltime.WithClock(clock.Fixed(testStart)),
		reltime.WithFuturePolicy(reltime.FutureReject),
	)
	m := NewModel(f, []Entry{{Input: "tomorrow", Instant: testStart.Add(24 * time.Hour)}})

	if view := m.View(); !strings.Contains(view, "in the future") {
		t.Errorf("expected future rejection in view:\n%s", view)
	}
}

func TestQuitKeys(t *testing.T) {
	f := reltime.New(reltime.WithClock(clock.Fixed(testStart)))

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		m := NewModel(f, testEntries())
		updated, cmd := m.Update(key)
		if cmd == nil {
			t.Errorf("key %q: expected quit command", key.String())
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %q: expected tea.QuitMsg", key.String())
		}
		if strings.Contains(updated.(Model).View(), "Press q to quit") {
			t.Errorf("key %q: footer still shown after quit", key.String())
		}
	}
}

func TestUnitStyleDistinct(t *testing.T) {
	units := []reltime.Unit{reltime.UnitSecond, reltime.UnitMinute, reltime.UnitHour, reltime.UnitDay}
	seen := make(map[lipgloss.Color]reltime.Unit)

	for _, u := range units {
		fg, ok := UnitStyle(u).GetForeground().(lipgloss.Color)
		if !ok {
			t.Fatalf("unit %s: expected lipgloss.Color foreground", u)
		}
		if prev, dup := seen[fg]; dup {
			t.Errorf("units %s and %s share color %s", prev, u, fg)
		}
		seen[fg] = u
	}
}

func TestShouldUseTUI(t *testing.T) {
	t.Setenv("CI", "true")
	if ShouldUseTUI() {
		t.Error("expected TUI to be disabled in CI")
	}
}
