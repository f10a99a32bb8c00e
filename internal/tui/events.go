package tui

import "time"

// Entry is one instant shown in the live view.
type Entry struct {
	Input   string
	Instant time.Time
	Err     error
}

// tickMsg asks the model to re-read the clock and re-render.
type tickMsg time.Time

// refreshInterval is how often relative times are recomputed.
const refreshInterval = time.Second
