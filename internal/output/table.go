package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/spiffcs/ago/internal/batch"
	"github.com/spiffcs/ago/internal/reltime"
)

// TableFormatter formats output as a terminal table
type TableFormatter struct {
	Color bool
}

// Column widths
const (
	colInput    = 28
	colInstant  = 20
	colElapsed  = 14
	colRelative = 20
)

// Format outputs results as a table
func (f *TableFormatter) Format(results []batch.Result, w io.Writer) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No inputs.")
		return nil
	}

	fmt.Fprintf(w, "%-*s  %-*s  %*s  %s\n",
		colInput, "Input",
		colInstant, "Instant",
		colElapsed, "Elapsed",
		"Relative")
	fmt.Fprintln(w, strings.Repeat("-", colInput+colInstant+colElapsed+colRelative+6))

	failed := 0
	for _, r := range results {
		input := padRight(truncateToWidth(r.Input, colInput), colInput)

		instant := "-"
		if !r.Instant.IsZero() {
			instant = r.Instant.UTC().Format(time.RFC3339)
		}

		elapsed := "-"
		relative := f.paint(unitColor(r.Description.Unit), r.Description.Text)
		if r.Err != nil {
			failed++
			relative = f.paint(color.FgRed, r.Err.Error())
		} else {
			elapsed = humanize.Comma(r.Description.Elapsed) + "s"
		}

		fmt.Fprintf(w, "%s  %-*s  %*s  %s\n", input, colInstant, instant, colElapsed, elapsed, relative)
	}

	fmt.Fprintln(w)
	summary := fmt.Sprintf("%d formatted", len(results)-failed)
	if failed > 0 {
		summary += ", " + f.paint(color.FgRed, fmt.Sprintf("%d failed", failed))
	}
	fmt.Fprintln(w, summary)

	return nil
}

func (f *TableFormatter) paint(attr color.Attribute, s string) string {
	c := color.New(attr)
	if f.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// unitColor picks a color per bucket so larger gaps stand out.
func unitColor(u reltime.Unit) color.Attribute {
	switch u {
	case reltime.UnitSecond:
		return color.FgGreen
	case reltime.UnitMinute:
		return color.FgCyan
	case reltime.UnitHour:
		return color.FgYellow
	default:
		return color.FgMagenta
	}
}

// truncateToWidth shortens s to fit maxWidth terminal columns, ending in "...".
func truncateToWidth(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// padRight pads s with spaces to targetWidth terminal columns.
func padRight(s string, targetWidth int) string {
	width := runewidth.StringWidth(s)
	if width >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-width)
}
