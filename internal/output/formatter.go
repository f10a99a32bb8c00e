package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/spiffcs/ago/internal/batch"
)

// Format represents the output format
type Format string

const (
	FormatText     Format = "text"
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatTable, FormatJSON, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be text, table, json or markdown)", s)
	}
}

// Formatter defines the interface for output formatters
type Formatter interface {
	Format(results []batch.Result, w io.Writer) error
}

// Settings carries what formatters need beyond the results themselves.
type Settings struct {
	// Now is the reference instant the results were computed against.
	Now   time.Time
	Color bool
}

// NewFormatter creates a formatter for the specified format
func NewFormatter(format Format, s Settings) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Now: s.Now, Pretty: true}
	case FormatMarkdown:
		return &MarkdownFormatter{Now: s.Now}
	case FormatTable:
		return &TableFormatter{Color: s.Color}
	default:
		return &TextFormatter{}
	}
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
