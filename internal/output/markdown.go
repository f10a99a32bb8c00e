package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spiffcs/ago/internal/batch"
)

// MarkdownFormatter formats output as a Markdown table
type MarkdownFormatter struct {
	Now time.Time
}

// Format outputs results as Markdown
func (f *MarkdownFormatter) Format(results []batch.Result, w io.Writer) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No inputs.")
		return nil
	}

	fmt.Fprintln(w, "# Relative times")
	fmt.Fprintf(w, "\n*Relative to: %s*\n\n", f.Now.UTC().Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintln(w, "| Input | Instant | Relative |")
	fmt.Fprintln(w, "|-------|---------|----------|")

	for _, r := range results {
		instant := ""
		if !r.Instant.IsZero() {
			instant = r.Instant.UTC().Format(time.RFC3339)
		}
		relative := r.Description.Text
		if r.Err != nil {
			relative = "*" + escapeCell(r.Err.Error()) + "*"
		}
		fmt.Fprintf(w, "| `%s` | %s | %s |\n", escapeCell(r.Input), instant, relative)
	}

	return nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
