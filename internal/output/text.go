package output

import (
	"fmt"
	"io"

	"github.com/spiffcs/ago/internal/batch"
)

// TextFormatter writes one phrase per line, in input order.
type TextFormatter struct{}

// Format writes each phrase, or "error: ..." for inputs that failed.
func (f *TextFormatter) Format(results []batch.Result, w io.Writer) error {
	for _, r := range results {
		line := r.Description.Text
		if r.Err != nil {
			line = "error: " + r.Err.Error()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
