package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/spiffcs/ago/internal/batch"
	"github.com/spiffcs/ago/internal/reltime"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Now    time.Time
	Pretty bool
}

// JSONResult is the wire form of one batch.Result.
type JSONResult struct {
	Input   string       `json:"input"`
	Instant *time.Time   `json:"instant,omitempty"`
	Elapsed int64        `json:"elapsed_seconds"`
	Value   int64        `json:"value"`
	Unit    reltime.Unit `json:"unit,omitempty"`
	Text    string       `json:"text,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// JSONOutput wraps the results with the reference instant.
type JSONOutput struct {
	Now     time.Time    `json:"now"`
	Results []JSONResult `json:"results"`
}

// Format outputs results as a single JSON document
func (f *JSONFormatter) Format(results []batch.Result, w io.Writer) error {
	out := JSONOutput{
		Now:     f.Now.UTC(),
		Results: make([]JSONResult, 0, len(results)),
	}

	for _, r := range results {
		jr := JSONResult{Input: r.Input}
		if !r.Instant.IsZero() {
			instant := r.Instant.UTC()
			jr.Instant = &instant
		}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		} else {
			jr.Elapsed = r.Description.Elapsed
			jr.Value = r.Description.Value
			jr.Unit = r.Description.Unit
			jr.Text = r.Description.Text
		}
		out.Results = append(out.Results, jr)
	}

	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(out)
}
