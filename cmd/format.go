package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spiffcs/ago/config"
	"github.com/spiffcs/ago/internal/batch"
	"github.com/spiffcs/ago/internal/clock"
	"github.com/spiffcs/ago/internal/instant"
	"github.com/spiffcs/ago/internal/log"
	"github.com/spiffcs/ago/internal/output"
	"github.com/spiffcs/ago/internal/reltime"
)

// NewCmdFormat creates the format command.
func NewCmdFormat(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [INPUT...]",
		Short: "Print how long ago each input was",
		Long: `Print a relative-time phrase such as "5 minutes ago" for each input.

Inputs may be epoch milliseconds (1718452800000), offsets (90s, 5m, 3d)
or dates (2024-06-15T12:00:00Z). With no arguments, inputs are read
from stdin, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, opts)
		},
	}

	addFormatFlags(cmd, opts)

	return cmd
}

func addFormatFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format (text, table, json, markdown)")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "Number of concurrent workers (default from config)")
	cmd.Flags().Var(newColorFlag(opts), "color", "Color table output: true, false or auto (default: auto-detect)")
	cmd.Flags().Lookup("color").NoOptDefVal = "true"
	addFormatterFlags(cmd, opts)
}

// addFormatterFlags registers the flags that shape the phrases themselves.
func addFormatterFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVar(&opts.Now, "now", "", "Reference instant instead of the system clock")
	cmd.Flags().BoolVar(&opts.SingularSeconds, "singular-seconds", false, `Write "1 second ago" instead of "1 seconds ago"`)
	cmd.Flags().StringVar(&opts.Future, "future", "", "Future instants: pass, clamp or reject (default from config)")
	cmd.Flags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
}

func runFormat(cmd *cobra.Command, args []string, opts *Options) error {
	log.Initialize(opts.Verbosity, cmd.ErrOrStderr())

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	f, err := buildFormatter(cmd, cfg, opts)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(firstNonEmpty(opts.Format, cfg.DefaultFormat))
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		log.Info("reading inputs from stdin")
		inputs, err = readInputs(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no inputs given")
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = cfg.GetWorkers()
	}

	pinned := f.At(f.Now())
	runner := batch.NewRunner(pinned,
		batch.WithWorkers(workers),
		batch.WithProgress(func(completed, total int) {
			log.Progress("Formatting: %d/%d", completed, total)
		}),
	)

	results, err := runner.Run(cmd.Context(), inputs)
	if err != nil {
		return err
	}
	log.ProgressDone()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
		log.Trace("formatted", "input", r.Input, "instant", r.Instant, "text", r.Description.Text, "error", r.Err)
	}
	log.Info("formatted inputs", "count", len(results), "failed", failed)

	formatter := output.NewFormatter(format, output.Settings{
		Now:   pinned.Now(),
		Color: shouldUseColor(opts),
	})
	if err := formatter.Format(results, cmd.OutOrStdout()); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs could not be formatted", failed, len(results))
	}
	return nil
}

// buildFormatter merges config and flags into a Formatter. Flags win.
func buildFormatter(cmd *cobra.Command, cfg *config.Config, opts *Options) (*reltime.Formatter, error) {
	fopts := cfg.FormatterOptions()

	if cmd.Flags().Changed("singular-seconds") {
		style := reltime.SecondsPlural
		if opts.SingularSeconds {
			style = reltime.SecondsSingular
		}
		fopts = append(fopts, reltime.WithSecondsStyle(style))
	}

	if opts.Future != "" {
		policy, err := reltime.ParseFuturePolicy(opts.Future)
		if err != nil {
			return nil, err
		}
		fopts = append(fopts, reltime.WithFuturePolicy(policy))
	}

	if opts.Now != "" {
		now, err := instant.Parse(opts.Now, time.Now())
		if err != nil {
			return nil, fmt.Errorf("invalid --now: %w", err)
		}
		log.Debug("using fixed clock", "now", now)
		fopts = append(fopts, reltime.WithClock(clock.Fixed(now)))
	}

	return reltime.New(fopts...), nil
}

// readInputs returns the non-blank lines of r.
func readInputs(r io.Reader) ([]string, error) {
	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	return inputs, scanner.Err()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
