package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/spiffcs/ago/config"
	"github.com/spiffcs/ago/internal/instant"
	"github.com/spiffcs/ago/internal/log"
	"github.com/spiffcs/ago/internal/tui"
)

// NewCmdWatch creates the watch command.
func NewCmdWatch(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch INPUT...",
		Short: "Show relative times that update every second",
		Long: `Show a live view of each input's relative time, refreshed every second.

Offsets such as 5m are resolved once at startup and then age like any
other instant. Outside a terminal the phrases are printed once.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, opts)
		},
	}

	addFormatterFlags(cmd, opts)

	return cmd
}

func runWatch(cmd *cobra.Command, args []string, opts *Options) error {
	log.Initialize(opts.Verbosity, cmd.ErrOrStderr())

	// Fall back to a one-shot listing so pipes and CI still get output.
	if !tui.ShouldUseTUI() {
		log.Info("stdout is not an interactive terminal, printing once")
		return runFormat(cmd, args, opts)
	}
	if log.IsDebug() {
		log.Warn("live view disabled at debug verbosity, printing once")
		return runFormat(cmd, args, opts)
	}

	// Logs would interleave with the live view
	log.Initialize(opts.Verbosity, io.Discard)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	f, err := buildFormatter(cmd, cfg, opts)
	if err != nil {
		return err
	}

	now := f.Now()
	entries := make([]tui.Entry, 0, len(args))
	for _, arg := range args {
		t, err := instant.Parse(arg, now)
		if err != nil {
			log.Debug("input rejected", "input", arg, "error", err)
		}
		entries = append(entries, tui.Entry{Input: arg, Instant: t, Err: err})
	}

	return tui.Run(f, entries)
}
