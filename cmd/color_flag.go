package cmd

import (
	"fmt"

	"github.com/spiffcs/ago/internal/output"
)

// colorFlag implements pflag.Value for the tri-state --color flag.
type colorFlag struct {
	opts *Options
}

func newColorFlag(opts *Options) *colorFlag {
	return &colorFlag{opts: opts}
}

func (f *colorFlag) String() string {
	if f.opts.Color == nil {
		return "auto"
	}
	if *f.opts.Color {
		return "true"
	}
	return "false"
}

func (f *colorFlag) Set(s string) error {
	switch s {
	case "true", "1", "yes", "always":
		v := true
		f.opts.Color = &v
	case "false", "0", "no", "never":
		v := false
		f.opts.Color = &v
	case "auto":
		f.opts.Color = nil
	default:
		return fmt.Errorf("invalid value %q: use true, false, or auto", s)
	}
	return nil
}

func (f *colorFlag) Type() string {
	return "bool"
}

// shouldUseColor determines whether to color table output.
func shouldUseColor(opts *Options) bool {
	if opts.Color != nil {
		return *opts.Color
	}
	return output.StdoutIsTerminal()
}
