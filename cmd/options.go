package cmd

// Options holds the shared command-line options for the ago CLI.
type Options struct {
	Format          string
	Now             string // Fixed reference instant; empty means the system clock
	SingularSeconds bool
	Future          string
	Workers         int
	Verbosity       int
	Color           *bool // nil = auto-detect, true = force, false = disable
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFormat sets the output format (text, table, json, markdown).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithNow fixes the reference instant.
func WithNow(now string) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// WithSingularSeconds writes "1 second ago" instead of "1 seconds ago".
func WithSingularSeconds(singular bool) Option {
	return func(o *Options) {
		o.SingularSeconds = singular
	}
}

// WithFuture sets the future-instant policy (pass, clamp, reject).
func WithFuture(policy string) Option {
	return func(o *Options) {
		o.Future = policy
	}
}

// WithWorkers sets the number of concurrent workers.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		o.Workers = workers
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}

// WithColor controls colored output (nil = auto-detect).
func WithColor(color *bool) Option {
	return func(o *Options) {
		o.Color = color
	}
}
