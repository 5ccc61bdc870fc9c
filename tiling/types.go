package tiling

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/domino/flow"
)

// Reason explains a decision.
type Reason int

const (
	// Tileable: the matching is perfect.
	Tileable Reason = iota
	// Unbalanced: black and red counts differ.
	Unbalanced
	// ComponentUnbalanced: some connected region has unequal counts.
	ComponentUnbalanced
	// Unmatched: the maximum matching leaves cells uncovered.
	Unmatched
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case Tileable:
		return "tileable"
	case Unbalanced:
		return "unbalanced colors"
	case ComponentUnbalanced:
		return "unbalanced region"
	case Unmatched:
		return "no perfect matching"
	default:
		return "unknown"
	}
}

// Result is the outcome of Decide.
//
// Matched is the maximum matching size; it is only computed when the
// cheaper checks pass and is 0 otherwise.
type Result struct {
	Tileable bool
	Black    int
	Red      int
	Matched  int64
	Reason   Reason
}

// Options configures Decide.
type Options struct {
	Logger         zerolog.Logger
	Verbose        bool
	ComponentCheck bool
	Dump           io.Writer
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions enables the region pre-check and disables logging.
func DefaultOptions() Options {
	return Options{
		Logger:         zerolog.Nop(),
		ComponentCheck: true,
	}
}

// WithLogger sets the logger for decision and flow debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithVerbose logs each augmenting path of the flow computation.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithoutComponentCheck skips the per-region balance pre-check so that
// every balanced floor goes through the flow engine.
func WithoutComponentCheck() Option {
	return func(o *Options) { o.ComponentCheck = false }
}

// WithDump writes the flow network to w before solving.
func WithDump(w io.Writer) Option {
	return func(o *Options) { o.Dump = w }
}

// flowOptions forwards the relevant settings to the flow engine.
func (o Options) flowOptions() []flow.Option {
	opts := []flow.Option{flow.WithLogger(o.Logger)}
	if o.Verbose {
		opts = append(opts, flow.WithVerbose())
	}

	return opts
}
