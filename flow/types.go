package flow

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/domino/core"
)

// ErrInvariant matches every *InvariantError.
var ErrInvariant = errors.New("flow: graph invariant violated")

// Reasons wrapped by InvariantError.
var (
	ErrGraphNil         = errors.New("graph is nil")
	ErrNilEndpoint      = errors.New("source or sink is NoVertex")
	ErrSameEndpoint     = errors.New("source and sink are the same vertex")
	ErrSourceNotInSet   = errors.New("source not in vertex set")
	ErrSinkNotInSet     = errors.New("sink not in vertex set")
	ErrUnknownVertex    = errors.New("vertex not allocated by graph")
	ErrMissingCapacity  = errors.New("neighbor has no capacity entry")
	ErrNegativeCapacity = errors.New("negative capacity")
)

// InvariantError reports a graph handed to MaxFlow or
// ShortestAugmentingPath that breaks the contract. It is a programming
// error in whoever built the graph, never a negative answer.
type InvariantError struct {
	Op       string
	Vertex   core.VertexID
	Neighbor core.VertexID
	Err      error
}

func (e *InvariantError) Error() string {
	if e.Neighbor != core.NoVertex {
		return fmt.Sprintf("flow: %s: %v on edge %d→%d", e.Op, e.Err, e.Vertex, e.Neighbor)
	}
	if e.Vertex != core.NoVertex {
		return fmt.Sprintf("flow: %s: %v (vertex %d)", e.Op, e.Err, e.Vertex)
	}

	return fmt.Sprintf("flow: %s: %v", e.Op, e.Err)
}

// Unwrap returns the specific reason.
func (e *InvariantError) Unwrap() error { return e.Err }

// Is makes every InvariantError match ErrInvariant.
func (e *InvariantError) Is(target error) bool { return target == ErrInvariant }

// FlowOptions configures MaxFlow.
//   - Verbose: log each augmentation through Logger.
//   - Logger: destination for debug output (default zerolog.Nop()).
type FlowOptions struct {
	Verbose bool
	Logger  zerolog.Logger
}

// Option mutates FlowOptions.
type Option func(*FlowOptions)

// DefaultOptions returns quiet options.
func DefaultOptions() FlowOptions {
	return FlowOptions{Logger: zerolog.Nop()}
}

// WithVerbose logs every augmenting path.
func WithVerbose() Option {
	return func(o *FlowOptions) { o.Verbose = true }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(o *FlowOptions) { o.Logger = l }
}

// Stats is the outcome of one max-flow computation.
type Stats struct {
	// Value is the maximum flow from source to sink.
	Value int64
	// Augmentations counts the augmenting paths pushed.
	Augmentations int
}
