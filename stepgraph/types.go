package stepgraph

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// Unreached is the Distance seeded for an index before any path from 0
// reaches it. A real sum may also equal math.MinInt64, so reachability is
// tracked through Predecessor rather than by comparing against Unreached.
const Unreached int64 = math.MinInt64

// Sentinel errors for PathGraph construction and execution.
var (
	// ErrEmptyValues is returned when the value sequence is empty;
	// the maximum over an empty set is undefined.
	ErrEmptyValues = errors.New("stepgraph: values must not be empty")

	// ErrNoStepRules is returned when no step rule is supplied.
	ErrNoStepRules = errors.New("stepgraph: at least one step rule is required")

	// ErrNilRule is returned when one of the supplied step rules is nil.
	ErrNilRule = errors.New("stepgraph: step rule is nil")

	// ErrCyclicStepRules is returned when the discovered graph contains a
	// cycle (for example a zero offset, or a rule stepping backwards).
	ErrCyclicStepRules = errors.New("stepgraph: cyclic step rules unsupported")

	// ErrIndexNotReached is returned by PathTo for an index that was never
	// discovered from 0.
	ErrIndexNotReached = errors.New("stepgraph: index not reached from 0")

	// ErrSumOverflow is returned when the best sum of some discovered index
	// does not fit in an int64.
	ErrSumOverflow = errors.New("stepgraph: path sum overflows int64")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stepgraph: invalid option supplied")
)

// Strategy selects the relaxation algorithm used by Relax.
type Strategy int

const (
	// StrategyBellmanFord repeats full relaxation passes over the discovered
	// nodes in discovery order until nothing changes.
	StrategyBellmanFord Strategy = iota

	// StrategyTopological relaxes every edge exactly once, visiting nodes
	// in a topological order of the discovered graph.
	StrategyTopological
)

// String returns the CLI name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyBellmanFord:
		return "bellman-ford"
	case StrategyTopological:
		return "topological"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a CLI name back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "bellman-ford", "bellmanford", "bf":
		return StrategyBellmanFord, nil
	case "topological", "topo", "dag":
		return StrategyTopological, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Option configures a PathGraph via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks that customize a PathGraph.
type Options struct {
	// Strategy selects the relaxation algorithm.
	Strategy Strategy

	// PredecessorPaths makes path reconstruction list only the predecessors
	// of the terminal index: paths start at 0 and omit the terminal itself.
	// The default is the full path 0 … terminal.
	PredecessorPaths bool

	// Logger receives Debug records about discovery and relaxation.
	Logger *slog.Logger

	// OnDiscover is called once per discovered index, in BFS order,
	// with the index and its hop count from 0.
	OnDiscover func(index, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Bellman-Ford relaxation
//   - full paths (0 … terminal)
//   - a logger that discards everything
//   - no-op OnDiscover hook
func DefaultOptions() Options {
	return Options{
		Strategy:         StrategyBellmanFord,
		PredecessorPaths: false,
		Logger:           slog.New(slog.DiscardHandler),
		OnDiscover:       func(int, int) {},
		err:              nil,
	}
}

// WithStrategy selects the relaxation algorithm.
// Unknown values are recorded as ErrOptionViolation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case StrategyBellmanFord, StrategyTopological:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithPredecessorPaths switches path reconstruction to the predecessor-only
// form: [0, …, predecessor(terminal)], and [] when the terminal is 0.
func WithPredecessorPaths() Option {
	return func(o *Options) {
		o.PredecessorPaths = true
	}
}

// WithLogger sets the logger. Passing nil has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnDiscover registers a callback run for every discovered index.
func WithOnDiscover(fn func(index, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}
