// Package generator defines algorithm tags, options and sentinel errors for
// perfect-maze generation.
package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvmaze/grid"
)

var (
	// ErrUnknownAlgorithm indicates an Algorithm value or name with no implementation.
	ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")

	// ErrInvalidStart indicates a start coordinate that cannot seed carving:
	// outside the interior or, for the carvers, not a lattice cell.
	ErrInvalidStart = errors.New("generator: invalid start coordinate")

	// ErrNilSource is returned when no random stream is supplied.
	ErrNilSource = errors.New("generator: random source is nil")
)

// Algorithm selects one of the four carving strategies.
type Algorithm int

const (
	// RandomizedCarve is stack-driven backtracking carving: long, winding corridors.
	RandomizedCarve Algorithm = iota
	// QueueCarve applies the same opening rule in FIFO order.
	QueueCarve
	// EdgeSelection accepts shuffled lattice edges that join disjoint sets (Kruskal-style).
	EdgeSelection
	// FrontierGrowth grows the maze one random frontier wall at a time (Prim-style).
	FrontierGrowth
)

// Algorithms lists every supported Algorithm in tag order.
var Algorithms = []Algorithm{RandomizedCarve, QueueCarve, EdgeSelection, FrontierGrowth}

var algorithmNames = map[Algorithm]string{
	RandomizedCarve: "randomized-carve",
	QueueCarve:      "queue-carve",
	EdgeSelection:   "edge-selection",
	FrontierGrowth:  "frontier-growth",
}

func (a Algorithm) String() string {
	if n, ok := algorithmNames[a]; ok {
		return n
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm resolves a name as produced by String. Matching ignores
// case, and underscores are accepted in place of dashes.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for a, n := range algorithmNames {
		if n == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	n, ok := algorithmNames[a]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Option configures Generate via functional arguments.
type Option func(*Options)

// Options holds parameters for a Generate call.
type Options struct {
	// Start is the carving origin. Ignored by EdgeSelection.
	// FrontierGrowth snaps it to the nearest odd lattice position.
	Start grid.Coord

	// Logger receives debug records about each generation.
	Logger *slog.Logger
}

// DefaultOptions returns Options with:
//   - Start = (1,1), the top-left lattice cell
//   - a Logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Start:  grid.Coord{X: 1, Y: 1},
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithStart sets the carving origin.
func WithStart(c grid.Coord) Option {
	return func(o *Options) {
		o.Start = c
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
