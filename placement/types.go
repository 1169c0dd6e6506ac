// Package placement defines strategies, options and sentinel errors for
// choosing a maze's entrance and exit.
package placement

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvmaze/grid"
)

// MaxAttempts is the default sampling budget of the Random strategy, per
// endpoint.
const MaxAttempts = 1000

var (
	// ErrUnknownStrategy indicates a Strategy value or name with no implementation.
	ErrUnknownStrategy = errors.New("placement: unknown strategy")

	// ErrNoOpenCells is returned when the grid has nowhere to stand.
	ErrNoOpenCells = errors.New("placement: grid has no open cells")

	// ErrPlacementExhausted records that sampling ran out of attempts and a
	// deterministic fallback was used. It is logged, not returned.
	ErrPlacementExhausted = errors.New("placement: sampling budget exhausted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("placement: invalid option supplied")

	// ErrNilSource is returned when the Random strategy gets no stream.
	ErrNilSource = errors.New("placement: random source is nil")
)

// Strategy selects how entrance and exit are chosen.
type Strategy int

const (
	// Random samples two distinct open cells uniformly.
	Random Strategy = iota
	// CornerToCorner takes the open cells nearest the top-left and
	// bottom-right interior corners.
	CornerToCorner
	// SideToSide takes open cells at mid-height on the left and right
	// interior columns.
	SideToSide
)

// Strategies lists every supported Strategy in tag order.
var Strategies = []Strategy{Random, CornerToCorner, SideToSide}

var strategyNames = map[Strategy]string{
	Random:         "random",
	CornerToCorner: "corner-to-corner",
	SideToSide:     "side-to-side",
}

func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy resolves a name as produced by String, ignoring case and
// accepting underscores for dashes.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for s, n := range strategyNames {
		if n == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	n, ok := strategyNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Result is the outcome of a placement.
type Result struct {
	// Entrance is where the player starts. It is not marked in the grid.
	Entrance grid.Coord
	// Exit is the goal; the grid holds grid.Exit there after Place.
	Exit grid.Coord
	// Fallback is true when the strategy could not satisfy its rule and
	// deterministic fallback coordinates were used. This signals a
	// degenerate maze.
	Fallback bool
}

// Option configures Place via functional arguments.
type Option func(*Options)

// Options holds parameters for a Place call.
type Options struct {
	// MaxAttempts bounds sampling per endpoint for the Random strategy.
	MaxAttempts int
	// Logger receives a warning whenever a fallback is taken.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns MaxAttempts = 1000 and a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxAttempts: MaxAttempts,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// WithMaxAttempts overrides the sampling budget. n must be positive.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxAttempts must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// WithLogger routes fallback warnings to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
