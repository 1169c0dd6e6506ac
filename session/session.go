// Package session runs one headless play-through of a level: it generates
// the maze, places the endpoints, measures the ideal route and then tracks
// the player's moves until the exit is reached or time runs out.
//
// Rendering, input mapping and clocks belong to the caller; a Session only
// needs to be told which way to move and how much time has elapsed.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/level"
	"github.com/katalvlaran/lvmaze/placement"
	"github.com/katalvlaran/lvmaze/rng"
	"github.com/katalvlaran/lvmaze/solver"
	"github.com/katalvlaran/lvmaze/store"
)

// ErrUnknownDirection is returned by ParseDirection for an unrecognised name.
var ErrUnknownDirection = errors.New("session: unknown direction")

// Direction is a single orthogonal step.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{"up", "down", "left", "right"}

var directionDeltas = [...]grid.Coord{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

func (d Direction) String() string {
	if d >= Up && d <= Right {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts the names produced by String, ignoring case.
func ParseDirection(name string) (Direction, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range directionNames {
		if n == key {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

// Option configures New.
type Option func(*options)

type options struct {
	logger *slog.Logger
	seed   int64
}

// WithLogger routes generation and placement diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSeed records the seed the caller used for r, so Outcome can carry it
// for replay. It does not reseed r.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// Session is the mutable state of one play-through. It is not safe for
// concurrent use.
type Session struct {
	level    level.Level
	maze     *grid.Grid
	entrance grid.Coord
	exit     grid.Coord
	pos      grid.Coord
	ideal    int
	moves    int
	won      bool
	fallback bool
	seed     int64
	log      *slog.Logger
}

// New normalizes and validates lvl, generates its maze from r, places the
// endpoints and computes the ideal move count. An unreachable exit is
// logged and leaves IdealMoves at 0.
func New(lvl level.Level, r rng.Source, opts ...Option) (*Session, error) {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	lvl = lvl.Normalize()
	if err := lvl.Validate(); err != nil {
		return nil, err
	}

	g, err := generator.Generate(lvl.Width, lvl.Height, lvl.Algorithm, r, generator.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("session: generate %q: %w", lvl.Name, err)
	}
	res, err := placement.Place(g, lvl.Strategy, r, placement.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("session: place %q: %w", lvl.Name, err)
	}

	ideal := solver.ShortestPathLength(g, res.Entrance, res.Exit)
	if ideal == solver.NoPath {
		o.logger.Warn("exit unreachable from entrance",
			"level", lvl.Name,
			"entrance", res.Entrance.String(),
			"exit", res.Exit.String(),
			"error", solver.ErrNoPath)
		ideal = 0
	}

	s := &Session{
		level:    lvl,
		maze:     g,
		entrance: res.Entrance,
		exit:     res.Exit,
		pos:      res.Entrance,
		ideal:    ideal,
		won:      res.Entrance == res.Exit,
		fallback: res.Fallback,
		seed:     o.seed,
		log:      o.logger,
	}
	o.logger.Info("session started",
		"level", lvl.Name,
		"width", lvl.Width,
		"height", lvl.Height,
		"algorithm", lvl.Algorithm.String(),
		"strategy", lvl.Strategy.String(),
		"ideal_moves", ideal)
	return s, nil
}

// Move steps the player one cell in d. Steps into walls or off the grid are
// rejected and not counted, as are all steps once the exit is reached.
// It reports whether the player moved.
func (s *Session) Move(d Direction) bool {
	if s.won || d < Up || d > Right {
		return false
	}
	delta := directionDeltas[d]
	next := s.pos.Add(delta.X, delta.Y)
	if !s.maze.Passable(next.X, next.Y) {
		return false
	}
	s.pos = next
	s.moves++
	if s.pos == s.exit {
		s.won = true
		s.log.Info("exit reached", "level", s.level.Name, "moves", s.moves, "ideal_moves", s.ideal)
	}
	return true
}

// Hint returns the first step of a shortest route from the current position
// to the exit. It returns false once the exit is reached or when the exit
// cannot be reached.
func (s *Session) Hint() (Direction, bool) {
	if s.won {
		return 0, false
	}
	path, err := solver.Path(s.maze, s.pos, s.exit)
	if err != nil || len(path) < 2 {
		return 0, false
	}
	step := grid.Coord{X: path[1].X - s.pos.X, Y: path[1].Y - s.pos.Y}
	for d, delta := range directionDeltas {
		if delta == step {
			return Direction(d), true
		}
	}
	return 0, false
}

// Won reports whether the player stands on the exit.
func (s *Session) Won() bool { return s.won }

// Expired reports whether elapsed exceeds the level's time limit.
// A zero limit never expires.
func (s *Session) Expired(elapsed time.Duration) bool {
	return s.level.TimeLimit > 0 && elapsed > s.level.TimeLimit
}

// Remaining returns the time left at elapsed, floored at zero.
// With no limit it returns zero.
func (s *Session) Remaining(elapsed time.Duration) time.Duration {
	if s.level.TimeLimit <= 0 || elapsed >= s.level.TimeLimit {
		return 0
	}
	return s.level.TimeLimit - elapsed
}

// Accuracy scores the route taken against the ideal one as a percentage.
func (s *Session) Accuracy() float64 {
	return Accuracy(s.ideal, s.moves)
}

// Accuracy returns ideal/moves*100 capped at 100. It is 0 when ideal is 0
// and 100 when no moves were needed beyond a positive ideal.
func Accuracy(ideal, moves int) float64 {
	switch {
	case ideal <= 0:
		return 0
	case moves <= 0:
		return 100
	}
	a := float64(ideal) / float64(moves) * 100
	if a > 100 {
		return 100
	}
	return a
}

// Outcome snapshots the session as a persistable run.
func (s *Session) Outcome(elapsed time.Duration) store.Run {
	return store.Run{
		Level:      s.level.Name,
		Algorithm:  s.level.Algorithm.String(),
		Strategy:   s.level.Strategy.String(),
		Seed:       s.seed,
		Width:      s.level.Width,
		Height:     s.level.Height,
		IdealMoves: s.ideal,
		Moves:      s.moves,
		Accuracy:   s.Accuracy(),
		Elapsed:    elapsed,
		Won:        s.won,
		Fallback:   s.fallback,
		Layout:     strings.Join(s.maze.Rows(), "\n"),
	}
}

// Level returns the normalized level being played.
func (s *Session) Level() level.Level { return s.level }

// Maze returns the generated grid. Callers must not modify it.
func (s *Session) Maze() *grid.Grid { return s.maze }

// Entrance returns the starting cell.
func (s *Session) Entrance() grid.Coord { return s.entrance }

// Exit returns the goal cell.
func (s *Session) Exit() grid.Coord { return s.exit }

// Position returns the player's current cell.
func (s *Session) Position() grid.Coord { return s.pos }

// Moves returns the number of accepted steps.
func (s *Session) Moves() int { return s.moves }

// IdealMoves returns the shortest entrance-to-exit distance, or 0 when the
// exit was unreachable.
func (s *Session) IdealMoves() int { return s.ideal }

// Fallback reports whether endpoint placement had to fall back.
func (s *Session) Fallback() bool { return s.fallback }

// Seed returns the seed recorded with WithSeed.
func (s *Session) Seed() int64 { return s.seed }
