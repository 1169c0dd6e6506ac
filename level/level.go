// Package level maps named difficulty tiers to concrete maze parameters:
// dimensions, carving algorithm, endpoint strategy and time limit.
//
// The mapping is application policy layered on top of the engine. Default
// returns the four built-in tiers; package config can replace them from YAML.
package level

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/placement"
)

var (
	// ErrUnknownLevel indicates a lookup for a name or index not in the table.
	ErrUnknownLevel = errors.New("level: unknown level")

	// ErrInvalidLevel indicates a level whose fields cannot produce a maze.
	ErrInvalidLevel = errors.New("level: invalid level")
)

// Level is one difficulty tier.
type Level struct {
	Name      string              `yaml:"name"`
	Width     int                 `yaml:"width"`
	Height    int                 `yaml:"height"`
	Algorithm generator.Algorithm `yaml:"algorithm"`
	Strategy  placement.Strategy  `yaml:"strategy"`
	TimeLimit time.Duration       `yaml:"time_limit"`
}

// Normalize rounds even dimensions up to the next odd value, as the carving
// lattice requires.
func (l Level) Normalize() Level {
	if l.Width%2 == 0 {
		l.Width++
	}
	if l.Height%2 == 0 {
		l.Height++
	}
	return l
}

// Validate reports why l cannot be played, wrapping ErrInvalidLevel.
// It checks the level as given; call Normalize first to accept even sizes.
func (l Level) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidLevel)
	}
	if err := grid.ValidateDimensions(l.Width, l.Height); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidLevel, l.Name, err)
	}
	if _, err := generator.For(l.Algorithm); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidLevel, l.Name, err)
	}
	if _, ok := strategyKnown[l.Strategy]; !ok {
		return fmt.Errorf("%w: %q: %w: %d", ErrInvalidLevel, l.Name, placement.ErrUnknownStrategy, int(l.Strategy))
	}
	if l.TimeLimit < 0 {
		return fmt.Errorf("%w: %q: negative time limit %s", ErrInvalidLevel, l.Name, l.TimeLimit)
	}
	return nil
}

var strategyKnown = func() map[placement.Strategy]struct{} {
	m := make(map[placement.Strategy]struct{}, len(placement.Strategies))
	for _, s := range placement.Strategies {
		m[s] = struct{}{}
	}
	return m
}()

// Table is an ordered list of levels, easiest first.
type Table []Level

// Default returns the built-in tiers.
func Default() Table {
	return Table{
		{Name: "easy", Width: 31, Height: 15, Algorithm: generator.QueueCarve, Strategy: placement.Random, TimeLimit: 50 * time.Second},
		{Name: "medium", Width: 41, Height: 21, Algorithm: generator.RandomizedCarve, Strategy: placement.Random, TimeLimit: 100 * time.Second},
		{Name: "hard", Width: 51, Height: 25, Algorithm: generator.EdgeSelection, Strategy: placement.CornerToCorner, TimeLimit: 165 * time.Second},
		{Name: "very-hard", Width: 61, Height: 31, Algorithm: generator.FrontierGrowth, Strategy: placement.SideToSide, TimeLimit: 210 * time.Second},
	}
}

// Lookup finds a level by name, ignoring case and treating '_' and ' ' as '-'.
func (t Table) Lookup(name string) (Level, error) {
	key := normalizeName(name)
	for _, l := range t {
		if normalizeName(l.Name) == key {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// At returns the level at index i.
func (t Table) At(i int) (Level, error) {
	if i < 0 || i >= len(t) {
		return Level{}, fmt.Errorf("%w: index %d of %d", ErrUnknownLevel, i, len(t))
	}
	return t[i], nil
}

// Names lists level names in table order.
func (t Table) Names() []string {
	out := make([]string, len(t))
	for i, l := range t {
		out[i] = l.Name
	}
	return out
}

// Normalize applies Level.Normalize to every entry.
func (t Table) Normalize() Table {
	out := make(Table, len(t))
	for i, l := range t {
		out[i] = l.Normalize()
	}
	return out
}

// Validate checks every level and rejects duplicate names.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty table", ErrInvalidLevel)
	}
	seen := make(map[string]bool, len(t))
	for _, l := range t {
		if err := l.Validate(); err != nil {
			return err
		}
		key := normalizeName(l.Name)
		if seen[key] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidLevel, l.Name)
		}
		seen[key] = true
	}
	return nil
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "-", " ", "-").Replace(s)
}
