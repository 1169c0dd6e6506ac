package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/placement"
	"github.com/katalvlaran/lvmaze/session"
)

// MazeDoc is the YAML export of one generated maze.
type MazeDoc struct {
	Level       string              `yaml:"level"`
	Width       int                 `yaml:"width"`
	Height      int                 `yaml:"height"`
	Seed        int64               `yaml:"seed"`
	Algorithm   generator.Algorithm `yaml:"algorithm"`
	Strategy    placement.Strategy  `yaml:"strategy"`
	Entrance    Point               `yaml:"entrance,flow"`
	Exit        Point               `yaml:"exit,flow"`
	IdealMoves  int                 `yaml:"ideal_moves"`
	Fallback    bool                `yaml:"fallback,omitempty"`
	GeneratedAt time.Time           `yaml:"generated_at"`
	Rows        []string            `yaml:"rows"`
}

// Point is a grid coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p Point) coord() grid.Coord { return grid.Coord{X: p.X, Y: p.Y} }

func newMazeDoc(s *session.Session) MazeDoc {
	lvl := s.Level()
	return MazeDoc{
		Level:       lvl.Name,
		Width:       lvl.Width,
		Height:      lvl.Height,
		Seed:        s.Seed(),
		Algorithm:   lvl.Algorithm,
		Strategy:    lvl.Strategy,
		Entrance:    Point{X: s.Entrance().X, Y: s.Entrance().Y},
		Exit:        Point{X: s.Exit().X, Y: s.Exit().Y},
		IdealMoves:  s.IdealMoves(),
		Fallback:    s.Fallback(),
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Rows:        s.Maze().Rows(),
	}
}

func writeMazeDoc(path string, doc MazeDoc) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode maze: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write maze: %w", err)
	}
	return nil
}

func readMazeDoc(path string) (MazeDoc, *grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MazeDoc{}, nil, fmt.Errorf("read maze: %w", err)
	}
	var doc MazeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return MazeDoc{}, nil, fmt.Errorf("decode maze %s: %w", path, err)
	}
	g, err := grid.Parse(doc.Rows)
	if err != nil {
		return MazeDoc{}, nil, fmt.Errorf("decode maze %s: %w", path, err)
	}
	if g.Width() != doc.Width || g.Height() != doc.Height {
		return MazeDoc{}, nil, fmt.Errorf("decode maze %s: %w: header says %dx%d, rows are %dx%d",
			path, grid.ErrMalformedLayout, doc.Width, doc.Height, g.Width(), g.Height())
	}
	return doc, g, nil
}
