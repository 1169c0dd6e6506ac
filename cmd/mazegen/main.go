// mazegen generates, verifies and optionally auto-plays perfect mazes.
//
// Usage:
//
//	go run ./cmd/mazegen -level hard -seed 42
//	go run ./cmd/mazegen -width 21 -height 11 -algorithm frontier-growth -out maze.yaml
//	go run ./cmd/mazegen -in maze.yaml -verify -png maze.png -solution
//	go run ./cmd/mazegen -level easy -play -db
//	go run ./cmd/mazegen -best 10 -level easy
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/level"
	"github.com/katalvlaran/lvmaze/logger"
	"github.com/katalvlaran/lvmaze/placement"
	"github.com/katalvlaran/lvmaze/render"
	"github.com/katalvlaran/lvmaze/rng"
	"github.com/katalvlaran/lvmaze/session"
	"github.com/katalvlaran/lvmaze/solver"
	"github.com/katalvlaran/lvmaze/store"
)

// EntranceRune marks the entrance when a maze is printed.
const EntranceRune = 'S'

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type flags struct {
	configPath  string
	levelName   string
	width       int
	height      int
	algorithm   string
	strategy    string
	seed        int64
	out         string
	in          string
	png         string
	solution    bool
	verify      bool
	play        bool
	record      bool
	best        int
	list        bool
	writeConfig string
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "lvmaze.yaml", "Path to configuration file")
	fs.StringVar(&f.levelName, "level", "easy", "Difficulty level")
	fs.IntVar(&f.width, "width", 0, "Override level width (even values are rounded up)")
	fs.IntVar(&f.height, "height", 0, "Override level height (even values are rounded up)")
	fs.StringVar(&f.algorithm, "algorithm", "", "Override carving algorithm")
	fs.StringVar(&f.strategy, "strategy", "", "Override endpoint strategy")
	fs.Int64Var(&f.seed, "seed", 0, "Random seed (0 derives one from the clock)")
	fs.StringVar(&f.out, "out", "", "Write the maze as YAML to this file")
	fs.StringVar(&f.in, "in", "", "Load a maze exported with -out instead of generating one")
	fs.StringVar(&f.png, "png", "", "Render the maze as a PNG image to this file")
	fs.BoolVar(&f.solution, "solution", false, "Shade the shortest route in the -png image")
	fs.BoolVar(&f.verify, "verify", false, "Check that the maze is perfect")
	fs.BoolVar(&f.play, "play", false, "Walk the shortest route from entrance to exit")
	fs.BoolVar(&f.record, "db", false, "Record the run in the configured store")
	fs.IntVar(&f.best, "best", 0, "List the N best recorded runs of -level and exit")
	fs.BoolVar(&f.list, "list", false, "List configured levels and exit")
	fs.StringVar(&f.writeConfig, "write-config", "", "Write the effective configuration to this file and exit")
	err := fs.Parse(args)
	return f, err
}

func run(args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	log, closer, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing logger: %v\n", err)
		return 1
	}
	defer closer.Close()

	ctx := context.Background()
	switch {
	case f.writeConfig != "":
		err = writeConfig(f.writeConfig, cfg)
		if err == nil {
			fmt.Fprintf(stdout, "Configuration written to %s\n", f.writeConfig)
		}
	case f.list:
		listLevels(stdout, cfg.Levels)
	case f.best > 0:
		var lvl level.Level
		if lvl, err = cfg.Levels.Lookup(f.levelName); err == nil {
			err = showBest(ctx, stdout, cfg.Store, lvl.Name, f.best, log)
		}
	case f.in != "":
		err = inspect(stdout, f)
	default:
		err = generate(ctx, stdout, cfg, f, log)
	}
	if err != nil {
		log.Error("mazegen failed", "error", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func writeConfig(path string, cfg config.Config) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := config.Write(file, cfg); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func listLevels(w io.Writer, table level.Table) {
	fmt.Fprintf(w, "%-12s %-9s %-18s %-18s %s\n", "LEVEL", "SIZE", "ALGORITHM", "STRATEGY", "TIME")
	for _, l := range table {
		fmt.Fprintf(w, "%-12s %-9s %-18s %-18s %s\n",
			l.Name, fmt.Sprintf("%dx%d", l.Width, l.Height), l.Algorithm, l.Strategy, l.TimeLimit)
	}
}

// resolveLevel looks up the named level and applies command-line overrides.
func resolveLevel(table level.Table, f flags) (level.Level, error) {
	lvl, err := table.Lookup(f.levelName)
	if err != nil {
		return level.Level{}, err
	}
	if f.width > 0 {
		lvl.Width = f.width
	}
	if f.height > 0 {
		lvl.Height = f.height
	}
	if f.algorithm != "" {
		if lvl.Algorithm, err = generator.ParseAlgorithm(f.algorithm); err != nil {
			return level.Level{}, err
		}
	}
	if f.strategy != "" {
		if lvl.Strategy, err = placement.ParseStrategy(f.strategy); err != nil {
			return level.Level{}, err
		}
	}
	return lvl, nil
}

func generate(ctx context.Context, w io.Writer, cfg config.Config, f flags, log *slog.Logger) error {
	lvl, err := resolveLevel(cfg.Levels, f)
	if err != nil {
		return err
	}

	seed := rng.ResolveSeed(f.seed)
	started := time.Now()
	s, err := session.New(lvl, rng.New(seed), session.WithSeed(seed), session.WithLogger(log))
	if err != nil {
		return err
	}

	if f.play {
		for !s.Won() {
			d, ok := s.Hint()
			if !ok {
				break
			}
			s.Move(d)
		}
	}
	elapsed := time.Since(started)

	printMaze(w, s.Maze(), s.Entrance())
	lvl = s.Level()
	fmt.Fprintf(w, "level=%s size=%dx%d algorithm=%s strategy=%s seed=%d\n",
		lvl.Name, lvl.Width, lvl.Height, lvl.Algorithm, lvl.Strategy, seed)
	fmt.Fprintf(w, "entrance=%v exit=%v ideal_moves=%d\n", s.Entrance(), s.Exit(), s.IdealMoves())
	if s.Fallback() {
		fmt.Fprintln(w, "warning: endpoint placement fell back")
	}
	if f.play {
		fmt.Fprintf(w, "moves=%d won=%v accuracy=%.1f%%\n", s.Moves(), s.Won(), s.Accuracy())
	}

	if f.verify {
		if err := solver.IsPerfect(s.Maze()); err != nil {
			return err
		}
		fmt.Fprintln(w, "perfect: ok")
	}

	if f.out != "" {
		if err := writeMazeDoc(f.out, newMazeDoc(s)); err != nil {
			return err
		}
		fmt.Fprintf(w, "Maze written to %s\n", f.out)
	}
	if err := savePNG(w, f, s.Maze(), s.Entrance(), s.Exit()); err != nil {
		return err
	}

	if f.record {
		st, err := store.Open(ctx, cfg.Store, store.WithLogger(log))
		if err != nil {
			return err
		}
		defer st.Close()
		run := s.Outcome(elapsed)
		id, err := st.SaveRun(ctx, &run)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Run %d recorded\n", id)
	}
	return nil
}

// inspect reloads an exported maze, re-measures its route and optionally
// verifies it.
func inspect(w io.Writer, f flags) error {
	doc, g, err := readMazeDoc(f.in)
	if err != nil {
		return err
	}
	printMaze(w, g, doc.Entrance.coord())

	ideal := solver.ShortestPathLength(g, doc.Entrance.coord(), doc.Exit.coord())
	fmt.Fprintf(w, "level=%s size=%dx%d algorithm=%s strategy=%s seed=%d\n",
		doc.Level, doc.Width, doc.Height, doc.Algorithm, doc.Strategy, doc.Seed)
	fmt.Fprintf(w, "entrance=%v exit=%v ideal_moves=%d\n", doc.Entrance.coord(), doc.Exit.coord(), ideal)
	if ideal != doc.IdealMoves {
		return fmt.Errorf("ideal moves mismatch: file says %d, measured %d", doc.IdealMoves, ideal)
	}
	if f.verify {
		if err := solver.IsPerfect(g); err != nil {
			return err
		}
		fmt.Fprintln(w, "perfect: ok")
	}
	return savePNG(w, f, g, doc.Entrance.coord(), doc.Exit.coord())
}

// savePNG renders the maze when -png is set.
func savePNG(w io.Writer, f flags, g *grid.Grid, entrance, exit grid.Coord) error {
	if f.png == "" {
		return nil
	}
	img, err := render.Render(g, entrance, exit, render.WithRoute(f.solution))
	if err != nil {
		return err
	}
	if err := render.SavePNG(f.png, img); err != nil {
		return err
	}
	fmt.Fprintf(w, "Image written to %s\n", f.png)
	return nil
}

func showBest(ctx context.Context, w io.Writer, cfg store.Config, levelName string, limit int, log *slog.Logger) error {
	st, err := store.Open(ctx, cfg, store.WithLogger(log))
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.BestRuns(ctx, levelName, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintf(w, "No won runs recorded for %s\n", levelName)
		return nil
	}
	fmt.Fprintf(w, "%-5s %-10s %-9s %-7s %-9s %s\n", "ID", "LEVEL", "ACCURACY", "MOVES", "TIME", "SEED")
	for _, r := range runs {
		fmt.Fprintf(w, "%-5d %-10s %-9s %-7d %-9s %d\n",
			r.ID, r.Level, fmt.Sprintf("%.1f%%", r.Accuracy), r.Moves, r.Elapsed, r.Seed)
	}
	return nil
}

// printMaze renders g with the entrance marked.
func printMaze(w io.Writer, g *grid.Grid, entrance grid.Coord) {
	for y, row := range g.Rows() {
		if y == entrance.Y && g.InBounds(entrance.X, entrance.Y) {
			b := []byte(row)
			b[entrance.X] = EntranceRune
			row = string(b)
		}
		fmt.Fprintln(w, row)
	}
}
