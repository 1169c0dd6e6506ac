// mazeplay is an interactive terminal front end for one maze level.
//
// Usage:
//
//	go run ./cmd/mazeplay -level medium
//	go run ./cmd/mazeplay -level hard -seed 42 -db -sound
//
// Arrow keys or WASD move, ? shows the next step of the shortest route and
// q or Esc gives up. Console logging is switched off while the screen is in
// use; enable file logging in lvmaze.yaml to keep a trace.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/logger"
	"github.com/katalvlaran/lvmaze/rng"
	"github.com/katalvlaran/lvmaze/session"
	"github.com/katalvlaran/lvmaze/store"
)

// newScreen is replaced by tests with a simulation screen.
var newScreen = tcell.NewScreen

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type flags struct {
	configPath string
	levelName  string
	seed       int64
	record     bool
	sound      bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("mazeplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "lvmaze.yaml", "Path to configuration file")
	fs.StringVar(&f.levelName, "level", "easy", "Difficulty level")
	fs.Int64Var(&f.seed, "seed", 0, "Random seed (0 derives one from the clock)")
	fs.BoolVar(&f.record, "db", false, "Record the finished run in the configured store")
	fs.BoolVar(&f.sound, "sound", false, "Play audio cues")
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
	cfg.Logging.ConsoleEnabled = false
	log, closer, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing logger: %v\n", err)
		return 1
	}
	defer closer.Close()

	lvl, err := cfg.Levels.Lookup(f.levelName)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	seed := rng.ResolveSeed(f.seed)
	s, err := session.New(lvl, rng.New(seed), session.WithSeed(seed), session.WithLogger(log))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := newScreen()
	if err != nil {
		fmt.Fprintf(stderr, "Error opening terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(stderr, "Error initializing terminal: %v\n", err)
		return 1
	}

	var sound *chime
	if f.sound {
		if sound, err = newChime(); err != nil {
			// Non-fatal, the game runs without sound
			log.Warn("audio unavailable", "error", err)
		}
	}

	g := newGame(screen, s, sound, log)
	res := g.loop(context.Background())
	elapsed := g.elapsed()
	screen.Fini()

	fmt.Fprintf(stdout, "%s: level=%s seed=%d moves=%d ideal=%d accuracy=%.1f%% time=%s\n",
		res, s.Level().Name, seed, s.Moves(), s.IdealMoves(), s.Accuracy(), elapsed.Round(10*time.Millisecond))

	if f.record && res != abandoned {
		ctx := context.Background()
		st, err := store.Open(ctx, cfg.Store, store.WithLogger(log))
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defer st.Close()
		run := s.Outcome(elapsed)
		id, err := st.SaveRun(ctx, &run)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Run %d recorded\n", id)
	}
	return 0
}
