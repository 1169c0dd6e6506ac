package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/session"
)

const (
	// mazeTop is the screen row of the maze's first line.
	mazeTop    = 2
	tickPeriod = 200 * time.Millisecond

	playerRune   = '@'
	entranceRune = 'S'
	hintRune     = '*'
)

var (
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleOpen     = tcell.StyleDefault
	styleExit     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleEntrance = tcell.StyleDefault.Foreground(tcell.ColorPurple)
)

// result is how a game ended.
type result int

const (
	playing result = iota
	escaped
	timedOut
	abandoned
)

func (r result) String() string {
	switch r {
	case escaped:
		return "escaped"
	case timedOut:
		return "time up"
	case abandoned:
		return "abandoned"
	}
	return "playing"
}

// game drives one session on a terminal screen.
type game struct {
	screen  tcell.Screen
	s       *session.Session
	sound   *chime
	log     *slog.Logger
	now     func() time.Time
	started time.Time
	state   result
	hint    *grid.Coord
}

func newGame(screen tcell.Screen, s *session.Session, sound *chime, log *slog.Logger) *game {
	g := &game{
		screen: screen,
		s:      s,
		sound:  sound,
		log:    log,
		now:    time.Now,
	}
	g.started = g.now()
	if s.Won() {
		g.state = escaped
	}
	return g
}

func (g *game) elapsed() time.Duration {
	return g.now().Sub(g.started)
}

// loop runs until the maze is escaped, the clock runs out, the player quits
// or ctx is done.
func (g *game) loop(ctx context.Context) result {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(tickPeriod)
	defer ticker.Stop()

	g.draw()
	for g.state == playing {
		select {
		case <-ctx.Done():
			g.state = abandoned
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				g.handleKey(ev)
			case *tcell.EventResize:
				g.screen.Sync()
			}
		case <-ticker.C:
			g.tick()
		}
		g.draw()
	}
	g.log.Info("game over", "result", g.state.String(), "moves", g.s.Moves(), "elapsed", g.elapsed())
	return g.state
}

// keyDirection maps arrow keys and WASD to a direction.
func keyDirection(ev *tcell.EventKey) (session.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return session.Up, true
	case tcell.KeyDown:
		return session.Down, true
	case tcell.KeyLeft:
		return session.Left, true
	case tcell.KeyRight:
		return session.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return session.Up, true
		case 's', 'S':
			return session.Down, true
		case 'a', 'A':
			return session.Left, true
		case 'd', 'D':
			return session.Right, true
		}
	}
	return 0, false
}

func (g *game) handleKey(ev *tcell.EventKey) {
	if g.state != playing {
		return
	}
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC,
		ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
		g.state = abandoned
		return
	case ev.Key() == tcell.KeyRune && ev.Rune() == '?':
		if d, ok := g.s.Hint(); ok {
			next := g.s.Position().Add(directionDelta(d))
			g.hint = &next
		}
		return
	}

	d, ok := keyDirection(ev)
	if !ok {
		return
	}
	g.hint = nil
	if !g.s.Move(d) {
		g.sound.bump()
		return
	}
	if g.s.Won() {
		g.state = escaped
		g.sound.win()
	}
}

// tick ends the game once the level's time limit has passed.
func (g *game) tick() {
	if g.state == playing && g.s.Expired(g.elapsed()) {
		g.state = timedOut
		g.sound.bump()
	}
}

func directionDelta(d session.Direction) (int, int) {
	switch d {
	case session.Up:
		return 0, -1
	case session.Down:
		return 0, 1
	case session.Left:
		return -1, 0
	}
	return 1, 0
}

func (g *game) draw() {
	g.screen.Clear()
	g.drawStatus()

	m := g.s.Maze()
	pos, entrance := g.s.Position(), g.s.Entrance()
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			r, style := ' ', styleOpen
			switch {
			case x == pos.X && y == pos.Y:
				r, style = playerRune, stylePlayer
			case g.hint != nil && x == g.hint.X && y == g.hint.Y:
				r, style = hintRune, styleHint
			case m.Is(x, y, grid.Exit):
				r, style = grid.ExitRune, styleExit
			case x == entrance.X && y == entrance.Y:
				r, style = entranceRune, styleEntrance
			case m.Is(x, y, grid.Wall):
				r, style = grid.WallRune, styleWall
			}
			g.screen.SetContent(x, y+mazeTop, r, nil, style)
		}
	}
	g.screen.Show()
}

func (g *game) drawStatus() {
	lvl := g.s.Level()
	line := fmt.Sprintf("%s  moves %d  best %d", lvl.Name, g.s.Moves(), g.s.IdealMoves())
	if lvl.TimeLimit > 0 {
		line += fmt.Sprintf("  time %s", g.s.Remaining(g.elapsed()).Round(time.Second))
	}
	if g.state != playing {
		line += "  [" + g.state.String() + "]"
	}
	g.putString(0, 0, line, styleStatus)
	g.putString(0, 1, "arrows/WASD move  ? hint  q quit", styleStatus)
}

func (g *game) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
