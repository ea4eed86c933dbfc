// Command ropeterm shows the elastic rope in a terminal. Drag it with the
// mouse, tilt it with the arrow keys, and quit with q or Esc.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/rope"
	"honnef.co/go/rope/internal/config"
	"honnef.co/go/rope/internal/input"
	"honnef.co/go/rope/internal/logging"
	"honnef.co/go/rope/internal/scene"
)

// The scene works in pixels; a terminal cell stands for a block of this many.
const (
	cellWidth  = 8
	cellHeight = 16
)

var (
	// cellCenter maps integer cell coordinates to the centre of the cell.
	cellCenter  = rope.Translate(rope.Vec(0.5, 0.5)).ThenScale(cellWidth, cellHeight)
	worldToCell = rope.Scale(cellWidth, cellHeight).Invert()
)

const tiltStep = 0.25

var (
	ropeStyle    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	controlStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	targetStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

type Term struct {
	screen  tcell.Screen
	scene   *scene.Scene
	log     *zap.Logger
	pointer input.Pointer
	tilt    input.Tilt
	hasTilt bool
	paused  bool
}

// NewTerm initializes screen and lays the scene out to fill it.
func NewTerm(screen tcell.Screen, s *scene.Scene, log *zap.Logger) (*Term, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	t := &Term{screen: screen, scene: s, log: log}
	t.resize()
	return t, nil
}

func (t *Term) resize() {
	w, h := t.screen.Size()
	t.scene.Resize(float64(w*cellWidth), float64(h*cellHeight))
	t.screen.Sync()
}

// toWorld returns the centre of cell (x, y) in scene pixels.
func toWorld(x, y int) rope.Point {
	return rope.Pt(float64(x), float64(y)).Transform(cellCenter)
}

// toCell returns the cell containing p.
func toCell(p rope.Point) (int, int) {
	c := p.Transform(worldToCell)
	return int(math.Floor(c.X)), int(math.Floor(c.Y))
}

// handle processes one event and reports whether to keep running.
func (t *Term) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			t.nudge(-tiltStep, 0)
		case tcell.KeyRight:
			t.nudge(tiltStep, 0)
		case tcell.KeyUp:
			t.nudge(0, -tiltStep)
		case tcell.KeyDown:
			t.nudge(0, tiltStep)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'p', ' ':
				t.paused = !t.paused
			case '0':
				t.tilt, t.hasTilt = input.Tilt{}, false
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.pointer = input.Pointer{
			Active: ev.Buttons()&tcell.Button1 != 0,
			At:     toWorld(x, y),
		}
	case *tcell.EventResize:
		t.resize()
	}
	return true
}

func (t *Term) nudge(dx, dy float64) {
	t.tilt = input.Tilt{X: t.tilt.X + dx, Y: t.tilt.Y + dy}.Clamp()
	t.hasTilt = true
}

func (t *Term) frame(elapsed float64) {
	if t.paused {
		return
	}
	t.scene.Frame(elapsed, scene.Input{Pointer: t.pointer, Tilt: t.tilt, HasTilt: t.hasTilt})
}

func (t *Term) draw() {
	t.screen.Clear()

	first := true
	var prev rope.Point
	for pt := range t.scene.Samples() {
		if !first {
			t.plotSegment(prev, pt)
		}
		prev = pt
		first = false
	}
	for _, p := range t.scene.Targets() {
		x, y := toCell(p)
		t.screen.SetContent(x, y, '+', nil, targetStyle)
	}
	for _, p := range t.scene.Controls() {
		x, y := toCell(p)
		t.screen.SetContent(x, y, 'o', nil, controlStyle)
	}

	mode := "noise"
	if t.hasTilt {
		mode = fmt.Sprintf("tilt %+.2f,%+.2f", t.tilt.X, t.tilt.Y)
	}
	if t.paused {
		mode += " (paused)"
	}
	_, h := t.screen.Size()
	t.print(0, h-1, "q quit  arrows tilt  0 noise  p pause  | "+mode)
	t.screen.Show()
}

// plotSegment fills every cell the segment from a to b passes through.
func (t *Term) plotSegment(a, b rope.Point) {
	d := b.Sub(a)
	n := int(max(abs(d.X)/cellWidth, abs(d.Y)/cellHeight)*2) + 1
	for i := range n + 1 {
		x, y := toCell(a.Lerp(b, float64(i)/float64(n)))
		t.screen.SetContent(x, y, '█', nil, ropeStyle)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (t *Term) print(x, y int, s string) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, statusStyle)
		x++
	}
}

// Run drives the terminal until the user quits or ctx is cancelled. Events
// are polled on their own goroutine; the frame loop owns the scene.
func (t *Term) Run(ctx context.Context, fps int) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	g.Go(func() error {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// The screen has been finalized.
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer t.screen.Fini()
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()
		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if !t.handle(ev) {
					t.log.Info("quit requested")
					return nil
				}
			case now := <-ticker.C:
				t.frame(now.Sub(last).Seconds())
				last = now
				t.draw()
			}
		}
	})

	return g.Wait()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "ropeterm:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	output := cfg.Log.Output
	if output == "stderr" || output == "stdout" || output == "" {
		// The terminal is ours; only log to a file.
		output = "none"
	}
	log, err := logging.New(level, output)
	if err != nil {
		return err
	}
	defer log.Sync()

	s, err := scene.New(cfg, log)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	term, err := NewTerm(screen, s, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return term.Run(ctx, cfg.Clock.FPS)
}
