// Command ropeview shows the elastic rope in a desktop window. Drag it with
// the mouse or a finger; left alone, it sways with a synthetic tilt.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"honnef.co/go/rope"
	"honnef.co/go/rope/internal/config"
	"honnef.co/go/rope/internal/input"
	"honnef.co/go/rope/internal/logging"
	"honnef.co/go/rope/internal/scene"
)

const (
	ropeWidth = 4
	tickLen   = 14
	dotRadius = 5
)

var (
	backgroundColor = color.RGBA{0x12, 0x14, 0x1c, 0xff}
	ropeColor       = color.RGBA{0xf0, 0x8a, 0x4b, 0xff}
	tickColor       = color.RGBA{0x5b, 0xc0, 0xeb, 0xff}
	controlColor    = color.RGBA{0xfd, 0xe7, 0x4c, 0xff}
	targetColor     = color.RGBA{0x9b, 0xc5, 0x3d, 0xff}
)

// Game adapts a scene to ebiten's game loop.
type Game struct {
	scene     *scene.Scene
	showDebug bool
	paused    bool
	log       *zap.Logger
}

// Update is called TPS times per second by ebiten.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.showDebug = !g.showDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.log.Debug("pause toggled", zap.Bool("paused", g.paused))
	}
	if g.paused {
		return nil
	}
	g.scene.Frame(1/float64(ebiten.TPS()), scene.Input{Pointer: pointer()})
	return nil
}

// pointer reports the first touch, or the mouse while its left button is
// held.
func pointer() input.Pointer {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return input.Pointer{Active: true, At: rope.Pt(float64(x), float64(y))}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return input.Pointer{Active: true, At: rope.Pt(float64(x), float64(y))}
	}
	return input.Pointer{}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	first := true
	var prev rope.Point
	for pt := range g.scene.Samples() {
		if !first {
			vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(pt.X), float32(pt.Y), ropeWidth, ropeColor, true)
		}
		prev = pt
		first = false
	}

	for pt, dir := range g.scene.Ticks() {
		// Ticks are drawn along the normal.
		n := rope.Vec(-dir.Y, dir.X).Mul(tickLen / 2)
		a, b := pt.Translate(n), pt.Translate(n.Negate())
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, tickColor, true)
	}

	for _, p := range g.scene.Targets() {
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), dotRadius, 1, targetColor, true)
	}
	for _, p := range g.scene.Controls() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), dotRadius, controlColor, true)
	}

	if g.showDebug {
		box := g.scene.Simulation().Curve().Bounds().Inflate(dotRadius, dotRadius)
		vector.StrokeRect(screen, float32(box.X0), float32(box.Y0), float32(box.Width()), float32(box.Height()), 1, tickColor, true)

		a, _ := g.scene.Simulation().Points()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"TPS: %0.1f\nlength: %0.1f\nenergy: %0.1f\ndamping ratio: %0.2f",
			ebiten.ActualTPS(),
			g.scene.Simulation().Curve().Arclen(rope.DefaultAccuracy),
			a.Energy(),
			a.Params().DampingRatio(),
		))
	}
}

// Layout keeps the logical screen the same size as the window and moves the
// anchors when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "ropeview:", err)
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
	log, err := logging.New(level, cfg.Log.Output)
	if err != nil {
		return err
	}
	defer log.Sync()

	s, err := scene.New(cfg, log)
	if err != nil {
		return err
	}
	g := &Game{scene: s, log: log}

	ebiten.SetWindowSize(int(cfg.Viewport.Width), int(cfg.Viewport.Height))
	ebiten.SetWindowTitle("Elastic rope")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Clock.FPS)

	log.Info("starting", zap.String("config", configPath), zap.Int("tps", cfg.Clock.FPS))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Info("stopped")
	return nil
}
