package scene

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"honnef.co/go/rope"
	"honnef.co/go/rope/internal/config"
	"honnef.co/go/rope/internal/input"
)

func newScene(t *testing.T, mutate func(*config.Config)) *Scene {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, cfg.Validate())
	s, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestNewRestsAtLayout(t *testing.T) {
	s := newScene(t, nil)
	rest := s.Layout().Rest()
	assert.Equal(t, rest, s.Controls())
	assert.Equal(t, rest, s.Targets())

	pts := slices.Collect(s.Samples())
	require.Len(t, pts, s.Config().Render.Samples+1)
	start, end := s.Layout().Anchors()
	assert.Equal(t, start, pts[0])
	assert.Equal(t, end, pts[len(pts)-1])
}

func TestNewInvalid(t *testing.T) {
	cfg := config.Default()
	cfg.Spring.Mass = 0
	_, err := New(cfg, zap.NewNop())
	assert.ErrorIs(t, err, rope.ErrNonPositiveMass)
}

func TestFrameDrag(t *testing.T) {
	s := newScene(t, nil)
	grab := rope.Pt(400, 500)
	in := Input{Pointer: input.Pointer{Active: true, At: grab}, HasTilt: true}

	var steps int
	for range 600 {
		steps += s.Frame(1.0/60, in)
	}
	assert.InDelta(t, 600, steps, 1)
	for _, target := range s.Targets() {
		assert.InDelta(t, 0, target.Distance(grab), 1e-9)
	}
	for _, c := range s.Controls() {
		assert.InDelta(t, 0, c.Distance(grab), 0.1)
	}
}

func TestFrameClampsPointer(t *testing.T) {
	s := newScene(t, nil)
	in := Input{Pointer: input.Pointer{Active: true, At: rope.Pt(-50, 5000)}, HasTilt: true}
	s.Frame(1.0/60, in)
	assert.Equal(t, rope.Pt(0, 600), s.Targets()[0])
}

func TestFrameReleaseReturnsToRest(t *testing.T) {
	s := newScene(t, func(c *config.Config) { c.Input.NoiseSpeed = 0 })
	drag := Input{Pointer: input.Pointer{Active: true, At: rope.Pt(100, 100)}}
	for range 60 {
		s.Frame(1.0/60, drag)
	}
	for range 900 {
		s.Frame(1.0/60, Input{})
	}
	rest := s.Layout().Rest()
	for i, c := range s.Controls() {
		assert.InDelta(t, 0, c.Distance(rest[i]), 0.1)
	}
}

func TestFrameNoiseTilt(t *testing.T) {
	s := newScene(t, nil)
	rest := s.Layout().Rest()
	var moved bool
	for range 300 {
		s.Frame(1.0/60, Input{})
		if s.Targets() != rest {
			moved = true
		}
	}
	assert.True(t, moved, "noise tilt should move the targets")
}

func TestFrameIgnoresBadElapsed(t *testing.T) {
	s := newScene(t, nil)
	before := s.Controls()
	for _, e := range []float64{math.NaN(), -1, math.Inf(1)} {
		assert.Equal(t, 0, s.Frame(e, Input{Tilt: input.Tilt{X: 1}, HasTilt: true}))
	}
	assert.Equal(t, before, s.Controls())
}

func TestResize(t *testing.T) {
	s := newScene(t, nil)
	s.Resize(400, 200)
	start, end := s.Simulation().Curve().Anchors()
	assert.Equal(t, rope.Pt(80, 100), start)
	assert.Equal(t, rope.Pt(320, 100), end)

	pts := slices.Collect(s.Samples())
	assert.Equal(t, start, pts[0])
	assert.Equal(t, end, pts[len(pts)-1])
}

func TestResizeShrinkAndGrow(t *testing.T) {
	s := newScene(t, nil)
	wantStart, wantEnd := s.Simulation().Curve().Anchors()
	wantRest := s.Layout().Rest()

	// A minimised window reports a zero size.
	s.Resize(0, 0)
	start, end := s.Simulation().Curve().Anchors()
	assert.Equal(t, start, end)

	s.Resize(800, 600)
	start, end = s.Simulation().Curve().Anchors()
	assert.Equal(t, wantStart, start)
	assert.Equal(t, wantEnd, end)
	assert.Equal(t, wantRest, s.Layout().Rest())
}

func TestFrameReportsDivergence(t *testing.T) {
	cfg := config.Default()
	// One step per second is far beyond the stability bound of the default
	// spring; Validate would reject it.
	cfg.Clock.FPS = 1
	require.Error(t, cfg.Validate())

	core, logs := observer.New(zapcore.WarnLevel)
	s, err := New(cfg, zap.New(core))
	require.NoError(t, err)

	in := Input{Pointer: input.Pointer{Active: true, At: rope.Pt(400, 100)}}
	for range 400 {
		s.Frame(1, in)
	}
	assert.True(t, s.Diverged())
	assert.Equal(t, 1, logs.FilterMessage("simulation diverged").Len())
}

func TestFrameStableDoesNotDiverge(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s, err := New(config.Default(), zap.New(core))
	require.NoError(t, err)

	in := Input{Pointer: input.Pointer{Active: true, At: rope.Pt(400, 100)}}
	for range 400 {
		s.Frame(1.0/60, in)
	}
	assert.False(t, s.Diverged())
	assert.Zero(t, logs.Len())
}

func TestTicks(t *testing.T) {
	s := newScene(t, nil)
	var n int
	for pt, dir := range s.Ticks() {
		assert.True(t, pt.IsFinite())
		assert.InDelta(t, 1, dir.Hypot(), 1e-12)
		n++
	}
	assert.Equal(t, s.Config().Render.TangentTicks+1, n)

	none := newScene(t, func(c *config.Config) { c.Render.TangentTicks = 0 })
	for range none.Ticks() {
		t.Fatal("expected no ticks")
	}
}

func TestTicksDegenerate(t *testing.T) {
	s := newScene(t, nil)
	// Collapse the rope onto a single point.
	p := rope.Pt(300, 300)
	s.Simulation().Curve().SetAnchors(p, p)
	in := Input{Pointer: input.Pointer{Active: true, At: p}, HasTilt: true}
	for range 2000 {
		s.Frame(1.0/60, in)
	}
	for _, dir := range s.Ticks() {
		assert.InDelta(t, 1, dir.Hypot(), 1e-9)
	}
}
