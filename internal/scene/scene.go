// Package scene is the platform-independent part of a rope front end. It
// owns the simulation and its clock and turns raw input into targets; a front
// end only reports input and elapsed time and draws what the scene exposes.
package scene

import (
	"iter"
	"math"

	"go.uber.org/zap"

	"honnef.co/go/rope"
	"honnef.co/go/rope/internal/config"
	"honnef.co/go/rope/internal/input"
	"honnef.co/go/rope/internal/layout"
	"honnef.co/go/rope/internal/logging"
)

// Input is what a front end read from the user during one frame.
type Input struct {
	Pointer input.Pointer
	// Tilt is used when HasTilt is set. Otherwise the scene's noise source
	// supplies one.
	Tilt    input.Tilt
	HasTilt bool
}

type Scene struct {
	cfg     config.Config
	layout  layout.Layout
	sim     *rope.Simulation
	clock   *rope.Stepper
	mapper  input.Mapper
	noise   *input.NoiseTilt
	now     float64
	targets [2]rope.Point
	// diverged is set once the curve has left the finite range.
	diverged bool
	log      *zap.Logger
}

// New builds a scene from a validated configuration.
func New(cfg config.Config, log *zap.Logger) (*Scene, error) {
	l := layout.New(cfg.Viewport)
	start, end := l.Anchors()
	rest := l.Rest()
	sim, err := rope.NewRope(start, end, rest, cfg.SpringParams())
	if err != nil {
		return nil, err
	}
	s := &Scene{
		cfg:     cfg,
		layout:  l,
		sim:     sim,
		clock:   rope.NewStepper(cfg.Clock.FPS, cfg.Clock.MaxSubsteps),
		mapper:  input.NewMapper(cfg.Input),
		noise:   input.NewNoiseTilt(cfg.Input.Seed, cfg.Input.NoiseSpeed),
		targets: rest,
		log:     log,
	}
	log.Info("scene created",
		logging.Point("start", start),
		logging.Point("end", end),
		logging.Spring("spring", cfg.SpringParams()),
		zap.Float64("step", s.clock.Step),
	)
	return s, nil
}

// Resize lays the rope out for a new viewport size. The control points keep
// their state and spring toward the new rest positions.
func (s *Scene) Resize(width, height float64) {
	if width == s.layout.Width && height == s.layout.Height {
		return
	}
	s.layout = s.layout.Resize(width, height)
	start, end := s.layout.Anchors()
	s.sim.Curve().SetAnchors(start, end)
	s.log.Debug("viewport resized",
		zap.Float64("width", width),
		zap.Float64("height", height),
		logging.Point("start", start),
		logging.Point("end", end),
	)
}

// Frame applies one frame of input and advances the simulation by elapsed
// seconds of real time. It returns the number of fixed steps taken.
func (s *Scene) Frame(elapsed float64, in Input) int {
	if elapsed >= 0 && !math.IsInf(elapsed, 1) {
		s.now += elapsed
	}
	tilt := in.Tilt
	if !in.HasTilt {
		tilt = s.noise.Sample(s.now)
	}
	if in.Pointer.Active {
		in.Pointer.At = s.layout.Clamp(in.Pointer.At)
	}
	s.targets = s.mapper.Targets(s.layout.Rest(), in.Pointer, tilt)
	s.sim.SetTargets(s.targets[0], s.targets[1])
	n := s.clock.Advance(s.sim, elapsed)
	limit := s.cfg.Clock.MaxSubsteps
	if limit == 0 {
		limit = rope.DefaultMaxSteps
	}
	if n == limit {
		s.log.Debug("frame hit the step limit", zap.Float64("elapsed", elapsed), zap.Int("steps", n))
	}
	if !s.diverged && !s.sim.Curve().Bez().IsFinite() {
		s.diverged = true
		s.log.Warn("simulation diverged",
			logging.Spring("spring", s.cfg.SpringParams()),
			zap.Float64("step", s.clock.Step),
		)
	}
	return n
}

func (s *Scene) Config() config.Config         { return s.cfg }
func (s *Scene) Layout() layout.Layout         { return s.layout }
func (s *Scene) Simulation() *rope.Simulation { return s.sim }

// Diverged reports whether the curve has stopped being finite, which happens
// when the springs are stepped past their stability bound.
func (s *Scene) Diverged() bool { return s.diverged }

// Samples returns the polyline to draw for the current frame.
func (s *Scene) Samples() iter.Seq[rope.Point] {
	return s.sim.Curve().Sample(s.cfg.Render.Samples)
}

// Ticks returns evenly spaced points along the curve with the unit tangent at
// each. Where the tangent vanishes, the previous direction is reused, or the
// x axis at the start of the curve.
func (s *Scene) Ticks() iter.Seq2[rope.Point, rope.Vec2] {
	n := s.cfg.Render.TangentTicks
	return func(yield func(rope.Point, rope.Vec2) bool) {
		if n == 0 {
			return
		}
		prev := rope.Vec(1, 0)
		for pt, tan := range s.sim.Curve().SampleTangents(n) {
			dir := tan.NormalizeOr(prev)
			prev = dir
			if !yield(pt, dir) {
				return
			}
		}
	}
}

// Controls returns the current positions of the two control points.
func (s *Scene) Controls() [2]rope.Point {
	a, b := s.sim.Points()
	return [2]rope.Point{a.Position(), b.Position()}
}

// Targets returns the targets set by the last frame.
func (s *Scene) Targets() [2]rope.Point {
	return s.targets
}
