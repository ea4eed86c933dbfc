package rope

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// DefaultStep is the nominal frame time of a 60 Hz display.
var DefaultStep = harmonica.FPS(60)

// DefaultMaxSteps is the default limit on the number of steps a [Stepper]
// takes per call to Advance.
const DefaultMaxSteps = 8

// Stepper turns real elapsed time into a whole number of fixed-size ticks.
//
// Integrating with a fixed step makes a run reproducible regardless of frame
// timing and keeps dt below the springs' [SpringParams.StableStep]. Time that
// doesn't fill a whole step is carried over to the next call. After a long
// stall, at most MaxSteps ticks are taken and the rest of the backlog is
// dropped, so the simulation slows down instead of trying to catch up.
//
// The zero value is ready to use with [DefaultStep] and [DefaultMaxSteps].
type Stepper struct {
	Step     float64
	MaxSteps int

	acc float64
}

// NewStepper returns a stepper that ticks fps times per second of elapsed
// time, taking at most maxSteps ticks per call to Advance. Non-positive
// arguments select the defaults.
func NewStepper(fps int, maxSteps int) *Stepper {
	s := &Stepper{MaxSteps: maxSteps}
	if fps > 0 {
		s.Step = harmonica.FPS(fps)
	}
	return s
}

func (s *Stepper) step() float64 {
	if s.Step > 0 && !math.IsInf(s.Step, 1) {
		return s.Step
	}
	return DefaultStep
}

func (s *Stepper) maxSteps() int {
	if s.MaxSteps > 0 {
		return s.MaxSteps
	}
	return DefaultMaxSteps
}

// Advance adds elapsed to the accumulated time and calls t.Tick with the fixed
// step for every whole step available. It returns the number of ticks taken.
// An elapsed time that isn't a non-negative finite number is ignored.
func (s *Stepper) Advance(t Ticker, elapsed float64) int {
	if !(elapsed >= 0) || math.IsInf(elapsed, 1) {
		return 0
	}
	dt := s.step()
	s.acc += elapsed
	n := 0
	for s.acc >= dt {
		if n == s.maxSteps() {
			s.acc = math.Mod(s.acc, dt)
			break
		}
		t.Tick(dt)
		s.acc -= dt
		n++
	}
	return n
}

// Alpha returns how far the accumulated time is into the next step, in
// [0, 1). Renderers may use it to interpolate between states.
func (s *Stepper) Alpha() float64 {
	return s.acc / s.step()
}

// Reset discards accumulated time.
func (s *Stepper) Reset() {
	s.acc = 0
}
