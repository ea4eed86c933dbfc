package rope

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonPositiveMass is returned when a spring is configured with a mass
	// that is not a positive, finite number.
	ErrNonPositiveMass = errors.New("rope: mass must be positive and finite")
	// ErrNegativeCoefficient is returned when a spring's stiffness or damping
	// is negative or not finite.
	ErrNegativeCoefficient = errors.New("rope: stiffness and damping must be non-negative and finite")
)

// SpringParams are the physical constants of a [SpringPoint].
type SpringParams struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

// Validate reports whether p describes a spring that can be integrated.
func (p SpringParams) Validate() error {
	if !(p.Mass > 0) || math.IsInf(p.Mass, 1) {
		return fmt.Errorf("mass %g: %w", p.Mass, ErrNonPositiveMass)
	}
	if !(p.Stiffness >= 0) || math.IsInf(p.Stiffness, 1) {
		return fmt.Errorf("stiffness %g: %w", p.Stiffness, ErrNegativeCoefficient)
	}
	if !(p.Damping >= 0) || math.IsInf(p.Damping, 1) {
		return fmt.Errorf("damping %g: %w", p.Damping, ErrNegativeCoefficient)
	}
	return nil
}

// AngularFrequency returns the undamped natural frequency √(k/m), in radians
// per unit of time.
func (p SpringParams) AngularFrequency() float64 {
	return math.Sqrt(p.Stiffness / p.Mass)
}

// DampingRatio returns ζ = c / (2√(km)). The spring is underdamped for ζ < 1,
// critically damped for ζ = 1 and overdamped for ζ > 1. The ratio is +Inf for
// a damper without stiffness.
func (p SpringParams) DampingRatio() float64 {
	return p.Damping / (2 * math.Sqrt(p.Stiffness*p.Mass))
}

// CriticalDamping returns the damping coefficient that makes a spring with the
// given mass and stiffness critically damped.
func CriticalDamping(mass, stiffness float64) float64 {
	return 2 * math.Sqrt(stiffness*mass)
}

// StableStep returns the largest time step for which [SpringPoint.Step] does
// not diverge. The semi-implicit Euler update is stable while
//
//	k·dt²/m + 2c·dt/m < 4
//
// which for an undamped spring is dt < 2√(m/k). Frame drivers should stay
// well below this bound; [Stepper] does so by using a fixed step. The result
// is +Inf if the spring has neither stiffness nor damping.
func (p SpringParams) StableStep() float64 {
	return 4 * p.Mass / (p.Damping + math.Sqrt(p.Damping*p.Damping+4*p.Stiffness*p.Mass))
}

// SpringPoint is a point mass attached by a damped spring to a movable
// target.
//
// Its position and velocity change only through [SpringPoint.Step]. The
// target is set by whatever maps user input to the simulation.
type SpringPoint struct {
	params SpringParams
	pos    Point
	vel    Vec2
	target Point
}

var _ Positioner = (*SpringPoint)(nil)

// NewSpringPoint returns a point at rest at p, with its target at p as well.
// It returns an error wrapping [ErrNonPositiveMass] or
// [ErrNegativeCoefficient] if params are invalid.
func NewSpringPoint(p Point, params SpringParams) (*SpringPoint, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &SpringPoint{params: params, pos: p, target: p}, nil
}

func (s *SpringPoint) Position() Point      { return s.pos }
func (s *SpringPoint) Velocity() Vec2       { return s.vel }
func (s *SpringPoint) Target() Point        { return s.target }
func (s *SpringPoint) Params() SpringParams { return s.params }

// SetTarget moves the spring's equilibrium point. It has no effect on
// position or velocity until the next call to Step.
func (s *SpringPoint) SetTarget(p Point) {
	s.target = p
}

// Step advances the point by dt using one semi-implicit Euler step:
//
//	a = (-k·(x - target) - c·v) / m
//	v = v + a·dt
//	x = x + v·dt
//
// A dt that is zero, negative, NaN or infinite leaves the point untouched, so
// a stalled or misbehaving clock cannot corrupt its state. Step does not
// clamp dt; see [SpringParams.StableStep].
func (s *SpringPoint) Step(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	p := s.params
	disp := s.pos.Sub(s.target)
	acc := disp.Mul(-p.Stiffness).Sub(s.vel.Mul(p.Damping)).Div(p.Mass)
	s.vel = s.vel.Add(acc.Mul(dt))
	s.pos = s.pos.Translate(s.vel.Mul(dt))
}

// Energy returns the sum of the kinetic energy and the potential energy stored
// in the spring.
func (s *SpringPoint) Energy() float64 {
	p := s.params
	return 0.5*p.Mass*s.vel.Hypot2() + 0.5*p.Stiffness*s.pos.DistanceSquared(s.target)
}

// Settled reports whether the point is within tol of its target and moving
// slower than tol.
func (s *SpringPoint) Settled(tol float64) bool {
	return s.pos.Distance(s.target) <= tol && s.vel.Hypot() <= tol
}
