package rope

// Ticker is anything that can be advanced by a time step.
type Ticker interface {
	Tick(dt float64)
}

// Simulation advances the two spring points that shape a [Curve].
//
// It holds no state of its own. The curve reads the points' positions live,
// so it is up to date as soon as Tick returns.
type Simulation struct {
	curve *Curve
	a     *SpringPoint
	b     *SpringPoint
}

var _ Ticker = (*Simulation)(nil)

// NewSimulation returns a simulation driving a and b, which should be the
// control points of curve.
func NewSimulation(curve *Curve, a, b *SpringPoint) *Simulation {
	return &Simulation{curve: curve, a: a, b: b}
}

// NewRope builds a curve from start to end whose two control points start at
// rest at rest[0] and rest[1], all sharing params.
func NewRope(start, end Point, rest [2]Point, params SpringParams) (*Simulation, error) {
	a, err := NewSpringPoint(rest[0], params)
	if err != nil {
		return nil, err
	}
	b, err := NewSpringPoint(rest[1], params)
	if err != nil {
		return nil, err
	}
	return NewSimulation(NewCurve(start, end, a, b), a, b), nil
}

// Tick steps both points by the same dt. The springs are independent, so the
// order does not matter. Like [SpringPoint.Step], a dt that isn't a positive
// finite number does nothing.
func (s *Simulation) Tick(dt float64) {
	s.a.Step(dt)
	s.b.Step(dt)
}

// SetTargets sets the targets of the first and second control point.
func (s *Simulation) SetTargets(a, b Point) {
	s.a.SetTarget(a)
	s.b.SetTarget(b)
}

func (s *Simulation) Curve() *Curve { return s.curve }

// Points returns the first and second control point.
func (s *Simulation) Points() (a, b *SpringPoint) { return s.a, s.b }

// Settled reports whether both points are at rest at their targets, to within
// tol.
func (s *Simulation) Settled(tol float64) bool {
	return s.a.Settled(tol) && s.b.Settled(tol)
}
