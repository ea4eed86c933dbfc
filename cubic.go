package rope

import "math"

// CubicBez is a cubic Bézier segment given by its four control points.
//
// It is a plain value: evaluating it never depends on anything but its fields.
// [Curve] produces a CubicBez snapshot of the rope each time it is evaluated.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// IsFinite reports whether every control point is finite. A rope whose
// springs were stepped past their stability bound ends up with a curve that
// is not.
func (c CubicBez) IsFinite() bool {
	return c.P0.IsFinite() && c.P1.IsFinite() && c.P2.IsFinite() && c.P3.IsFinite()
}

// Eval evaluates the Bernstein polynomial
//
//	B(t) = (1-t)³·P0 + 3(1-t)²t·P1 + 3(1-t)t²·P2 + t³·P3
//
// Values of t outside [0, 1] extrapolate the polynomial. For finite control
// points, Eval(0) == P0 and Eval(1) == P3 exactly.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	return Point(a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t)))
}

// Differentiate returns the hodograph of c, the quadratic whose value at t
// is the first derivative of c at t.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Deriv returns the first derivative of c at t,
//
//	B'(t) = 3(1-t)²·(P1-P0) + 6(1-t)t·(P2-P1) + 3t²·(P3-P2)
//
// It is the zero vector only for degenerate control polygons.
func (c CubicBez) Deriv(t float64) Vec2 {
	return Vec2(c.Differentiate().Eval(t))
}

// Subdivide splits c at t = 0.5 into two cubics that together trace the
// same points.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	// One round of de Casteljau: repeated midpoints of the control polygon.
	p01 := c.P0.Midpoint(c.P1)
	p12 := c.P1.Midpoint(c.P2)
	p23 := c.P2.Midpoint(c.P3)
	l2 := p01.Midpoint(p12)
	r1 := p12.Midpoint(p23)
	mid := l2.Midpoint(r1)
	return CubicBez{c.P0, p01, l2, mid}, CubicBez{mid, r1, p23, c.P3}
}

// ChordLength returns the length of the straight line between the endpoints.
func (c CubicBez) ChordLength() float64 {
	return c.P0.Distance(c.P3)
}

// PolygonLength returns the length of the control polygon. It is an upper
// bound on the arc length of the curve, and together with [CubicBez.ChordLength]
// brackets it.
func (c CubicBez) PolygonLength() float64 {
	return c.P1.Distance(c.P0) + c.P2.Distance(c.P1) + c.P3.Distance(c.P2)
}

// Arclen estimates the arc length of the cubic by recursive subdivision until
// the chord and polygon lengths agree to within accuracy.
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	chord := c.ChordLength()
	poly := c.PolygonLength()
	if poly-chord <= accuracy || depth >= 16 || math.IsNaN(poly) {
		// Gravesen's estimate, (2·chord + (n-1)·poly) / (n+1) with n = 3.
		return (2*chord + 2*poly) / 4
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}
