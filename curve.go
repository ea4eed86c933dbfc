package rope

import "iter"

// DefaultAccuracy is a default value for methods that take an accuracy
// argument. It is suitable for drawing at screen resolution.
const DefaultAccuracy = 1e-3

// Positioner is a read-only view of a moving control point.
type Positioner interface {
	Position() Point
}

// Static is a [Positioner] that never moves.
type Static Point

func (s Static) Position() Point { return Point(s) }

// Curve is a cubic Bézier whose endpoints are fixed anchors and whose inner
// control points are read live from two [Positioner]s, usually
// [*SpringPoint]s.
//
// A Curve owns its anchors but not its control points. It reads their
// position every time it is evaluated and has no way of modifying them.
// Evaluating a Curve never mutates anything.
type Curve struct {
	start Point
	end   Point
	a     Positioner
	b     Positioner
}

// NewCurve returns a curve from start to end, shaped by a and b.
func NewCurve(start, end Point, a, b Positioner) *Curve {
	return &Curve{start: start, end: end, a: a, b: b}
}

// Anchors returns the curve's endpoints.
func (c *Curve) Anchors() (start, end Point) {
	return c.start, c.end
}

// SetAnchors moves the curve's endpoints, for example after the viewport has
// been resized.
func (c *Curve) SetAnchors(start, end Point) {
	c.start = start
	c.end = end
}

// Bez returns the current control polygon as a value.
func (c *Curve) Bez() CubicBez {
	return CubicBez{
		P0: c.start,
		P1: c.a.Position(),
		P2: c.b.Position(),
		P3: c.end,
	}
}

// Position returns the point on the curve at parameter t. Position(0) is the
// start anchor and Position(1) the end anchor; other values of t outside
// [0, 1] extrapolate.
func (c *Curve) Position(t float64) Point {
	return c.Bez().Eval(t)
}

// Tangent returns the first derivative of the curve at t. It is not
// normalized, and it is the zero vector when the control polygon is
// degenerate; use [Curve.UnitTangent] for a safe direction.
func (c *Curve) Tangent(t float64) Vec2 {
	return c.Bez().Deriv(t)
}

// UnitTangent returns the direction of the curve at t, or fallback if the
// tangent has zero length.
func (c *Curve) UnitTangent(t float64, fallback Vec2) Vec2 {
	return c.Tangent(t).NormalizeOr(fallback)
}

// Bounds returns a box that contains the whole curve in its current shape.
func (c *Curve) Bounds() Rect {
	return c.Bez().ControlBox()
}

// Arclen returns the approximate length of the curve.
func (c *Curve) Arclen(accuracy float64) float64 {
	return c.Bez().Arclen(accuracy)
}

// Sample returns an iterator over n+1 points of the curve at evenly spaced
// parameters 0, 1/n, …, 1. Values of n less than 1 are treated as 1.
//
// The control points are snapshotted when iteration starts, not when Sample
// is called, so the same iterator can be ranged over again on the next frame.
func (c *Curve) Sample(n int) iter.Seq[Point] {
	n = max(n, 1)
	return func(yield func(Point) bool) {
		bez := c.Bez()
		for i := range n + 1 {
			if !yield(bez.Eval(float64(i) / float64(n))) {
				return
			}
		}
	}
}

// SampleTangents is like [Curve.Sample] but also yields the (unnormalized)
// tangent at each point.
func (c *Curve) SampleTangents(n int) iter.Seq2[Point, Vec2] {
	n = max(n, 1)
	return func(yield func(Point, Vec2) bool) {
		bez := c.Bez()
		d := bez.Differentiate()
		for i := range n + 1 {
			t := float64(i) / float64(n)
			if !yield(bez.Eval(t), Vec2(d.Eval(t))) {
				return
			}
		}
	}
}
