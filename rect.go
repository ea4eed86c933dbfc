package rope

// Rect is an axis-aligned rectangle.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle spanned by two opposite corners, in
// either order.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs swaps coordinates as needed so that X0 ≤ X1 and Y0 ≤ Y1.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width is X1 − X0, negative for a rectangle that has not been through Abs.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height is Y1 − Y0, with the same caveat as Width.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Center() Point {
	return Pt(r.X0, r.Y0).Midpoint(Pt(r.X1, r.Y1))
}

// UnionPoint grows r just enough to take in pt. Starting from the empty
// rectangle at one point and adding the others gives their bounding box.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate pushes the left and right edges out by dx and the top and bottom
// edges by dy.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{
		X0: r.X0 - dx,
		Y0: r.Y0 - dy,
		X1: r.X1 + dx,
		Y1: r.Y1 + dy,
	}
}

// Clamp returns the point in r closest to pt. r must have non-negative width
// and height.
func (r Rect) Clamp(pt Point) Point {
	return Point{
		X: min(max(pt.X, r.X0), r.X1),
		Y: min(max(pt.Y, r.Y0), r.Y1),
	}
}

// ControlBox returns the bounding box of the control polygon. Because a Bézier
// curve lies within the convex hull of its control points, the box contains
// the whole segment, though it is usually larger than the tightest bound.
func (c CubicBez) ControlBox() Rect {
	return NewRectFromPoints(c.P0, c.P0).
		UnionPoint(c.P1).
		UnionPoint(c.P2).
		UnionPoint(c.P3)
}
