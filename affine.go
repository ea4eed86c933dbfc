package rope

// Affine is a 2D affine map with coefficients (a, b, c, d, e, f) forming the
// augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Composition reads right to left: pt.Transform(A.Mul(B)) applies B first.
// The front ends use it to move between their own units (terminal cells,
// say) and the pixels the scene works in.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Scale stretches x by sx and y by sy about the origin.
func Scale(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// Translate shifts every point by v.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Mul returns the map that applies o, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale applies aff, then scales by (sx, sy).
func (aff Affine) ThenScale(sx, sy float64) Affine {
	return Scale(sx, sy).Mul(aff)
}

func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the inverse map. A singular map has no inverse and yields
// NaN or infinite coefficients.
func (aff Affine) Invert() Affine {
	inv := 1 / aff.Determinant()
	return Affine{
		inv * aff.N3,
		-inv * aff.N1,
		-inv * aff.N2,
		inv * aff.N0,
		inv * (aff.N2*aff.N5 - aff.N3*aff.N4),
		inv * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}
