package rope

import "testing"

func TestAffineCompose(t *testing.T) {
	// Shift first, then scale.
	aff := Translate(Vec(0.5, 0.5)).ThenScale(8, 16)
	diff(t, Pt(4, 8), Pt(0, 0).Transform(aff))
	diff(t, Pt(20, 40), Pt(2, 2).Transform(aff))
	diff(t, aff, Scale(8, 16).Mul(Translate(Vec(0.5, 0.5))))
	diff(t, Pt(4, -2), Pt(3, -4).Transform(Translate(Vec(1, 2))))
}

func TestAffineInvert(t *testing.T) {
	affs := []Affine{
		Translate(Vec(-3, 7)),
		Scale(8, 16),
		Translate(Vec(0.5, 0.5)).ThenScale(8, 16),
		{2, 1, -1, 3, 5, -7},
	}
	pts := []Point{Pt(0, 0), Pt(1, 1), Pt(-12.5, 300), Pt(79, 24)}
	for _, aff := range affs {
		inv := aff.Invert()
		for _, pt := range pts {
			diff(t, pt, pt.Transform(aff).Transform(inv), approx(1e-12))
			diff(t, pt, pt.Transform(inv).Transform(aff), approx(1e-12))
		}
	}
}

func TestAffineInvertSingular(t *testing.T) {
	inv := Scale(0, 1).Invert()
	p := Pt(1, 1).Transform(inv)
	if p.IsFinite() {
		t.Errorf("got finite point %v from a singular map", p)
	}
	if d := Scale(0, 1).Determinant(); d != 0 {
		t.Errorf("got determinant %g, want 0", d)
	}
	if d := Scale(2, 3).Determinant(); d != 6 {
		t.Errorf("got determinant %g, want 6", d)
	}
}
