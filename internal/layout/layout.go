// Package layout places the rope's anchors and rest points in a viewport.
package layout

import (
	"honnef.co/go/rope"
	"honnef.co/go/rope/internal/config"
)

// Layout is a viewport in y-down coordinates with the rope strung
// horizontally across its middle.
type Layout struct {
	Width  float64
	Height float64
	// Margin is the configured inset of the anchors. Narrow viewports use
	// less; see [Layout.Inset].
	Margin float64
	Sag    float64
}

func New(v config.Viewport) Layout {
	return Layout{Width: v.Width, Height: v.Height, Margin: v.Margin, Sag: v.Sag}
}

// Resize returns l with a new size and the same configured margin.
func (l Layout) Resize(width, height float64) Layout {
	l.Width = width
	l.Height = height
	return l
}

// Inset returns the horizontal distance of the anchors from the edges: the
// configured margin, capped at a quarter of the width so that the start
// anchor stays left of the end anchor.
func (l Layout) Inset() float64 {
	return max(min(l.Margin, l.Width/4), 0)
}

// Anchors returns the rope's endpoints.
func (l Layout) Anchors() (start, end rope.Point) {
	y := l.Height / 2
	m := l.Inset()
	return rope.Pt(m, y), rope.Pt(l.Width-m, y)
}

// Rest returns where the two control points hang when nothing pulls on them:
// at a third and two thirds of the span, Sag below the anchor line.
func (l Layout) Rest() [2]rope.Point {
	start, end := l.Anchors()
	sag := rope.Vec(0, l.Sag)
	return [2]rope.Point{
		start.Lerp(end, 1.0/3.0).Translate(sag),
		start.Lerp(end, 2.0/3.0).Translate(sag),
	}
}

// Bounds returns the viewport as a rectangle.
func (l Layout) Bounds() rope.Rect {
	return rope.Rect{X1: l.Width, Y1: l.Height}
}

// Clamp returns p moved inside the viewport.
func (l Layout) Clamp(p rope.Point) rope.Point {
	return l.Bounds().Clamp(p)
}
