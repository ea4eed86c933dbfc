// Package input maps pointer and tilt readings to spring targets.
//
// The engine does not validate targets, so everything produced here is
// finite: readings with NaN or infinite coordinates are ignored.
package input

import (
	"math"

	"honnef.co/go/rope"
	"honnef.co/go/rope/internal/config"
)

// Pointer is the state of a mouse button or touch.
type Pointer struct {
	Active bool
	At     rope.Point
}

// Tilt is the direction of gravity in the screen plane, as reported by an
// accelerometer, with both components in [-1, 1]. Positive Y points down the
// screen.
type Tilt struct {
	X float64
	Y float64
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, -1), 1)
}

// Clamp returns t with both components limited to [-1, 1] and NaN replaced by
// zero.
func (t Tilt) Clamp() Tilt {
	return Tilt{X: clampUnit(t.X), Y: clampUnit(t.Y)}
}

// Mapper turns input into the two control point targets.
type Mapper struct {
	// DragWeight is how far targets move from rest toward an active pointer.
	DragWeight float64
	// TiltGain is the target offset for a full tilt.
	TiltGain float64
}

func NewMapper(c config.Input) Mapper {
	return Mapper{DragWeight: c.DragWeight, TiltGain: c.TiltGain}
}

// Targets returns the targets for the control points resting at rest. An
// active pointer wins over tilt.
func (m Mapper) Targets(rest [2]rope.Point, p Pointer, tilt Tilt) [2]rope.Point {
	if p.Active && p.At.IsFinite() {
		return [2]rope.Point{
			rest[0].Lerp(p.At, m.DragWeight),
			rest[1].Lerp(p.At, m.DragWeight),
		}
	}
	tilt = tilt.Clamp()
	off := rope.Vec(tilt.X, tilt.Y).Mul(m.TiltGain)
	return [2]rope.Point{rest[0].Translate(off), rest[1].Translate(off)}
}
