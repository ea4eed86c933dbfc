// Package replay runs a scene headlessly from a scripted input sequence and
// fingerprints every frame the scene would have drawn.
//
// Two runs with the same configuration and script produce the same
// fingerprint, which makes replays useful for checking that changes to the
// engine do not alter its output.
package replay

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"

	"honnef.co/go/rope"
	"honnef.co/go/rope/internal/input"
	"honnef.co/go/rope/internal/layout"
	"honnef.co/go/rope/internal/scene"
)

// Event changes the input from Frame onward.
type Event struct {
	Frame int
	Input scene.Input
}

// Script is a sequence of input changes.
type Script []Event

// Drag returns a script that grabs the rope at its centre, circles the
// pointer around it once, and lets go.
func Drag(l layout.Layout, from, frames int) Script {
	center := l.Bounds().Center()
	radius := l.Height / 4
	script := make(Script, 0, frames+1)
	for i := range frames {
		th := 2 * math.Pi * float64(i) / float64(frames)
		at := center.Translate(rope.Vec(math.Sin(th), math.Cos(th)).Mul(radius))
		script = append(script, Event{
			Frame: from + i,
			Input: scene.Input{Pointer: input.Pointer{Active: true, At: at}},
		})
	}
	return append(script, Event{Frame: from + frames})
}

type Options struct {
	Frames int
	// Elapsed is the real time between frames, in seconds.
	Elapsed float64
	Script  Script
}

type Result struct {
	Frames      int
	Steps       int
	Final       [2]rope.Point
	Fingerprint uint64
}

// Run plays the script against s for opts.Frames frames.
func Run(s *scene.Scene, opts Options) Result {
	script := slices.Clone(opts.Script)
	slices.SortStableFunc(script, func(a, b Event) int { return a.Frame - b.Frame })

	h := xxhash.New()
	var buf []byte
	var in scene.Input
	var res Result
	for frame := range opts.Frames {
		for len(script) > 0 && script[0].Frame <= frame {
			in = script[0].Input
			script = script[1:]
		}
		res.Steps += s.Frame(opts.Elapsed, in)
		buf = buf[:0]
		for pt := range s.Samples() {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(pt.X))
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(pt.Y))
		}
		h.Write(buf)
		res.Frames++
	}
	res.Final = s.Controls()
	res.Fingerprint = h.Sum64()
	return res
}
