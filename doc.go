// Package rope simulates an elastic cubic curve: a Bézier segment between two
// fixed anchors whose two inner control points are pulled toward moving
// targets by damped springs, so that the curve behaves like a springy rope
// when it is dragged or tilted.
//
// The package only does arithmetic. It does not know where targets come from
// (a pointer, a gyroscope, a script) nor how the curve gets drawn. Front ends
// set targets, advance time and consume samples.
//
// # Spring points
//
// A [SpringPoint] is a point mass with position, velocity and a target. Each
// call to [SpringPoint.Step] performs one semi-implicit Euler step of a damped
// harmonic oscillator. Position and velocity can only be changed by stepping.
// Time steps that are not positive finite numbers are ignored.
//
// Explicit integrators are only conditionally stable. [SpringParams.StableStep]
// reports the bound for a given mass, stiffness and damping, and
// [SpringParams.DampingRatio] tells whether a spring will oscillate.
//
// # Curves
//
// [CubicBez] is a plain cubic Bézier value with evaluation and
// differentiation. [Curve] is the live rope: it owns its anchors and reads its
// inner control points through the read-only [Positioner] interface every time
// it is evaluated. [Curve.Sample] and [Curve.SampleTangents] return iterators
// suitable for drawing polylines and tangent ticks. Iterators snapshot the
// control points when iteration begins and can be reused across frames.
//
// A tangent has zero length when the control polygon collapses to a point.
// [Vec2.NormalizeOr] and [Curve.UnitTangent] substitute a fallback direction
// in that case.
//
// # Driving a simulation
//
// [Simulation] ties a curve to its two spring points and steps both with the
// same dt in [Simulation.Tick]. There is no global clock. [Stepper] converts
// real elapsed time into fixed-size ticks, which keeps runs reproducible and
// the time step within the stability bound:
//
//	sim, err := rope.NewRope(start, end, rest, params)
//	if err != nil {
//		return err
//	}
//	var clock rope.Stepper
//	// every frame:
//	sim.SetTargets(a, b)
//	clock.Advance(sim, elapsed)
//	for pt := range sim.Curve().Sample(64) {
//		// draw
//	}
//
// None of the types in this package are safe for concurrent use.
package rope
