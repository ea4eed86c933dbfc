package input

import (
	"github.com/aquilax/go-perlin"
)

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	// The Y channel samples a row of the noise field far from the X channel's.
	noiseYOffset = 31.7
)

// NoiseTilt produces a slowly wandering tilt from Perlin noise. Front ends
// running on hardware without a gyroscope use it so the rope sways on its
// own.
type NoiseTilt struct {
	noise *perlin.Perlin
	speed float64
}

// NewNoiseTilt returns a tilt source. The same seed and speed always produce
// the same sequence of tilts. A speed of zero yields no tilt.
func NewNoiseTilt(seed int64, speed float64) *NoiseTilt {
	return &NoiseTilt{
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		speed: speed,
	}
}

// Sample returns the tilt at time t, in seconds.
func (n *NoiseTilt) Sample(t float64) Tilt {
	if n.speed == 0 {
		return Tilt{}
	}
	x := t * n.speed
	return Tilt{
		X: n.noise.Noise2D(x, 0),
		Y: n.noise.Noise2D(x, noiseYOffset),
	}.Clamp()
}
