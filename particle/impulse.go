package particle

import (
	"math"

	"github.com/lixenwraith/silence/constants"
	"github.com/lixenwraith/silence/vmath"
)

// Rand is the random source used for impulse magnitudes
type Rand interface {
	Float64() float64
}

// Strength maps a distance from the activation point to an impulse factor in [0, 1]
// 0 -> 1, ExplosionRadius and beyond -> 0, linear in between
func Strength(d float64) float64 {
	return vmath.MapClamped(d, 0, constants.ExplosionRadius, 1, 0)
}

// Magnitude draws an impulse magnitude uniformly from [ImpulseMin, ImpulseMax)
func Magnitude(rng Rand) float64 {
	return constants.ImpulseMin + rng.Float64()*(constants.ImpulseMax-constants.ImpulseMin)
}

// Impulse knocks the particle away from (ax, ay) and switches it to exploding
// One magnitude draw is shared by both velocity components
func Impulse(p *Particle, ax, ay float64, rng Rand) {
	s := Strength(vmath.Dist(ax, ay, p.X, p.Y))
	a := math.Atan2(p.Y-ay, p.X-ax)
	u := Magnitude(rng)
	p.VX = math.Cos(a) * s * u
	p.VY = math.Sin(a) * s * u
	p.Exploding = true
}
