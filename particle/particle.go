// Package particle holds the per-cell particles, their motion and the explosion impulse
package particle

import (
	"math"

	"github.com/lixenwraith/silence/constants"
	"github.com/lixenwraith/silence/vmath"
)

// Home identifies a particle by its grid cell position on the canvas
type Home struct {
	X, Y float64
}

// Particle is one glyph that rests at its home and can be blown away
type Particle struct {
	home Home

	X, Y        float64
	VX, VY      float64
	Char        rune
	ScaleFactor float64
	Exploding   bool
}

// New creates a resting particle at its home
func New(h Home, char rune) *Particle {
	return &Particle{
		home:        h,
		X:           h.X,
		Y:           h.Y,
		Char:        char,
		ScaleFactor: 1,
	}
}

// Home returns the immutable home position
func (p *Particle) Home() Home {
	return p.home
}

// Update advances the particle by one frame
// Exploding particles drift with decaying velocity, others close 8% of the gap to home
func (p *Particle) Update() {
	if p.Exploding {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= constants.ExplodeDrag
		p.VY *= constants.ExplodeDrag
		return
	}
	p.X = vmath.Lerp(p.X, p.home.X, constants.HomingRate)
	p.Y = vmath.Lerp(p.Y, p.home.Y, constants.HomingRate)
}

// StartReturn switches the particle back to homing
func (p *Particle) StartReturn() {
	p.Exploding = false
}

// DistanceHome returns the distance between the current position and home
func (p *Particle) DistanceHome() float64 {
	return vmath.Dist(p.X, p.Y, p.home.X, p.home.Y)
}

// AtHome reports whether the particle is within eps of home
// Homing converges asymptotically, so equality is never tested
func (p *Particle) AtHome(eps float64) bool {
	return p.DistanceHome() < eps
}

// Speed returns the velocity magnitude
func (p *Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}
