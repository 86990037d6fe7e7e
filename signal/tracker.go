// Package signal derives pointer speed from consecutive pointer samples
package signal

import (
	"github.com/lixenwraith/silence/constants"
	"github.com/lixenwraith/silence/vmath"
)

// Pointer is one pointer sample in canvas units
// Present is false when the pointer is outside the surface or not yet seen
type Pointer struct {
	X, Y    float64
	Present bool
}

// Tracker keeps the previous pointer sample and the last computed speed
type Tracker struct {
	last  Pointer
	speed float64
}

// Update returns the distance between p and the previous sample and stores p as previous
// Missing current or previous samples count as no movement
func (t *Tracker) Update(p Pointer) float64 {
	if p.Present && t.last.Present {
		t.speed = vmath.Dist(t.last.X, t.last.Y, p.X, p.Y)
	} else {
		t.speed = 0
	}
	if p.Present {
		t.last = p
	}
	return t.speed
}

// Speed returns the speed computed by the last Update
func (t *Tracker) Speed() float64 {
	return t.speed
}

// Last returns the most recent present pointer sample
func (t *Tracker) Last() Pointer {
	return t.last
}

// PlaybackHint maps the current speed to a video playback rate in [1, 4]
func (t *Tracker) PlaybackHint() float64 {
	return PlaybackHint(t.speed)
}

// PlaybackHint maps a pointer speed to a video playback rate
func PlaybackHint(speed float64) float64 {
	return vmath.Constrain(
		1+speed*constants.PlaybackSpeedGain,
		constants.PlaybackSpeedMin,
		constants.PlaybackSpeedMax,
	)
}
