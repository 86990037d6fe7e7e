package engine

import (
	"math/rand"

	"github.com/lixenwraith/silence/sampler"
)

// VideoSource supplies the frame to sample and accepts a playback rate hint
// CurrentFrame must not block; an empty frame means nothing is decoded yet
type VideoSource interface {
	CurrentFrame() sampler.Frame
	SetPlaybackSpeed(factor float64)
}

// AudioCue is a one-shot sound played on activation
// IsReady must not block; PlayOnce is a no-op when the cue is not ready
type AudioCue interface {
	IsReady() bool
	PlayOnce()
}

// Rand is the random source for explosion magnitudes
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded generator so explosions can be replayed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
