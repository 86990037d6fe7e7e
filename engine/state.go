package engine

import (
	"github.com/lixenwraith/silence/overlay"
	"github.com/lixenwraith/silence/particle"
	"github.com/lixenwraith/silence/sampler"
	"github.com/lixenwraith/silence/signal"
)

// State is everything that survives from one frame to the next
// Only Sim.Frame and Sim.Activate mutate it, both from the frame loop
type State struct {
	Particles *particle.Store
	Overlay   overlay.State
	Pointer   signal.Tracker

	// Reused sample buffer
	samples []sampler.Sample
}

// NewState creates the initial state: no particles, never exploded, overlay visible
func NewState() *State {
	return &State{
		Particles: particle.NewStore(),
		Overlay:   overlay.NewState(),
	}
}

// FrameInput is what the driver observed since the previous frame
type FrameInput struct {
	Canvas  sampler.Canvas
	Pointer signal.Pointer
}

// FrameOutput is the render-facing result of one frame
type FrameOutput struct {
	Now, Tick    int64
	PointerSpeed float64
	Particles    []*particle.Particle // Valid until the next Frame
	Breath       overlay.Breath
	Fade         overlay.Fade
	Returned     bool // Particles were sent home this frame
}
