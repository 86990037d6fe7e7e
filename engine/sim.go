package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/silence/overlay"
	"github.com/lixenwraith/silence/sampler"
)

// Deps are the collaborators the simulation calls each frame
// Audio may be nil; Clock defaults to a FrameClock, Rand to a seed-1 generator, Log to a no-op logger
type Deps struct {
	Video VideoSource
	Audio AudioCue
	Clock Clock
	Rand  Rand
	Log   *zap.SugaredLogger
}

// Sim runs the per-frame pipeline over an explicit State
type Sim struct {
	State   *State
	sampler *sampler.Sampler

	video VideoSource
	audio AudioCue
	clock Clock
	rng   Rand
	log   *zap.SugaredLogger
}

// NewSim wires a sampler and collaborators around a fresh state
func NewSim(s *sampler.Sampler, d Deps) *Sim {
	log := d.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	rng := d.Rand
	if rng == nil {
		rng = NewRand(1)
	}
	clock := d.Clock
	if clock == nil {
		clock = NewFrameClock()
	}
	return &Sim{
		State:   NewState(),
		sampler: s,
		video:   d.Video,
		audio:   d.Audio,
		clock:   clock,
		rng:     rng,
		log:     log,
	}
}

// Frame runs one update cycle:
// pointer speed, grid sampling, particle reconcile and motion, then the overlay timers
func (s *Sim) Frame(in FrameInput) FrameOutput {
	st := s.State
	now, tick := s.clock.Now(), s.clock.FrameTick()

	speed := st.Pointer.Update(in.Pointer)

	var frame sampler.Frame
	if s.video != nil {
		s.video.SetPlaybackSpeed(st.Pointer.PlaybackHint())
		frame = s.video.CurrentFrame()
	}

	st.samples = s.sampler.Sample(frame, in.Canvas, st.samples)
	st.Particles.Reconcile(st.samples, overlay.ParticlePulse(tick, speed))
	st.Particles.Update()

	prevFade := st.Overlay.Fade
	returned := st.Overlay.Advance(now, st.Particles)
	if returned {
		s.log.Debugw("particles returning", "now", now, "particles", st.Particles.Len())
	}
	if st.Overlay.Fade != prevFade {
		s.log.Debugw("overlay fade", "from", prevFade, "to", st.Overlay.Fade, "elapsed", st.Overlay.Elapsed(now))
	}

	return FrameOutput{
		Now:          now,
		Tick:         tick,
		PointerSpeed: speed,
		Particles:    st.Particles.All(),
		Breath:       st.Overlay.Breathe(tick, speed),
		Fade:         st.Overlay.Fade,
		Returned:     returned,
	}
}

// Activate blows every live particle away from (x, y), starts the explosion timer and plays the cue
func (s *Sim) Activate(x, y float64) {
	now := s.clock.Now()
	s.State.Particles.Explode(x, y, s.rng)
	s.State.Overlay.Trigger(now)

	played := false
	if s.audio != nil && s.audio.IsReady() {
		s.audio.PlayOnce()
		played = true
	}
	s.log.Debugw("activation", "x", x, "y", y, "now", now, "particles", s.State.Particles.Len(), "cue", played)
}
