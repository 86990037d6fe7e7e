package engine

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/silence/overlay"
	"github.com/lixenwraith/silence/particle"
	"github.com/lixenwraith/silence/sampler"
	"github.com/lixenwraith/silence/signal"
)

type stubVideo struct {
	frame sampler.Frame
	speed float64
}

func (v *stubVideo) CurrentFrame() sampler.Frame { return v.frame }
func (v *stubVideo) SetPlaybackSpeed(f float64)  { v.speed = f }

type stubCue struct {
	ready bool
	plays int
}

func (c *stubCue) IsReady() bool { return c.ready }
func (c *stubCue) PlayOnce()     { c.plays++ }

func newTestSim(t *testing.T, frame sampler.Frame, cue AudioCue) (*Sim, *MockClock, *stubVideo) {
	t.Helper()
	clock := NewMockClock(0)
	video := &stubVideo{frame: frame}
	s := sampler.New(sampler.DefaultPalette(), 10, sampler.Layout{})
	sim := NewSim(s, Deps{Video: video, Audio: cue, Clock: clock, Rand: NewRand(42)})
	return sim, clock, video
}

func grayFrame(w, h int, v uint8) sampler.Frame {
	f := sampler.NewFrame(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.SetGray(x, y, v)
		}
	}
	return f
}

func TestFrameBuildsParticles(t *testing.T) {
	sim, _, _ := newTestSim(t, grayFrame(4, 3, 255), nil)
	out := sim.Frame(FrameInput{Canvas: sampler.Canvas{Width: 40, Height: 30}})

	require.Len(t, out.Particles, 12)
	for _, p := range out.Particles {
		assert.Equal(t, 's', p.Char)
	}
	assert.Equal(t, particle.Home{X: 30, Y: 20}, out.Particles[11].Home())
}

func TestFrameEmptyVideoSkipsCells(t *testing.T) {
	sim, _, _ := newTestSim(t, sampler.Frame{}, nil)
	out := sim.Frame(FrameInput{Canvas: sampler.Canvas{Width: 40, Height: 30}})
	assert.Empty(t, out.Particles)
	assert.Equal(t, 0, sim.State.Particles.Len())
}

func TestParticleIdentityStable(t *testing.T) {
	sim, clock, _ := newTestSim(t, grayFrame(4, 4, 100), nil)
	in := FrameInput{Canvas: sampler.Canvas{Width: 40, Height: 40}}

	first := sim.Frame(in)
	refs := make(map[particle.Home]*particle.Particle)
	for _, p := range first.Particles {
		refs[p.Home()] = p
	}
	target := refs[particle.Home{X: 10, Y: 10}]
	target.X, target.VY = 99, 4

	clock.Step(40 * time.Millisecond)
	second := sim.Frame(in)
	require.Len(t, second.Particles, len(first.Particles))
	for _, p := range second.Particles {
		assert.Same(t, refs[p.Home()], p)
	}
	// Homing moved it 8% toward home, velocity untouched
	assert.InDelta(t, 99+(10-99)*0.08, target.X, 1e-9)
	assert.Equal(t, 4.0, target.VY)
}

func TestResizeDropsParticles(t *testing.T) {
	sim, _, _ := newTestSim(t, grayFrame(8, 8, 0), nil)
	big := sim.Frame(FrameInput{Canvas: sampler.Canvas{Width: 80, Height: 80}})
	require.Len(t, big.Particles, 64)

	small := sim.Frame(FrameInput{Canvas: sampler.Canvas{Width: 20, Height: 20}})
	assert.Len(t, small.Particles, 4)
	_, ok := sim.State.Particles.Get(particle.Home{X: 70, Y: 70})
	assert.False(t, ok)
}

func TestPointerSpeedDrivesPlayback(t *testing.T) {
	sim, _, video := newTestSim(t, grayFrame(1, 1, 0), nil)
	c := sampler.Canvas{Width: 10, Height: 10}

	sim.Frame(FrameInput{Canvas: c, Pointer: signal.Pointer{X: 0, Y: 0, Present: true}})
	assert.Equal(t, 1.0, video.speed)

	out := sim.Frame(FrameInput{Canvas: c, Pointer: signal.Pointer{X: 30, Y: 40, Present: true}})
	assert.InDelta(t, 50.0, out.PointerSpeed, 1e-9)
	assert.Equal(t, 4.0, video.speed)
}

func TestActivationScenario(t *testing.T) {
	cue := &stubCue{ready: true}
	sim, clock, _ := newTestSim(t, grayFrame(1, 1, 200), cue)
	in := FrameInput{Canvas: sampler.Canvas{Width: 10, Height: 10}}

	out := sim.Frame(in)
	require.Len(t, out.Particles, 1)
	p := out.Particles[0]
	require.Equal(t, particle.Home{X: 0, Y: 0}, p.Home())
	assert.Equal(t, overlay.FadeIdle, out.Fade, "overlay starts fully visible")

	// Activation at t=0, ten units to the right of the particle
	sim.Activate(10, 0)
	assert.True(t, p.Exploding)
	assert.Less(t, p.VX, 0.0, "velocity points away from the activation point")
	assert.InDelta(t, 0.0, p.VY, 1e-9)
	assert.Equal(t, int64(0), sim.State.Overlay.ExplodeTimer)
	assert.True(t, sim.State.Overlay.Exploding)
	assert.Equal(t, 1, cue.plays)

	// Before the return threshold the particle keeps drifting
	clock.SetTime(500)
	out = sim.Frame(in)
	assert.True(t, p.Exploding)
	assert.False(t, out.Returned)
	assert.Equal(t, overlay.FadeIdle, out.Fade)

	// t=1000: fade-out window opens; return still pending
	clock.SetTime(1000)
	out = sim.Frame(in)
	assert.Equal(t, overlay.FadeOut, out.Fade)
	assert.Equal(t, 250.0, sim.State.Overlay.SilenceAlpha)
	assert.True(t, p.Exploding)

	// Just past 1000ms the return fires for every particle
	clock.SetTime(1001)
	out = sim.Frame(in)
	assert.True(t, out.Returned)
	assert.False(t, p.Exploding)
	assert.False(t, sim.State.Overlay.Exploding)
	assert.Equal(t, 245.0, sim.State.Overlay.SilenceAlpha)

	// Inside the window alpha keeps dropping by 5 per frame
	prev := sim.State.Overlay.SilenceAlpha
	for ms := int64(1040); ms <= 1200; ms += 40 {
		clock.SetTime(ms)
		out = sim.Frame(in)
		assert.Equal(t, overlay.FadeOut, out.Fade)
		assert.Equal(t, prev-5, sim.State.Overlay.SilenceAlpha)
		prev = sim.State.Overlay.SilenceAlpha
	}

	// Fade-out runs past the window until alpha bottoms at zero, then idles
	for ms := int64(1240); ms <= 5000; ms += 40 {
		clock.SetTime(ms)
		out = sim.Frame(in)
		assert.NotEqual(t, overlay.FadeIn, out.Fade)
	}
	assert.Equal(t, overlay.FadeIdle, out.Fade)
	assert.Equal(t, 0.0, sim.State.Overlay.SilenceAlpha)
	assert.False(t, out.Breath.Visible)

	// Meanwhile the particle has homed close to its cell
	assert.Less(t, p.DistanceHome(), 1.0)

	// Past 5000ms the overlay fades back in, 5 per frame, capped at 255
	clock.SetTime(5001)
	out = sim.Frame(in)
	assert.Equal(t, overlay.FadeIn, out.Fade)
	assert.Equal(t, 5.0, sim.State.Overlay.SilenceAlpha)
	for i := 0; i < 100; i++ {
		clock.Step(40 * time.Millisecond)
		out = sim.Frame(in)
	}
	assert.Equal(t, 255.0, sim.State.Overlay.SilenceAlpha)
	assert.Equal(t, overlay.FadeIdle, out.Fade)
}

func TestActivationWithoutReadyCue(t *testing.T) {
	cue := &stubCue{}
	sim, _, _ := newTestSim(t, grayFrame(1, 1, 0), cue)
	sim.Frame(FrameInput{Canvas: sampler.Canvas{Width: 10, Height: 10}})
	sim.Activate(5, 5)
	assert.Equal(t, 0, cue.plays)
	assert.True(t, sim.State.Overlay.Exploding)

	// Nil cue is also accepted
	bare, _, _ := newTestSim(t, grayFrame(1, 1, 0), nil)
	assert.NotPanics(t, func() { bare.Activate(1, 1) })
}

func TestNewSimDefaultsCollaborators(t *testing.T) {
	sim := NewSim(sampler.New(sampler.DefaultPalette(), 10, sampler.Layout{}), Deps{})

	var out FrameOutput
	require.NotPanics(t, func() {
		out = sim.Frame(FrameInput{Canvas: sampler.Canvas{Width: 40, Height: 30}})
		sim.Activate(5, 5)
	})
	assert.Empty(t, out.Particles, "no video source means nothing to sample")
	assert.GreaterOrEqual(t, out.Now, int64(0))
	assert.True(t, sim.State.Overlay.Exploding)
}

func TestSeededExplosionsReplay(t *testing.T) {
	run := func() []float64 {
		sim, _, _ := newTestSim(t, grayFrame(5, 5, 50), nil)
		sim.Frame(FrameInput{Canvas: sampler.Canvas{Width: 50, Height: 50}})
		sim.Activate(22, 22)
		var v []float64
		for _, p := range sim.State.Particles.All() {
			v = append(v, p.VX, p.VY)
		}
		return v
	}
	a, b := run(), run()
	assert.Equal(t, a, b)

	nonZero := 0
	for _, x := range a {
		if math.Abs(x) > 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, 0)
}

func TestMockClock(t *testing.T) {
	c := NewMockClock(100)
	assert.Equal(t, int64(100), c.Now())
	c.Advance(250 * time.Millisecond)
	assert.Equal(t, int64(350), c.Now())
	c.Step(40 * time.Millisecond)
	assert.Equal(t, int64(390), c.Now())
	assert.Equal(t, int64(1), c.FrameTick())
	c.SetTime(5)
	assert.Equal(t, int64(5), c.Now())
}

func TestFrameClock(t *testing.T) {
	c := NewFrameClock()
	t1 := c.Now()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, c.Now()-t1, int64(5))
	c.Tick()
	c.Tick()
	assert.Equal(t, int64(2), c.FrameTick())
}
