package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/silence/engine"
	"github.com/lixenwraith/silence/particle"
	"github.com/lixenwraith/silence/render"
	"github.com/lixenwraith/silence/sampler"
	"github.com/lixenwraith/silence/signal"
)

type fixedVideo struct {
	frame sampler.Frame
}

func (v *fixedVideo) CurrentFrame() sampler.Frame { return v.frame }
func (v *fixedVideo) SetPlaybackSpeed(float64)    {}

type countingCue struct {
	plays int
}

func (c *countingCue) IsReady() bool { return true }
func (c *countingCue) PlayOnce()     { c.plays++ }

// newTestApp builds an App over a 20x10 simulation screen (canvas 200x100)
func newTestApp(t *testing.T) (*App, *countingCue, *engine.MockClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 10)

	frame := sampler.NewFrame(20, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			frame.SetGray(x, y, 128)
		}
	}

	cue := &countingCue{}
	clock := engine.NewMockClock(0)
	sim := engine.NewSim(sampler.New(sampler.DefaultPalette(), 10, sampler.Layout{}), engine.Deps{
		Video: &fixedVideo{frame: frame},
		Audio: cue,
		Clock: clock,
		Rand:  engine.NewRand(7),
	})

	app := &App{
		screen:   screen,
		sim:      sim,
		renderer: render.NewTerminalRenderer(screen, 10, render.DefaultStyle()),
		clock:    clock,
		log:      zap.NewNop().Sugar(),
	}
	return app, cue, clock
}

func particleAt(t *testing.T, a *App, x, y float64) *particle.Particle {
	t.Helper()
	p, ok := a.sim.State.Particles.Get(particle.Home{X: x, Y: y})
	require.True(t, ok, "no particle homed at (%v, %v)", x, y)
	return p
}

func TestClickActivatesOnPressEdgeOnly(t *testing.T) {
	a, cue, _ := newTestApp(t)
	a.frame()

	events := []*tcell.EventMouse{
		tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone),    // press
		tcell.NewEventMouse(6, 5, tcell.Button1, tcell.ModNone),    // drag, still held
		tcell.NewEventMouse(6, 5, tcell.ButtonNone, tcell.ModNone), // release
		tcell.NewEventMouse(7, 5, tcell.Button1, tcell.ModNone),    // press again
	}
	for _, ev := range events {
		require.True(t, a.handleInput(ev))
	}

	assert.Equal(t, 2, cue.plays)
	assert.Equal(t, signal.Pointer{X: 70, Y: 50, Present: true}, a.pointer)
	assert.True(t, a.buttonDown)
}

func TestMotionTracksPointerWithoutActivating(t *testing.T) {
	a, cue, _ := newTestApp(t)
	a.frame()

	require.True(t, a.handleInput(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone)))
	assert.Equal(t, signal.Pointer{X: 30, Y: 40, Present: true}, a.pointer)
	assert.Zero(t, cue.plays)
	assert.False(t, a.sim.State.Overlay.Exploding)
}

func TestSpaceBeforeMouseActivatesAtCenter(t *testing.T) {
	a, cue, _ := newTestApp(t)
	a.frame()
	c := a.renderer.Canvas()
	require.Equal(t, sampler.Canvas{Width: 200, Height: 100}, c)

	require.True(t, a.handleInput(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.Equal(t, 1, cue.plays)
	assert.True(t, a.sim.State.Overlay.Exploding)

	// Particles on either side of (100, 50) are pushed away from it
	left := particleAt(t, a, 90, 50)
	right := particleAt(t, a, 110, 50)
	above := particleAt(t, a, 100, 40)
	assert.Less(t, left.VX, 0.0)
	assert.Greater(t, right.VX, 0.0)
	assert.Less(t, above.VY, 0.0)
	assert.InDelta(t, 0.0, left.VY, 1e-9)
}

func TestSpaceAfterMouseActivatesAtPointer(t *testing.T) {
	a, cue, _ := newTestApp(t)
	a.frame()

	require.True(t, a.handleInput(tcell.NewEventMouse(2, 2, tcell.ButtonNone, tcell.ModNone)))
	require.True(t, a.handleInput(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	assert.Equal(t, 1, cue.plays)

	// (20, 20) is the activation point
	assert.Less(t, particleAt(t, a, 10, 20).VX, 0.0)
	assert.Greater(t, particleAt(t, a, 30, 20).VX, 0.0)
}

func TestQuitKeys(t *testing.T) {
	a, _, _ := newTestApp(t)

	quits := map[string]*tcell.EventKey{
		"q":      tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		"Q":      tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone),
		"escape": tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		"ctrl-c": tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}
	for name, ev := range quits {
		assert.False(t, a.handleInput(ev), name)
	}

	assert.True(t, a.handleInput(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.True(t, a.handleInput(tcell.NewEventResize(20, 10)))
}

func TestFrameAdvancesClockTick(t *testing.T) {
	a, _, clock := newTestApp(t)
	a.frame()
	a.frame()
	assert.Equal(t, int64(2), clock.FrameTick())
	assert.Equal(t, 200, a.sim.State.Particles.Len())
}
