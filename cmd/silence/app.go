package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/silence/engine"
	"github.com/lixenwraith/silence/render"
	"github.com/lixenwraith/silence/signal"
)

// frameClock is a simulation clock the loop advances once per drawn frame
type frameClock interface {
	engine.Clock
	Tick()
}

// App owns the terminal, the simulation and the input state between frames
type App struct {
	screen   tcell.Screen
	sim      *engine.Sim
	renderer *render.TerminalRenderer
	clock    frameClock
	log      *zap.SugaredLogger

	frameDelay time.Duration

	// Input state
	pointer    signal.Pointer
	buttonDown bool
}

// handleInput applies one terminal event, returning false to quit
func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				a.activateAtPointer()
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := a.renderer.ToCanvas(col, row)
		a.pointer = signal.Pointer{X: x, Y: y, Present: true}

		// Activation fires on the press edge only
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !a.buttonDown {
			a.sim.Activate(x, y)
		}
		a.buttonDown = pressed

	case *tcell.EventResize:
		a.screen.Sync()
		w, h := a.screen.Size()
		a.log.Debugw("resize", "cols", w, "rows", h)
	}

	return true
}

// activateAtPointer triggers at the last pointer position, or the canvas center before any mouse input
func (a *App) activateAtPointer() {
	if a.pointer.Present {
		a.sim.Activate(a.pointer.X, a.pointer.Y)
		return
	}
	c := a.renderer.Canvas()
	a.sim.Activate(c.Width/2, c.Height/2)
}

// frame runs one simulation step and draws it
func (a *App) frame() {
	out := a.sim.Frame(engine.FrameInput{
		Canvas:  a.renderer.Canvas(),
		Pointer: a.pointer,
	})
	a.renderer.Draw(out)
	a.clock.Tick()
}

func (a *App) run() {
	ticker := time.NewTicker(a.frameDelay)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case <-ticker.C:
			a.frame()
		}
	}
}
