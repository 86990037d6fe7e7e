// Package overlay drives the explosion-return timer and the breathing text fade
package overlay

import "github.com/lixenwraith/silence/constants"

// Fade is the overlay fade direction
// A fade started inside its time window runs until alpha reaches its bound, then settles to idle
// The value reports the step applied this frame, so a saturated fade-in past 5000ms reads as idle
type Fade int

const (
	FadeIdle Fade = iota
	FadeOut
	FadeIn
)

func (f Fade) String() string {
	switch f {
	case FadeOut:
		return "fade-out"
	case FadeIn:
		return "fade-in"
	default:
		return "idle"
	}
}

// Returner switches all particles back to homing
type Returner interface {
	StartReturn()
}

// State is the process-wide explosion and fade timing
type State struct {
	ExplodeTimer int64 // ms timestamp of the last explosion
	Exploding    bool  // Explosion in progress, return not yet fired
	Fade         Fade
	SilenceAlpha float64 // Overlay opacity in [0, 255]
}

// NewState returns the initial timing: never exploded, fully visible, idle
func NewState() State {
	return State{
		ExplodeTimer: constants.ExplodeTimerNever,
		Fade:         FadeIdle,
		SilenceAlpha: constants.AlphaMax,
	}
}

// Elapsed returns the ms since the last explosion
func (s *State) Elapsed(now int64) int64 {
	return now - s.ExplodeTimer
}

// Trigger records an explosion at now
func (s *State) Trigger(now int64) {
	s.ExplodeTimer = now
	s.Exploding = true
}

// Advance runs one frame of the timing machine
// Fade direction is chosen first, alpha stepped second, then the return trigger fires once per explosion
// It reports whether particles were sent home this frame
func (s *State) Advance(now int64, r Returner) bool {
	elapsed := s.Elapsed(now)

	s.Fade = nextFade(s.Fade, elapsed, s.SilenceAlpha)
	s.SilenceAlpha = stepAlpha(s.SilenceAlpha, s.Fade)

	if s.Exploding && elapsed > constants.ReturnAfterMs {
		if r != nil {
			r.StartReturn()
		}
		s.Exploding = false
		return true
	}
	return false
}

// nextFade picks the direction for this frame
// Windows start a fade; outside them a running fade continues until alpha is saturated
func nextFade(cur Fade, elapsed int64, alpha float64) Fade {
	switch {
	case elapsed > constants.FadeInAfterMs:
		cur = FadeIn
	case elapsed >= constants.FadeOutStartMs && elapsed <= constants.FadeOutEndMs:
		cur = FadeOut
	}

	switch {
	case cur == FadeIn && alpha < constants.AlphaMax:
		return FadeIn
	case cur == FadeOut && alpha > 0:
		return FadeOut
	default:
		return FadeIdle
	}
}

func stepAlpha(alpha float64, f Fade) float64 {
	switch f {
	case FadeIn:
		return min(constants.AlphaMax, alpha+constants.AlphaStep)
	case FadeOut:
		return max(0, alpha-constants.AlphaStep)
	default:
		return alpha
	}
}
