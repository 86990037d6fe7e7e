package overlay

import (
	"math"

	"github.com/lixenwraith/silence/constants"
	"github.com/lixenwraith/silence/vmath"
)

// Breath is the pulse output for one frame
type Breath struct {
	ParticleScale float64 // Glyph scale applied to every particle
	TextScale     float64 // Overlay letter scale
	TextAlpha     float64 // Overlay opacity after breathing, [0, 255]
	Visible       bool    // False once the overlay has fully faded out
}

// frequency maps pointer speed onto [lo, hi] radians per tick, clamped
func frequency(speed, lo, hi float64) float64 {
	return vmath.MapClamped(speed, 0, constants.PointerSpeedMax, lo, hi)
}

// ParticlePulse is the particle scale multiplier for a tick and pointer speed
func ParticlePulse(tick int64, speed float64) float64 {
	f := frequency(speed, constants.ParticlePulseFreqMin, constants.ParticlePulseFreqMax)
	return 1 + constants.ParticlePulseAmp*math.Sin(float64(tick)*f)
}

// TextPulse is the overlay text scale for a tick and pointer speed
func TextPulse(tick int64, speed float64) float64 {
	f := frequency(speed, constants.OverlayPulseFreqMin, constants.OverlayPulseFreqMax)
	return 1 + constants.OverlayPulseAmp*math.Sin(float64(tick)*f)
}

// BreathAlpha oscillates in [100, 255] independent of pointer speed
func BreathAlpha(tick int64) float64 {
	return constants.OverlayBreathBase + constants.OverlayBreathRange*math.Abs(math.Sin(float64(tick)*constants.OverlayBreathFreq))
}

// Breathe computes the frame's pulse outputs from the fade alpha
func (s *State) Breathe(tick int64, speed float64) Breath {
	return Breath{
		ParticleScale: ParticlePulse(tick, speed),
		TextScale:     TextPulse(tick, speed),
		TextAlpha:     s.SilenceAlpha * BreathAlpha(tick) / 255,
		Visible:       s.SilenceAlpha > 0,
	}
}
