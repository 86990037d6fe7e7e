package constants

import "time"

// Speaker setup
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Breath Sound Timing
// Synthesized when no cue file is configured: an inhale of filtered noise
const (
	BreathSoundDuration = 1800 * time.Millisecond
	BreathSoundAttack   = 700 * time.Millisecond
	BreathSoundRelease  = 900 * time.Millisecond

	// BreathNoiseCutoff is the one-pole low-pass coefficient applied to the noise
	BreathNoiseCutoff = 0.08

	// BreathToneFreq is the faint tonal body under the noise
	BreathToneFreq = 180.0
)

// Cue playback
const (
	// CueVolume is the beep effects.Volume exponent (base 2) for the cue
	CueVolume = -0.5
)
