package constants

// Overlay and explosion timing, in milliseconds since the last explosion
const (
	// ExplodeTimerNever is the initial explosion timestamp, meaning no explosion yet
	ExplodeTimerNever int64 = -10000

	// ReturnAfterMs is how long particles stay blown apart before homing again
	ReturnAfterMs = 1000

	// FadeOutStartMs and FadeOutEndMs bound the window that starts the overlay fade-out (inclusive)
	FadeOutStartMs = 1000
	FadeOutEndMs   = 1200

	// FadeInAfterMs is the elapsed time after which the overlay fades back in
	FadeInAfterMs = 5000

	// AlphaStep is the per-frame change of overlay opacity while fading
	AlphaStep = 5.0

	// AlphaMax is the fully opaque overlay value
	AlphaMax = 255.0
)

// Frame pacing
const (
	// DefaultFPS is the target display frame rate
	DefaultFPS = 24
)
