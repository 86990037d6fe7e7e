package constants

// Grid Layout
const (
	// CellSize is the size of one grid cell in canvas units
	// The terminal renderer maps one cell to one terminal column/row
	CellSize = 10

	// DisplayScale is the fraction of the fitted video area used for framing
	DisplayScale = 0.4

	// DisplayNudge shifts the framed display region up and left, in canvas units
	DisplayNudge = -250.0
)

// DefaultPalette is ordered heaviest glyph first, lightest last
// Brighter pixels select glyphs near the start
const DefaultPalette = "silence.-·^"

// Pulse (breathing) parameters
const (
	// PointerSpeedMax is the pointer speed at which pulse frequency saturates
	PointerSpeedMax = 20.0

	// ParticlePulseAmp is the particle scale amplitude around 1
	ParticlePulseAmp = 0.06
	// ParticlePulseFreqMin and ParticlePulseFreqMax are radians per frame tick
	ParticlePulseFreqMin = 0.07
	ParticlePulseFreqMax = 0.3

	// OverlayPulseAmp is the overlay text scale amplitude around 1
	OverlayPulseAmp     = 0.15
	OverlayPulseFreqMin = 0.05
	OverlayPulseFreqMax = 0.3

	// OverlayBreathFreq drives the breathing alpha
	OverlayBreathFreq = 0.1
	// OverlayBreathBase and OverlayBreathRange give alpha in [base, base+range]
	OverlayBreathBase  = 100.0
	OverlayBreathRange = 155.0
)

// Playback speed hint
const (
	PlaybackSpeedGain = 0.1
	PlaybackSpeedMin  = 1.0
	PlaybackSpeedMax  = 4.0
)

// Overlay text
const (
	// OverlayText is drawn one letter per line, top to bottom
	OverlayText = "SILENCE"

	// OverlayRightInset is the distance of the text column from the right edge, in canvas units
	OverlayRightInset = 60.0
	// OverlayTopRaise lifts the first letter above the vertical center, in canvas units
	OverlayTopRaise = 240.0
	// OverlayLetterSpacing is the vertical distance between letters in cell sizes
	OverlayLetterSpacing = 8.5
)

// Colors (RGB)
var (
	ParticleColor   = [3]uint8{0, 150, 255}
	OverlayColor    = [3]uint8{255, 255, 255}
	BackgroundColor = [3]uint8{0, 0, 0}
)

// Video sampling
const (
	// VideoSampleWidth and VideoSampleHeight are the decoded frame size used for sampling
	VideoSampleWidth  = 160
	VideoSampleHeight = 90

	// VideoFrameDelayMs is the frame period at playback speed 1 when the source has no timing
	VideoFrameDelayMs = 1000 / 30
)
