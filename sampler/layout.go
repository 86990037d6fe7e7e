package sampler

import "math"

// LayoutMode selects how the grid is placed on the canvas
type LayoutMode int

const (
	// LayoutFill places grid cell (0,0) at the canvas origin
	LayoutFill LayoutMode = iota
	// LayoutFramed centers a scaled video region and applies a nudge
	LayoutFramed
)

// Layout places the sampled grid on the canvas
type Layout struct {
	Mode   LayoutMode
	Scale  float64 // Fraction of the fitted display area
	NudgeX float64
	NudgeY float64
}

// Offset returns the canvas translation applied to every cell position
// videoW/videoH give the aspect ratio of the source
func (l Layout) Offset(canvasW, canvasH float64, videoW, videoH int) (float64, float64) {
	if l.Mode != LayoutFramed || videoW <= 0 || videoH <= 0 {
		return 0, 0
	}
	ratio := float64(videoW) / float64(videoH)
	dispW := math.Min(canvasW, canvasH*ratio) * l.Scale
	dispH := dispW / ratio
	offX := canvasW/2 - dispW/2 + l.NudgeX
	offY := canvasH/2 - dispH/2 + l.NudgeY
	return offX, offY
}
