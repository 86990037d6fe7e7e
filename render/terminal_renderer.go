// Package render draws simulation frames onto a tcell screen
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/silence/constants"
	"github.com/lixenwraith/silence/engine"
	"github.com/lixenwraith/silence/sampler"
)

// Style holds the colors and overlay text used by the renderer
type Style struct {
	Particle    RGB
	Overlay     RGB
	Background  RGB
	OverlayText string
}

// DefaultStyle returns the blue-glyph, white-text look
func DefaultStyle() Style {
	return Style{
		Particle:    FromArray(constants.ParticleColor),
		Overlay:     FromArray(constants.OverlayColor),
		Background:  FromArray(constants.BackgroundColor),
		OverlayText: constants.OverlayText,
	}
}

// TerminalRenderer projects canvas units onto terminal cells, one cell per CellSize units
// Layers are composited in a CellBuffer and flushed once per frame
type TerminalRenderer struct {
	screen tcell.Screen
	cell   float64
	style  Style
	buf    *CellBuffer
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen, cell float64, style Style) *TerminalRenderer {
	if cell <= 0 {
		cell = constants.CellSize
	}
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		cell:   cell,
		style:  style,
		buf:    NewCellBuffer(w, h, style.Background),
	}
}

// Canvas returns the drawing surface size in canvas units
func (r *TerminalRenderer) Canvas() sampler.Canvas {
	w, h := r.screen.Size()
	return sampler.Canvas{Width: float64(w) * r.cell, Height: float64(h) * r.cell}
}

// ToCanvas converts a terminal cell to canvas units (the cell's top-left corner, which is a particle home)
func (r *TerminalRenderer) ToCanvas(col, row int) (float64, float64) {
	return float64(col) * r.cell, float64(row) * r.cell
}

// ToCell converts canvas units to the nearest terminal cell
func (r *TerminalRenderer) ToCell(x, y float64) (int, int) {
	return int(math.Round(x / r.cell)), int(math.Round(y / r.cell))
}

// Draw clears to the background and composites the particle layer then the overlay layer
func (r *TerminalRenderer) Draw(out engine.FrameOutput) {
	w, h := r.screen.Size()
	if bw, bh := r.buf.Bounds(); bw != w || bh != h {
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}

	r.drawParticles(out)
	r.drawOverlay(out)

	r.buf.Flush(r.screen)
	r.screen.Show()
}

// Buffer exposes the composited cells of the last frame
func (r *TerminalRenderer) Buffer() *CellBuffer {
	return r.buf
}

// drawParticles places each glyph at its rounded position
// Terminal glyphs cannot grow, so the pulse scale brightens the glyph instead
func (r *TerminalRenderer) drawParticles(out engine.FrameOutput) {
	for _, p := range out.Particles {
		col, row := r.ToCell(p.X, p.Y)
		r.buf.SetFgOnly(col, row, p.Char, Scale(r.style.Particle, p.ScaleFactor))
	}
}

// drawOverlay writes the overlay text vertically near the right edge
// Letter spacing follows the breathing scale and is squeezed to fit the screen height
// Letters alpha-blend over whatever the particle layer left in the cell
func (r *TerminalRenderer) drawOverlay(out engine.FrameOutput) {
	b := out.Breath
	text := []rune(r.style.OverlayText)
	if !b.Visible || len(text) == 0 {
		return
	}

	c := r.Canvas()
	baseX := c.Width - constants.OverlayRightInset
	baseY := math.Max(0, c.Height/2-constants.OverlayTopRaise)

	spacing := r.cell * constants.OverlayLetterSpacing * b.TextScale
	if fit := (c.Height - baseY - r.cell) / float64(len(text)); fit < spacing {
		spacing = math.Max(r.cell, fit)
	}

	alpha := b.TextAlpha / 255
	for i, ch := range text {
		col, row := r.ToCell(baseX, baseY+float64(i)*spacing)
		r.buf.Set(col, row, ch, r.style.Overlay, RGB{}, BlendAlphaFg, alpha, true)
	}
}
