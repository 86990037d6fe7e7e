// Package sampler maps a character grid onto a video frame and picks a glyph per cell
package sampler

// Sample is the per-frame result for one grid cell
type Sample struct {
	Col, Row         int
	ScreenX, ScreenY float64 // Cell home on the canvas, offset applied
	PixelIndex       int     // Byte index of the red channel in Frame.Pix
	Char             rune
}

// Canvas is the drawing surface size in canvas units
type Canvas struct {
	Width, Height float64
}

// GridSize returns the number of whole cells that fit the canvas
func GridSize(c Canvas, cell float64) (cols, rows int) {
	if cell <= 0 || c.Width <= 0 || c.Height <= 0 {
		return 0, 0
	}
	return int(c.Width / cell), int(c.Height / cell)
}

// PixelIndex maps grid cell (x, y) of a cols*rows grid to a byte index in a w*h RGBA buffer
func PixelIndex(x, y, cols, rows, w, h int) int {
	if cols <= 0 || rows <= 0 {
		return -1
	}
	px := x * w / cols
	py := y * h / rows
	return (px + py*w) * 4
}

// Sampler rebuilds the logical grid for each frame
type Sampler struct {
	Palette  Palette
	CellSize float64
	Layout   Layout
}

// New creates a sampler with the given palette and cell size
func New(p Palette, cell float64, l Layout) *Sampler {
	return &Sampler{Palette: p, CellSize: cell, Layout: l}
}

// Sample walks the grid in row-major order and appends one Sample per in-bounds cell to dst
// Cells whose pixel index falls outside the frame are skipped
func (s *Sampler) Sample(f Frame, c Canvas, dst []Sample) []Sample {
	dst = dst[:0]
	cols, rows := GridSize(c, s.CellSize)
	if cols == 0 || rows == 0 || f.Empty() {
		return dst
	}

	offX, offY := s.Layout.Offset(c.Width, c.Height, f.Width, f.Height)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			i := PixelIndex(x, y, cols, rows, f.Width, f.Height)
			r, ok := f.Red(i)
			if !ok {
				continue
			}
			dst = append(dst, Sample{
				Col:        x,
				Row:        y,
				ScreenX:    float64(x)*s.CellSize + offX,
				ScreenY:    float64(y)*s.CellSize + offY,
				PixelIndex: i,
				Char:       s.Palette.Glyph(r),
			})
		}
	}
	return dst
}
