package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
}

// CellBuffer is a compositor over a cell array, flushed to the screen once per frame
type CellBuffer struct {
	cells  []Cell
	width  int
	height int
	bg     RGB
}

// NewCellBuffer creates a buffer cleared to bg
func NewCellBuffer(width, height int, bg RGB) *CellBuffer {
	b := &CellBuffer{bg: bg}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *CellBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Bounds returns the buffer dimensions
func (b *CellBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to blank background using exponential copy
// Blank cells carry the background as foreground so alpha blends start from it
func (b *CellBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: b.bg, Bg: b.bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), or a blank cell out of bounds
func (b *CellBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{Rune: ' ', Fg: b.bg, Bg: b.bg}
	}
	return b.cells[y*b.width+x]
}

// Set composites a cell with the given blend mode
// A zero rune keeps the existing glyph
func (b *CellBuffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64, bold bool) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	if r != 0 {
		dst.Rune = r
		dst.Bold = bold
	}

	if flags&flagBg != 0 {
		switch op {
		case opReplace:
			dst.Bg = bg
		case opAlpha:
			dst.Bg = Blend(dst.Bg, bg, alpha)
		}
	}

	if flags&flagFg != 0 {
		switch op {
		case opReplace:
			dst.Fg = fg
		case opAlpha:
			dst.Fg = Blend(dst.Fg, fg, alpha)
		}
	}
}

// SetFgOnly writes rune and foreground while preserving the background
// Hot path for particle glyphs; skips blend mode decoding
func (b *CellBuffer) SetFgOnly(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Bold = false
}

// Flush writes every cell to screen; the caller shows the screen
func (b *CellBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			st := tcell.StyleDefault.Foreground(RGBToTcell(c.Fg)).Background(RGBToTcell(c.Bg)).Bold(c.Bold)
			screen.SetContent(x, y, c.Rune, nil, st)
		}
	}
}
