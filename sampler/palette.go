package sampler

import (
	"math"

	"github.com/lixenwraith/silence/constants"
	"github.com/lixenwraith/silence/vmath"
)

// Palette is a brightness-ordered glyph sequence, heaviest glyph first
type Palette []rune

// DefaultPalette returns the standard 11-glyph palette
func DefaultPalette() Palette {
	return Palette(constants.DefaultPalette)
}

// Index maps a red-channel brightness to a palette index
// Brightness 255 selects index 0, brightness 0 selects the last index
func (p Palette) Index(r uint8) int {
	n := len(p)
	if n == 0 {
		return -1
	}
	idx := int(math.Floor(vmath.Map(float64(r), 0, 255, float64(n-1), 0)))
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}

// Glyph returns the glyph for a brightness value, or a space for an empty palette
func (p Palette) Glyph(r uint8) rune {
	idx := p.Index(r)
	if idx < 0 {
		return ' '
	}
	return p[idx]
}
