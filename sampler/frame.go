package sampler

// Frame is one decoded video frame, RGBA with 4 bytes per pixel
// Brightness is read from the red channel
type Frame struct {
	Width, Height int
	Pix           []uint8
}

// NewFrame allocates a black, opaque frame
func NewFrame(w, h int) Frame {
	pix := make([]uint8, w*h*4)
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0xff
	}
	return Frame{Width: w, Height: h, Pix: pix}
}

// Empty reports whether the frame has no pixel data yet
func (f Frame) Empty() bool {
	return f.Width <= 0 || f.Height <= 0 || len(f.Pix) == 0
}

// Red returns the red channel at byte index i
// ok is false when i falls outside the pixel buffer
func (f Frame) Red(i int) (uint8, bool) {
	if i < 0 || i >= len(f.Pix) {
		return 0, false
	}
	return f.Pix[i], true
}

// SetGray writes an opaque gray pixel at (x, y), ignoring out-of-range coordinates
func (f Frame) SetGray(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	i := (y*f.Width + x) * 4
	f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3] = v, v, v, 0xff
}
