// Package video decodes frame sequences into sampler frames and plays them back at a variable rate
package video

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/lixenwraith/silence/sampler"
)

// Resize scales img to exactly w*h RGBA pixels
func Resize(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// ToFrame copies an RGBA image into a tightly packed sampler frame
func ToFrame(img *image.RGBA) sampler.Frame {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	f := sampler.Frame{Width: w, Height: h, Pix: make([]uint8, w*h*4)}
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+w*4]
		copy(f.Pix[y*w*4:], src)
	}
	return f
}

// Sample resizes any image to the sampling size and returns it as a frame
func Sample(img image.Image, w, h int) sampler.Frame {
	return ToFrame(Resize(img, w, h))
}
