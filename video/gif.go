package video

import (
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/lixenwraith/silence/constants"
	"github.com/lixenwraith/silence/sampler"
)

// LoadGIF decodes an animated GIF file into a clip of w*h frames
func LoadGIF(path string, w, h int) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gif: %w", err)
	}
	defer f.Close()
	return DecodeGIF(f, w, h)
}

// DecodeGIF decodes an animated GIF stream
// Frames are composited onto a persistent canvas so partial frames keep earlier pixels
func DecodeGIF(r io.Reader, w, h int) (*Clip, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode gif: %w", err)
	}
	if len(g.Image) == 0 {
		return nil, ErrNoFrames
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}
	canvas := image.NewRGBA(bounds)

	clip := &Clip{
		Frames: make([]sampler.Frame, 0, len(g.Image)),
		Delays: make([]int64, 0, len(g.Image)),
	}
	for i, frame := range g.Image {
		var restore *image.RGBA
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			restore = image.NewRGBA(bounds)
			draw.Copy(restore, image.Point{}, canvas, bounds, draw.Src, nil)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		clip.Frames = append(clip.Frames, Sample(canvas, w, h))

		delay := int64(constants.VideoFrameDelayMs)
		if i < len(g.Delay) && g.Delay[i] > 0 {
			delay = int64(g.Delay[i]) * 10
		}
		clip.Delays = append(clip.Delays, delay)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = restore
		}
	}
	return clip, nil
}
