package video

import (
	"math"
	"sync"
	"time"

	"github.com/lixenwraith/silence/sampler"
)

// heartbeatPeriodMs is one beat at playback speed 1
const heartbeatPeriodMs = 1000.0

// HeartSource renders a beating heart procedurally; used when no clip is configured
type HeartSource struct {
	mu    sync.Mutex
	frame sampler.Frame
	speed float64
	phase float64 // ms into the current beat
	last  int64
	now   func() int64
}

// NewHeartSource creates a w*h procedural source on the real clock
func NewHeartSource(w, h int) *HeartSource {
	start := time.Now()
	return NewHeartSourceWithClock(w, h, func() int64 { return time.Since(start).Milliseconds() })
}

// NewHeartSourceWithClock creates a procedural source reading time from now
func NewHeartSourceWithClock(w, h int, now func() int64) *HeartSource {
	return &HeartSource{
		frame: sampler.NewFrame(w, h),
		speed: 1,
		now:   now,
		last:  now(),
	}
}

// SetPlaybackSpeed scales the heartbeat rate
func (s *HeartSource) SetPlaybackSpeed(factor float64) {
	s.mu.Lock()
	s.speed = factor
	s.mu.Unlock()
}

// CurrentFrame renders the heart at the current beat phase
// The returned frame is reused on the next call
func (s *HeartSource) CurrentFrame() sampler.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.now()
	if dt := t - s.last; dt > 0 && s.speed > 0 {
		s.phase = math.Mod(s.phase+float64(dt)*s.speed, heartbeatPeriodMs)
	}
	s.last = t

	renderHeart(s.frame, beatScale(s.phase/heartbeatPeriodMs))
	return s.frame
}

// beatScale is a double-thump pulse over one beat in [0, 1)
func beatScale(u float64) float64 {
	thump := math.Exp(-math.Pow((u-0.1)/0.05, 2)) + 0.6*math.Exp(-math.Pow((u-0.3)/0.06, 2))
	return 0.8 + 0.15*thump
}

// renderHeart draws a filled heart, brightest at its core, on black
func renderHeart(f sampler.Frame, scale float64) {
	aspect := float64(f.Width) / float64(f.Height)
	for py := 0; py < f.Height; py++ {
		for px := 0; px < f.Width; px++ {
			// Normalized coordinates, y up, heart spans roughly [-1.2, 1.2]
			x := (float64(px)/float64(f.Width)*2 - 1) * 1.5 * aspect / scale
			y := -(float64(py)/float64(f.Height)*2 - 1) * 1.5 / scale

			a := x*x + y*y - 1
			v := a*a*a - x*x*y*y*y
			var lum uint8
			if v <= 0 {
				depth := math.Min(1, -v*4)
				lum = uint8(90 + 165*depth)
			}
			f.SetGray(px, py, lum)
		}
	}
}
