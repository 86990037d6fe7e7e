package video

import (
	"math"
	"sync"
	"time"

	"github.com/lixenwraith/silence/sampler"
)

// Clip is a decoded, looping frame sequence
type Clip struct {
	Frames []sampler.Frame
	Delays []int64 // Per-frame display time in ms at speed 1
}

// Duration returns the clip length in ms at speed 1
func (c *Clip) Duration() int64 {
	var total int64
	for _, d := range c.Delays {
		total += d
	}
	return total
}

// Bytes returns the decoded pixel memory held by the clip
func (c *Clip) Bytes() int {
	n := 0
	for _, f := range c.Frames {
		n += len(f.Pix)
	}
	return n
}

// Player loops a clip; playback position advances by wall time scaled by the speed hint
type Player struct {
	mu    sync.Mutex
	clip  *Clip
	speed float64
	pos   float64 // ms into the clip
	last  int64   // ms timestamp of the previous CurrentFrame
	now   func() int64
}

// NewPlayer creates a player at speed 1 using the real clock
func NewPlayer(c *Clip) *Player {
	start := time.Now()
	return NewPlayerWithClock(c, func() int64 { return time.Since(start).Milliseconds() })
}

// NewPlayerWithClock creates a player reading time from now
func NewPlayerWithClock(c *Clip, now func() int64) *Player {
	return &Player{clip: c, speed: 1, now: now, last: now()}
}

// SetPlaybackSpeed sets the playback rate multiplier; non-positive values pause
func (p *Player) SetPlaybackSpeed(factor float64) {
	p.mu.Lock()
	p.speed = factor
	p.mu.Unlock()
}

// Speed returns the current playback rate
func (p *Player) Speed() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.speed
}

// CurrentFrame advances playback to now and returns the frame on display
func (p *Player) CurrentFrame() sampler.Frame {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.clip == nil || len(p.clip.Frames) == 0 {
		return sampler.Frame{}
	}

	t := p.now()
	dt := t - p.last
	p.last = t
	if dt > 0 && p.speed > 0 {
		p.pos += float64(dt) * p.speed
	}

	total := p.clip.Duration()
	if total <= 0 {
		return p.clip.Frames[0]
	}
	p.pos = math.Mod(p.pos, float64(total))

	at := int64(p.pos)
	for i, d := range p.clip.Delays {
		if at < d {
			return p.clip.Frames[i]
		}
		at -= d
	}
	return p.clip.Frames[len(p.clip.Frames)-1]
}
