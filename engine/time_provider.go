package engine

import "time"

// Clock supplies frame timing to the simulation
// Now is monotonic milliseconds; FrameTick counts completed frames
type Clock interface {
	Now() int64
	FrameTick() int64
}

// FrameClock reads real monotonic time relative to its creation and counts frames
type FrameClock struct {
	start time.Time
	tick  int64
}

// NewFrameClock creates a clock starting at zero milliseconds
func NewFrameClock() *FrameClock {
	return &FrameClock{start: time.Now()}
}

// Now returns milliseconds since the clock was created
func (c *FrameClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// FrameTick returns the current frame number
func (c *FrameClock) FrameTick() int64 {
	return c.tick
}

// Tick advances the frame counter; called once per frame by the driver
func (c *FrameClock) Tick() {
	c.tick++
}

// Uptime returns the wall time since the clock was created
func (c *FrameClock) Uptime() time.Duration {
	return time.Since(c.start)
}
