package engine

import "time"

// MockClock provides a controllable clock for testing
type MockClock struct {
	now  int64
	tick int64
}

// NewMockClock creates a mock clock at the given millisecond time
func NewMockClock(startMs int64) *MockClock {
	return &MockClock{now: startMs}
}

// Now returns the mocked time in milliseconds
func (m *MockClock) Now() int64 {
	return m.now
}

// FrameTick returns the mocked frame number
func (m *MockClock) FrameTick() int64 {
	return m.tick
}

// SetTime sets the current time in milliseconds
func (m *MockClock) SetTime(ms int64) {
	m.now = ms
}

// Advance moves time forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.now += d.Milliseconds()
}

// Tick advances the frame counter
func (m *MockClock) Tick() {
	m.tick++
}

// Step advances time by d and the frame counter by one, as a display frame would
func (m *MockClock) Step(d time.Duration) {
	m.Advance(d)
	m.Tick()
}
