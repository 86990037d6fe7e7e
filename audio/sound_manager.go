package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/silence/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// Cue plays one breath sound per activation
// Loading happens in the background; until it finishes IsReady is false and PlayOnce does nothing
type Cue struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	buffer      *beep.Buffer
	initialized bool
	ready       atomic.Bool
	volume      float64
	log         *zap.SugaredLogger

	// Playback hook, swapped in tests to run without a device
	play func(beep.Streamer)

	loadOnce sync.Once
	loaded   chan struct{}
}

// NewCue creates an unloaded cue
func NewCue(log *zap.SugaredLogger) *Cue {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	c := &Cue{
		mixer:  &beep.Mixer{},
		volume: constants.CueVolume,
		log:    log,
		loaded: make(chan struct{}),
	}
	c.play = c.playOnSpeaker
	return c
}

// Initialize opens the speaker and starts the mixer
func (c *Cue) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// LoadAsync decodes path in a goroutine, or synthesizes the breath when path is empty
// A failed load leaves the cue permanently unready; only the first call loads
func (c *Cue) LoadAsync(path string) {
	started := false
	c.loadOnce.Do(func() {
		started = true
		go c.load(path)
	})
	if !started {
		c.log.Warnw("audio cue already loading, ignoring", "path", path)
	}
}

func (c *Cue) load(path string) {
	defer close(c.loaded)

	var (
		buf *beep.Buffer
		err error
	)
	if path == "" {
		buf = SynthBuffer(sampleRate)
	} else {
		buf, err = LoadBuffer(path, sampleRate)
	}
	if err != nil {
		c.log.Warnw("audio cue unavailable", "path", path, "error", err)
		return
	}

	c.mu.Lock()
	c.buffer = buf
	c.mu.Unlock()
	c.ready.Store(true)
	c.log.Infow("audio cue loaded", "path", path, "duration", sampleRate.D(buf.Len()))
}

// Loaded is closed once the background load finishes, successfully or not
func (c *Cue) Loaded() <-chan struct{} {
	return c.loaded
}

// IsReady reports whether PlayOnce will produce sound
func (c *Cue) IsReady() bool {
	if !c.ready.Load() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// PlayOnce starts one playback of the cue over any still-playing ones
func (c *Cue) PlayOnce() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || !c.ready.Load() || c.buffer == nil {
		return
	}

	s := c.buffer.Streamer(0, c.buffer.Len())
	c.play(&effects.Volume{Streamer: s, Base: 2, Volume: c.volume})
}

func (c *Cue) playOnSpeaker(s beep.Streamer) {
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the speaker
func (c *Cue) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}
