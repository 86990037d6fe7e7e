// Package config loads runtime settings from an optional YAML file
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/silence/constants"
	"github.com/lixenwraith/silence/render"
	"github.com/lixenwraith/silence/sampler"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Layout mode names accepted in display.layout
const (
	LayoutFill   = "fill"
	LayoutFramed = "framed"
)

// Config is the full settings tree
type Config struct {
	Display Display `yaml:"display"`
	Video   Video   `yaml:"video"`
	Audio   Audio   `yaml:"audio"`
	Log     Log     `yaml:"log"`
}

// Display controls the grid, frame rate and colors
type Display struct {
	CellSize   float64  `yaml:"cell_size"`
	FPS        int      `yaml:"fps"`
	Layout     string   `yaml:"layout"`
	Scale      float64  `yaml:"scale"`
	NudgeX     float64  `yaml:"nudge_x"`
	NudgeY     float64  `yaml:"nudge_y"`
	Palette    string   `yaml:"palette"`
	Text       string   `yaml:"text"`
	Particle   [3]uint8 `yaml:"particle_color"`
	Overlay    [3]uint8 `yaml:"overlay_color"`
	Background [3]uint8 `yaml:"background_color"`
}

// Video selects the frame source; an empty path uses the procedural heart
type Video struct {
	Path         string `yaml:"path"`
	SampleWidth  int    `yaml:"sample_width"`
	SampleHeight int    `yaml:"sample_height"`
	FrameDelayMs int64  `yaml:"frame_delay_ms"`
}

// Audio selects the activation cue; an empty path synthesizes a breath
type Audio struct {
	Path    string `yaml:"path"`
	Enabled bool   `yaml:"enabled"`
}

// Log controls the debug log file
type Log struct {
	Level      string `yaml:"level"`
	ShowCaller bool   `yaml:"show_caller"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Display: Display{
			CellSize:   constants.CellSize,
			FPS:        constants.DefaultFPS,
			Layout:     LayoutFill,
			Scale:      constants.DisplayScale,
			NudgeX:     constants.DisplayNudge,
			NudgeY:     constants.DisplayNudge,
			Palette:    constants.DefaultPalette,
			Text:       constants.OverlayText,
			Particle:   constants.ParticleColor,
			Overlay:    constants.OverlayColor,
			Background: constants.BackgroundColor,
		},
		Video: Video{
			SampleWidth:  constants.VideoSampleWidth,
			SampleHeight: constants.VideoSampleHeight,
			FrameDelayMs: constants.VideoFrameDelayMs,
		},
		Audio: Audio{Enabled: true},
		Log:   Log{Level: "debug"},
	}
}

// Load reads path over the defaults and validates the result
// Keys missing from the file keep their default values
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that would break sampling or the frame loop
func (c *Config) Validate() error {
	d := c.Display
	switch {
	case d.CellSize <= 0:
		return fmt.Errorf("%w: display.cell_size must be positive, got %v", ErrInvalid, d.CellSize)
	case d.FPS <= 0:
		return fmt.Errorf("%w: display.fps must be positive, got %d", ErrInvalid, d.FPS)
	case d.Palette == "":
		return fmt.Errorf("%w: display.palette cannot be empty", ErrInvalid)
	case d.Layout != LayoutFill && d.Layout != LayoutFramed:
		return fmt.Errorf("%w: display.layout must be %q or %q, got %q", ErrInvalid, LayoutFill, LayoutFramed, d.Layout)
	case d.Layout == LayoutFramed && d.Scale <= 0:
		return fmt.Errorf("%w: display.scale must be positive for framed layout, got %v", ErrInvalid, d.Scale)
	case c.Video.SampleWidth <= 0 || c.Video.SampleHeight <= 0:
		return fmt.Errorf("%w: video sample size must be positive, got %dx%d", ErrInvalid, c.Video.SampleWidth, c.Video.SampleHeight)
	case c.Video.FrameDelayMs <= 0:
		return fmt.Errorf("%w: video.frame_delay_ms must be positive, got %d", ErrInvalid, c.Video.FrameDelayMs)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

// SamplerLayout builds the grid placement for the sampler
func (c *Config) SamplerLayout() sampler.Layout {
	mode := sampler.LayoutFill
	if c.Display.Layout == LayoutFramed {
		mode = sampler.LayoutFramed
	}
	return sampler.Layout{
		Mode:   mode,
		Scale:  c.Display.Scale,
		NudgeX: c.Display.NudgeX,
		NudgeY: c.Display.NudgeY,
	}
}

// Palette returns the configured glyph ramp
func (c *Config) Palette() sampler.Palette {
	return sampler.Palette(c.Display.Palette)
}

// Style returns the renderer colors and overlay text
func (c *Config) Style() render.Style {
	return render.Style{
		Particle:    render.FromArray(c.Display.Particle),
		Overlay:     render.FromArray(c.Display.Overlay),
		Background:  render.FromArray(c.Display.Background),
		OverlayText: c.Display.Text,
	}
}

// LogLevel parses log.level, defaulting to debug when unset
func (c *Config) LogLevel() (zapcore.Level, error) {
	lvl := zapcore.DebugLevel
	if strings.TrimSpace(c.Log.Level) == "" {
		return lvl, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToLower(c.Log.Level))); err != nil {
		return lvl, err
	}
	return lvl, nil
}
