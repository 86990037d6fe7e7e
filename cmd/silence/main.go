package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hako/durafmt"

	"github.com/lixenwraith/silence/audio"
	"github.com/lixenwraith/silence/config"
	"github.com/lixenwraith/silence/engine"
	"github.com/lixenwraith/silence/render"
	"github.com/lixenwraith/silence/sampler"
	"github.com/lixenwraith/silence/video"
)

var (
	configPath = flag.String("config", "", "YAML config file")
	videoPath  = flag.String("video", "", "Animated GIF or frame directory (default: procedural heart)")
	audioPath  = flag.String("audio", "", "mp3 or wav activation cue (default: synthesized breath)")
	fpsFlag    = flag.Int("fps", 0, "Frames per second (0 keeps the config value)")
	seedFlag   = flag.Int64("seed", 0, "Explosion RNG seed (0 seeds from the clock)")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/silence.log")
	muteFlag   = flag.Bool("mute", false, "Disable the activation cue")
)

// applyFlags overrides config values with any flags that were set
func applyFlags(cfg *config.Config) {
	if *videoPath != "" {
		cfg.Video.Path = *videoPath
	}
	if *audioPath != "" {
		cfg.Audio.Path = *audioPath
	}
	if *fpsFlag > 0 {
		cfg.Display.FPS = *fpsFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(1)
	}

	log, logFile := setupLogging(*debugFlag, cfg.Log)
	if logFile != nil {
		defer logFile.Close()
	}
	defer log.Sync()

	// Video failures fall back to the heart so there is always something to sample
	src, err := video.Open(cfg.Video.Path, cfg.Video.SampleWidth, cfg.Video.SampleHeight, cfg.Video.FrameDelayMs, log)
	if err != nil {
		log.Warnw("video source failed, using heart", "path", cfg.Video.Path, "error", err)
		src = video.NewHeartSource(cfg.Video.SampleWidth, cfg.Video.SampleHeight)
	}

	// Audio is optional; the simulation only asks IsReady
	var cue *audio.Cue
	if cfg.Audio.Enabled {
		cue = audio.NewCue(log)
		if err := cue.Initialize(); err != nil {
			log.Warnw("audio initialization failed, continuing without sound", "error", err)
		} else {
			cue.LoadAsync(cfg.Audio.Path)
			defer cue.Cleanup()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSILENCE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	style := cfg.Style()
	screen.SetStyle(tcell.StyleDefault.Background(render.RGBToTcell(style.Background)))

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	clock := engine.NewFrameClock()
	deps := engine.Deps{
		Video: src,
		Clock: clock,
		Rand:  engine.NewRand(seed),
		Log:   log,
	}
	if cue != nil {
		deps.Audio = cue
	}

	app := &App{
		screen:     screen,
		sim:        engine.NewSim(sampler.New(cfg.Palette(), cfg.Display.CellSize, cfg.SamplerLayout()), deps),
		renderer:   render.NewTerminalRenderer(screen, cfg.Display.CellSize, style),
		clock:      clock,
		log:        log,
		frameDelay: time.Second / time.Duration(cfg.Display.FPS),
	}

	log.Infow("session start", "fps", cfg.Display.FPS, "seed", seed, "video", cfg.Video.Path, "layout", cfg.Display.Layout)
	app.run()
	log.Infow("session end", "duration", durafmt.Parse(clock.Uptime()).LimitFirstN(2).String(), "frames", clock.FrameTick())
}
