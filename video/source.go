package video

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/lixenwraith/silence/sampler"
)

// ErrNoFrames is returned when a source decodes to zero frames
var ErrNoFrames = errors.New("no video frames")

// Source is a playable frame stream
type Source interface {
	CurrentFrame() sampler.Frame
	SetPlaybackSpeed(factor float64)
}

// Open picks a source for path: a directory of frames, an animated GIF, or the procedural heart for ""
func Open(path string, w, h int, delayMs int64, log *zap.SugaredLogger) (Source, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if path == "" {
		log.Infow("video source", "kind", "heart", "width", w, "height", h)
		return NewHeartSource(w, h), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("video source: %w", err)
	}

	var clip *Clip
	switch {
	case info.IsDir():
		clip, err = LoadFrameDir(path, w, h, delayMs, log)
	case strings.EqualFold(filepath.Ext(path), ".gif"):
		clip, err = LoadGIF(path, w, h)
	default:
		return nil, fmt.Errorf("video source %s: unsupported format (want a .gif or a frame directory)", path)
	}
	if err != nil {
		return nil, err
	}

	log.Infow("video source", "path", path, "frames", len(clip.Frames), "duration_ms", clip.Duration())
	return NewPlayer(clip), nil
}
