package video

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/remeh/sizedwaitgroup"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/lixenwraith/silence/constants"
	"github.com/lixenwraith/silence/sampler"
)

var frameExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".webp": true,
}

// ListFrames returns the image files in dir sorted by name
func ListFrames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read frame dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if frameExts[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// LoadFrameDir decodes every image in dir in parallel into a clip with a fixed frame delay
// Files that fail to decode are logged and skipped
func LoadFrameDir(dir string, w, h int, delayMs int64, log *zap.SugaredLogger) (*Clip, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if delayMs <= 0 {
		delayMs = constants.VideoFrameDelayMs
	}

	files, err := ListFrames(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoFrames)
	}

	frames := make([]sampler.Frame, len(files))
	ok := make([]bool, len(files))

	var mu sync.Mutex
	var failed int

	wg := sizedwaitgroup.New(runtime.NumCPU())
	for i, path := range files {
		wg.Add()
		go func(i int, path string) {
			defer wg.Done()
			img, err := decodeFile(path)
			if err != nil {
				log.Warnw("skipping frame", "file", path, "error", err)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			frames[i] = Sample(img, w, h)
			ok[i] = true
		}(i, path)
	}
	wg.Wait()

	clip := &Clip{}
	for i := range frames {
		if !ok[i] {
			continue
		}
		clip.Frames = append(clip.Frames, frames[i])
		clip.Delays = append(clip.Delays, delayMs)
	}
	if len(clip.Frames) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoFrames)
	}

	log.Infow("frames loaded",
		"dir", dir,
		"frames", len(clip.Frames),
		"failed", failed,
		"memory", humanize.Bytes(uint64(clip.Bytes())),
	)
	return clip, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
