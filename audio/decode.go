package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// ErrUnsupportedFormat is returned for cue files that are neither mp3 nor wav
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// resampleQuality is the beep.Resample interpolation quality
const resampleQuality = 4

// LoadBuffer decodes an mp3 or wav file fully into memory at the given rate
func LoadBuffer(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cue: %w", err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode cue %s: %w", path, err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, stream)
	}

	buf := beep.NewBuffer(bufferFormat(rate))
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("stream cue %s: %w", path, err)
	}
	return buf, nil
}

// SynthBuffer renders the synthesized breath into memory
func SynthBuffer(rate beep.SampleRate) *beep.Buffer {
	buf := beep.NewBuffer(bufferFormat(rate))
	buf.Append(CreateBreathSound(rate))
	return buf
}

func bufferFormat(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}
