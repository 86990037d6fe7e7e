package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/silence/config"
)

const (
	logDir      = "logs"
	logFileName = "silence.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging returns a no-op logger unless debug is set
// The terminal owns stdout and stderr, so debug output only ever goes to logs/silence.log
// The returned file is nil when logging is disabled or the file could not be opened
func setupLogging(debug bool, lc config.Log) (*zap.SugaredLogger, *os.File) {
	nop := zap.NewNop().Sugar()
	if !debug {
		return nop, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nop, nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotated, rotatedSize := rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nop, nil
	}

	level, err := (&config.Config{Log: lc}).LogLevel()
	if err != nil {
		level = zapcore.DebugLevel
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.StacktraceKey = ""
	var opts []zap.Option
	if lc.ShowCaller {
		opts = append(opts, zap.AddCaller())
	} else {
		enc.CallerKey = ""
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(f), zap.NewAtomicLevelAt(level))
	log := zap.New(core, opts...).Sugar()

	if rotated != "" {
		log.Infow("log rotated", "file", rotated, "size", humanize.Bytes(uint64(rotatedSize)))
	}
	return log, f
}

// rotateLog renames path with a timestamp once it grows past maxLogSize
func rotateLog(path string) (string, int64) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return "", 0
	}

	rotated := filepath.Join(logDir, fmt.Sprintf("silence_%s.log", time.Now().Format("20060102_150405")))
	if err := os.Rename(path, rotated); err != nil {
		return "", 0
	}
	return rotated, info.Size()
}
