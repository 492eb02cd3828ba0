package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Default rotation settings for the log file.
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 5
	DefaultMaxAgeDays = 30
)

// Options configures a ZerologLogger.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// File is an optional path receiving JSON lines, rotated by size.
	File string
	// Console receives human readable output. Nil means stderr.
	Console io.Writer
	// NoColor disables ANSI colors on the console writer.
	NoColor bool

	MaxSizeMB  int
	MaxBackups int
}

// ZerologLogger writes to the console and, optionally, to a rotated log file.
type ZerologLogger struct {
	log  zerolog.Logger
	file *lumberjack.Logger
}

// New creates a zerolog backed Logger from options.
func New(opts Options) (*ZerologLogger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil || parsed == zerolog.NoLevel {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, opts.Level)
		}
		level = parsed
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		NoColor:    opts.NoColor,
		TimeFormat: time.Kitchen,
	}}

	var file *lumberjack.Logger
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    valueOr(opts.MaxSizeMB, DefaultMaxSizeMB),
			MaxBackups: valueOr(opts.MaxBackups, DefaultMaxBackups),
			MaxAge:     DefaultMaxAgeDays,
		}
		writers = append(writers, file)
	}

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologLogger{log: log, file: file}, nil
}

// Debugf logs at debug level.
func (l *ZerologLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

// Logf logs at info level.
func (l *ZerologLogger) Logf(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

// Warnf logs at warn level.
func (l *ZerologLogger) Warnf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

// Errorf logs at error level.
func (l *ZerologLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

// Close flushes and closes the log file, if any.
func (l *ZerologLogger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func valueOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
