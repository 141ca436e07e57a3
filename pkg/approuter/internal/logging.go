// Package internal holds the logging infrastructure shared by the approuter packages.
// Types and functions in this package are not part of the public API.
package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// logChannel is a JSON logger with its own level, writing to the shared destination.
type logChannel struct {
	once   sync.Once
	level  slog.LevelVar
	attrs  []slog.Attr
	logger *slog.Logger
}

func (c *logChannel) get() *slog.Logger {
	c.once.Do(func() {
		var h slog.Handler = slog.NewJSONHandler(destination(), &slog.HandlerOptions{Level: &c.level})
		if len(c.attrs) > 0 {
			h = h.WithAttrs(c.attrs)
		}
		c.logger = slog.New(h)
	})
	return c.logger
}

func (c *logChannel) setLevel(level slog.Level) {
	c.get()
	c.level.Set(level)
}

var (
	// Application messages, exposed as approuter.GetLogger.
	appChannel = &logChannel{}
	// Router diagnostics: debug sink, reactive failures and host events.
	routerChannel = &logChannel{attrs: []slog.Attr{slog.String("component", "approuter")}}

	outputOnce sync.Once
	output     io.Writer
	logPath    string
	logFile    *os.File
)

// SetLogPath sets the full path of the log file. Parent directories are created on
// first use. Has no effect once a logger exists.
func SetLogPath(path string) {
	logPath = path
}

// SetOutput replaces the destination of both loggers. Has no effect once a logger exists.
func SetOutput(w io.Writer) {
	outputOnce.Do(func() { output = w })
}

// destination resolves the shared writer: stdout, teed into the log file when a path
// is set and the file can be opened.
func destination() io.Writer {
	outputOnce.Do(func() {
		output = os.Stdout
		if logPath == "" {
			return
		}
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return
		}
		logFile = f
		output = io.MultiWriter(os.Stdout, f)
	})
	return output
}

func GetLogger() *slog.Logger {
	return appChannel.get()
}

// GetInternalLogger returns the logger used for router diagnostics.
func GetInternalLogger() *slog.Logger {
	return routerChannel.get()
}

func SetLogLevel(level slog.Level) {
	appChannel.setLevel(level)
}

func SetInternalLogLevel(level slog.Level) {
	routerChannel.setLevel(level)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to slog levels.
// Anything else is treated as info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
