// Package logging builds the slog logger used by the game.
//
// While the terminal UI is running, stderr belongs to the screen, so the
// play command logs to a JSON file only:
//
//	logger := logging.New(logging.Config{LogDir: dir, Quiet: true})
//	defer logger.Close()
//
// Files are named "{service}_{YYYY-MM-DD}.log" and are appended to.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultService = "moviebattle"

// Config configures a Logger. The zero value logs Info and above to stderr.
type Config struct {
	Verbose bool   // enable Debug
	LogDir  string // file logging when set; "~" is expanded
	Service string
	Quiet   bool // no stderr output
}

// Logger is a slog.Logger plus the file it may own.
type Logger struct {
	slog *slog.Logger
	file *os.File
	path string

	mu sync.Mutex
}

// New builds a logger. A log directory that cannot be created is not
// fatal: the logger falls back to the remaining outputs.
func New(cfg Config) *Logger {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	service := cfg.Service
	if service == "" {
		service = defaultService
	}

	l := &Logger{}
	var writers []io.Writer
	if !cfg.Quiet {
		writers = append(writers, os.Stderr)
	}
	if cfg.LogDir != "" {
		dir := expandPath(cfg.LogDir)
		if err := os.MkdirAll(dir, 0750); err == nil {
			path := filepath.Join(dir, fmt.Sprintf("%s_%s.log", service, time.Now().Format("2006-01-02")))
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640); err == nil {
				l.file = f
				l.path = path
				writers = append(writers, f)
			}
		}
	}

	var handler slog.Handler
	switch len(writers) {
	case 0:
		handler = slog.NewTextHandler(io.Discard, opts)
	case 1:
		handler = slog.NewJSONHandler(writers[0], opts)
	default:
		handler = slog.NewJSONHandler(io.MultiWriter(writers...), opts)
	}
	l.slog = slog.New(handler).With("service", service)
	return l
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{slog: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger { return l.slog }

// Path returns the log file path, or "" without file logging.
func (l *Logger) Path() string { return l.path }

// Close syncs and closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("sync log file: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	l.file = nil
	return nil
}

func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
