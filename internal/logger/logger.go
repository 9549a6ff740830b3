// SPDX-License-Identifier: MIT
// Package: lotwheel/internal/logger
//
// logger.go — process-wide tint logger.

// Package logger is the process-wide structured logger: log/slog with a tint
// console handler. Library packages never import it; the CLI wires it.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// current is the installed process logger; nil until Init.
var current atomic.Pointer[slog.Logger]

type Options struct {
	Level      slog.Leveler // slog.LevelInfo, slog.LevelDebug, etc.
	Writer     io.Writer    // default: os.Stderr
	TimeFormat string       // default: 15:04:05
	NoColor    bool         // forced on when Writer is not a terminal
}

// New builds a tint-backed logger without touching the global one.
func New(opts *Options) *slog.Logger {
	if opts == nil {
		opts = &Options{}
	}
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}
	timeFormat := opts.TimeFormat
	if timeFormat == "" {
		timeFormat = "15:04:05"
	}

	return slog.New(tint.NewHandler(writer, &tint.Options{
		Level:      opts.Level,
		TimeFormat: timeFormat,
		NoColor:    opts.NoColor || !isTerminal(writer),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Init builds a logger from opts, installs it as the package logger and as
// slog's default, and returns it. A later call replaces the earlier logger.
func Init(opts *Options) *slog.Logger {
	l := New(opts)
	current.Store(l)
	slog.SetDefault(l)

	return l
}

// ParseLevel maps "debug", "info", "warn", "error" (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", s)
	}

	return lvl, nil
}

// L returns the installed logger, or slog.Default before Init.
func L() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// Info logs at info level.
func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	L().Warn(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	L().Error(msg, args...)
}

func With(args ...any) *slog.Logger {
	return L().With(args...)
}
