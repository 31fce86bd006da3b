// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camlight

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/camlight/internal/logx"
)

// nopHandler is the silent handler shared with the internal packages, so a
// session without a logger is silent at every layer.
type nopHandler = logx.NopHandler

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return logx.Nop() }

// loggerPtr stores the package logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the package logger. Sessions created afterwards
// without [WithLogger] log through it. By default camlight produces no log
// output.
//
// SetLogger is safe for concurrent use. Pass nil to restore silence.
//
// Log levels used by camlight:
//   - [slog.LevelDebug]: upload path, texture and buffer allocation
//   - [slog.LevelInfo]: load, context reset, resolution changes
//   - [slog.LevelWarn]: rejected camera frames, camera start failures
//   - [slog.LevelError]: shader diagnostics, load failures
//
// Example:
//
//	camlight.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
