// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package logx holds the silent slog handler shared by camlight packages.
package logx

import (
	"context"
	"log/slog"
)

// NopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type NopHandler struct{}

func (NopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (NopHandler) Handle(context.Context, slog.Record) error { return nil }
func (NopHandler) WithAttrs([]slog.Attr) slog.Handler        { return NopHandler{} }
func (NopHandler) WithGroup(string) slog.Handler             { return NopHandler{} }

// Nop returns a logger that discards all output.
func Nop() *slog.Logger { return slog.New(NopHandler{}) }

// OrNop returns l, or a silent logger when l is nil.
func OrNop(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Nop()
	}
	return l
}
