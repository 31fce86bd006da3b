// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package logx

import (
	"context"
	"log/slog"
	"testing"
)

func TestNopSilent(t *testing.T) {
	l := Nop()
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("Nop().Enabled(Error) = true, want false")
	}
}

func TestOrNop(t *testing.T) {
	if _, ok := OrNop(nil).Handler().(NopHandler); !ok {
		t.Error("OrNop(nil) did not return a NopHandler logger")
	}
	l := slog.New(slog.NewTextHandler(nil, nil))
	if got := OrNop(l); got != l {
		t.Errorf("OrNop(l) = %p, want %p", got, l)
	}
}
