// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glbind

import (
	"errors"
	"testing"

	"github.com/gogpu/camlight/gles"
)

func TestLoadNilProcAddress(t *testing.T) {
	tests := []struct {
		name string
		load func(gles.ProcAddressFunc) (gles.Context, error)
	}{
		{"desktop", Load},
		{"es", LoadES},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := tt.load(nil)
			if !errors.Is(err, ErrLoad) {
				t.Errorf("load(nil) error = %v, want ErrLoad", err)
			}
			if ctx != nil {
				t.Errorf("load(nil) = %v, want nil", ctx)
			}
		})
	}
}
