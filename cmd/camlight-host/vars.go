// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/camlight"
)

// varStore serves camlight variables from a TOML file and raises the update
// flag whenever the file changes on disk.
type varStore struct {
	path string
	log  *slog.Logger

	mu   sync.RWMutex
	vals map[string]string

	updated atomic.Bool
	watcher *fsnotify.Watcher
}

// newVarStore loads path. A missing file is created with the declared
// defaults for ctx.
func newVarStore(path string, ctx camlight.ContextType, log *slog.Logger) (*varStore, error) {
	v := &varStore{path: path, log: log, vals: map[string]string{}}
	err := v.reload()
	if errors.Is(err, fs.ErrNotExist) {
		if err := writeDefaults(path, ctx); err != nil {
			return nil, err
		}
		err = v.reload()
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// decodeVars converts a TOML document to variable strings. Numbers are
// accepted so that cube_size = 16 works as well as cube_size = "16".
func decodeVars(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	vals := make(map[string]string, len(raw))
	for k, val := range raw {
		switch x := val.(type) {
		case string:
			vals[k] = x
		case int64, float64, bool:
			vals[k] = fmt.Sprint(x)
		default:
			return nil, fmt.Errorf("variable %q: unsupported value %v", k, val)
		}
	}
	return vals, nil
}

func (v *varStore) reload() error {
	data, err := os.ReadFile(v.path)
	if err != nil {
		return err
	}
	vals, err := decodeVars(data)
	if err != nil {
		return fmt.Errorf("%s: %w", v.path, err)
	}
	v.mu.Lock()
	v.vals = vals
	v.mu.Unlock()
	return nil
}

func writeDefaults(path string, ctx camlight.ContextType) error {
	defaults := map[string]string{}
	for _, d := range camlight.DeclaredVariables(ctx) {
		defaults[d.Key] = d.Default()
	}
	data, err := toml.Marshal(defaults)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// watch starts watching the file's directory. Editors often replace files
// instead of writing them, so create and rename events count too.
func (v *varStore) watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(v.path)); err != nil {
		w.Close()
		return err
	}
	v.watcher = w

	target := filepath.Clean(v.path)
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
					continue
				}
				if err := v.reload(); err != nil {
					v.log.Warn("camlight-host: variables not reloaded", "err", err)
					continue
				}
				v.updated.Store(true)
				v.log.Info("camlight-host: variables reloaded", "path", v.path)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				v.log.Warn("camlight-host: watcher error", "err", err)
			}
		}
	}()
	return nil
}

func (v *varStore) Close() error {
	if v.watcher == nil {
		return nil
	}
	return v.watcher.Close()
}

// Variable implements camlight.Variables.
func (v *varStore) Variable(key string) (string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	val, ok := v.vals[key]
	return val, ok
}

// VariablesUpdated implements camlight.Variables.
func (v *varStore) VariablesUpdated() bool {
	return v.updated.Swap(false)
}

// set overrides a variable in memory and raises the update flag.
func (v *varStore) set(key, value string) {
	v.mu.Lock()
	v.vals[key] = value
	v.mu.Unlock()
	v.updated.Store(true)
}
