// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command camlight-host runs camlight in a GLFW window, with a still image
// standing in for the camera.
//
// Variables are read from a TOML file (created with defaults when missing)
// and reloaded whenever it changes:
//
//	resolution  = "640x480"
//	camera-type = "raw framebuffer"
//	cube_size   = "8"
//	cube_stride = "3.0"
//
// Arrow keys or WASD move; the mouse looks around. Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/camlight"
	"github.com/gogpu/camlight/gles/glbind"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		varsPath   = flag.String("vars", "camlight.toml", "variables file")
		imagePath  = flag.String("image", "", "camera image (png, jpeg, bmp, tiff, webp); empty for a test card")
		camWidth   = flag.Int("camera-width", 320, "camera frame width")
		camHeight  = flag.Int("camera-height", 240, "camera frame height")
		padding    = flag.Int("padding", 32, "bytes of padding per raw camera row")
		resolution = flag.String("resolution", "", "override the resolution variable")
		cameraType = flag.String("camera-type", "", "override the camera-type variable")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	camlight.SetLogger(log)

	if err := run(log, config{
		varsPath:   *varsPath,
		imagePath:  *imagePath,
		camWidth:   *camWidth,
		camHeight:  *camHeight,
		padding:    *padding,
		resolution: *resolution,
		cameraType: *cameraType,
	}); err != nil {
		log.Error("camlight-host: exiting", "err", err)
		os.Exit(1)
	}
}

type config struct {
	varsPath, imagePath    string
	camWidth, camHeight    int
	padding                int
	resolution, cameraType string
}

func run(log *slog.Logger, cfg config) error {
	if cfg.padding < 0 || cfg.padding%4 != 0 {
		return fmt.Errorf("padding %d must be a non-negative multiple of 4", cfg.padding)
	}

	vars, err := newVarStore(cfg.varsPath, camlight.ContextOpenGL, log)
	if err != nil {
		return fmt.Errorf("variables: %w", err)
	}
	defer vars.Close()
	if cfg.resolution != "" {
		vars.set(camlight.VarResolution, cfg.resolution)
	}
	if cfg.cameraType != "" {
		vars.set(camlight.VarCameraType, cfg.cameraType)
	}
	if err := vars.watch(); err != nil {
		log.Warn("camlight-host: variables will not reload", "err", err)
	}

	img, err := loadImage(cfg.imagePath)
	if err != nil {
		return err
	}
	cam := newImageCamera(img, cfg.camWidth, cfg.camHeight, cfg.padding, log)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	width, height := camlight.BaseWidth, camlight.BaseHeight
	if v, ok := vars.Variable(camlight.VarResolution); ok {
		if w, h, ok := camlight.ParseResolution(v, camlight.ContextOpenGL); ok {
			width, height = w, h
		}
	}
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.DepthBits, 24)
	win, err := glfw.CreateWindow(width, height, camlight.LibraryName, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	host := &glfwHost{varStore: vars, win: win, cam: cam, log: log}
	scene := &cubeScene{log: log}
	s := camlight.NewSession(host,
		camlight.WithGLLoader(glbind.Load),
		camlight.WithSceneRenderer(scene),
	)
	if err := s.Load(); err != nil {
		return err
	}
	defer s.Unload()

	if err := s.ContextReset(); err != nil {
		return err
	}
	cam.contextLost()
	s.CameraInitialized()

	for !win.ShouldClose() {
		if win.GetKey(glfw.KeyEscape) == glfw.Press {
			win.SetShouldClose(true)
		}
		if err := cam.Tick(); err != nil && !errors.Is(err, errCameraStopped) {
			log.Warn("camlight-host: camera frame dropped", "err", err)
		}
		if err := s.Run(); err != nil {
			return err
		}
	}
	return nil
}
