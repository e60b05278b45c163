package main

import (
	"fmt"

	"hello-triangle/internal/config"
	"hello-triangle/internal/graphics"
	"hello-triangle/internal/window"
)

// setupWindow opens the window, makes its context current, loads the GL
// functions and checks the context meets the configured minimum version.
func setupWindow(cfg config.Config) (*window.Window, *graphics.GLDevice, error) {
	win, err := window.New(window.Config{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Title:        cfg.Title,
		GLMajor:      cfg.GLMajor,
		GLMinor:      cfg.GLMinor,
		SwapInterval: cfg.SwapInterval,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("window.New() failed: %w", err)
	}
	win.MakeContextCurrent()

	dev, err := graphics.NewGLDevice()
	if err != nil {
		return nil, nil, fmt.Errorf("graphics.NewGLDevice() failed: %w", err)
	}
	if err := dev.RequireVersion(cfg.GLMajor, cfg.GLMinor); err != nil {
		return nil, nil, err
	}
	return win, dev, nil
}
