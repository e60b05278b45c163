package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the program's compile-time settings.
type Config struct {
	Width  int
	Height int
	Title  string

	// Requested OpenGL core profile version; also the minimum accepted.
	GLMajor int
	GLMinor int

	// SwapInterval is passed to glfw.SwapInterval; 1 waits for vsync.
	SwapInterval int

	// TrackResize updates the viewport when the framebuffer is resized.
	// Off by default: the viewport keeps its startup size.
	TrackResize bool

	// Frames slower than this are logged with their most expensive phases.
	// Zero disables the report.
	SlowFrameThreshold time.Duration
}

// Default returns the fixed settings the program runs with.
func Default() Config {
	return Config{
		Width:              640,
		Height:             480,
		Title:              "Hello, World",
		GLMajor:            4,
		GLMinor:            5,
		SwapInterval:       1,
		TrackResize:        false,
		SlowFrameThreshold: 100 * time.Millisecond,
	}
}

// Validate reports the first setting the program cannot start with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	}
	if c.Title == "" {
		return fmt.Errorf("%w: window title must not be empty", ErrInvalid)
	}
	if c.GLMajor < 4 || (c.GLMajor == 4 && c.GLMinor < 5) {
		return fmt.Errorf("%w: OpenGL %d.%d requested, at least 4.5 core is required", ErrInvalid, c.GLMajor, c.GLMinor)
	}
	if c.SwapInterval < 0 {
		return fmt.Errorf("%w: swap interval %d must not be negative", ErrInvalid, c.SwapInterval)
	}
	if c.SlowFrameThreshold < 0 {
		return fmt.Errorf("%w: slow frame threshold %v must not be negative", ErrInvalid, c.SlowFrameThreshold)
	}
	return nil
}
