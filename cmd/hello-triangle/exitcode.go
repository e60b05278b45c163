package main

import (
	"errors"

	"hello-triangle/internal/config"
	"hello-triangle/internal/graphics"
	"hello-triangle/internal/window"
)

const (
	exitOK = iota
	exitFailure
	exitWindowInit
	exitWindowCreate
	exitContextLoad
	exitUnsupportedVersion
	exitRendererInit
	exitInvalidConfig
)

// exitCode maps a fatal startup error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, window.ErrInit):
		return exitWindowInit
	case errors.Is(err, window.ErrCreateWindow):
		return exitWindowCreate
	case errors.Is(err, graphics.ErrContextLoad):
		return exitContextLoad
	case errors.Is(err, graphics.ErrUnsupportedVersion):
		return exitUnsupportedVersion
	case errors.Is(err, graphics.ErrShaderCompile), errors.Is(err, graphics.ErrProgramLink):
		return exitRendererInit
	case errors.Is(err, config.ErrInvalid):
		return exitInvalidConfig
	default:
		return exitFailure
	}
}
