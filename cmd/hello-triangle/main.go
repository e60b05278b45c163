package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"hello-triangle/internal/app"
	"hello-triangle/internal/config"
	"hello-triangle/internal/graphics/renderer"
	"hello-triangle/internal/window"
)

func init() {
	// GLFW and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	log.SetFlags(0)
	os.Exit(run(config.Default()))
}

func run(cfg config.Config) int {
	if err := cfg.Validate(); err != nil {
		log.Printf("invalid configuration: %v", err)
		return exitCode(err)
	}

	if err := window.Init(); err != nil {
		log.Printf("window.Init() failed: %v", err)
		return exitCode(err)
	}
	defer window.Terminate()

	win, dev, err := setupWindow(cfg)
	if err != nil {
		log.Printf("%v", err)
		return exitCode(err)
	}

	glVersion, glslVersion := dev.Versions()
	fmt.Printf("OpenGL %s, GLSL %s\n", glVersion, glslVersion)

	width, height := win.FramebufferSize()
	r := renderer.New(dev, width, height)
	if err := r.Initialize(); err != nil {
		log.Printf("renderer initialization failed: %v", err)
		return exitCode(err)
	}
	if cfg.TrackResize {
		win.OnFramebufferResize(r.SetViewport)
	}

	if err := app.New(win, r, cfg.SlowFrameThreshold).Run(); err != nil {
		log.Printf("frame loop: %v", err)
		return exitCode(err)
	}
	return exitOK
}
