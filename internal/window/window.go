package window

import (
	"errors"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	ErrInit         = errors.New("glfw initialization failed")
	ErrCreateWindow = errors.New("window creation failed")
)

// Config describes the window and the context requested for it.
type Config struct {
	Width        int
	Height       int
	Title        string
	GLMajor      int
	GLMinor      int
	SwapInterval int
}

// Init initializes GLFW. It must be called from the main thread.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrInit, err)
	}
	return nil
}

// Terminate releases every GLFW resource, including open windows.
func Terminate() {
	glfw.Terminate()
}

// Window wraps a GLFW window and its OpenGL context.
type Window struct {
	win *glfw.Window
	cfg Config
}

// New opens a window with a core-profile, forward-compatible context of the
// requested version. The context is not made current.
func New(cfg Config) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateWindow, err)
	}
	return &Window{win: win, cfg: cfg}, nil
}

// MakeContextCurrent binds the window's context to the calling thread and
// applies the configured swap interval.
func (w *Window) MakeContextCurrent() {
	w.win.MakeContextCurrent()
	glfw.SwapInterval(w.cfg.SwapInterval)
}

func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// PollEvents processes pending events without blocking.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// Now returns seconds elapsed since GLFW was initialized.
func (w *Window) Now() float64 {
	return glfw.GetTime()
}

// OnFramebufferResize calls fn with the new framebuffer size whenever it
// changes. Events are delivered from PollEvents.
func (w *Window) OnFramebufferResize(fn func(width, height int)) {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}
