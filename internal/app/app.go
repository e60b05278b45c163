package app

import (
	"errors"
	"log"
	"time"

	"hello-triangle/internal/profiling"
)

// State is the frame loop's lifecycle stage.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateRunning:
		return "Running"
	case StateClosing:
		return "Closing"
	default:
		return "Unknown"
	}
}

var ErrAlreadyStarted = errors.New("frame loop already started")

// Window is what the loop needs from the windowing layer.
type Window interface {
	ShouldClose() bool
	PollEvents()
	SwapBuffers()
	// Now returns monotonic seconds.
	Now() float64
}

// Scene is advanced and drawn once per frame.
type Scene interface {
	Update(dt float32)
	Render(dt float32)
}

// App drives a Scene with a variable timestep until the window asks to close.
type App struct {
	window Window
	scene  Scene

	state    State
	lastTime float64
	frames   uint64

	profiler  *profiling.Frame
	slowFrame time.Duration
	logf      func(format string, args ...any)
}

// New prepares a loop over scene. Frames whose tracked work exceeds
// slowFrame are logged; zero disables that.
func New(w Window, scene Scene, slowFrame time.Duration) *App {
	return &App{
		window:    w,
		scene:     scene,
		state:     StateNotStarted,
		profiler:  profiling.NewFrame(),
		slowFrame: slowFrame,
		logf:      log.Printf,
	}
}

func (a *App) State() State {
	return a.state
}

// Frames returns the number of completed frames.
func (a *App) Frames() uint64 {
	return a.frames
}

// Run loops until the window reports a close request. It can only be called
// once.
func (a *App) Run() error {
	if a.state != StateNotStarted {
		return ErrAlreadyStarted
	}
	a.state = StateRunning
	a.lastTime = a.window.Now()

	for !a.window.ShouldClose() {
		a.tick()
	}

	a.state = StateClosing
	return nil
}

func (a *App) tick() {
	a.profiler.Reset()

	now := a.window.Now()
	dt := float32(now - a.lastTime)
	a.lastTime = now

	func() { defer a.profiler.Track("frame.PollEvents")(); a.window.PollEvents() }()
	func() { defer a.profiler.Track("frame.Update")(); a.scene.Update(dt) }()
	func() { defer a.profiler.Track("frame.Render")(); a.scene.Render(dt) }()
	func() { defer a.profiler.Track("frame.SwapBuffers")(); a.window.SwapBuffers() }()
	a.frames++

	if a.slowFrame > 0 {
		if total := a.profiler.Total(); total > a.slowFrame {
			a.logf("Slow frame: %v. Top tasks: %s", total, a.profiler.TopN(3))
		}
	}
}
