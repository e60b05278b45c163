package renderer

import (
	"hello-triangle/internal/graphics"
	"hello-triangle/internal/rotation"
)

// State owns everything the triangle needs between frames: the rotation,
// the GPU handles and the viewport size. GPU objects live for the whole
// process and are never released explicitly.
type State struct {
	dev graphics.Device

	Rotation *rotation.State

	vbo         uint32
	vao         uint32
	program     uint32
	rotationLoc int32

	width  int32
	height int32

	// Shader sources, replaceable before Initialize.
	VertexSource   string
	FragmentSource string
}

// New returns renderer state for a framebuffer of the given size. Nothing is
// sent to the GPU until Initialize.
func New(dev graphics.Device, width, height int) *State {
	return &State{
		dev:            dev,
		Rotation:       rotation.New(),
		width:          int32(width),
		height:         int32(height),
		VertexSource:   vertexShaderSource,
		FragmentSource: fragmentShaderSource,
	}
}

// Initialize uploads the triangle, builds the shader program and caches the
// rotation uniform location. It stops at the first failing step.
func (s *State) Initialize() error {
	s.vao = s.dev.NewVertexArray()
	s.dev.BindVertexArray(s.vao)
	s.vbo = s.dev.NewVertexBuffer(triangleVertices)
	s.dev.VertexAttrib(positionSlot, positionComponents)
	s.dev.BindVertexArray(0)

	vs, err := graphics.CompileShader(s.dev, graphics.VertexShader, s.VertexSource)
	if err != nil {
		return err
	}
	fs, err := graphics.CompileShader(s.dev, graphics.FragmentShader, s.FragmentSource)
	if err != nil {
		return err
	}
	program, err := graphics.LinkProgram(s.dev, vs, fs)
	if err != nil {
		return err
	}
	s.program = program
	s.rotationLoc = s.dev.UniformLocation(s.program, RotationUniform)
	return nil
}

// Update advances the rotation by dt seconds.
func (s *State) Update(dt float32) {
	s.Rotation.Update(dt)
}

// Render draws one frame. dt is unused.
func (s *State) Render(dt float32) {
	s.dev.Clear()
	s.dev.Viewport(s.width, s.height)
	s.dev.UseProgram(s.program)
	// the matrix is stored row-major
	s.dev.UniformMatrix3(s.rotationLoc, true, &s.Rotation.Matrix)
	s.dev.BindVertexArray(s.vao)
	s.dev.DrawTriangles(0, vertexCount)
	s.dev.BindVertexArray(0)
}

// SetViewport replaces the cached framebuffer size used by Render.
func (s *State) SetViewport(width, height int) {
	s.width = int32(width)
	s.height = int32(height)
}

// Viewport returns the cached framebuffer size.
func (s *State) Viewport() (int, int) {
	return int(s.width), int(s.height)
}
