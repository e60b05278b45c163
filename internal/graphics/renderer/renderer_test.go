package renderer

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"hello-triangle/internal/graphics"
	"hello-triangle/internal/graphics/graphicstest"
)

func newTestState(t *testing.T) (*State, *graphicstest.Device) {
	t.Helper()
	dev := graphicstest.NewDevice()
	dev.Uniforms[RotationUniform] = 7
	return New(dev, 640, 480), dev
}

func TestInitializeUploadsTriangle(t *testing.T) {
	s, dev := newTestState(t)
	if err := s.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	want := []float32{-0.5, -0.5, 0, 0.5, -0.5, 0, 0, 0.5, 0}
	if len(dev.Buffer) != len(want) {
		t.Fatalf("vertex buffer: got %d floats, want %d", len(dev.Buffer), len(want))
	}
	for i := range want {
		if dev.Buffer[i] != want[i] {
			t.Fatalf("vertex buffer[%d]: got %v, want %v", i, dev.Buffer[i], want[i])
		}
	}
	if dev.AttribSlot != 0 || dev.AttribSize != 3 {
		t.Fatalf("attribute: got slot %d size %d, want slot 0 size 3", dev.AttribSlot, dev.AttribSize)
	}
	if dev.BoundArray != 0 {
		t.Fatalf("vertex array left bound after initialize: %d", dev.BoundArray)
	}
	if s.rotationLoc != 7 {
		t.Fatalf("uniform location: got %d, want 7", s.rotationLoc)
	}
	if s.program == 0 {
		t.Fatal("program not stored")
	}
	if dev.Count("DeleteShader") != 2 || dev.Count("DetachShader") != 2 {
		t.Fatalf("intermediate shaders not released: %v", dev.Calls)
	}
}

func TestInitializeVertexFailureShortCircuits(t *testing.T) {
	s, dev := newTestState(t)
	s.VertexSource = "#version 450 core\nvoid mian( {"

	err := s.Initialize()
	if !errors.Is(err, graphics.ErrShaderCompile) {
		t.Fatalf("initialize: got %v, want ErrShaderCompile", err)
	}
	var se *graphics.ShaderError
	if !errors.As(err, &se) || se.Log == "" {
		t.Fatalf("initialize: missing diagnostic in %v", err)
	}
	if n := dev.Count("CreateShader fragment"); n != 0 {
		t.Fatalf("fragment shader created %d times after vertex failure", n)
	}
	if n := dev.Count("CompileShader fragment"); n != 0 {
		t.Fatalf("fragment shader compiled %d times after vertex failure", n)
	}
	if n := dev.Count("CreateProgram") + dev.Count("LinkProgram"); n != 0 {
		t.Fatalf("program touched after vertex failure: %v", dev.Calls)
	}
	if n := dev.Count("UniformLocation"); n != 0 {
		t.Fatalf("uniform queried after vertex failure: %v", dev.Calls)
	}
}

func TestInitializeFragmentFailureSkipsLink(t *testing.T) {
	s, dev := newTestState(t)
	dev.CompileFunc = func(kind graphics.ShaderKind, source string) (bool, string) {
		if kind == graphics.FragmentShader {
			return false, "0:2(10): error: `out_Colour' undeclared"
		}
		return true, ""
	}

	err := s.Initialize()
	var se *graphics.ShaderError
	if !errors.As(err, &se) {
		t.Fatalf("initialize: got %v, want *ShaderError", err)
	}
	if se.Stage != "fragment shader" {
		t.Fatalf("stage: got %q", se.Stage)
	}
	if dev.Count("CompileShader vertex") != 1 || dev.Count("CompileShader fragment") != 1 {
		t.Fatalf("compile calls: %v", dev.Calls)
	}
	if dev.Count("LinkProgram") != 0 {
		t.Fatalf("link attempted after fragment failure: %v", dev.Calls)
	}
}

func TestInitializeLinkFailure(t *testing.T) {
	s, dev := newTestState(t)
	dev.FailLink = true
	dev.LinkLog = "error: vertex shader output not consumed"

	err := s.Initialize()
	if !errors.Is(err, graphics.ErrProgramLink) {
		t.Fatalf("initialize: got %v, want ErrProgramLink", err)
	}
	if !strings.Contains(err.Error(), dev.LinkLog) {
		t.Fatalf("link log missing from %q", err.Error())
	}
	if dev.Count("UniformLocation") != 0 {
		t.Fatalf("uniform queried after link failure: %v", dev.Calls)
	}
}

func TestRenderCallOrder(t *testing.T) {
	s, dev := newTestState(t)
	if err := s.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	dev.Reset()

	s.Render(0.016)

	want := []string{
		"Clear",
		"Viewport 640x480",
		"UseProgram",
		"UniformMatrix3 7",
		"BindVertexArray",
		"DrawTriangles 0 3",
		"BindVertexArray 0",
	}
	if len(dev.Calls) != len(want) {
		t.Fatalf("render calls:\n got %v\nwant %v", dev.Calls, want)
	}
	for i := range want {
		if !strings.HasPrefix(dev.Calls[i], want[i]) {
			t.Fatalf("render call %d: got %q, want %q", i, dev.Calls[i], want[i])
		}
	}
	if dev.BoundProg != s.program {
		t.Fatalf("bound program: got %d, want %d", dev.BoundProg, s.program)
	}
	if dev.Calls[4] != fmt.Sprintf("BindVertexArray %d", s.vao) {
		t.Fatalf("bound array: got %q, want vao %d", dev.Calls[4], s.vao)
	}
}

func TestRenderUploadsCurrentRotation(t *testing.T) {
	s, dev := newTestState(t)
	if err := s.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	s.Update(math.Pi / 2)
	s.Render(0)

	if !dev.Transpose {
		t.Fatal("row-major matrix uploaded without transpose")
	}
	if dev.Matrix != s.Rotation.Matrix {
		t.Fatalf("uploaded matrix: got %v, want %v", dev.Matrix, s.Rotation.Matrix)
	}
	// quarter turn: [0 -1 0; 1 0 0; 0 0 1]
	if math.Abs(float64(dev.Matrix[1]+1)) > 1e-5 || math.Abs(float64(dev.Matrix[3]-1)) > 1e-5 {
		t.Fatalf("quarter turn matrix: %v", dev.Matrix)
	}
}

func TestViewportIsStaticUntilSet(t *testing.T) {
	s, dev := newTestState(t)
	if err := s.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	s.Render(0)
	if dev.ViewportW != 640 || dev.ViewportH != 480 {
		t.Fatalf("viewport: got %dx%d, want 640x480", dev.ViewportW, dev.ViewportH)
	}

	s.SetViewport(1280, 960)
	s.Render(0)
	if dev.ViewportW != 1280 || dev.ViewportH != 960 {
		t.Fatalf("viewport after resize: got %dx%d, want 1280x960", dev.ViewportW, dev.ViewportH)
	}
	if w, h := s.Viewport(); w != 1280 || h != 960 {
		t.Fatalf("cached viewport: got %dx%d", w, h)
	}
}

func TestShaderSourcesDeclareContract(t *testing.T) {
	if !strings.Contains(vertexShaderSource, "uniform mat3 "+RotationUniform) {
		t.Fatal("vertex shader does not declare the rotation uniform")
	}
	if !strings.Contains(vertexShaderSource, "layout (location = 0) in vec3") {
		t.Fatal("vertex shader does not read a vec3 at location 0")
	}
	if !strings.Contains(fragmentShaderSource, "vec4(1.0, 0.0, 0.0, 1.0)") {
		t.Fatal("fragment shader is not constant opaque red")
	}
}
