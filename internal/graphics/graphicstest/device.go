// Package graphicstest provides a recording graphics.Device for tests that
// run without a GPU.
package graphicstest

import (
	"fmt"
	"strings"

	"hello-triangle/internal/graphics"
)

// SyntaxErrorLog is the diagnostic Device reports for sources it rejects.
const SyntaxErrorLog = "0:1(1): error: syntax error, unexpected end of file"

// Device records every call it receives. Shader sources compile when they
// contain a main function unless CompileFunc says otherwise.
type Device struct {
	Calls []string

	// CompileFunc overrides the compile result for a shader kind and source.
	CompileFunc func(kind graphics.ShaderKind, source string) (bool, string)
	FailLink    bool
	LinkLog     string
	Uniforms    map[string]int32

	Kinds      map[uint32]graphics.ShaderKind
	Deleted    map[uint32]bool
	Buffer     []float32
	AttribSlot uint32
	AttribSize int32
	Matrix     [9]float32
	Transpose  bool
	ViewportW  int32
	ViewportH  int32
	BoundArray uint32
	BoundProg  uint32
	DrawnFirst int32
	DrawnCount int32
	nextID     uint32
	shaderLogs map[uint32]string
}

// NewDevice returns a device whose shaders compile and whose programs link.
func NewDevice() *Device {
	return &Device{
		Uniforms:   map[string]int32{},
		Kinds:      map[uint32]graphics.ShaderKind{},
		Deleted:    map[uint32]bool{},
		shaderLogs: map[uint32]string{},
	}
}

func (d *Device) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Device) id() uint32 {
	d.nextID++
	return d.nextID
}

// Count returns how many recorded calls start with prefix.
func (d *Device) Count(prefix string) int {
	n := 0
	for _, c := range d.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps created objects.
func (d *Device) Reset() {
	d.Calls = nil
}

func (d *Device) CreateShader(kind graphics.ShaderKind) uint32 {
	id := d.id()
	d.Kinds[id] = kind
	d.record("CreateShader %s", kind)
	return id
}

func (d *Device) CompileShader(shader uint32, source string) bool {
	kind := d.Kinds[shader]
	d.record("CompileShader %s", kind)
	ok, log := strings.Contains(source, "void main("), SyntaxErrorLog
	if d.CompileFunc != nil {
		ok, log = d.CompileFunc(kind, source)
	}
	if !ok {
		d.shaderLogs[shader] = log
	}
	return ok
}

func (d *Device) ShaderInfoLog(shader uint32) string {
	d.record("ShaderInfoLog %s", d.Kinds[shader])
	return d.shaderLogs[shader]
}

func (d *Device) DeleteShader(shader uint32) {
	d.record("DeleteShader %s", d.Kinds[shader])
	d.Deleted[shader] = true
}

func (d *Device) CreateProgram() uint32 {
	d.record("CreateProgram")
	return d.id()
}

func (d *Device) AttachShader(program, shader uint32) {
	d.record("AttachShader %s", d.Kinds[shader])
}

func (d *Device) DetachShader(program, shader uint32) {
	d.record("DetachShader %s", d.Kinds[shader])
}

func (d *Device) LinkProgram(program uint32) bool {
	d.record("LinkProgram")
	return !d.FailLink
}

func (d *Device) ProgramInfoLog(program uint32) string {
	d.record("ProgramInfoLog")
	return d.LinkLog
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	d.record("UniformLocation %s", name)
	if loc, ok := d.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) NewVertexArray() uint32 {
	d.record("NewVertexArray")
	return d.id()
}

func (d *Device) BindVertexArray(vao uint32) {
	d.record("BindVertexArray %d", vao)
	d.BoundArray = vao
}

func (d *Device) NewVertexBuffer(data []float32) uint32 {
	d.record("NewVertexBuffer %d", len(data))
	d.Buffer = append([]float32(nil), data...)
	return d.id()
}

func (d *Device) VertexAttrib(slot uint32, components int32) {
	d.record("VertexAttrib %d %d", slot, components)
	d.AttribSlot = slot
	d.AttribSize = components
}

func (d *Device) Clear() {
	d.record("Clear")
}

func (d *Device) Viewport(width, height int32) {
	d.record("Viewport %dx%d", width, height)
	d.ViewportW, d.ViewportH = width, height
}

func (d *Device) UseProgram(program uint32) {
	d.record("UseProgram %d", program)
	d.BoundProg = program
}

func (d *Device) UniformMatrix3(location int32, transpose bool, m *[9]float32) {
	d.record("UniformMatrix3 %d", location)
	d.Matrix = *m
	d.Transpose = transpose
}

func (d *Device) DrawTriangles(first, count int32) {
	d.record("DrawTriangles %d %d", first, count)
	d.DrawnFirst, d.DrawnCount = first, count
}

var _ graphics.Device = (*Device)(nil)
