package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// GLDevice issues calls against the OpenGL context current on the calling
// thread.
type GLDevice struct{}

// NewGLDevice loads the OpenGL function pointers. A context must be current.
func NewGLDevice() (*GLDevice, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContextLoad, err)
	}
	return &GLDevice{}, nil
}

// ContextVersion reports the major and minor version of the current context.
func (d *GLDevice) ContextVersion() (int, int) {
	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	return int(major), int(minor)
}

// RequireVersion fails with ErrUnsupportedVersion when the context is older
// than major.minor.
func (d *GLDevice) RequireVersion(major, minor int) error {
	gotMajor, gotMinor := d.ContextVersion()
	if !VersionAtLeast(gotMajor, gotMinor, major, minor) {
		return fmt.Errorf("%w: have %d.%d, need %d.%d", ErrUnsupportedVersion, gotMajor, gotMinor, major, minor)
	}
	return nil
}

// Versions returns the GL and GLSL version strings reported by the driver.
func (d *GLDevice) Versions() (string, string) {
	return gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
}

func (d *GLDevice) CreateShader(kind ShaderKind) uint32 {
	switch kind {
	case FragmentShader:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
}

func (d *GLDevice) CompileShader(shader uint32, source string) bool {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *GLDevice) ShaderInfoLog(shader uint32) string {
	buf := make([]byte, InfoLogSize)
	var n int32
	gl.GetShaderInfoLog(shader, InfoLogSize, &n, &buf[0])
	return boundedLog(buf, n)
}

func (d *GLDevice) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *GLDevice) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *GLDevice) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *GLDevice) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (d *GLDevice) LinkProgram(program uint32) bool {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *GLDevice) ProgramInfoLog(program uint32) string {
	buf := make([]byte, InfoLogSize)
	var n int32
	gl.GetProgramInfoLog(program, InfoLogSize, &n, &buf[0])
	return boundedLog(buf, n)
}

func (d *GLDevice) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *GLDevice) NewVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *GLDevice) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *GLDevice) NewVertexBuffer(data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	return vbo
}

func (d *GLDevice) VertexAttrib(slot uint32, components int32) {
	gl.VertexAttribPointer(slot, components, gl.FLOAT, false, components*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(slot)
}

func (d *GLDevice) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *GLDevice) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (d *GLDevice) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *GLDevice) UniformMatrix3(location int32, transpose bool, m *[9]float32) {
	gl.UniformMatrix3fv(location, 1, transpose, &m[0])
}

func (d *GLDevice) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// VersionAtLeast reports whether major.minor is at or above wantMajor.wantMinor.
func VersionAtLeast(major, minor, wantMajor, wantMinor int) bool {
	if major != wantMajor {
		return major > wantMajor
	}
	return minor >= wantMinor
}
