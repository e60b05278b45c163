package graphics

// ShaderKind selects the pipeline stage a shader is compiled for.
type ShaderKind int

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// Device is the slice of OpenGL the renderer drives. GLDevice is the real
// implementation; tests substitute a recording double.
type Device interface {
	CreateShader(kind ShaderKind) uint32
	// CompileShader uploads source and compiles it, reporting the compile status.
	CompileShader(shader uint32, source string) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	// LinkProgram links the attached shaders, reporting the link status.
	LinkProgram(program uint32) bool
	ProgramInfoLog(program uint32) string
	UniformLocation(program uint32, name string) int32

	NewVertexArray() uint32
	BindVertexArray(vao uint32)
	// NewVertexBuffer creates an array buffer holding data and leaves it bound.
	NewVertexBuffer(data []float32) uint32
	// VertexAttrib describes a tightly packed float attribute of the bound
	// buffer at slot and enables it.
	VertexAttrib(slot uint32, components int32)

	Clear()
	Viewport(width, height int32)
	UseProgram(program uint32)
	UniformMatrix3(location int32, transpose bool, m *[9]float32)
	DrawTriangles(first, count int32)
}
