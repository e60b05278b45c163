package graphics

import "strings"

// InfoLogSize bounds compiler and linker diagnostics. Longer logs are
// truncated.
const InfoLogSize = 512

// CompileShader creates a shader of the given kind and compiles source.
// On failure the shader is deleted and a *ShaderError wrapping
// ErrShaderCompile is returned.
func CompileShader(dev Device, kind ShaderKind, source string) (uint32, error) {
	shader := dev.CreateShader(kind)
	if !dev.CompileShader(shader, source) {
		log := dev.ShaderInfoLog(shader)
		dev.DeleteShader(shader)
		return 0, &ShaderError{Stage: kind.String() + " shader", Log: log, err: ErrShaderCompile}
	}
	return shader, nil
}

// LinkProgram links the shaders into a new program. Shaders are detached and
// deleted once linking succeeds, as they are no longer needed.
func LinkProgram(dev Device, shaders ...uint32) (uint32, error) {
	program := dev.CreateProgram()
	for _, s := range shaders {
		dev.AttachShader(program, s)
	}
	if !dev.LinkProgram(program) {
		return 0, &ShaderError{Log: dev.ProgramInfoLog(program), err: ErrProgramLink}
	}
	for _, s := range shaders {
		dev.DetachShader(program, s)
		dev.DeleteShader(s)
	}
	return program, nil
}

// boundedLog turns a NUL-padded info log buffer into a string of at most
// InfoLogSize-1 bytes with trailing whitespace removed.
func boundedLog(buf []byte, n int32) string {
	if n < 0 {
		n = 0
	}
	if int(n) > len(buf) {
		n = int32(len(buf))
	}
	if n >= InfoLogSize {
		n = InfoLogSize - 1
	}
	return strings.TrimRight(string(buf[:n]), "\x00\r\n\t ")
}
