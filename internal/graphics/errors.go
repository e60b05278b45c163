package graphics

import (
	"errors"
	"fmt"
)

var (
	ErrContextLoad        = errors.New("could not load OpenGL functions")
	ErrUnsupportedVersion = errors.New("OpenGL version not supported")
	ErrShaderCompile      = errors.New("shader compilation error")
	ErrProgramLink        = errors.New("program link error")
)

// ShaderError carries the compiler or linker diagnostic for a failed step.
// Log is bounded to InfoLogSize bytes. Stage names the shader kind and is
// empty for link failures.
type ShaderError struct {
	Stage string
	Log   string
	err   error
}

func (e *ShaderError) Error() string {
	if e.Stage == "" {
		return fmt.Sprintf("%v: %s", e.err, e.Log)
	}
	return fmt.Sprintf("%s %v: %s", e.Stage, e.err, e.Log)
}

func (e *ShaderError) Unwrap() error {
	return e.err
}
