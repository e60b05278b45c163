package renderer

// RotationUniform is the mat3 uniform the vertex shader multiplies positions by.
const RotationUniform = "u_RotationMatrix"

const vertexShaderSource = `#version 450 core
layout (location = 0) in vec3 in_Position;
uniform mat3 u_RotationMatrix;
void main()
{
    gl_Position = vec4(u_RotationMatrix * in_Position, 1.0);
}
`

const fragmentShaderSource = `#version 450 core
layout (location = 0) out vec4 out_Color;
void main()
{
    out_Color = vec4(1.0, 0.0, 0.0, 1.0);
}
`

// Triangle vertex positions in clip space, three floats per vertex.
var triangleVertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

const (
	positionSlot       = 0
	positionComponents = 3
	vertexCount        = 3
)
