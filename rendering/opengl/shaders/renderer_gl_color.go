package shaders

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Per-vertex color cubes transformed by a single MVP
const colorCubeVertexShader = `
#version 410 core

layout(location = 0) in vec3 vertexPosition_modelspace;
layout(location = 1) in vec3 vertexColor;

uniform mat4 MVP;

out vec3 fragmentColor;

void main() {
    gl_Position = MVP * vec4(vertexPosition_modelspace, 1.0);
    fragmentColor = vertexColor;
}
`

const colorCubeFragmentShader = `
#version 410 core

in vec3 fragmentColor;
out vec3 color;

void main() {
    color = fragmentColor;
}
`

// ColorProgram holds the linked cube program and the handles the renderer
// needs from it.
type ColorProgram struct {
	ID       uint32
	MVP      int32
	Position uint32
	Color    uint32
}

// CreateColorProgram compiles and links the color cube shaders
func CreateColorProgram() (*ColorProgram, error) {
	vertShader, err := compileShader(colorCubeVertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("color cube vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(colorCubeFragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("color cube fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragShader)

	program, err := linkProgram(vertShader, fragShader)
	if err != nil {
		return nil, fmt.Errorf("color cube program: %w", err)
	}

	p := &ColorProgram{ID: program}
	if p.MVP, err = uniformLocation(program, "MVP"); err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}
	if p.Position, err = attribLocation(program, "vertexPosition_modelspace"); err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}
	if p.Color, err = attribLocation(program, "vertexColor"); err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}
	return p, nil
}

// Delete releases the GL program.
func (p *ColorProgram) Delete() {
	gl.DeleteProgram(p.ID)
}
