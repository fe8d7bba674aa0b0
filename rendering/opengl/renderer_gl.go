package opengl

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"cubegrid/core"
	"cubegrid/rendering"
	"cubegrid/rendering/opengl/shaders"
)

// Options configure the window and GL state.
type Options struct {
	Width, Height int
	Title         string
	Samples       int
	VSync         bool
	ClearColor    [4]float32
	Logger        *slog.Logger
}

// CubeRenderer draws the cube grid through native OpenGL. It implements
// rendering.Device and rendering.Clock.
type CubeRenderer struct {
	window *glfw.Window
	logger *slog.Logger

	program *shaders.ColorProgram
	vao     uint32
	cells   *CellBufferSet
}

// NewCubeRenderer opens the window, creates the GL context and compiles the
// cube program. Everything it creates is recorded in res, so releasing res
// cleans up after a partial failure too.
func NewCubeRenderer(opts Options, res *rendering.Resources) (*CubeRenderer, error) {
	runtime.LockOSThread()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	res.Acquire("glfw", glfw.Terminate)

	// Configure OpenGL context
	glfw.WindowHint(glfw.Samples, opts.Samples)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	res.Acquire("window", window.Destroy)

	window.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL ready", "version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	// A short escape press between polls still counts.
	window.SetInputMode(glfw.StickyKeysMode, glfw.True)

	r := &CubeRenderer{
		window: window,
		logger: logger,
	}

	c := opts.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	res.Acquire("vertex array", func() { gl.DeleteVertexArrays(1, &r.vao) })

	program, err := shaders.CreateColorProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to compile cube shaders: %w", err)
	}
	r.program = program
	res.Acquire("program", program.Delete)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	return r, nil
}

// UploadGrid creates the per-cell buffers. It must be called once, before
// the first frame.
func (r *CubeRenderer) UploadGrid(grid *core.Grid, res *rendering.Resources) {
	r.cells = NewCellBufferSet(grid)
	res.Acquire("cell buffers", r.cells.Release)
	r.logger.Debug("uploaded cell buffers", "cells", r.cells.Len())
}

func (r *CubeRenderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *CubeRenderer) UseProgram() {
	gl.UseProgram(r.program.ID)
}

func (r *CubeRenderer) SetMVP(mvp mgl32.Mat4) {
	gl.UniformMatrix4fv(r.program.MVP, 1, false, &mvp[0])
}

func (r *CubeRenderer) DrawCell(id int) {
	r.cells.Draw(id, r.program.Position, r.program.Color)
}

func (r *CubeRenderer) DisableAttributes() {
	gl.DisableVertexAttribArray(r.program.Position)
	gl.DisableVertexAttribArray(r.program.Color)
}

// Present swaps buffers and polls window events.
func (r *CubeRenderer) Present() {
	if err := gl.GetError(); err != gl.NO_ERROR {
		r.logger.Debug("OpenGL error after frame", "code", fmt.Sprintf("0x%x", err))
	}
	r.window.SwapBuffers()
	glfw.PollEvents()
}

// ShouldClose returns true once escape was pressed or the window was closed.
func (r *CubeRenderer) ShouldClose() bool {
	return r.window.GetKey(glfw.KeyEscape) == glfw.Press || r.window.ShouldClose()
}

// Seconds is the GLFW timer, seconds since glfw.Init.
func (r *CubeRenderer) Seconds() float64 {
	return glfw.GetTime()
}
