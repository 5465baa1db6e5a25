package main

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"

	"github.com/gogpu/glfw"
)

// OpenGL constants used by the demo.
const (
	glColorBufferBit = 0x00004000
	glTriangles      = 0x0004
	glFragmentShader = 0x8B30
	glVertexShader   = 0x8B31
	glCompileStatus  = 0x8B81
	glLinkStatus     = 0x8B82
)

type glProc struct {
	name string
	fn   unsafe.Pointer
	cif  types.CallInterface
}

func (p *glProc) call(ret unsafe.Pointer, args ...unsafe.Pointer) {
	if err := ffi.CallFunction(&p.cif, p.fn, ret, args); err != nil {
		panic(fmt.Sprintf("glfwdemo: %s: %v", p.name, err))
	}
}

// glAPI is the handful of OpenGL 3.3 core entry points the demo draws with.
type glAPI struct {
	clearColor      glProc
	clear           glProc
	viewport        glProc
	createShader    glProc
	shaderSource    glProc
	compileShader   glProc
	getShaderiv     glProc
	deleteShader    glProc
	createProgram   glProc
	attachShader    glProc
	linkProgram     glProc
	getProgramiv    glProc
	useProgram      glProc
	genVertexArrays glProc
	bindVertexArray glProc
	drawArrays      glProc
}

var (
	u32T  = types.UInt32TypeDescriptor
	i32T  = types.SInt32TypeDescriptor
	f32T  = types.FloatTypeDescriptor
	ptrT  = types.PointerTypeDescriptor
	voidT = types.VoidTypeDescriptor
)

// loadGL resolves the entry points through load. The window's context must
// be current.
func loadGL(load glfw.SafeLoadProc) (*glAPI, error) {
	gl := &glAPI{}
	table := []struct {
		p    *glProc
		name string
		ret  *types.TypeDescriptor
		args []*types.TypeDescriptor
	}{
		{&gl.clearColor, "glClearColor", voidT, []*types.TypeDescriptor{f32T, f32T, f32T, f32T}},
		{&gl.clear, "glClear", voidT, []*types.TypeDescriptor{u32T}},
		{&gl.viewport, "glViewport", voidT, []*types.TypeDescriptor{i32T, i32T, i32T, i32T}},
		{&gl.createShader, "glCreateShader", u32T, []*types.TypeDescriptor{u32T}},
		{&gl.shaderSource, "glShaderSource", voidT, []*types.TypeDescriptor{u32T, i32T, ptrT, ptrT}},
		{&gl.compileShader, "glCompileShader", voidT, []*types.TypeDescriptor{u32T}},
		{&gl.getShaderiv, "glGetShaderiv", voidT, []*types.TypeDescriptor{u32T, u32T, ptrT}},
		{&gl.deleteShader, "glDeleteShader", voidT, []*types.TypeDescriptor{u32T}},
		{&gl.createProgram, "glCreateProgram", u32T, nil},
		{&gl.attachShader, "glAttachShader", voidT, []*types.TypeDescriptor{u32T, u32T}},
		{&gl.linkProgram, "glLinkProgram", voidT, []*types.TypeDescriptor{u32T}},
		{&gl.getProgramiv, "glGetProgramiv", voidT, []*types.TypeDescriptor{u32T, u32T, ptrT}},
		{&gl.useProgram, "glUseProgram", voidT, []*types.TypeDescriptor{u32T}},
		{&gl.genVertexArrays, "glGenVertexArrays", voidT, []*types.TypeDescriptor{i32T, ptrT}},
		{&gl.bindVertexArray, "glBindVertexArray", voidT, []*types.TypeDescriptor{u32T}},
		{&gl.drawArrays, "glDrawArrays", voidT, []*types.TypeDescriptor{u32T, i32T, i32T}},
	}
	for _, e := range table {
		fn := load(e.name)
		if fn == nil {
			return nil, fmt.Errorf("glfwdemo: OpenGL entry point %s not available", e.name)
		}
		e.p.name = e.name
		e.p.fn = fn
		if err := ffi.PrepareCallInterface(&e.p.cif, types.DefaultCall, e.ret, e.args); err != nil {
			return nil, fmt.Errorf("glfwdemo: prepare %s: %w", e.name, err)
		}
	}
	return gl, nil
}

func (gl *glAPI) ClearColor(r, g, b, a float32) {
	gl.clearColor.call(nil, unsafe.Pointer(&r), unsafe.Pointer(&g), unsafe.Pointer(&b), unsafe.Pointer(&a))
}

func (gl *glAPI) Clear(mask uint32) {
	gl.clear.call(nil, unsafe.Pointer(&mask))
}

func (gl *glAPI) Viewport(x, y, width, height int32) {
	gl.viewport.call(nil, unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&width), unsafe.Pointer(&height))
}

func (gl *glAPI) UseProgram(program uint32) {
	gl.useProgram.call(nil, unsafe.Pointer(&program))
}

func (gl *glAPI) BindVertexArray(vao uint32) {
	gl.bindVertexArray.call(nil, unsafe.Pointer(&vao))
}

func (gl *glAPI) DrawArrays(mode uint32, first, count int32) {
	gl.drawArrays.call(nil, unsafe.Pointer(&mode), unsafe.Pointer(&first), unsafe.Pointer(&count))
}

// GenVertexArray returns one new vertex array object name.
func (gl *glAPI) GenVertexArray() uint32 {
	var vao uint32
	n := int32(1)
	ptr := unsafe.Pointer(&vao)
	gl.genVertexArrays.call(nil, unsafe.Pointer(&n), unsafe.Pointer(&ptr))
	return vao
}

// compileStage compiles one GLSL stage and reports whether it succeeded.
func (gl *glAPI) compileStage(kind uint32, source string) (uint32, error) {
	var shader uint32
	gl.createShader.call(unsafe.Pointer(&shader), unsafe.Pointer(&kind))

	src := append([]byte(source), 0)
	srcPtr := unsafe.Pointer(&src[0])
	sources := unsafe.Pointer(&srcPtr)
	var lengths unsafe.Pointer
	count := int32(1)
	gl.shaderSource.call(nil, unsafe.Pointer(&shader), unsafe.Pointer(&count), unsafe.Pointer(&sources), unsafe.Pointer(&lengths))
	runtime.KeepAlive(src)

	gl.compileShader.call(nil, unsafe.Pointer(&shader))

	var status int32
	pname := uint32(glCompileStatus)
	statusPtr := unsafe.Pointer(&status)
	gl.getShaderiv.call(nil, unsafe.Pointer(&shader), unsafe.Pointer(&pname), unsafe.Pointer(&statusPtr))
	if status == 0 {
		gl.deleteShader.call(nil, unsafe.Pointer(&shader))
		return 0, fmt.Errorf("glfwdemo: shader stage %#x failed to compile", kind)
	}
	return shader, nil
}

// buildProgram compiles and links a vertex and fragment stage.
func (gl *glAPI) buildProgram(src shaderSources) (uint32, error) {
	vs, err := gl.compileStage(glVertexShader, src.Vertex)
	if err != nil {
		return 0, err
	}
	fs, err := gl.compileStage(glFragmentShader, src.Fragment)
	if err != nil {
		gl.deleteShader.call(nil, unsafe.Pointer(&vs))
		return 0, err
	}

	var program uint32
	gl.createProgram.call(unsafe.Pointer(&program))
	gl.attachShader.call(nil, unsafe.Pointer(&program), unsafe.Pointer(&vs))
	gl.attachShader.call(nil, unsafe.Pointer(&program), unsafe.Pointer(&fs))
	gl.linkProgram.call(nil, unsafe.Pointer(&program))
	gl.deleteShader.call(nil, unsafe.Pointer(&vs))
	gl.deleteShader.call(nil, unsafe.Pointer(&fs))

	var status int32
	pname := uint32(glLinkStatus)
	statusPtr := unsafe.Pointer(&status)
	gl.getProgramiv.call(nil, unsafe.Pointer(&program), unsafe.Pointer(&pname), unsafe.Pointer(&statusPtr))
	if status == 0 {
		return 0, fmt.Errorf("glfwdemo: program link failed")
	}
	return program, nil
}
