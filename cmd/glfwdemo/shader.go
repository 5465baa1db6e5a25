package main

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
)

// triangleWGSL draws one colored triangle without vertex buffers; positions
// derive from the vertex index.
const triangleWGSL = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec3<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) index: u32) -> VertexOutput {
    let i = f32(index);
    var result: VertexOutput;
    result.position = vec4<f32>((i - 1.0) * 0.6, select(-0.6, 0.6, index == 1u), 0.0, 1.0);
    result.color = vec3<f32>(select(0.3, 1.0, index == 0u), select(0.3, 1.0, index == 1u), select(0.3, 1.0, index == 2u));
    return result;
}

@fragment
fn fs_main(v: VertexOutput) -> @location(0) vec4<f32> {
    return vec4<f32>(v.color, 1.0);
}
`

// shaderSources is one program translated to GLSL.
type shaderSources struct {
	Vertex   string
	Fragment string
}

// glslVersion returns the GLSL version matching an OpenGL core version.
func glslVersion(v GLVersion) glsl.Version {
	return glsl.Version{Major: uint8(v.Major), Minor: uint8(v.Minor * 10)}
}

// translateWGSL compiles WGSL source into GLSL for the vs_main and fs_main
// entry points.
func translateWGSL(source string, version glsl.Version) (shaderSources, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return shaderSources{}, fmt.Errorf("glfwdemo: parse shader: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return shaderSources{}, fmt.Errorf("glfwdemo: lower shader: %w", err)
	}

	opts := glsl.DefaultOptions()
	opts.LangVersion = version

	var out shaderSources
	for _, stage := range []struct {
		entry string
		dst   *string
	}{
		{"vs_main", &out.Vertex},
		{"fs_main", &out.Fragment},
	} {
		opts.EntryPoint = stage.entry
		src, _, err := glsl.Compile(module, opts)
		if err != nil {
			return shaderSources{}, fmt.Errorf("glfwdemo: generate GLSL for %s: %w", stage.entry, err)
		}
		*stage.dst = src
	}
	return out, nil
}
