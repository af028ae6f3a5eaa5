package render

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex matches the WGSL VertexInput of the mesh shader.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

type Material struct {
	Ambient   [3]float32
	Diffuse   [3]float32
	Specular  [3]float32
	Shininess float32
	Alpha     float32
}

// Instance is one drawable object: a mesh reference, an optional
// texture reference and per-object shading state. Instances with
// Alpha < 1 are deferred to the transparent pass. Unlit instances
// skip shading and output the diffuse color flat (light markers).
type Instance struct {
	Mesh     string
	Texture  string // empty means untextured
	Model    mgl32.Mat4
	Material Material
	Unlit    bool
}

type gpuMesh struct {
	vertexBuf  *wgpu.Buffer
	indexBuf   *wgpu.Buffer
	indexCount uint32
}

func (m *gpuMesh) release() {
	if m.vertexBuf != nil {
		m.vertexBuf.Release()
	}
	if m.indexBuf != nil {
		m.indexBuf.Release()
	}
}

type gpuTexture struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
}

func (t *gpuTexture) release() {
	if t.view != nil {
		t.view.Release()
	}
	if t.texture != nil {
		t.texture.Release()
	}
}

// gpuInstance pairs the CPU-side instance state with its uniform
// buffer and bind group. The bind group is rebuilt when the bound
// texture changes.
type gpuInstance struct {
	data         Instance
	uniformBuf   *wgpu.Buffer
	bindGroup    *wgpu.BindGroup
	boundTexture string
}

func (i *gpuInstance) release() {
	if i.bindGroup != nil {
		i.bindGroup.Release()
	}
	if i.uniformBuf != nil {
		i.uniformBuf.Release()
	}
}
