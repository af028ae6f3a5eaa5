package render

import (
	"fmt"
	"sort"
	"unsafe"

	"github.com/trilight/trilight/render/shaders"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const depthFormat = wgpu.TextureFormatDepth32Float

type Config struct {
	FontPath string
	FontSize float64

	// WGSL sources; empty fields fall back to the embedded shaders.
	MeshShader string
	TextShader string
}

// globalsUniform matches the WGSL Globals struct.
type globalsUniform struct {
	ViewProj   mgl32.Mat4
	CameraPos  [4]float32
	LightPos   [4]float32
	LightColor [4]float32
}

// objectUniform matches the WGSL ObjectData struct.
type objectUniform struct {
	Model     mgl32.Mat4
	NormalMat mgl32.Mat4
	Ambient   [4]float32
	Diffuse   [4]float32
	Specular  [4]float32
	Flags     [4]float32
}

// App owns the GPU state of the forward renderer: one opaque and one
// blended mesh pipeline sharing a depth buffer, plus an overlay text
// pass.
type App struct {
	Window   *glfw.Window
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
	Surface  *wgpu.Surface
	Config   *wgpu.SurfaceConfiguration

	OpaquePipeline      *wgpu.RenderPipeline
	TransparentPipeline *wgpu.RenderPipeline

	globalsLayout *wgpu.BindGroupLayout
	objectLayout  *wgpu.BindGroupLayout

	DepthTexture *wgpu.Texture
	DepthView    *wgpu.TextureView
	Sampler      *wgpu.Sampler

	GlobalsBuffer    *wgpu.Buffer
	GlobalsBindGroup *wgpu.BindGroup

	meshes    map[string]*gpuMesh
	textures  map[string]*gpuTexture
	instances map[string]*gpuInstance

	whiteTexture *gpuTexture

	Camera Camera
	Light  Light

	TextRenderer     *TextRenderer
	TextPipeline     *wgpu.RenderPipeline
	TextAtlasView    *wgpu.TextureView
	TextBindGroup    *wgpu.BindGroup
	TextVertexBuffer *wgpu.Buffer
	TextItems        []TextItem
	TextVertexCount  uint32

	LastRenderTime float64
	FrameCount     int
	FPS            float64
	FPSTime        float64

	meshShaderSrc string
	textShaderSrc string
}

func NewApp(window *glfw.Window) *App {
	return &App{
		Window:    window,
		Camera:    NewCamera(),
		Light:     DefaultLight(),
		meshes:    make(map[string]*gpuMesh),
		textures:  make(map[string]*gpuTexture),
		instances: make(map[string]*gpuInstance),
	}
}

func (a *App) Init(cfg Config) error {
	a.meshShaderSrc = cfg.MeshShader
	if a.meshShaderSrc == "" {
		a.meshShaderSrc = shaders.MeshWGSL
	}
	a.textShaderSrc = cfg.TextShader
	if a.textShaderSrc == "" {
		a.textShaderSrc = shaders.TextWGSL
	}

	a.Instance = wgpu.CreateInstance(nil)

	surface := a.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(a.Window))
	a.Surface = surface

	adapter, err := a.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return err
	}
	a.Adapter = adapter

	a.Device, err = adapter.RequestDevice(nil)
	if err != nil {
		return err
	}
	a.Queue = a.Device.GetQueue()

	width, height := a.Window.GetFramebufferSize()
	caps := surface.GetCapabilities(adapter)
	format := caps.Formats[0]

	a.Config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo, // vsync
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, a.Device, a.Config)

	a.Sampler, err = a.Device.CreateSampler(&wgpu.SamplerDescriptor{
		MinFilter:     wgpu.FilterModeLinear,
		MagFilter:     wgpu.FilterModeLinear,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return err
	}

	if err := a.setupMeshPipelines(format); err != nil {
		return err
	}

	a.setupDepthTexture(width, height)

	a.GlobalsBuffer, err = a.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Globals",
		Size:  uint64(unsafe.Sizeof(globalsUniform{})),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	a.GlobalsBindGroup, err = a.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Globals BG",
		Layout: a.globalsLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: a.GlobalsBuffer, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return err
	}

	// 1x1 white fallback so untextured objects can share the bind
	// group layout.
	a.whiteTexture = a.uploadTextureData([]byte{255, 255, 255, 255}, 1, 1)

	// Text Rendering Setup
	if cfg.FontPath != "" {
		a.TextRenderer, err = NewTextRenderer(cfg.FontPath, cfg.FontSize)
		if err != nil {
			fmt.Printf("WARNING: Failed to load font %q: %v\n", cfg.FontPath, err)
			a.TextRenderer = nil
		}
	}
	if a.TextRenderer == nil {
		a.TextRenderer = NewBasicTextRenderer()
	}
	a.setupTextResources()

	a.LastRenderTime = glfw.GetTime()

	return nil
}

func (a *App) setupMeshPipelines(format wgpu.TextureFormat) error {
	shader, err := a.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Mesh Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: a.meshShaderSrc},
	})
	if err != nil {
		return err
	}
	defer shader.Release()

	a.globalsLayout, err = a.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Globals BGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			},
		},
	})
	if err != nil {
		return err
	}

	a.objectLayout, err = a.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Object BGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return err
	}

	layout, err := a.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		BindGroupLayouts: []*wgpu.BindGroupLayout{a.globalsLayout, a.objectLayout},
	})
	if err != nil {
		return err
	}
	defer layout.Release()

	vertexLayout := wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
		},
	}

	makePipeline := func(label string, depthWrite bool, blend *wgpu.BlendState) (*wgpu.RenderPipeline, error) {
		return a.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
			Label:  label,
			Layout: layout,
			Vertex: wgpu.VertexState{
				Module:     shader,
				EntryPoint: "vs_main",
				Buffers:    []wgpu.VertexBufferLayout{vertexLayout},
			},
			Fragment: &wgpu.FragmentState{
				Module:     shader,
				EntryPoint: "fs_main",
				Targets: []wgpu.ColorTargetState{{
					Format:    format,
					Blend:     blend,
					WriteMask: wgpu.ColorWriteMaskAll,
				}},
			},
			Primitive: wgpu.PrimitiveState{
				Topology:  wgpu.PrimitiveTopologyTriangleList,
				FrontFace: wgpu.FrontFaceCCW,
				CullMode:  wgpu.CullModeBack,
			},
			DepthStencil: &wgpu.DepthStencilState{
				Format:            depthFormat,
				DepthWriteEnabled: depthWrite,
				DepthCompare:      wgpu.CompareFunctionLess,
				StencilFront:      wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
				StencilBack:       wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
				StencilReadMask:   0xFFFFFFFF,
				StencilWriteMask:  0xFFFFFFFF,
			},
			Multisample: wgpu.MultisampleState{
				Count: 1,
				Mask:  0xFFFFFFFF,
			},
		})
	}

	a.OpaquePipeline, err = makePipeline("Opaque Pipeline", true, nil)
	if err != nil {
		return err
	}

	// Transparent geometry blends over what is already shaded and
	// must not occlude anything behind it.
	a.TransparentPipeline, err = makePipeline("Transparent Pipeline", false, &wgpu.BlendState{
		Color: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorSrcAlpha,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			Operation: wgpu.BlendOperationAdd,
		},
		Alpha: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
			Operation: wgpu.BlendOperationAdd,
		},
	})
	return err
}

func (a *App) setupDepthTexture(w, h int) {
	if w == 0 || h == 0 {
		return
	}

	if a.DepthView != nil {
		a.DepthView.Release()
	}
	if a.DepthTexture != nil {
		a.DepthTexture.Release()
	}

	var err error
	a.DepthTexture, err = a.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Depth Tex",
		Size:          wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        depthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	a.DepthView, err = a.DepthTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
}

func (a *App) Resize(w, h int) {
	if w > 0 && h > 0 {
		a.Config.Width = uint32(w)
		a.Config.Height = uint32(h)
		a.Surface.Configure(a.Adapter, a.Device, a.Config)
		a.setupDepthTexture(w, h)
	}
}

// UploadMesh creates GPU buffers for a mesh under the given id.
// Re-uploading an id replaces the previous buffers.
func (a *App) UploadMesh(id string, vertices []Vertex, indices []uint16) {
	if old, ok := a.meshes[id]; ok {
		old.release()
	}

	vertexBuf, err := a.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Vertex Buffer",
		Contents: wgpu.ToBytes(vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		panic(err)
	}
	indexBuf, err := a.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Index Buffer",
		Contents: wgpu.ToBytes(indices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		panic(err)
	}

	a.meshes[id] = &gpuMesh{
		vertexBuf:  vertexBuf,
		indexBuf:   indexBuf,
		indexCount: uint32(len(indices)),
	}
}

// UploadTexture creates a GPU texture from RGBA8 texels under the
// given id.
func (a *App) UploadTexture(id string, texels []byte, width, height uint32) {
	if old, ok := a.textures[id]; ok {
		old.release()
	}
	a.textures[id] = a.uploadTextureData(texels, width, height)

	// Instances bound to the replaced texture need a new bind group.
	for _, inst := range a.instances {
		if inst.boundTexture == id {
			inst.boundTexture = ""
		}
	}
}

func (a *App) uploadTextureData(texels []byte, width, height uint32) *gpuTexture {
	extent := wgpu.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1}
	texture, err := a.Device.CreateTexture(&wgpu.TextureDescriptor{
		Size:          extent,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		panic(err)
	}

	err = a.Queue.WriteTexture(
		texture.AsImageCopy(),
		texels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  width * 4,
			RowsPerImage: height,
		},
		&extent,
	)
	if err != nil {
		panic(err)
	}

	return &gpuTexture{texture: texture, view: view}
}

// SetInstance creates or updates a drawable instance.
func (a *App) SetInstance(id string, data Instance) {
	inst, ok := a.instances[id]
	if !ok {
		uniformBuf, err := a.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "Object Uniform",
			Size:  uint64(unsafe.Sizeof(objectUniform{})),
			Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			panic(err)
		}
		inst = &gpuInstance{uniformBuf: uniformBuf, boundTexture: "\x00unbound"}
		a.instances[id] = inst
	}
	inst.data = data
}

func (a *App) RemoveInstance(id string) {
	if inst, ok := a.instances[id]; ok {
		inst.release()
		delete(a.instances, id)
	}
}

func (a *App) ClearText() {
	a.TextItems = a.TextItems[:0]
	a.TextVertexCount = 0
}

func (a *App) DrawText(text string, x, y float32, scale float32, color [4]float32) {
	a.TextItems = append(a.TextItems, TextItem{
		Text:     text,
		Position: [2]float32{x, y},
		Scale:    scale,
		Color:    color,
	})
}

// Update pushes the frame's CPU state to the GPU: globals, object
// uniforms and text vertices.
func (a *App) Update() {
	view := a.Camera.ViewMatrix()
	aspect := float32(a.Config.Width) / float32(a.Config.Height)
	proj := a.Camera.ProjMatrix(aspect)

	lightType := float32(a.Light.Type)
	globals := globalsUniform{
		ViewProj:   proj.Mul4(view),
		CameraPos:  [4]float32{a.Camera.Position.X(), a.Camera.Position.Y(), a.Camera.Position.Z(), 1},
		LightPos:   [4]float32{a.Light.Position.X(), a.Light.Position.Y(), a.Light.Position.Z(), lightType},
		LightColor: [4]float32{a.Light.Color[0], a.Light.Color[1], a.Light.Color[2], a.Light.Intensity},
	}
	a.Queue.WriteBuffer(a.GlobalsBuffer, 0, wgpu.ToBytes([]globalsUniform{globals}))

	for _, inst := range a.instances {
		a.updateInstance(inst)
	}

	a.updateTextBuffers()
}

func (a *App) updateInstance(inst *gpuInstance) {
	u := instanceUniform(inst.data)
	a.Queue.WriteBuffer(inst.uniformBuf, 0, wgpu.ToBytes([]objectUniform{u}))

	if inst.boundTexture != inst.data.Texture || inst.bindGroup == nil {
		a.rebuildInstanceBindGroup(inst)
	}
}

// instanceUniform packs an Instance into the WGSL ObjectData layout.
func instanceUniform(data Instance) objectUniform {
	model := data.Model
	normalMat := mgl32.Ident4()
	if model.Det() != 0 {
		normalMat = model.Inv().Transpose()
	}

	mat := data.Material
	useTexture := float32(0)
	if data.Texture != "" {
		useTexture = 1
	}
	unlit := float32(0)
	if data.Unlit {
		unlit = 1
	}

	return objectUniform{
		Model:     model,
		NormalMat: normalMat,
		Ambient:   [4]float32{mat.Ambient[0], mat.Ambient[1], mat.Ambient[2], 0},
		Diffuse:   [4]float32{mat.Diffuse[0], mat.Diffuse[1], mat.Diffuse[2], mat.Alpha},
		Specular:  [4]float32{mat.Specular[0], mat.Specular[1], mat.Specular[2], mat.Shininess},
		Flags:     [4]float32{useTexture, unlit, 0, 0},
	}
}

func (a *App) rebuildInstanceBindGroup(inst *gpuInstance) {
	texView := a.whiteTexture.view
	if tex, ok := a.textures[inst.data.Texture]; ok {
		texView = tex.view
	}

	if inst.bindGroup != nil {
		inst.bindGroup.Release()
	}

	bindGroup, err := a.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Object BG",
		Layout: a.objectLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: inst.uniformBuf, Size: wgpu.WholeSize},
			{Binding: 1, TextureView: texView},
			{Binding: 2, Sampler: a.Sampler},
		},
	})
	if err != nil {
		panic(err)
	}

	inst.bindGroup = bindGroup
	inst.boundTexture = inst.data.Texture
}

func (a *App) updateTextBuffers() {
	if len(a.TextItems) == 0 || a.TextRenderer == nil {
		return
	}

	vertices := a.TextRenderer.BuildVertices(a.TextItems, int(a.Config.Width), int(a.Config.Height))
	if len(vertices) == 0 {
		return
	}

	vSize := uint64(len(vertices) * int(unsafe.Sizeof(TextVertex{})))
	if a.TextVertexBuffer == nil || a.TextVertexBuffer.GetSize() < vSize {
		if a.TextVertexBuffer != nil {
			a.TextVertexBuffer.Release()
		}
		a.TextVertexBuffer, _ = a.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "Text VB",
			Size:  vSize,
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
	}
	a.Queue.WriteBuffer(a.TextVertexBuffer, 0, wgpu.ToBytes(vertices))
	a.TextVertexCount = uint32(len(vertices))
}

// Render draws opaque instances front-rejecting via the depth
// buffer, then transparent instances sorted back-to-front, then the
// text overlay.
func (a *App) Render() {
	nextTexture, err := a.Surface.GetCurrentTexture()
	if err != nil {
		fmt.Printf("ERROR: GetCurrentTexture failed: %v\n", err)
		return
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		fmt.Printf("ERROR: CreateView failed: %v\n", err)
		return
	}
	defer view.Release()

	encoder, err := a.Device.CreateCommandEncoder(nil)
	if err != nil {
		fmt.Printf("ERROR: CreateCommandEncoder failed: %v\n", err)
		return
	}

	opaque, transparent := a.partitionInstances()

	rPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: 0.05, G: 0.05, B: 0.08, A: 1},
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            a.DepthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
			StencilReadOnly: true,
		},
	})

	rPass.SetBindGroup(0, a.GlobalsBindGroup, nil)

	rPass.SetPipeline(a.OpaquePipeline)
	for _, inst := range opaque {
		a.drawInstance(rPass, inst)
	}

	rPass.SetPipeline(a.TransparentPipeline)
	for _, inst := range transparent {
		a.drawInstance(rPass, inst)
	}

	// Text Pass
	if a.TextVertexCount > 0 && a.TextVertexBuffer != nil && a.TextPipeline != nil {
		rPass.SetPipeline(a.TextPipeline)
		rPass.SetBindGroup(0, a.TextBindGroup, nil)
		rPass.SetVertexBuffer(0, a.TextVertexBuffer, 0, a.TextVertexBuffer.GetSize())
		rPass.Draw(a.TextVertexCount, 1, 0, 0)
	}

	err = rPass.End()
	if err != nil {
		fmt.Printf("ERROR: Render pass End failed: %v\n", err)
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		fmt.Printf("ERROR: Encoder Finish failed: %v\n", err)
		return
	}
	a.Queue.Submit(cmd)
	a.Surface.Present()

	// Update FPS
	now := glfw.GetTime()
	if a.LastRenderTime > 0 {
		a.FrameCount++
		a.FPSTime += now - a.LastRenderTime
		if a.FPSTime >= 1.0 {
			a.FPS = float64(a.FrameCount) / a.FPSTime
			a.FrameCount = 0
			a.FPSTime = 0
		}
	}
	a.LastRenderTime = now
}

// partitionInstances splits instances into opaque and transparent
// sets, the latter ordered back-to-front from the camera.
func (a *App) partitionInstances() (opaque, transparent []*gpuInstance) {
	for _, inst := range a.instances {
		if inst.bindGroup == nil {
			continue
		}
		if inst.data.Material.Alpha < 1.0 {
			transparent = append(transparent, inst)
		} else {
			opaque = append(opaque, inst)
		}
	}

	camPos := a.Camera.Position
	sort.Slice(transparent, func(i, j int) bool {
		di := instancePos(transparent[i]).Sub(camPos).LenSqr()
		dj := instancePos(transparent[j]).Sub(camPos).LenSqr()
		return di > dj
	})
	return opaque, transparent
}

func instancePos(inst *gpuInstance) mgl32.Vec3 {
	col := inst.data.Model.Col(3)
	return mgl32.Vec3{col.X(), col.Y(), col.Z()}
}

func (a *App) drawInstance(pass *wgpu.RenderPassEncoder, inst *gpuInstance) {
	mesh, ok := a.meshes[inst.data.Mesh]
	if !ok {
		return
	}

	pass.SetBindGroup(1, inst.bindGroup, nil)
	pass.SetVertexBuffer(0, mesh.vertexBuf, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(mesh.indexBuf, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	pass.DrawIndexed(mesh.indexCount, 1, 0, 0, 0)
}

func (a *App) setupTextResources() {
	tr := a.TextRenderer
	w, h := tr.AtlasImage.Bounds().Dx(), tr.AtlasImage.Bounds().Dy()
	tex, err := a.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Text Atlas",
		Size:          wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
		Format:        wgpu.TextureFormatR8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension:     wgpu.TextureDimension2D,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		panic(err)
	}
	a.Queue.WriteTexture(tex.AsImageCopy(), tr.AtlasImage.Pix, &wgpu.TextureDataLayout{
		Offset:       0,
		BytesPerRow:  uint32(w),
		RowsPerImage: uint32(h),
	}, &wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1})

	a.TextAtlasView, _ = tex.CreateView(nil)

	textMod, err := a.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Text Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: a.textShaderSrc},
	})
	if err != nil {
		fmt.Printf("ERROR: Failed to create text shader module: %v\n", err)
		return
	}

	a.TextPipeline, err = a.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "Text Pipeline",
		Vertex: wgpu.VertexState{
			Module:     textMod,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{{
				ArrayStride: uint64(unsafe.Sizeof(TextVertex{})),
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
					{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
					{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},
				},
			}},
		},
		Fragment: &wgpu.FragmentState{
			Module:     textMod,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format: a.Config.Format,
				Blend: &wgpu.BlendState{
					Color: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorSrcAlpha,
						DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						Operation: wgpu.BlendOperationAdd,
					},
					Alpha: wgpu.BlendComponent{
						SrcFactor: wgpu.BlendFactorOne,
						DstFactor: wgpu.BlendFactorOne,
						Operation: wgpu.BlendOperationAdd,
					},
				},
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: false,
			DepthCompare:      wgpu.CompareFunctionAlways,
			StencilFront:      wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
			StencilBack:       wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
			StencilReadMask:   0xFFFFFFFF,
			StencilWriteMask:  0xFFFFFFFF,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		fmt.Printf("ERROR: Failed to create text render pipeline: %v\n", err)
		return
	}

	a.TextBindGroup, err = a.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: a.TextPipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: a.TextAtlasView},
			{Binding: 1, Sampler: a.Sampler},
		},
	})
	if err != nil {
		fmt.Printf("ERROR: Failed to create text bind group: %v\n", err)
		return
	}
}

func (a *App) Release() {
	for _, inst := range a.instances {
		inst.release()
	}
	for _, tex := range a.textures {
		tex.release()
	}
	for _, mesh := range a.meshes {
		mesh.release()
	}
	if a.whiteTexture != nil {
		a.whiteTexture.release()
	}
}
