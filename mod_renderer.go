package trilight

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/trilight/trilight/render"
	"github.com/trilight/trilight/render/shaders"
)

type RendererModule struct {
	FontPath string
	FontSize float64
	ShowFPS  bool
}

// RendererState bridges the ECS world to the GPU renderer. Mesh and
// texture assets are uploaded lazily, keyed by asset id; drawable
// instances are keyed by entity id and pruned when the entity goes
// away.
type RendererState struct {
	App     *render.App
	ShowFPS bool

	uploadedMeshes   map[AssetId]uint
	uploadedTextures map[AssetId]uint
	instanceSet      map[EntityId]bool

	lightMarkerMesh AssetId
	textureSampler  AssetId
}

const lightMarkerRadius = 0.1

func (s *RendererState) WindowSize() (int, int) {
	if s == nil || s.App == nil {
		return 0, 0
	}
	return int(s.App.Config.Width), int(s.App.Config.Height)
}

func (s *RendererState) FPS() float64 {
	if s == nil || s.App == nil {
		return 0
	}
	return s.App.FPS
}

func (s *RendererState) DrawText(text string, x, y float32, scale float32, color [4]float32) {
	if s != nil && s.App != nil {
		s.App.DrawText(text, x, y, scale, color)
	}
}

func (mod RendererModule) Install(app *App, cmd *Commands) {
	windowState := findResource[WindowState](app)
	if windowState == nil {
		panic("RendererModule requires WindowModule to be installed first")
	}
	server := findResource[AssetServer](app)
	if server == nil {
		panic("RendererModule requires AssetServerModule to be installed first")
	}

	// Shader sources and the texture sampler live in the asset server
	// like any other asset the pipelines consume.
	meshShader, _ := server.Shader(server.CreateShader("mesh.wgsl", shaders.MeshWGSL))
	textShader, _ := server.Shader(server.CreateShader("text.wgsl", shaders.TextWGSL))
	samplerId := server.CreateSampler()

	renderApp := render.NewApp(windowState.GlfwWindow())
	fontSize := mod.FontSize
	if fontSize == 0 {
		fontSize = 20
	}
	err := renderApp.Init(render.Config{
		FontPath:   mod.FontPath,
		FontSize:   fontSize,
		MeshShader: meshShader.Listing(),
		TextShader: textShader.Listing(),
	})
	if err != nil {
		panic(err)
	}

	cmd.AddResources(&RendererState{
		App:              renderApp,
		ShowFPS:          mod.ShowFPS,
		uploadedMeshes:   make(map[AssetId]uint),
		uploadedTextures: make(map[AssetId]uint),
		instanceSet:      make(map[EntityId]bool),
		textureSampler:   samplerId,
	})

	app.UseSystem(
		System(rendererSyncSystem).
			InStage(PostUpdate),
	)
	app.UseSystem(
		System(rendererRenderSystem).
			InStage(Render),
	)
}

func rendererSyncSystem(state *RendererState, server *AssetServer, window *WindowState, cmd *Commands) {
	ra := state.App

	// Track window resizes
	fbWidth, fbHeight := window.GlfwWindow().GetFramebufferSize()
	if fbWidth > 0 && fbHeight > 0 &&
		(uint32(fbWidth) != ra.Config.Width || uint32(fbHeight) != ra.Config.Height) {
		ra.Resize(fbWidth, fbHeight)
	}

	ra.ClearText()

	// Camera
	MakeQuery1[CameraComponent](cmd).Map(func(eid EntityId, cam *CameraComponent) bool {
		ra.Camera = render.Camera{
			Position: cam.Position,
			LookAt:   cam.LookAt,
			Up:       cam.Up,
			FovYDeg:  cam.FovYDeg,
			Near:     cam.Near,
			Far:      cam.Far,
		}
		return false
	})

	// Light (the forward pass shades with one). A small unlit sphere
	// marks its position.
	MakeQuery2[TransformComponent, LightComponent](cmd).Map(func(eid EntityId, tr *TransformComponent, light *LightComponent) bool {
		ra.Light = render.Light{
			Position:  tr.Position,
			Type:      uint32(light.Type),
			Color:     light.Color,
			Intensity: light.Intensity,
		}

		if state.lightMarkerMesh == "" {
			state.lightMarkerMesh = server.LoadMesh(BuildSphereMesh(lightMarkerRadius, 16, 8))
		}
		state.ensureMeshUploaded(server, state.lightMarkerMesh)
		ra.SetInstance("light-marker", lightMarkerInstance(state.lightMarkerMesh, tr.Position, light.Color))
		return false
	})

	// Instances
	currentEntities := make(map[EntityId]bool)
	MakeQuery3[TransformComponent, MeshComponent, MaterialComponent](cmd).Map(func(eid EntityId, tr *TransformComponent, mesh *MeshComponent, mat *MaterialComponent) bool {
		currentEntities[eid] = true

		state.ensureMeshUploaded(server, mesh.Mesh)
		if mesh.Texture != "" {
			state.ensureTextureUploaded(server, mesh.Texture)
		}

		ra.SetInstance(instanceKey(eid), render.Instance{
			Mesh:    string(mesh.Mesh),
			Texture: string(mesh.Texture),
			Model:   tr.ObjectToWorld(),
			Material: render.Material{
				Ambient:   mat.Ambient,
				Diffuse:   mat.Diffuse,
				Specular:  mat.Specular,
				Shininess: mat.Shininess,
				Alpha:     mat.Alpha,
			},
		})
		state.instanceSet[eid] = true
		return true
	})

	for eid := range state.instanceSet {
		if !currentEntities[eid] {
			ra.RemoveInstance(instanceKey(eid))
			delete(state.instanceSet, eid)
		}
	}

	// Text overlay
	MakeQuery1[TextComponent](cmd).Map(func(eid EntityId, text *TextComponent) bool {
		if text.Text != "" {
			ra.DrawText(text.Text, text.Position[0], text.Position[1], text.Scale, text.Color)
		}
		return true
	})

	if state.ShowFPS {
		y := float32(ra.Config.Height) - 30
		ra.DrawText(fmt.Sprintf("FPS: %.1f", ra.FPS), 10, y, 1.0, [4]float32{0.6, 1, 0.6, 1})
	}

	ra.Update()
}

func rendererRenderSystem(state *RendererState) {
	if state == nil || state.App == nil {
		return
	}
	state.App.Render()
}

func (s *RendererState) ensureMeshUploaded(server *AssetServer, id AssetId) {
	asset, ok := server.Mesh(id)
	if !ok {
		return
	}
	if version, uploaded := s.uploadedMeshes[id]; uploaded && version == asset.version {
		return
	}

	vertices := make([]render.Vertex, len(asset.vertices))
	for i, v := range asset.vertices {
		vertices[i] = render.Vertex{Position: v.Position, Normal: v.Normal, UV: v.UV}
	}
	s.App.UploadMesh(string(id), vertices, asset.indices)
	s.uploadedMeshes[id] = asset.version
}

func (s *RendererState) ensureTextureUploaded(server *AssetServer, id AssetId) {
	asset, ok := server.Texture(id)
	if !ok {
		return
	}
	if version, uploaded := s.uploadedTextures[id]; uploaded && version == asset.version {
		return
	}

	s.App.UploadTexture(string(id), asset.texels, asset.width, asset.height)
	s.uploadedTextures[id] = asset.version
}

func instanceKey(eid EntityId) string {
	return strconv.FormatUint(uint64(eid), 10)
}

// lightMarkerInstance builds the unlit sphere drawn at the light
// position in the light's color.
func lightMarkerInstance(mesh AssetId, position mgl32.Vec3, color [3]float32) render.Instance {
	return render.Instance{
		Mesh:  string(mesh),
		Model: mgl32.Translate3D(position.X(), position.Y(), position.Z()),
		Material: render.Material{
			Diffuse: color,
			Alpha:   1,
		},
		Unlit: true,
	}
}
