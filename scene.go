package trilight

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SceneDef defines the initial state of a scene.
type SceneDef struct {
	Objects []ObjectDef
	Lights  []LightDef
}

// ObjectDef defines a mesh object instantiation.
type ObjectDef struct {
	Shape       string // "cube", "sphere", "torus"
	Params      []float32
	Position    mgl32.Vec3
	Scale       mgl32.Vec3
	Rotation    mgl32.Quat
	Material    MaterialComponent
	TexturePath string // empty means untextured
	Pulse       bool   // animate material alpha
}

// LightDef defines a light instantiation.
type LightDef struct {
	Type      LightType
	Position  mgl32.Vec3
	Color     [3]float32
	Intensity float32
}

// SceneModule spawns a SceneDef at build time. It must be installed
// after AssetServerModule.
type SceneModule struct {
	Scene *SceneDef
}

func (m SceneModule) Install(app *App, cmd *Commands) {
	server := findResource[AssetServer](app)
	if server == nil {
		panic("SceneModule requires AssetServerModule to be installed first")
	}
	LoadScene(cmd, server, m.Scene)
}

// LoadScene iterates through the SceneDef and spawns entities.
func LoadScene(cmd *Commands, assets *AssetServer, scene *SceneDef) {
	for _, obj := range scene.Objects {
		spawnObject(cmd, assets, obj)
	}

	for _, light := range scene.Lights {
		spawnLight(cmd, light)
	}
}

func spawnObject(cmd *Commands, assets *AssetServer, def ObjectDef) {
	var data MeshData

	switch def.Shape {
	case "sphere":
		// Params: [radius]
		radius := float32(1.0)
		if len(def.Params) > 0 {
			radius = def.Params[0]
		}
		data = BuildSphereMesh(radius, 32, 16)
	case "torus":
		// Params: [major_radius, minor_radius]
		major, minor := float32(0.5), float32(0.2)
		if len(def.Params) > 1 {
			major, minor = def.Params[0], def.Params[1]
		}
		data = BuildTorusMesh(major, minor, 32, 32)
	default:
		// Params: [size]
		size := float32(1.0)
		if len(def.Params) > 0 {
			size = def.Params[0]
		}
		data = BuildCubeMesh(size)
	}

	mesh := MeshComponent{Mesh: assets.LoadMesh(data)}
	if def.TexturePath != "" {
		mesh.Texture = assets.LoadTexture(def.TexturePath)
	}

	transform := NewTransform(def.Position)
	if def.Scale != (mgl32.Vec3{}) {
		transform.Scale = def.Scale
	}
	if def.Rotation != (mgl32.Quat{}) {
		transform.Rotation = def.Rotation
	}

	material := def.Material
	eid := cmd.AddEntity(&transform, &mesh, &material)

	if def.Pulse {
		cmd.AddComponents(eid, &PulseComponent{
			Min:   0.5,
			Max:   0.9,
			Speed: 0.06,
			dir:   -1,
		})
	}
}

func spawnLight(cmd *Commands, def LightDef) {
	transform := NewTransform(def.Position)
	cmd.AddEntity(&transform, &LightComponent{
		Type:      def.Type,
		Color:     def.Color,
		Intensity: def.Intensity,
	})
}

// DemoScene is the built-in showcase: a semi-transparent cube, a
// gold sphere and a textured torus under a single movable point
// light.
func DemoScene(texturePath string) *SceneDef {
	return &SceneDef{
		Objects: []ObjectDef{
			{
				Shape:    "cube",
				Params:   []float32{1.0},
				Position: mgl32.Vec3{-2, 0, 0},
				Material: GlassMaterial(),
				Pulse:    true,
			},
			{
				Shape:    "sphere",
				Params:   []float32{0.5},
				Position: mgl32.Vec3{0, 0, 0},
				Material: GoldMaterial(),
			},
			{
				Shape:       "torus",
				Params:      []float32{0.5, 0.2},
				Position:    mgl32.Vec3{2, 0, 0},
				Material:    DefaultMaterial(),
				TexturePath: texturePath,
			},
		},
		Lights: []LightDef{
			{
				Type:      LightTypePoint,
				Position:  mgl32.Vec3{0, 2, 2},
				Color:     [3]float32{1, 1, 1},
				Intensity: 1.0,
			},
		},
	}
}
