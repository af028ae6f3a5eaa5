package trilight

import (
	"image"
	"image/png"
	"os"

	"github.com/google/uuid"
)

type AssetId string

// AssetServer owns mesh, texture, shader and sampler data on the CPU
// side. The renderer uploads assets lazily the first time an entity
// uses them.
type AssetServer struct {
	meshes   map[AssetId]MeshAsset
	textures map[AssetId]TextureAsset
	shaders  map[AssetId]ShaderAsset
	samplers map[AssetId]SamplerAsset

	log Logger
}

type AssetServerModule struct{}

// MeshComponent attaches renderable geometry to an entity. Texture is
// optional; the zero value means untextured.
type MeshComponent struct {
	Mesh    AssetId
	Texture AssetId
}

type MeshAsset struct {
	version  uint
	vertices []MeshVertex
	indices  []uint16
}

func (a MeshAsset) Vertices() []MeshVertex { return a.vertices }
func (a MeshAsset) Indices() []uint16      { return a.indices }

type TextureAsset struct {
	version uint
	texels  []uint8 // RGBA8
	width   uint32
	height  uint32
}

func (a TextureAsset) Texels() []uint8 { return a.texels }
func (a TextureAsset) Width() uint32   { return a.width }
func (a TextureAsset) Height() uint32  { return a.height }

// ShaderAsset holds a WGSL source listing under a name.
type ShaderAsset struct {
	version uint
	name    string
	listing string
}

func (a ShaderAsset) Name() string    { return a.name }
func (a ShaderAsset) Listing() string { return a.listing }

type SamplerAsset struct {
	version uint
}

func (server *AssetServer) LoadMesh(data MeshData) AssetId {
	id := makeAssetId()

	server.meshes[id] = MeshAsset{
		version:  0,
		vertices: data.Vertices,
		indices:  data.Indices,
	}

	return id
}

func (server *AssetServer) Mesh(id AssetId) (MeshAsset, bool) {
	m, ok := server.meshes[id]
	return m, ok
}

func (server *AssetServer) Texture(id AssetId) (TextureAsset, bool) {
	t, ok := server.textures[id]
	return t, ok
}

func (server *AssetServer) CreateShader(name string, listing string) AssetId {
	id := makeAssetId()

	server.shaders[id] = ShaderAsset{
		version: 0,
		name:    name,
		listing: listing,
	}

	return id
}

func (server *AssetServer) Shader(id AssetId) (ShaderAsset, bool) {
	s, ok := server.shaders[id]
	return s, ok
}

func (server *AssetServer) CreateSampler() AssetId {
	id := makeAssetId()
	server.samplers[id] = SamplerAsset{version: 0}
	return id
}

func (server *AssetServer) Sampler(id AssetId) (SamplerAsset, bool) {
	s, ok := server.samplers[id]
	return s, ok
}

func (server *AssetServer) CreateTexture(texels []uint8, texWidth uint32, texHeight uint32) AssetId {
	id := makeAssetId()

	server.textures[id] = TextureAsset{
		version: 0,
		texels:  texels,
		width:   texWidth,
		height:  texHeight,
	}

	return id
}

// LoadTexture decodes a PNG into RGBA texels. A missing or unreadable
// file is not fatal: the demo substitutes a generated checkerboard,
// which is the only error path the application has.
func (server *AssetServer) LoadTexture(filename string) AssetId {
	file, err := os.Open(filename)
	if err != nil {
		server.log.Warnf("failed to load texture %s: %v, using checkerboard", filename, err)
		return server.CreateCheckerboardTexture(64)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		server.log.Warnf("failed to decode texture %s: %v, using checkerboard", filename, err)
		return server.CreateCheckerboardTexture(64)
	}

	bounds := img.Bounds()

	rgbaImg, ok := img.(*image.RGBA)
	if !ok {
		rgbaImg = image.NewRGBA(bounds)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				rgbaImg.Set(x, y, img.At(x, y))
			}
		}
	}

	id := makeAssetId()
	server.textures[id] = TextureAsset{
		version: 0,
		texels:  rgbaImg.Pix,
		width:   uint32(bounds.Dx()),
		height:  uint32(bounds.Dy()),
	}

	return id
}

// CreateCheckerboardTexture generates the fallback pattern: size*size
// RGBA texels alternating black and white per texel.
func (server *AssetServer) CreateCheckerboardTexture(size int) AssetId {
	texels := make([]uint8, size*size*4)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			var c uint8
			if (i+j)%2 == 0 {
				c = 255
			}
			off := (i*size + j) * 4
			texels[off+0] = c
			texels[off+1] = c
			texels[off+2] = c
			texels[off+3] = 255
		}
	}
	return server.CreateTexture(texels, uint32(size), uint32(size))
}

func NewAssetServer(log Logger) *AssetServer {
	return &AssetServer{
		meshes:   make(map[AssetId]MeshAsset),
		textures: make(map[AssetId]TextureAsset),
		shaders:  make(map[AssetId]ShaderAsset),
		samplers: make(map[AssetId]SamplerAsset),
		log:      log,
	}
}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	app.addResources(NewAssetServer(app.Logger()))
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
