package trilight

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetServer_LoadMesh(t *testing.T) {
	server := NewAssetServer(NewNopLogger())

	data := BuildCubeMesh(1.0)
	id := server.LoadMesh(data)

	mesh, ok := server.Mesh(id)
	require.True(t, ok)
	assert.Len(t, mesh.Vertices(), 24)
	assert.Len(t, mesh.Indices(), 36)

	// Unknown ids miss cleanly
	_, ok = server.Mesh("no-such-mesh")
	assert.False(t, ok)
}

func TestAssetServer_CheckerboardTexture(t *testing.T) {
	server := NewAssetServer(NewNopLogger())

	id := server.CreateCheckerboardTexture(64)

	tex, ok := server.Texture(id)
	require.True(t, ok)
	assert.Equal(t, uint32(64), tex.Width())
	assert.Equal(t, uint32(64), tex.Height())
	assert.Len(t, tex.Texels(), 64*64*4)

	texels := tex.Texels()

	// (0,0) is white, neighbors alternate
	assert.Equal(t, uint8(255), texels[0])
	assert.Equal(t, uint8(0), texels[4])
	assert.Equal(t, uint8(0), texels[64*4])
	assert.Equal(t, uint8(255), texels[(64+1)*4])

	// Alpha is opaque everywhere
	for i := 3; i < len(texels); i += 4 {
		if texels[i] != 255 {
			t.Fatalf("Expected opaque alpha at %d, got %d", i, texels[i])
		}
	}
}

func TestAssetServer_LoadTextureFallback(t *testing.T) {
	server := NewAssetServer(NewNopLogger())

	id := server.LoadTexture("definitely/not/a/file.png")

	tex, ok := server.Texture(id)
	require.True(t, ok, "missing file must yield the fallback texture")
	assert.Equal(t, uint32(64), tex.Width())
	assert.Equal(t, uint32(64), tex.Height())
}

func TestAssetServer_LoadTexturePNG(t *testing.T) {
	server := NewAssetServer(NewNopLogger())

	// Write a tiny 2x2 PNG
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{255, 255, 255, 255})

	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	id := server.LoadTexture(path)

	tex, ok := server.Texture(id)
	require.True(t, ok)
	assert.Equal(t, uint32(2), tex.Width())
	assert.Equal(t, uint32(2), tex.Height())

	texels := tex.Texels()
	require.Len(t, texels, 2*2*4)
	assert.Equal(t, uint8(255), texels[0]) // R of (0,0)
	assert.Equal(t, uint8(0), texels[1])
	assert.Equal(t, uint8(255), texels[5]) // G of (1,0)
}

func TestAssetServer_Shaders(t *testing.T) {
	server := NewAssetServer(NewNopLogger())

	id := server.CreateShader("mesh.wgsl", "@vertex fn vs_main() {}")

	shader, ok := server.Shader(id)
	require.True(t, ok)
	assert.Equal(t, "mesh.wgsl", shader.Name())
	assert.Equal(t, "@vertex fn vs_main() {}", shader.Listing())

	_, ok = server.Shader("no-such-shader")
	assert.False(t, ok)
}

func TestAssetServer_Samplers(t *testing.T) {
	server := NewAssetServer(NewNopLogger())

	id1 := server.CreateSampler()
	id2 := server.CreateSampler()
	assert.NotEqual(t, id1, id2)

	_, ok := server.Sampler(id1)
	assert.True(t, ok)
	_, ok = server.Sampler("no-such-sampler")
	assert.False(t, ok)
}

func TestAssetServer_TextureIdsUnique(t *testing.T) {
	server := NewAssetServer(NewNopLogger())

	id1 := server.CreateCheckerboardTexture(8)
	id2 := server.CreateCheckerboardTexture(8)
	assert.NotEqual(t, id1, id2)
}
