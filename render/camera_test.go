package render

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamera_Defaults(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, c.Position)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, c.LookAt)
	assert.Equal(t, float32(45), c.FovYDeg)
}

func TestCamera_ViewMatrix(t *testing.T) {
	c := NewCamera()

	// The look-at point maps in front of the camera at distance 5
	p := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, float64(p.X()), 1e-5)
	assert.InDelta(t, 0, float64(p.Y()), 1e-5)
	assert.InDelta(t, -5, float64(p.Z()), 1e-5)
}

func TestCamera_ProjMatrixGuardsAspect(t *testing.T) {
	c := NewCamera()

	// Degenerate aspect (minimized window) must not produce NaNs
	m := c.ProjMatrix(0)
	for i := 0; i < 16; i++ {
		if m[i] != m[i] {
			t.Fatalf("NaN at element %d", i)
		}
	}
}

func transparentAt(pos mgl32.Vec3, alpha float32) *gpuInstance {
	return &gpuInstance{
		data: Instance{
			Model:    mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()),
			Material: Material{Alpha: alpha},
		},
		bindGroup: &wgpu.BindGroup{},
	}
}

func TestPartitionInstances(t *testing.T) {
	a := &App{
		Camera: NewCamera(),
		instances: map[string]*gpuInstance{
			"near":   transparentAt(mgl32.Vec3{0, 0, 3}, 0.5),
			"far":    transparentAt(mgl32.Vec3{0, 0, -4}, 0.5),
			"mid":    transparentAt(mgl32.Vec3{0, 0, 0}, 0.9),
			"opaque": transparentAt(mgl32.Vec3{1, 0, 0}, 1.0),
		},
	}

	opaque, transparent := a.partitionInstances()
	require.Len(t, opaque, 1)
	require.Len(t, transparent, 3)

	// Back-to-front from the camera at (0,0,5)
	assert.Equal(t, mgl32.Vec3{0, 0, -4}, instancePos(transparent[0]))
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, instancePos(transparent[1]))
	assert.Equal(t, mgl32.Vec3{0, 0, 3}, instancePos(transparent[2]))
}

func TestInstanceUniform_Flags(t *testing.T) {
	u := instanceUniform(Instance{
		Model:    mgl32.Ident4(),
		Texture:  "tex",
		Material: Material{Diffuse: [3]float32{1, 0.5, 0}, Alpha: 1},
	})
	assert.Equal(t, [4]float32{1, 0, 0, 0}, u.Flags)

	u = instanceUniform(Instance{
		Model:    mgl32.Ident4(),
		Material: Material{Diffuse: [3]float32{1, 0.5, 0}, Alpha: 1},
		Unlit:    true,
	})
	assert.Equal(t, [4]float32{0, 1, 0, 0}, u.Flags)
	assert.Equal(t, [4]float32{1, 0.5, 0, 1}, u.Diffuse)
}

func TestPartitionInstances_SkipsUnbound(t *testing.T) {
	inst := transparentAt(mgl32.Vec3{}, 0.5)
	inst.bindGroup = nil

	a := &App{
		Camera:    NewCamera(),
		instances: map[string]*gpuInstance{"pending": inst},
	}
	opaque, transparent := a.partitionInstances()
	assert.Empty(t, opaque)
	assert.Empty(t, transparent)
}
