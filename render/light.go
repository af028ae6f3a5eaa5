package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	LightPoint       uint32 = 0
	LightDirectional uint32 = 1
)

// Light is the single light the forward pass shades with. For a
// directional light Position is the direction toward the light.
type Light struct {
	Position  mgl32.Vec3
	Type      uint32
	Color     [3]float32
	Intensity float32
}

func DefaultLight() Light {
	return Light{
		Position:  mgl32.Vec3{0, 2, 2},
		Type:      LightPoint,
		Color:     [3]float32{1, 1, 1},
		Intensity: 1.0,
	}
}
