package trilight

import (
	"github.com/go-gl/mathgl/mgl32"
)

type LightType uint32

const (
	LightTypePoint       LightType = 0
	LightTypeDirectional LightType = 1
)

// LightComponent is the ECS component for lights. Position comes
// from the entity's TransformComponent; for directional lights the
// position is interpreted as the direction toward the light.
type LightComponent struct {
	Type      LightType
	Color     [3]float32
	Intensity float32
}

func NewPointLight(color mgl32.Vec3, intensity float32) LightComponent {
	return LightComponent{
		Type:      LightTypePoint,
		Color:     [3]float32{color.X(), color.Y(), color.Z()},
		Intensity: intensity,
	}
}
