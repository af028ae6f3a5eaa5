package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
	Up       mgl32.Vec3
	FovYDeg  float32
	Near     float32
	Far      float32
}

func NewCamera() Camera {
	return Camera{
		Position: mgl32.Vec3{0, 0, 5},
		LookAt:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovYDeg:  45.0,
		Near:     0.1,
		Far:      100.0,
	}
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.LookAt, c.Up)
}

func (c *Camera) ProjMatrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1.0
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovYDeg), aspect, c.Near, c.Far)
}
