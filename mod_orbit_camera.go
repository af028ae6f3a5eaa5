package trilight

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraComponent holds the view/projection state consumed by the
// renderer each frame.
type CameraComponent struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
	Up       mgl32.Vec3
	FovYDeg  float32
	Near     float32
	Far      float32
}

func NewCamera() CameraComponent {
	return CameraComponent{
		Position: mgl32.Vec3{0, 0, 5},
		LookAt:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovYDeg:  45.0,
		Near:     0.1,
		Far:      100.0,
	}
}

const (
	orbitMinDistance = 2.0
	orbitMaxDistance = 20.0
)

// OrbitCameraComponent keeps the camera on a sphere around a pan-able
// target. Left drag rotates, middle drag pans, scroll zooms.
type OrbitCameraComponent struct {
	Target   mgl32.Vec3
	Distance float32
	Yaw      float32 // degrees around the Y axis
	Pitch    float32 // degrees above the horizon

	RotateSpeed float32 // degrees per pixel
	PanSpeed    float32 // world units per pixel
	ZoomSpeed   float32 // world units per scroll notch

	rotate mgl32.Vec2
	pan    mgl32.Vec2
	zoom   float32
}

func NewOrbitCamera() OrbitCameraComponent {
	return OrbitCameraComponent{
		Target:      mgl32.Vec3{0, 0, 0},
		Distance:    5.0,
		Yaw:         0.0,
		Pitch:       30.0,
		RotateSpeed: 0.5,
		PanSpeed:    0.01,
		ZoomSpeed:   1.0,
	}
}

type OrbitCameraModule struct{}

func (m OrbitCameraModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(OrbitCameraInputSystem).
			InStage(Update),
	)
	app.UseSystem(
		System(OrbitCameraControlSystem).
			InStage(Update),
	)
}

func OrbitCameraInputSystem(input *Input, cmd *Commands) {
	MakeQuery1[OrbitCameraComponent](cmd).Map(func(eid EntityId, orbit *OrbitCameraComponent) bool {
		orbit.rotate = mgl32.Vec2{}
		orbit.pan = mgl32.Vec2{}
		orbit.zoom = float32(input.ScrollY)

		if input.Pressed[MouseButtonLeft] {
			orbit.rotate[0] = float32(input.MouseDeltaX)
			orbit.rotate[1] = float32(input.MouseDeltaY)
		}
		if input.Pressed[MouseButtonMiddle] {
			orbit.pan[0] = float32(input.MouseDeltaX)
			orbit.pan[1] = float32(input.MouseDeltaY)
		}
		return true
	})
}

func OrbitCameraControlSystem(cmd *Commands) {
	MakeQuery2[CameraComponent, OrbitCameraComponent](cmd).Map(func(eid EntityId, cam *CameraComponent, orbit *OrbitCameraComponent) bool {
		orbit.Yaw += orbit.rotate[0] * orbit.RotateSpeed
		orbit.Pitch += orbit.rotate[1] * orbit.RotateSpeed

		if orbit.Pitch > 89.0 {
			orbit.Pitch = 89.0
		}
		if orbit.Pitch < -89.0 {
			orbit.Pitch = -89.0
		}

		orbit.Distance -= orbit.zoom * orbit.ZoomSpeed
		if orbit.Distance < orbitMinDistance {
			orbit.Distance = orbitMinDistance
		}
		if orbit.Distance > orbitMaxDistance {
			orbit.Distance = orbitMaxDistance
		}

		yawRad := float64(mgl32.DegToRad(orbit.Yaw))
		pitchRad := float64(mgl32.DegToRad(orbit.Pitch))

		offset := mgl32.Vec3{
			float32(math.Cos(pitchRad) * math.Sin(yawRad)),
			float32(math.Sin(pitchRad)),
			float32(math.Cos(pitchRad) * math.Cos(yawRad)),
		}.Mul(orbit.Distance)

		// Pan along the camera's right and up axes.
		if orbit.pan != (mgl32.Vec2{}) {
			forward := offset.Mul(-1).Normalize()
			right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
			up := right.Cross(forward).Normalize()

			orbit.Target = orbit.Target.
				Add(right.Mul(-orbit.pan[0] * orbit.PanSpeed)).
				Add(up.Mul(orbit.pan[1] * orbit.PanSpeed))
		}

		cam.Position = orbit.Target.Add(offset)
		cam.LookAt = orbit.Target
		cam.Up = mgl32.Vec3{0, 1, 0}

		return true
	})
}
