package trilight

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func setupOrbitTest(t *testing.T) (*App, *Commands, EntityId) {
	t.Helper()
	app := NewAppBuilder().Build()
	cmd := app.Commands()

	camera := NewCamera()
	orbit := NewOrbitCamera()
	eid := cmd.AddEntity(&camera, &orbit)
	app.FlushCommands()
	return app, cmd, eid
}

func getOrbit(cmd *Commands) (cam CameraComponent, orbit OrbitCameraComponent) {
	MakeQuery2[CameraComponent, OrbitCameraComponent](cmd).Map(func(eid EntityId, c *CameraComponent, o *OrbitCameraComponent) bool {
		cam = *c
		orbit = *o
		return false
	})
	return cam, orbit
}

func TestOrbitCamera_Defaults(t *testing.T) {
	orbit := NewOrbitCamera()
	assert.Equal(t, float32(5.0), orbit.Distance)
	assert.Equal(t, float32(30.0), orbit.Pitch)
	assert.Equal(t, float32(0.5), orbit.RotateSpeed)
}

func TestOrbitCamera_ZoomClamping(t *testing.T) {
	_, cmd, _ := setupOrbitTest(t)

	// Zoom all the way in
	MakeQuery1[OrbitCameraComponent](cmd).Map(func(eid EntityId, o *OrbitCameraComponent) bool {
		o.zoom = 100
		return true
	})
	OrbitCameraControlSystem(cmd)
	_, orbit := getOrbit(cmd)
	assert.Equal(t, float32(orbitMinDistance), orbit.Distance)

	// Zoom all the way out
	MakeQuery1[OrbitCameraComponent](cmd).Map(func(eid EntityId, o *OrbitCameraComponent) bool {
		o.zoom = -100
		return true
	})
	OrbitCameraControlSystem(cmd)
	_, orbit = getOrbit(cmd)
	assert.Equal(t, float32(orbitMaxDistance), orbit.Distance)
}

func TestOrbitCamera_PitchClamping(t *testing.T) {
	_, cmd, _ := setupOrbitTest(t)

	MakeQuery1[OrbitCameraComponent](cmd).Map(func(eid EntityId, o *OrbitCameraComponent) bool {
		o.rotate = mgl32.Vec2{0, 1000}
		return true
	})
	OrbitCameraControlSystem(cmd)
	_, orbit := getOrbit(cmd)
	assert.Equal(t, float32(89.0), orbit.Pitch)

	MakeQuery1[OrbitCameraComponent](cmd).Map(func(eid EntityId, o *OrbitCameraComponent) bool {
		o.rotate = mgl32.Vec2{0, -10000}
		return true
	})
	OrbitCameraControlSystem(cmd)
	_, orbit = getOrbit(cmd)
	assert.Equal(t, float32(-89.0), orbit.Pitch)
}

func TestOrbitCamera_PositionOnSphere(t *testing.T) {
	_, cmd, _ := setupOrbitTest(t)

	// Level camera looking down -Z at the origin
	MakeQuery1[OrbitCameraComponent](cmd).Map(func(eid EntityId, o *OrbitCameraComponent) bool {
		o.Pitch = 0
		o.Yaw = 0
		o.Distance = 5
		return true
	})
	OrbitCameraControlSystem(cmd)

	cam, _ := getOrbit(cmd)
	assert.InDelta(t, 0.0, float64(cam.Position.X()), 1e-5)
	assert.InDelta(t, 0.0, float64(cam.Position.Y()), 1e-5)
	assert.InDelta(t, 5.0, float64(cam.Position.Z()), 1e-5)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, cam.LookAt)

	// Distance from the target is preserved for any angle
	MakeQuery1[OrbitCameraComponent](cmd).Map(func(eid EntityId, o *OrbitCameraComponent) bool {
		o.Pitch = 42
		o.Yaw = 117
		return true
	})
	OrbitCameraControlSystem(cmd)

	cam, orbit := getOrbit(cmd)
	dist := cam.Position.Sub(orbit.Target).Len()
	assert.InDelta(t, float64(orbit.Distance), float64(dist), 1e-4)
}

func TestOrbitCamera_Pan(t *testing.T) {
	_, cmd, _ := setupOrbitTest(t)

	MakeQuery1[OrbitCameraComponent](cmd).Map(func(eid EntityId, o *OrbitCameraComponent) bool {
		o.pan = mgl32.Vec2{100, 0}
		return true
	})
	OrbitCameraControlSystem(cmd)

	cam, orbit := getOrbit(cmd)
	if orbit.Target == (mgl32.Vec3{}) {
		t.Errorf("Expected pan to move the target, still at origin")
	}
	// Camera follows the target
	dist := cam.Position.Sub(orbit.Target).Len()
	assert.InDelta(t, float64(orbit.Distance), float64(dist), 1e-4)
}

func TestOrbitCamera_InputRouting(t *testing.T) {
	_, cmd, _ := setupOrbitTest(t)

	input := &Input{}
	input.Pressed[MouseButtonLeft] = true
	input.MouseDeltaX = 10
	input.MouseDeltaY = -4
	input.ScrollY = 2

	OrbitCameraInputSystem(input, cmd)

	_, orbit := getOrbit(cmd)
	assert.Equal(t, mgl32.Vec2{10, -4}, orbit.rotate)
	assert.Equal(t, mgl32.Vec2{}, orbit.pan)
	assert.Equal(t, float32(2), orbit.zoom)

	// Without the button held the drag is ignored
	input.Pressed[MouseButtonLeft] = false
	input.ScrollY = 0
	OrbitCameraInputSystem(input, cmd)

	_, orbit = getOrbit(cmd)
	assert.Equal(t, mgl32.Vec2{}, orbit.rotate)
}

func TestOrbitCamera_RotationMatchesSpeed(t *testing.T) {
	_, cmd, _ := setupOrbitTest(t)

	MakeQuery1[OrbitCameraComponent](cmd).Map(func(eid EntityId, o *OrbitCameraComponent) bool {
		o.Yaw = 0
		o.rotate = mgl32.Vec2{10, 0} // 10 pixels at 0.5 deg/px
		return true
	})
	OrbitCameraControlSystem(cmd)

	_, orbit := getOrbit(cmd)
	if math.Abs(float64(orbit.Yaw)-5.0) > 1e-5 {
		t.Errorf("Expected yaw 5.0 after 10px drag, got %v", orbit.Yaw)
	}
}
