package trilight

const (
	lightMoveStep      = 0.5
	lightIntensityStep = 0.1
	lightColorStep     = 0.1
)

// LightControlModule maps keys onto the scene's lights: WASD slides
// a light in the XZ plane, arrow up/down raises and lowers it, Q
// raises and E lowers intensity, and R/G/B nudge one color channel
// up (or down with shift held).
type LightControlModule struct{}

func (m LightControlModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(LightControlSystem).
			InStage(Update),
	)
}

func LightControlSystem(input *Input, cmd *Commands) {
	MakeQuery2[TransformComponent, LightComponent](cmd).Map(func(eid EntityId, tr *TransformComponent, light *LightComponent) bool {
		if input.JustPressed[KeyW] {
			tr.Position[2] -= lightMoveStep
		}
		if input.JustPressed[KeyS] {
			tr.Position[2] += lightMoveStep
		}
		if input.JustPressed[KeyA] {
			tr.Position[0] -= lightMoveStep
		}
		if input.JustPressed[KeyD] {
			tr.Position[0] += lightMoveStep
		}
		if input.JustPressed[KeyUp] {
			tr.Position[1] += lightMoveStep
		}
		if input.JustPressed[KeyDown] {
			tr.Position[1] -= lightMoveStep
		}

		if input.JustPressed[KeyQ] {
			light.Intensity = clamp01(light.Intensity + lightIntensityStep)
		}
		if input.JustPressed[KeyE] {
			light.Intensity = clamp01(light.Intensity - lightIntensityStep)
		}

		step := float32(lightColorStep)
		if input.Pressed[KeyShift] {
			step = -step
		}
		if input.JustPressed[KeyR] {
			light.Color[0] = clamp01(light.Color[0] + step)
		}
		if input.JustPressed[KeyG] {
			light.Color[1] = clamp01(light.Color[1] + step)
		}
		if input.JustPressed[KeyB] {
			light.Color[2] = clamp01(light.Color[2] + step)
		}

		return true
	})
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
