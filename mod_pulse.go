package trilight

// PulseComponent bounces the material alpha between Min and Max at
// Speed units per second, reversing direction at either bound.
type PulseComponent struct {
	Min   float32
	Max   float32
	Speed float32

	dir float32 // +1 or -1
}

type PulseModule struct{}

func (m PulseModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(PulseSystem).
			InStage(Update),
	)
}

func PulseSystem(time *Time, cmd *Commands) {
	dt := time.Seconds()
	if dt <= 0 {
		return
	}

	MakeQuery2[MaterialComponent, PulseComponent](cmd).Map(func(eid EntityId, mat *MaterialComponent, pulse *PulseComponent) bool {
		if pulse.dir == 0 {
			pulse.dir = -1
		}

		mat.Alpha += pulse.dir * pulse.Speed * dt
		if mat.Alpha <= pulse.Min {
			mat.Alpha = pulse.Min
			pulse.dir = 1
		}
		if mat.Alpha >= pulse.Max {
			mat.Alpha = pulse.Max
			pulse.dir = -1
		}
		return true
	})
}
