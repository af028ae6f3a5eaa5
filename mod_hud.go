package trilight

import (
	"fmt"
	"strings"
)

// HudStatusText marks the entity carrying the live status readout.
type HudStatusText struct{}

// HudHelpText marks the entity carrying the key-binding overlay.
type HudHelpText struct{}

type HudState struct {
	ShowHelp bool
}

var hudHelpLines = []string{
	"W/A/S/D  move light in XZ",
	"Up/Down  move light in Y",
	"Q/E      light intensity +/-",
	"R/G/B    light color channel + (shift: -)",
	"LMB drag rotate camera",
	"MMB drag pan camera",
	"Wheel    zoom camera",
	"H        toggle this help",
	"Esc      quit",
}

type HudModule struct{}

func (m HudModule) Install(app *App, cmd *Commands) {
	// The overlay starts visible; H hides it.
	cmd.AddResources(&HudState{ShowHelp: true})

	cmd.AddEntity(
		&TextComponent{Position: [2]float32{10, 10}, Scale: 1.0, Color: [4]float32{1, 1, 1, 1}},
		&HudStatusText{},
	)
	cmd.AddEntity(
		&TextComponent{Position: [2]float32{10, 120}, Scale: 1.0, Color: [4]float32{1, 1, 0.6, 1}},
		&HudHelpText{},
	)

	app.UseSystem(
		System(HudSystem).
			InStage(PostUpdate),
	)
}

func HudSystem(input *Input, hud *HudState, cmd *Commands) {
	if input.JustPressed[KeyH] {
		hud.ShowHelp = !hud.ShowHelp
	}

	var lines []string

	MakeQuery2[TransformComponent, LightComponent](cmd).Map(func(eid EntityId, tr *TransformComponent, light *LightComponent) bool {
		lines = append(lines,
			fmt.Sprintf("Light pos: (%.1f, %.1f, %.1f)", tr.Position.X(), tr.Position.Y(), tr.Position.Z()),
			fmt.Sprintf("Light intensity: %.2f", light.Intensity),
			fmt.Sprintf("Light color: (%.2f, %.2f, %.2f)", light.Color[0], light.Color[1], light.Color[2]),
		)
		return false // one light drives the readout
	})

	MakeQuery1[OrbitCameraComponent](cmd).Map(func(eid EntityId, orbit *OrbitCameraComponent) bool {
		lines = append(lines, fmt.Sprintf("Camera distance: %.1f", orbit.Distance))
		return false
	})

	MakeQuery2[MaterialComponent, PulseComponent](cmd).Map(func(eid EntityId, mat *MaterialComponent, pulse *PulseComponent) bool {
		lines = append(lines, fmt.Sprintf("Cube alpha: %.2f", mat.Alpha))
		return false
	})

	lines = append(lines, "H: toggle help")

	MakeQuery2[TextComponent, HudStatusText](cmd).Map(func(eid EntityId, text *TextComponent, _ *HudStatusText) bool {
		text.Text = strings.Join(lines, "\n")
		return true
	})

	MakeQuery2[TextComponent, HudHelpText](cmd).Map(func(eid EntityId, text *TextComponent, _ *HudHelpText) bool {
		if hud.ShowHelp {
			text.Text = strings.Join(hudHelpLines, "\n")
		} else {
			text.Text = ""
		}
		return true
	})
}
