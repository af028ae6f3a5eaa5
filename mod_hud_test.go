package trilight

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHudTest(t *testing.T) (*Commands, *HudState) {
	t.Helper()
	app := NewAppBuilder().Build()
	cmd := app.Commands()

	transform := NewTransform(mgl32.Vec3{0, 2, 2})
	light := NewPointLight(mgl32.Vec3{1, 1, 1}, 1.0)
	cmd.AddEntity(&transform, &light)

	camera := NewCamera()
	orbit := NewOrbitCamera()
	cmd.AddEntity(&camera, &orbit)

	material := GlassMaterial()
	cmd.AddEntity(&material, &PulseComponent{Min: 0.5, Max: 0.9, Speed: 0.06})

	cmd.AddEntity(&TextComponent{Position: [2]float32{10, 10}}, &HudStatusText{})
	cmd.AddEntity(&TextComponent{Position: [2]float32{10, 120}}, &HudHelpText{})

	app.FlushCommands()
	return cmd, &HudState{ShowHelp: true}
}

func hudText[M any](cmd *Commands) string {
	var out string
	MakeQuery2[TextComponent, M](cmd).Map(func(eid EntityId, text *TextComponent, _ *M) bool {
		out = text.Text
		return false
	})
	return out
}

func TestHud_StatusReadout(t *testing.T) {
	cmd, hud := setupHudTest(t)

	HudSystem(&Input{}, hud, cmd)

	status := hudText[HudStatusText](cmd)
	lines := strings.Split(status, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Light pos: (0.0, 2.0, 2.0)", lines[0])
	assert.Equal(t, "Light intensity: 1.00", lines[1])
	assert.Equal(t, "Light color: (1.00, 1.00, 1.00)", lines[2])
	assert.Equal(t, "Camera distance: 5.0", lines[3])
	assert.Equal(t, "Cube alpha: 0.90", lines[4])
	assert.Equal(t, "H: toggle help", lines[5])
}

func TestHud_HelpToggle(t *testing.T) {
	cmd, hud := setupHudTest(t)

	HudSystem(&Input{}, hud, cmd)
	help := hudText[HudHelpText](cmd)
	assert.Contains(t, help, "Esc      quit", "help visible by default")
	assert.Contains(t, help, "toggle this help")

	input := &Input{}
	input.JustPressed[KeyH] = true
	HudSystem(input, hud, cmd)

	assert.False(t, hud.ShowHelp)
	assert.Empty(t, hudText[HudHelpText](cmd))

	HudSystem(input, hud, cmd)
	assert.True(t, hud.ShowHelp)
	assert.Contains(t, hudText[HudHelpText](cmd), "Esc      quit")
}

func TestHud_DefaultsToVisible(t *testing.T) {
	app := NewAppBuilder().UseModule(HudModule{}).Build()

	hud := findResource[HudState](app)
	require.NotNil(t, hud)
	assert.True(t, hud.ShowHelp)
}
