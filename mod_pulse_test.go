package trilight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setupPulseTest(t *testing.T, alpha float32) (*App, *Commands) {
	t.Helper()
	app := NewAppBuilder().Build()
	cmd := app.Commands()

	mat := GlassMaterial()
	mat.Alpha = alpha
	cmd.AddEntity(&mat, &PulseComponent{Min: 0.5, Max: 0.9, Speed: 0.06})
	app.FlushCommands()
	return app, cmd
}

func getPulsedAlpha(cmd *Commands) float32 {
	var alpha float32
	MakeQuery2[MaterialComponent, PulseComponent](cmd).Map(func(eid EntityId, m *MaterialComponent, p *PulseComponent) bool {
		alpha = m.Alpha
		return false
	})
	return alpha
}

func TestPulse_StartsDescending(t *testing.T) {
	_, cmd := setupPulseTest(t, 0.9)

	frame := &Time{Dt: 100 * time.Millisecond}
	PulseSystem(frame, cmd)

	alpha := getPulsedAlpha(cmd)
	assert.InDelta(t, 0.894, float64(alpha), 1e-4)
}

func TestPulse_BouncesAtBounds(t *testing.T) {
	_, cmd := setupPulseTest(t, 0.9)

	frame := &Time{Dt: 33 * time.Millisecond}
	prev := getPulsedAlpha(cmd)
	descending := true

	sawLower, sawUpper := false, false
	for i := 0; i < 2000; i++ {
		PulseSystem(frame, cmd)
		alpha := getPulsedAlpha(cmd)

		if alpha < 0.5 || alpha > 0.9 {
			t.Fatalf("Alpha out of bounds at iteration %d: %v", i, alpha)
		}

		if descending && alpha > prev {
			sawLower = true
			descending = false
		} else if !descending && alpha < prev {
			sawUpper = true
			descending = true
		}
		prev = alpha
	}

	assert.True(t, sawLower, "pulse should bounce off the lower bound")
	assert.True(t, sawUpper, "pulse should bounce off the upper bound")
}

func TestPulse_ZeroDtIsNoop(t *testing.T) {
	_, cmd := setupPulseTest(t, 0.7)

	PulseSystem(&Time{Dt: 0}, cmd)

	assert.Equal(t, float32(0.7), getPulsedAlpha(cmd))
}
