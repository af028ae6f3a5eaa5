package trilight

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyA int = iota
	KeyB
	KeyD
	KeyE
	KeyG
	KeyH
	KeyQ
	KeyR
	KeyS
	KeyW
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyShift
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle

	keyCount
)

type InputModule struct{}

// Input is the polled input state for the current frame.
type Input struct {
	Pressed [keyCount]bool

	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64

	// ScrollY is the wheel movement accumulated since the previous
	// frame, positive away from the user.
	ScrollY float64

	WindowWidth, WindowHeight int

	pendingScrollY float64
	hasPrevCursor  bool
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	input := &Input{}
	cmd.AddResources(input)

	ws := findResource[WindowState](app)
	if ws == nil {
		panic("InputModule requires WindowModule to be installed first")
	}

	// Wheel events only arrive through the callback; accumulate them
	// until the input system drains the buffer at frame start.
	ws.windowGlfw.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		input.pendingScrollY += yoff
	})

	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
}

func inputSystem(s *WindowState, input *Input) {
	input.ScrollY = input.pendingScrollY
	input.pendingScrollY = 0

	for key, glfwKey := range keyToGlfw {
		action := s.windowGlfw.GetKey(glfwKey)
		updateButtonState(input, key, action)
	}

	mx, my := s.windowGlfw.GetCursorPos()
	if input.hasPrevCursor {
		input.MouseDeltaX = mx - input.MouseX
		input.MouseDeltaY = my - input.MouseY
	}
	input.MouseX = mx
	input.MouseY = my
	input.hasPrevCursor = true

	input.WindowWidth, input.WindowHeight = s.windowGlfw.GetSize()

	for btn, glfwBtn := range mouseToGlfw {
		action := s.windowGlfw.GetMouseButton(glfwBtn)
		updateButtonState(input, btn, action)
	}
}

func updateButtonState(input *Input, key int, action glfw.Action) {
	input.JustPressed[key] = false
	input.JustReleased[key] = false

	if glfw.Press == action {
		if !input.Pressed[key] {
			input.JustPressed[key] = true
		}
		input.Pressed[key] = true
	} else if glfw.Release == action {
		if input.Pressed[key] {
			input.JustReleased[key] = true
		}
		input.Pressed[key] = false
	}
}

var keyToGlfw = map[int]glfw.Key{
	KeyA:      glfw.KeyA,
	KeyB:      glfw.KeyB,
	KeyD:      glfw.KeyD,
	KeyE:      glfw.KeyE,
	KeyG:      glfw.KeyG,
	KeyH:      glfw.KeyH,
	KeyQ:      glfw.KeyQ,
	KeyR:      glfw.KeyR,
	KeyS:      glfw.KeyS,
	KeyW:      glfw.KeyW,
	KeyUp:     glfw.KeyUp,
	KeyDown:   glfw.KeyDown,
	KeyLeft:   glfw.KeyLeft,
	KeyRight:  glfw.KeyRight,
	KeyEscape: glfw.KeyEscape,
	KeyShift:  glfw.KeyLeftShift,
}

var mouseToGlfw = map[int]glfw.MouseButton{
	MouseButtonLeft:   glfw.MouseButtonLeft,
	MouseButtonRight:  glfw.MouseButtonRight,
	MouseButtonMiddle: glfw.MouseButtonMiddle,
}
