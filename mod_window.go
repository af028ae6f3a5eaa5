package trilight

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowState is the shared glfw window resource. Renderer and input
// modules both resolve it; WindowModule must be installed first.
type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

func (s *WindowState) GlfwWindow() *glfw.Window {
	return s.windowGlfw
}

type WindowModule struct {
	Width  int
	Height int
	Title  string
}

func NewWindow(width, height int, title string) *WindowModule {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 600
	}
	if title == "" {
		title = "trilight"
	}
	return &WindowModule{
		Width:  width,
		Height: height,
		Title:  title,
	}
}

func (m WindowModule) Install(app *App, cmd *Commands) {
	ws := createWindowState(m.Width, m.Height, m.Title)
	cmd.AddResources(ws)

	app.UseSystem(
		System(windowSystem).
			InStage(Prelude),
	)
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) *WindowState {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // surface is driven by wgpu, not OpenGL
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		panic(err)
	}

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}
}

func windowSystem(s *WindowState, cmd *Commands) {
	glfw.PollEvents()

	if s.windowGlfw.ShouldClose() {
		cmd.Quit()
		return
	}

	s.WindowWidth, s.WindowHeight = s.windowGlfw.GetSize()
}
