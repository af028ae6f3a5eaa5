package main

import (
	"flag"
	"os"

	"github.com/trilight/trilight"
)

type demoModule struct{}

func (m demoModule) Install(app *trilight.App, cmd *trilight.Commands) {
	camera := trilight.NewCamera()
	orbit := trilight.NewOrbitCamera()
	cmd.AddEntity(&camera, &orbit)

	app.UseSystem(
		trilight.System(quitSystem).
			InStage(trilight.Update),
	)
}

func quitSystem(input *trilight.Input, cmd *trilight.Commands) {
	if input.JustPressed[trilight.KeyEscape] {
		cmd.Quit()
	}
}

func main() {
	configPath := flag.String("config", "trilight.json", "path to the JSON config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := trilight.NewDefaultLogger("trilight", *debug)

	cfg, err := trilight.LoadConfig(*configPath)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}

	app := trilight.NewAppBuilder().
		UseModule(
			trilight.LoggingModule{Prefix: "trilight", Debug: cfg.Debug},
			trilight.TimeModule{},
			trilight.NewWindow(cfg.WindowWidth, cfg.WindowHeight, cfg.WindowTitle),
			trilight.InputModule{},
			trilight.AssetServerModule{},
			trilight.RendererModule{
				FontPath: cfg.FontPath,
				FontSize: cfg.FontSize,
				ShowFPS:  cfg.ShowFPS,
			},
			trilight.OrbitCameraModule{},
			trilight.LightControlModule{},
			trilight.PulseModule{},
			trilight.HudModule{},
			trilight.SceneModule{Scene: trilight.DemoScene(cfg.TexturePath)},
			demoModule{},
		).
		Build()

	app.Run()
}
