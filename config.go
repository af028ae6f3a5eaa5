package trilight

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the demo's launch configuration, loadable from a JSON
// file. Zero values fall back to the defaults from DefaultConfig.
type Config struct {
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	WindowTitle  string `json:"window_title"`

	TexturePath string  `json:"texture_path,omitempty"`
	FontPath    string  `json:"font_path,omitempty"`
	FontSize    float64 `json:"font_size,omitempty"`

	ShowFPS bool `json:"show_fps"`
	Debug   bool `json:"debug"`
}

func DefaultConfig() Config {
	return Config{
		WindowWidth:  800,
		WindowHeight: 600,
		WindowTitle:  "3D Scene",
		TexturePath:  "texture.png",
		FontSize:     20,
	}
}

// LoadConfig reads the JSON config at path and overlays it onto the
// defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return cfg, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	if loaded.WindowWidth > 0 {
		cfg.WindowWidth = loaded.WindowWidth
	}
	if loaded.WindowHeight > 0 {
		cfg.WindowHeight = loaded.WindowHeight
	}
	if loaded.WindowTitle != "" {
		cfg.WindowTitle = loaded.WindowTitle
	}
	if loaded.TexturePath != "" {
		cfg.TexturePath = loaded.TexturePath
	}
	if loaded.FontPath != "" {
		cfg.FontPath = loaded.FontPath
	}
	if loaded.FontSize > 0 {
		cfg.FontSize = loaded.FontSize
	}
	cfg.ShowFPS = loaded.ShowFPS
	cfg.Debug = loaded.Debug

	return cfg, nil
}

func SaveConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
