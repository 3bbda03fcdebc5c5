package arcade

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/arcade/graphics"
)

// Settings is the on-disk window and rendering configuration. Fields map
// to a YAML document:
//
//	title: My Game
//	width: 1280
//	height: 720
//	resizable: true
//	fullscreen: false
//	vsync: true
//	show_mouse: true
//	filter_mode: nearest
type Settings struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Resizable  bool   `yaml:"resizable"`
	Fullscreen bool   `yaml:"fullscreen"`
	Vsync      bool   `yaml:"vsync"`
	ShowMouse  bool   `yaml:"show_mouse"`

	// FilterMode is the default texture filter: "nearest" or "linear".
	FilterMode string `yaml:"filter_mode"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		Title:      "arcade",
		Width:      1280,
		Height:     720,
		Vsync:      true,
		ShowMouse:  true,
		FilterMode: "nearest",
	}
}

// LoadSettings reads settings from a YAML file. A missing file is not an
// error: defaults are returned so a game runs without a config file.
// Fields absent from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("arcade: read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("arcade: parse settings %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("arcade: invalid window size %dx%d", s.Width, s.Height)
	}
	switch s.FilterMode {
	case "", "nearest", "linear":
	default:
		return fmt.Errorf("arcade: unknown filter_mode %q", s.FilterMode)
	}
	return nil
}

// filter returns the graphics filter mode named by FilterMode.
func (s Settings) filter() graphics.FilterMode {
	if s.FilterMode == "linear" {
		return graphics.FilterModeLinear
	}
	return graphics.FilterModeNearest
}
