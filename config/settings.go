package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no -config flag is given.
const DefaultPath = "settings.yaml"

type Settings struct {
	Window  WindowSettings  `yaml:"window"`
	Camera  CameraSettings  `yaml:"camera"`
	Inspect InspectSettings `yaml:"inspect"`
	Log     LogSettings     `yaml:"log"`
}

type WindowSettings struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Title      string     `yaml:"title"`
	Samples    int        `yaml:"samples"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clearColor"`
}

type CameraSettings struct {
	Eye        [3]float32 `yaml:"eye"`
	Target     [3]float32 `yaml:"target"`
	Up         [3]float32 `yaml:"up"`
	FovDegrees float32    `yaml:"fovDegrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
}

// InspectSettings configures the websocket frame inspector. An empty Addr
// leaves it off.
type InspectSettings struct {
	Addr string `yaml:"addr"`
}

type LogSettings struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the settings the grid renders with when no file is present.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:      1024,
			Height:     768,
			Title:      "Colored Cube",
			Samples:    4,
			VSync:      true,
			ClearColor: [4]float32{0, 0, 0.4, 0},
		},
		Camera: CameraSettings{
			Eye:        [3]float32{16, 6, 20},
			Target:     [3]float32{0, 0, 0},
			Up:         [3]float32{0, 1, 0},
			FovDegrees: 45,
			Near:       0.1,
			Far:        100,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Load reads settings from path on top of the defaults. A missing file is
// not an error. The file may be YAML or JSON.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Info("no settings file found, using defaults", "path", path)
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("error parsing %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	slog.Info("loaded settings", "path", path,
		"width", s.Window.Width, "height", s.Window.Height, "inspect", s.Inspect.Addr)
	return s, nil
}

// Validate checks the values the renderer cannot start without.
func (s Settings) Validate() error {
	w := s.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", w.Width, w.Height)
	}
	if w.Samples < 0 {
		return fmt.Errorf("window samples %d must not be negative", w.Samples)
	}
	c := s.Camera
	if c.FovDegrees <= 0 || c.FovDegrees >= 180 {
		return fmt.Errorf("camera fovDegrees %v must be between 0 and 180", c.FovDegrees)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		return fmt.Errorf("camera clip range [%v, %v] must satisfy 0 < near < far", c.Near, c.Far)
	}
	if _, err := s.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// Aspect is the window width over its height.
func (w WindowSettings) Aspect() float32 {
	return float32(w.Width) / float32(w.Height)
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LogSettings) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", l.Level, err)
	}
	return level, nil
}
