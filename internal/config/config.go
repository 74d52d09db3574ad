// Package config handles editor configuration loading and management.
package config

import "github.com/Faultbox/primforge/internal/engine/lighting"

// Config holds all editor settings.
type Config struct {
	Window  WindowConfig      `yaml:"window"`
	Camera  CameraConfig      `yaml:"camera"`
	Editor  EditorConfig      `yaml:"editor"`
	Export  ExportConfig      `yaml:"export"`
	Light   lighting.KeyLight `yaml:"light"`
	Logging LoggingConfig     `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds orbit camera settings. Angles are in degrees.
type CameraConfig struct {
	FOV             float32 `yaml:"fov"`
	Near            float32 `yaml:"near"`
	Far             float32 `yaml:"far"`
	DragSensitivity float32 `yaml:"drag_sensitivity"` // radians per pixel
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"` // log-distance per wheel unit
	MinDistance     float32 `yaml:"min_distance"`
	MaxDistance     float32 `yaml:"max_distance"`
}

// EditorConfig holds interaction settings.
type EditorConfig struct {
	Tool        string  `yaml:"tool"` // select, move, rotate or scale
	SnapEnabled bool    `yaml:"snap_enabled"`
	SnapStep    float32 `yaml:"snap_step"`
	GridSize    float32 `yaml:"grid_size"` // half-width of the ground grid
	GridStep    float32 `yaml:"grid_step"`
	Project     string  `yaml:"project"` // project file opened at startup
}

// ExportConfig holds STL export settings.
type ExportConfig struct {
	Name   string `yaml:"name"` // solid name, empty uses the file name
	Binary bool   `yaml:"binary"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1440,
			Height:     900,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FOV:             55,
			Near:            0.1,
			Far:             5000,
			DragSensitivity: 0.008,
			ZoomSensitivity: 0.0012,
			MinDistance:     80,
			MaxDistance:     2500,
		},
		Editor: EditorConfig{
			Tool:        "move",
			SnapEnabled: false,
			SnapStep:    10,
			GridSize:    600,
			GridStep:    10,
		},
		Export: ExportConfig{
			Name:   "",
			Binary: false,
		},
		Light: lighting.DefaultKeyLight(),
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
