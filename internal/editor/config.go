package editor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/primforge/internal/config"
	"github.com/Faultbox/primforge/internal/editor/session"
	"github.com/Faultbox/primforge/internal/logger"
	"github.com/Faultbox/primforge/pkg/math"
)

// OptionsFromConfig converts the editor section of cfg. An unknown tool
// name falls back to the default tool.
func OptionsFromConfig(cfg config.EditorConfig) Options {
	opts := DefaultOptions()
	opts.SnapEnabled = cfg.SnapEnabled
	if cfg.SnapStep > 0 {
		opts.SnapStep = cfg.SnapStep
	}
	if cfg.Tool != "" {
		if t, ok := session.ParseTool(cfg.Tool); ok {
			opts.Tool = t
		} else {
			logger.Warn("unknown tool in config", zap.String("tool", cfg.Tool), zap.Stringer("using", opts.Tool))
		}
	}
	return opts
}

// NewFromConfig creates an editor with the camera and editor settings of cfg.
func NewFromConfig(cfg *config.Config) *Editor {
	e := New(OptionsFromConfig(cfg.Editor))
	ApplyCameraConfig(e, cfg.Camera)
	e.SetViewport(float32(cfg.Window.Width), float32(cfg.Window.Height))
	return e
}

// ApplyCameraConfig copies projection, limits and sensitivities onto the
// editor camera. Zero values keep the current setting.
func ApplyCameraConfig(e *Editor, cfg config.CameraConfig) {
	c := e.Camera
	if cfg.FOV > 0 {
		c.FOV = math.Radians(cfg.FOV)
	}
	if cfg.Near > 0 {
		c.Near = cfg.Near
	}
	if cfg.Far > 0 {
		c.Far = cfg.Far
	}
	if cfg.DragSensitivity > 0 {
		c.DragSensitivity = cfg.DragSensitivity
	}
	if cfg.ZoomSensitivity > 0 {
		c.ZoomSensitivity = cfg.ZoomSensitivity
	}
	if cfg.MinDistance > 0 {
		c.MinDistance = cfg.MinDistance
	}
	if cfg.MaxDistance > 0 {
		c.MaxDistance = cfg.MaxDistance
	}
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}
