package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/primforge/internal/config"
	"github.com/Faultbox/primforge/internal/editor/session"
	"github.com/Faultbox/primforge/pkg/math"
)

func TestOptionsFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.EditorConfig
		want Options
	}{
		{
			name: "defaults",
			cfg:  config.Default().Editor,
			want: Options{Tool: session.ToolMove, SnapStep: 10},
		},
		{
			name: "rotate with snap",
			cfg:  config.EditorConfig{Tool: "rotate", SnapEnabled: true, SnapStep: 5},
			want: Options{Tool: session.ToolRotate, SnapEnabled: true, SnapStep: 5},
		},
		{
			name: "unknown tool",
			cfg:  config.EditorConfig{Tool: "lasso"},
			want: DefaultOptions(),
		},
		{
			name: "zero step keeps default",
			cfg:  config.EditorConfig{SnapEnabled: true},
			want: Options{Tool: session.ToolMove, SnapEnabled: true, SnapStep: session.DefaultSnapStep},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OptionsFromConfig(tt.cfg))
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Width = 1000
	cfg.Window.Height = 500
	cfg.Camera.FOV = 90
	cfg.Camera.MaxDistance = 300
	cfg.Editor.Tool = "scale"

	e := NewFromConfig(cfg)

	assert.Equal(t, session.ToolScale, e.Tool())
	assert.InDelta(t, math.Radians(90), e.Camera.FOV, 1e-6)
	assert.Equal(t, float32(300), e.Camera.MaxDistance)
	assert.LessOrEqual(t, e.Camera.Distance, float32(300), "distance clamped into the new range")
	assert.Equal(t, float32(2), e.Aspect())
}

func TestApplyCameraConfigZeroKeeps(t *testing.T) {
	e := New(DefaultOptions())
	before := *e.Camera

	ApplyCameraConfig(e, config.CameraConfig{})

	assert.Equal(t, before, *e.Camera)
}
