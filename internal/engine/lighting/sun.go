// Package lighting describes the light rig of the editor viewport.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/primforge/pkg/math"
)

// KeyLight is a directional light combined with a camera headlight.
// The weights are added as-is, so they should sum to about 1.
type KeyLight struct {
	Longitude float32 `yaml:"longitude"` // degrees around Y, 0 = +Z
	Latitude  float32 `yaml:"latitude"`  // degrees above the horizon

	Ambient   float32 `yaml:"ambient"`
	Headlight float32 `yaml:"headlight"`
	Key       float32 `yaml:"key"`
}

// DefaultKeyLight returns a light from the upper front right.
func DefaultKeyLight() KeyLight {
	return KeyLight{
		Longitude: 53,
		Latitude:  63,
		Ambient:   0.3,
		Headlight: 0.45,
		Key:       0.35,
	}
}

// Direction returns the unit vector pointing towards the light.
func (l KeyLight) Direction() math.Vec3 {
	return SunDirection(l.Longitude, l.Latitude)
}

// SunDirection converts longitude/latitude angles in degrees to a unit
// direction. Longitude rotates around Y, latitude is elevation from the
// horizon.
func SunDirection(longitude, latitude float32) math.Vec3 {
	sinLon, cosLon := math32.Sincos(math.Radians(longitude))
	sinLat, cosLat := math32.Sincos(math.Radians(latitude))

	return math.Vec3{
		X: cosLat * sinLon,
		Y: sinLat,
		Z: cosLat * cosLon,
	}
}
