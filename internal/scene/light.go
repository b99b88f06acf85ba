package scene

import "softrender/internal/mathutil"

// Light is a single directional light in view space.
type Light struct {
	Direction mathutil.Vec3
}

// DefaultLight shines along +z, away from the camera.
func DefaultLight() Light {
	return Light{Direction: mathutil.Forward}
}

// Intensity returns how strongly a face with the given unit normal is lit,
// clamped to [0, 1].
func (l Light) Intensity(normal mathutil.Vec3) float64 {
	f := -normal.Dot(l.Direction)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
