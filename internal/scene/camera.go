package scene

import "softrender/internal/mathutil"

// Camera is a free-look camera. Direction is derived from Yaw and Pitch by
// ViewMatrix and cached there for movement code to use.
type Camera struct {
	Position        mathutil.Vec3
	Direction       mathutil.Vec3
	ForwardVelocity mathutil.Vec3
	Yaw             float64 // radians, unbounded
	Pitch           float64 // radians, unbounded
}

// NewCamera returns a camera at the origin looking along +z.
func NewCamera() *Camera {
	return &Camera{Direction: mathutil.Forward}
}

// ViewMatrix derives Direction from yaw and pitch, stores it, and returns the
// world-to-view matrix.
func (c *Camera) ViewMatrix() mathutil.Mat4 {
	rot := mathutil.Mat4Mul(mathutil.RotationY(c.Yaw), mathutil.RotationX(c.Pitch))
	c.Direction = rot.MulPoint(mathutil.Forward)
	target := c.Position.Add(c.Direction)
	return mathutil.LookAt(c.Position, target, mathutil.Up)
}

// MoveForward advances the camera along its cached direction.
func (c *Camera) MoveForward(speed, dt float64) {
	c.ForwardVelocity = c.Direction.Scale(speed * dt)
	c.Position = c.Position.Add(c.ForwardVelocity)
}

// Turn adds to the yaw angle.
func (c *Camera) Turn(rate, dt float64) {
	c.Yaw += rate * dt
}

// Tilt adds to the pitch angle.
func (c *Camera) Tilt(rate, dt float64) {
	c.Pitch += rate * dt
}
