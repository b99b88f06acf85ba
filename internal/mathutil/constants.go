package mathutil

// Axis vectors of the left-handed view space: +x right, +y up, +z forward.
var (
	Origin  = Vec3{0, 0, 0}
	Up      = Vec3{0, 1, 0}
	Forward = Vec3{0, 0, 1}
)
