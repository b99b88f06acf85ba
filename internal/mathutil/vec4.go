package mathutil

// Vec4 is a homogeneous vector; index 3 is w.
type Vec4 [4]float64

// Vec3 drops w without dividing.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// W returns the homogeneous coordinate.
func (v Vec4) W() float64 {
	return v[3]
}
