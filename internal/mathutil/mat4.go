package mathutil

import "math"

// Mat4 is a 4×4 matrix stored row-major. Mat4Mul(a, b) applies b first, then a.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// MulVec4 returns M × v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// MulPoint transforms a 3D point (w=1) by the matrix and drops w.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return m.MulVec4(v.Vec4()).Vec3()
}

func Scaling(sx, sy, sz float64) Mat4 {
	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

func Translation(tx, ty, tz float64) Mat4 {
	return Mat4{
		1, 0, 0, tx,
		0, 1, 0, ty,
		0, 0, 1, tz,
		0, 0, 0, 1,
	}
}

// World builds the model-to-world matrix T·Rz·Ry·Rx·S: scale first, then
// rotate about X, Y and Z in that order, then translate. Meshes are authored
// against this order; do not reorder.
func World(pos, rot, scale Vec3) Mat4 {
	m := Scaling(scale[0], scale[1], scale[2])
	m = Mat4Mul(RotationX(rot[0]), m)
	m = Mat4Mul(RotationY(rot[1]), m)
	m = Mat4Mul(RotationZ(rot[2]), m)
	return Mat4Mul(Translation(pos[0], pos[1], pos[2]), m)
}

// Perspective builds a left-handed projection. aspect is height/width.
// After multiplication w holds the view-space z, so ProjectPoint can divide.
func Perspective(fovY, aspect, zNear, zFar float64) Mat4 {
	f := 1 / math.Tan(fovY/2)
	var m Mat4
	m[0] = aspect * f
	m[5] = f
	m[10] = zFar / (zFar - zNear)
	m[11] = -zFar * zNear / (zFar - zNear)
	m[14] = 1
	return m
}

// ProjectPoint multiplies v by m and divides x, y, z by the resulting w.
// When w is 0 the product is returned undivided.
func ProjectPoint(m Mat4, v Vec4) Vec4 {
	r := m.MulVec4(v)
	if r[3] != 0 {
		r[0] /= r[3]
		r[1] /= r[3]
		r[2] /= r[3]
	}
	return r
}

// LookAt builds a view matrix for a camera at eye looking toward target.
func LookAt(eye, target, up Vec3) Mat4 {
	z := target.Sub(eye).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)
	return Mat4{
		x[0], x[1], x[2], -x.Dot(eye),
		y[0], y[1], y[2], -y.Dot(eye),
		z[0], z[1], z[2], -z.Dot(eye),
		0, 0, 0, 1,
	}
}
