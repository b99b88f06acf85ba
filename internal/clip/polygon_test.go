package clip

import (
	"math"
	"math/rand"
	"testing"

	"softrender/internal/mathutil"
)

const eps = 1e-9

func testFrustum() Frustum {
	fov := mathutil.Deg2Rad(60)
	return NewFrustum(fov, fov, 1, 20)
}

func nearVec3(a, b mathutil.Vec3) bool {
	return math.Abs(a[0]-b[0]) < eps && math.Abs(a[1]-b[1]) < eps && math.Abs(a[2]-b[2]) < eps
}

func TestFrustumNormalsPointInward(t *testing.T) {
	f := testFrustum()
	inside := mathutil.Vec3{0, 0, 10}
	for i, pl := range f.Planes {
		if d := pl.Distance(inside); d <= 0 {
			t.Errorf("plane %d: distance of interior point = %v, want > 0", i, d)
		}
		if l := pl.Normal.Len(); math.Abs(l-1) > eps {
			t.Errorf("plane %d: normal length %v, want 1", i, l)
		}
	}
	if f.Contains(mathutil.Vec3{0, 0, 0.5}) {
		t.Error("point in front of the near plane reported inside")
	}
}

func TestClipInsideTriangleUnchanged(t *testing.T) {
	f := testFrustum()
	v := [3]mathutil.Vec3{{0, 0, 5}, {1, 0, 5}, {0, 1, 6}}
	uv := [3]mathutil.Vec2{{0, 0}, {1, 0}, {0, 1}}

	got := f.Clip(FromTriangle(v[0], v[1], v[2], uv[0], uv[1], uv[2]))
	if got.N != 3 {
		t.Fatalf("N = %d, want 3", got.N)
	}
	for i := range v {
		if !nearVec3(got.Vertices[i], v[i]) || got.UVs[i] != uv[i] {
			t.Errorf("vertex %d = %v %v, want %v %v", i, got.Vertices[i], got.UVs[i], v[i], uv[i])
		}
	}
	if tris := got.Triangles(nil); len(tris) != 1 {
		t.Errorf("triangles = %d, want 1", len(tris))
	}
}

func TestFrustumContains(t *testing.T) {
	f := testFrustum()
	tests := []struct {
		name string
		p    mathutil.Vec3
		want bool
	}{
		{"center", mathutil.Vec3{0, 0, 5}, true},
		{"on near plane", mathutil.Vec3{0, 0, 1}, false},
		{"beyond far plane", mathutil.Vec3{0, 0, 25}, false},
		{"left of view", mathutil.Vec3{-10, 0, 5}, false},
		{"nan", mathutil.Vec3{math.NaN(), 0, 5}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Contains(tc.p); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestClipStraddlingNearPlane(t *testing.T) {
	f := testFrustum()
	p := FromTriangle(
		mathutil.Vec3{0, 0, 0.5}, mathutil.Vec3{-0.2, 0, 3}, mathutil.Vec3{0.2, 0.1, 3},
		mathutil.Vec2{0, 0}, mathutil.Vec2{1, 0}, mathutil.Vec2{0, 1},
	)

	got := f.Clip(p)
	if got.N != 4 {
		t.Fatalf("N = %d, want 4", got.N)
	}
	onNear := 0
	for i := 0; i < got.N; i++ {
		z := got.Vertices[i][2]
		if z < 1-eps {
			t.Errorf("vertex %d z = %v is in front of the near plane", i, z)
		}
		if math.Abs(z-1) < eps {
			onNear++
		}
	}
	if onNear != 2 {
		t.Errorf("%d vertices on z = zNear, want 2", onNear)
	}
	if tris := got.Triangles(nil); len(tris) != 2 {
		t.Errorf("triangles = %d, want 2", len(tris))
	}
}

func TestClipInterpolatesUV(t *testing.T) {
	near := testFrustum().Planes[Near]
	p := FromTriangle(
		mathutil.Vec3{0, 0, 0.5}, mathutil.Vec3{0, 0, 3}, mathutil.Vec3{0, 1, 3},
		mathutil.Vec2{0, 0}, mathutil.Vec2{1, 0}, mathutil.Vec2{1, 1},
	)
	got := ClipAgainstPlane(p, near)

	// Edge v0→v1 crosses z=1 at t = 0.2.
	found := false
	for i := 0; i < got.N; i++ {
		if nearVec3(got.Vertices[i], mathutil.Vec3{0, 0, 1}) {
			found = true
			if uv := got.UVs[i]; math.Abs(uv[0]-0.2) > eps || math.Abs(uv[1]) > eps {
				t.Errorf("crossing uv = %v, want (0.2, 0)", uv)
			}
		}
	}
	if !found {
		t.Errorf("no crossing vertex at (0,0,1) in %v", got.Vertices[:got.N])
	}
}

func TestClipTotal(t *testing.T) {
	f := testFrustum()
	p := FromTriangle(
		mathutil.Vec3{0, 0, 0.5}, mathutil.Vec3{0.1, 0, 0.2}, mathutil.Vec3{0, 0.1, 0.9},
		mathutil.Vec2{}, mathutil.Vec2{}, mathutil.Vec2{},
	)
	got := f.Clip(p)
	if got.N != 0 {
		t.Errorf("N = %d, want 0", got.N)
	}
	if tris := got.Triangles(nil); len(tris) != 0 {
		t.Errorf("triangles = %d, want 0", len(tris))
	}
}

func TestClipOnPlaneVerticesAreOutside(t *testing.T) {
	near := testFrustum().Planes[Near]
	p := FromTriangle(
		mathutil.Vec3{0, 0, 1}, mathutil.Vec3{0.1, 0, 1}, mathutil.Vec3{0, 0.1, 3},
		mathutil.Vec2{}, mathutil.Vec2{}, mathutil.Vec2{},
	)
	got := ClipAgainstPlane(p, near)
	if got.N != 1 {
		t.Errorf("N = %d, want 1 (only the strictly inside vertex)", got.N)
	}
	if tris := got.Triangles(nil); len(tris) != 0 {
		t.Errorf("triangles = %d, want 0", len(tris))
	}
}

func TestClipEmptyPolygon(t *testing.T) {
	var p Polygon
	if got := ClipAgainstPlane(p, testFrustum().Planes[Left]); got.N != 0 {
		t.Errorf("N = %d, want 0", got.N)
	}
}

func TestClipVertexBound(t *testing.T) {
	f := testFrustum()
	rng := rand.New(rand.NewSource(1))
	coord := func() float64 { return rng.Float64()*60 - 30 }

	for i := 0; i < 5000; i++ {
		p := FromTriangle(
			mathutil.Vec3{coord(), coord(), coord()},
			mathutil.Vec3{coord(), coord(), coord()},
			mathutil.Vec3{coord(), coord(), coord()},
			mathutil.Vec2{}, mathutil.Vec2{}, mathutil.Vec2{},
		)
		got := f.Clip(p)
		if got.N > 9 {
			t.Fatalf("clipped polygon has %d vertices, want at most 9", got.N)
		}
		if n := len(got.Triangles(nil)); got.N >= 3 && n != got.N-2 {
			t.Fatalf("fan of %d vertices gave %d triangles", got.N, n)
		}
	}
}

func TestTrianglesFan(t *testing.T) {
	var p Polygon
	for i := 0; i < 5; i++ {
		p.push(mathutil.Vec3{float64(i), 0, 1}, mathutil.Vec2{float64(i), 0})
	}
	tris := p.Triangles(nil)
	if len(tris) != 3 {
		t.Fatalf("triangles = %d, want 3", len(tris))
	}
	for i, tri := range tris {
		want := [3]float64{0, float64(i + 1), float64(i + 2)}
		for k := 0; k < 3; k++ {
			if tri.Points[k][0] != want[k] || tri.Points[k][3] != 1 || tri.UVs[k][0] != want[k] {
				t.Errorf("triangle %d corner %d = %v, want x=%v w=1", i, k, tri.Points[k], want[k])
			}
		}
	}
}

func TestPushPanicsPastCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("push past capacity did not panic")
		}
	}()
	var p Polygon
	for i := 0; i <= MaxPolygonVertices; i++ {
		p.push(mathutil.Vec3{}, mathutil.Vec2{})
	}
}
