package obj

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"softrender/internal/mathutil"
	"softrender/internal/raster"
)

const quad = `# unit quad
v -1 -1 0
v  1 -1 0
v  1  1 0
v -1  1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 -1
usemtl none
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestParseQuadFan(t *testing.T) {
	m, err := Parse(strings.NewReader(quad))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.Vertices) != 4 || len(m.Faces) != 2 {
		t.Fatalf("got %d vertices, %d faces; want 4, 2", len(m.Vertices), len(m.Faces))
	}

	f0, f1 := m.Faces[0], m.Faces[1]
	if f0.A != 0 || f0.B != 1 || f0.C != 2 || f1.A != 0 || f1.B != 2 || f1.C != 3 {
		t.Errorf("faces = %+v, %+v; want fan (0,1,2), (0,2,3)", f0, f1)
	}
	// vt 1 1 lands at the top row after the flip.
	if f0.UVs[2] != (mathutil.Vec2{1, 0}) || f0.UVs[0] != (mathutil.Vec2{0, 1}) {
		t.Errorf("face 0 UVs = %v", f0.UVs)
	}
	if f0.Color != raster.White {
		t.Errorf("Color = %#x, want white", f0.Color)
	}
	if m.Scale != (mathutil.Vec3{1, 1, 1}) {
		t.Errorf("Scale = %v, want unit", m.Scale)
	}
	if err := m.Validate(); err != nil {
		t.Error(err)
	}
}

func TestParseCornerForms(t *testing.T) {
	tests := []struct {
		name  string
		face  string
		verts [3]int
		hasUV bool
	}{
		{"position only", "f 1 2 3", [3]int{0, 1, 2}, false},
		{"with uv", "f 1/1 2/2 3/3", [3]int{0, 1, 2}, true},
		{"with normal", "f 1//1 2//1 3//1", [3]int{0, 1, 2}, false},
		{"full", "f 3/3/1 2/2/1 1/1/1", [3]int{2, 1, 0}, true},
		{"relative", "f -3/-3 -2/-2 -1/-1", [3]int{0, 1, 2}, true},
	}
	header := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0.25 0.25\nvt 0.5 0.5\nvt 0.75 0.75\n"
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Parse(strings.NewReader(header + tc.face + "\n"))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(m.Faces) != 1 {
				t.Fatalf("got %d faces", len(m.Faces))
			}
			f := m.Faces[0]
			if got := [3]int{f.A, f.B, f.C}; got != tc.verts {
				t.Errorf("indices = %v, want %v", got, tc.verts)
			}
			zero := f.UVs[0] == (mathutil.Vec2{})
			if tc.hasUV == zero {
				t.Errorf("UVs = %v, hasUV %v", f.UVs, tc.hasUV)
			}
		})
	}
}

func TestParseErrorsNameLine(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"short vertex", "v 1 2\n", "line 1: vertex"},
		{"bad number", "v 0 0 0\nv 1 x 0\n", "line 2: vertex"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n", "line 3: face has 2 corners"},
		{"out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", "line 4: face"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", "index 0"},
		{"missing uv", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1 2/1 3/1\n", "texture coordinate"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.src))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Parse() error = %v, want %q", err, tc.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(quad), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Faces) != 2 {
		t.Errorf("got %d faces", len(m.Faces))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "none.obj")); err == nil {
		t.Error("Load(missing) succeeded")
	}
}
