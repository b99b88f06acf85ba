// Package obj reads Wavefront OBJ geometry into a scene.Mesh.
//
// Only positions (v), texture coordinates (vt) and faces (f) are used.
// Normals, groups, materials and smoothing records are skipped.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"softrender/internal/mathutil"
	"softrender/internal/raster"
	"softrender/internal/scene"
)

// Load opens an OBJ file and parses it.
func Load(path string) (*scene.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("obj: %s: %w", path, err)
	}
	return m, nil
}

// corner is one vertex reference of a face record. uv is -1 when the
// reference has no texture coordinate.
type corner struct {
	v, uv int
}

// Parse reads OBJ records from r. Faces with more than three corners are
// triangulated as a fan around the first corner. Texture v is flipped so
// that v grows downward like image rows.
func Parse(r io.Reader) (*scene.Mesh, error) {
	m := scene.NewMesh()
	var uvs []mathutil.Vec2
	var corners []corner

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			m.Vertices = append(m.Vertices, mathutil.Vec3{p[0], p[1], p[2]})

		case "vt":
			p, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: texture coordinate: %w", lineNo, err)
			}
			uvs = append(uvs, mathutil.Vec2{p[0], 1 - p[1]})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face has %d corners, need at least 3", lineNo, len(fields)-1)
			}
			corners = corners[:0]
			for _, ref := range fields[1:] {
				c, err := parseCorner(ref, len(m.Vertices), len(uvs))
				if err != nil {
					return nil, fmt.Errorf("line %d: face: %w", lineNo, err)
				}
				corners = append(corners, c)
			}
			for i := 1; i+1 < len(corners); i++ {
				m.Faces = append(m.Faces, makeFace(corners[0], corners[i], corners[i+1], uvs))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return m, nil
}

func makeFace(a, b, c corner, uvs []mathutil.Vec2) scene.Face {
	f := scene.Face{A: a.v, B: b.v, C: c.v, Color: raster.White}
	for i, k := range [3]corner{a, b, c} {
		if k.uv >= 0 {
			f.UVs[i] = uvs[k.uv]
		}
	}
	return f
}

// parseFloats reads at least n numbers; extra components such as the
// optional w are ignored.
func parseFloats(fields []string, n int) ([]float64, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d numbers, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i := range out {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseCorner reads v, v/vt, v//vn or v/vt/vn and returns 0-based indices.
func parseCorner(ref string, numVerts, numUVs int) (corner, error) {
	parts := strings.Split(ref, "/")
	if len(parts) > 3 {
		return corner{}, fmt.Errorf("bad vertex reference %q", ref)
	}

	v, err := resolveIndex(parts[0], numVerts)
	if err != nil {
		return corner{}, fmt.Errorf("vertex %q: %w", ref, err)
	}
	c := corner{v: v, uv: -1}

	if len(parts) > 1 && parts[1] != "" {
		uv, err := resolveIndex(parts[1], numUVs)
		if err != nil {
			return corner{}, fmt.Errorf("texture coordinate %q: %w", ref, err)
		}
		c.uv = uv
	}
	return c, nil
}

// resolveIndex converts a 1-based or negative (relative to the end) index.
func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += n
	default:
		return 0, fmt.Errorf("index 0 is invalid")
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index out of range [1,%d]", n)
	}
	return i, nil
}
