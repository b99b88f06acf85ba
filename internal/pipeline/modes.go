package pipeline

import (
	"fmt"
	"strings"
)

// CullMode selects which faces are discarded before clipping.
type CullMode int

const (
	CullNone CullMode = iota
	CullBackface
)

var cullNames = [...]string{
	CullNone:     "none",
	CullBackface: "backface",
}

func (m CullMode) String() string {
	if m < 0 || int(m) >= len(cullNames) {
		return fmt.Sprintf("CullMode(%d)", int(m))
	}
	return cullNames[m]
}

// ParseCullMode accepts "none" or "backface" (also "back-face"), any case.
func ParseCullMode(s string) (CullMode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
	for i, name := range cullNames {
		if key == name {
			return CullMode(i), nil
		}
	}
	return 0, fmt.Errorf("pipeline: unknown cull mode %q", s)
}

// RenderMode selects what is drawn for each triangle.
type RenderMode int

const (
	RenderWire RenderMode = iota
	RenderWireVertex
	RenderFill
	RenderFillWire
	RenderTextured
	RenderTexturedWire
)

var renderNames = [...]string{
	RenderWire:         "wireframe",
	RenderWireVertex:   "wireframe+vertices",
	RenderFill:         "filled",
	RenderFillWire:     "filled+wireframe",
	RenderTextured:     "textured",
	RenderTexturedWire: "textured+wireframe",
}

func (m RenderMode) String() string {
	if m < 0 || int(m) >= len(renderNames) {
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
	return renderNames[m]
}

// ParseRenderMode accepts the names returned by String, any case.
func ParseRenderMode(s string) (RenderMode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range renderNames {
		if key == name {
			return RenderMode(i), nil
		}
	}
	return 0, fmt.Errorf("pipeline: unknown render mode %q", s)
}

// Filled reports whether triangles get a flat-color fill.
func (m RenderMode) Filled() bool {
	return m == RenderFill || m == RenderFillWire
}

// Textured reports whether triangles are texture mapped.
func (m RenderMode) Textured() bool {
	return m == RenderTextured || m == RenderTexturedWire
}

// Wireframe reports whether triangle edges are drawn.
func (m RenderMode) Wireframe() bool {
	return m != RenderFill && m != RenderTextured
}

// Vertices reports whether vertex markers are drawn.
func (m RenderMode) Vertices() bool {
	return m == RenderWireVertex
}
