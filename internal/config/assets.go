package config

import (
	"softrender/internal/obj"
	"softrender/internal/raster"
	"softrender/internal/scene"
	"softrender/internal/texture"
)

// LoadMesh loads MeshPath, or the built-in cube when it is empty, and places
// it per the scene settings.
func (c *Config) LoadMesh() (*scene.Mesh, error) {
	m := scene.Cube()
	if c.MeshPath != "" {
		var err error
		if m, err = obj.Load(c.MeshPath); err != nil {
			return nil, err
		}
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}
	return c.Place(m), nil
}

// LoadTexture loads TexturePath, or the default checker when it is empty.
func (c *Config) LoadTexture() (*raster.Texture, error) {
	if c.TexturePath == "" {
		return texture.Default(), nil
	}
	return texture.Load(c.TexturePath)
}
