package objectclass

import (
	"strings"

	"github.com/worldforge/editorcore/internal/asset"
)

// DefaultOdfLoader parses a flat "key = value" ODF document, one
// assignment per line, collecting repeated "texture" keys into
// Textures and a "mesh" key into MeshName. Blank lines and lines
// starting with "#" are ignored.
func DefaultOdfLoader(path string) (*Definition, []byte, error) {
	raw, err := asset.ReadText(path)
	if err != nil {
		return nil, nil, err
	}

	def := &Definition{Properties: make(map[string]string)}
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		switch key {
		case "mesh":
			def.MeshName = value
		case "texture":
			def.Textures = append(def.Textures, value)
		default:
			def.Properties[key] = value
		}
	}
	return def, raw, nil
}

// DefaultMeshLoader memory-maps a binary mesh file.
func DefaultMeshLoader(path string) (*Mesh, []byte, error) {
	raw, err := asset.ReadBinary(path)
	if err != nil {
		return nil, nil, err
	}
	return &Mesh{Raw: raw}, raw, nil
}

// DefaultTextureLoader memory-maps a binary texture file.
func DefaultTextureLoader(path string) (*Texture, []byte, error) {
	raw, err := asset.ReadBinary(path)
	if err != nil {
		return nil, nil, err
	}
	return &Texture{Raw: raw}, raw, nil
}
