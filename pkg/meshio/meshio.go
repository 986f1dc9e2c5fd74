// Package meshio picks a decoder or encoder by file extension.
package meshio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/philipparndt/gofurnish/pkg/geometry"
	"github.com/philipparndt/gofurnish/pkg/glb"
	"github.com/philipparndt/gofurnish/pkg/mesh"
	"github.com/philipparndt/gofurnish/pkg/obj"
	"github.com/philipparndt/gofurnish/pkg/openscad"
	"github.com/philipparndt/gofurnish/pkg/scene"
	"github.com/philipparndt/gofurnish/pkg/stl"
)

// ErrUnsupportedFormat is returned for extensions without a codec
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Decoder reads a file into a scene
type Decoder func(filename string) (*scene.Scene, error)

// Encoder writes a scene to a file
type Encoder func(s *scene.Scene, filename string) error

var decoders = map[string]Decoder{
	".glb":  glb.Open,
	".gltf": glb.Open,
	".obj":  decodeOBJ,
	".stl":  decodeSTL,
	".scad": decodeSCAD,
}

var encoders = map[string]Encoder{
	".glb":  glb.Save,
	".gltf": glb.Save,
	".obj":  obj.Save,
}

// Load decodes filename according to its extension
func Load(filename string) (*scene.Scene, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	dec, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s (expected one of %s)", ErrUnsupportedFormat, ext, strings.Join(DecoderExtensions(), ", "))
	}
	return dec(filename)
}

// Save encodes s to filename according to its extension. The parent
// directory is created if needed.
func Save(s *scene.Scene, filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	enc, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("%w: %s (expected one of %s)", ErrUnsupportedFormat, ext, strings.Join(EncoderExtensions(), ", "))
	}
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return enc(s, filename)
}

// DecoderExtensions lists the readable extensions
func DecoderExtensions() []string {
	return keys(decoders)
}

// EncoderExtensions lists the writable extensions
func EncoderExtensions() []string {
	return keys(encoders)
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func decodeOBJ(filename string) (*scene.Scene, error) {
	asset, err := obj.Parse(filename)
	if err != nil {
		return nil, err
	}
	s := scene.New()
	for _, p := range asset.Parts {
		s.Add(p.Name, p.Mesh, geometry.Identity())
	}
	return s, nil
}

func decodeSTL(filename string) (*scene.Scene, error) {
	m, err := stl.Parse(filename)
	if err != nil {
		return nil, err
	}
	return single(m), nil
}

func decodeSCAD(filename string) (*scene.Scene, error) {
	m, err := openscad.NewRenderer().Load(filename)
	if err != nil {
		return nil, err
	}
	return single(m), nil
}

func single(m *mesh.Mesh) *scene.Scene {
	s := scene.New()
	s.Add(m.Name, m, geometry.Identity())
	return s
}
