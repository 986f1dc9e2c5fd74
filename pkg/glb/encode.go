package glb

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gofurnish/pkg/scene"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Save writes the scene as binary .glb, or as .gltf with embedded buffers
// when the file name ends in .gltf
func Save(s *scene.Scene, filename string) error {
	doc, err := ToDocument(s)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(filename), ".gltf") {
		err = gltf.Save(doc, filename)
	} else {
		err = gltf.SaveBinary(doc, filename)
	}
	if err != nil {
		return fmt.Errorf("failed to save glTF: %w", err)
	}
	return nil
}

// ToDocument builds a glTF document with one node and one mesh per entry.
// Entry transforms are stored as node matrices; identity is omitted.
func ToDocument(s *scene.Scene) (*gltf.Document, error) {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "gofurnish"
	root := doc.Scenes[0]

	for _, e := range s.Entries() {
		if err := e.Mesh.Validate(); err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Name, err)
		}

		positions := make([][3]float32, len(e.Mesh.Vertices))
		for i, v := range e.Mesh.Vertices {
			positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		}
		indices := make([]uint32, 0, len(e.Mesh.Faces)*3)
		for _, f := range e.Mesh.Faces {
			indices = append(indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
		}

		prim := &gltf.Primitive{
			Attributes: map[string]int{gltf.POSITION: modeler.WritePosition(doc, positions)},
			Mode:       gltf.PrimitiveTriangles,
		}
		if len(indices) > 0 {
			prim.Indices = gltf.Index(modeler.WriteIndices(doc, indices))
		}

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: e.Name, Primitives: []*gltf.Primitive{prim}})
		node := &gltf.Node{Name: e.Name, Mesh: gltf.Index(len(doc.Meshes) - 1)}
		if !e.Transform.IsIdentity() {
			node.Matrix = e.Transform.ColumnMajor()
		}
		doc.Nodes = append(doc.Nodes, node)
		root.Nodes = append(root.Nodes, len(doc.Nodes)-1)
	}
	return doc, nil
}
