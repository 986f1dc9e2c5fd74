// Package glb converts between glTF 2.0 documents (binary .glb or JSON
// .gltf) and scenes. Node hierarchies are flattened: every mesh primitive
// becomes one scene entry carrying its node's world transform.
package glb

import (
	"fmt"

	"github.com/philipparndt/gofurnish/pkg/geometry"
	"github.com/philipparndt/gofurnish/pkg/mesh"
	"github.com/philipparndt/gofurnish/pkg/scene"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Open reads a .glb or .gltf file into a scene
func Open(filename string) (*scene.Scene, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open glTF: %w", err)
	}
	return FromDocument(doc)
}

// FromDocument flattens the default scene of doc. Documents without a
// default scene use their first scene; documents without scenes use every
// root node.
func FromDocument(doc *gltf.Document) (s *scene.Scene, err error) {
	// modeler indexes buffer views and buffers without checking them
	defer func() {
		if p := recover(); p != nil {
			s, err = nil, fmt.Errorf("malformed glTF: %v", p)
		}
	}()

	out := scene.New()
	r := &reader{doc: doc, out: out, cache: make(map[int][]*mesh.Mesh)}

	for _, root := range rootNodes(doc) {
		if err := r.visit(root, geometry.Identity(), 0); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type reader struct {
	doc   *gltf.Document
	out   *scene.Scene
	cache map[int][]*mesh.Mesh
}

// maxDepth guards against cyclic node graphs in malformed files
const maxDepth = 256

func (r *reader) visit(index int, parent geometry.Transform, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("node hierarchy deeper than %d", maxDepth)
	}
	if index < 0 || index >= len(r.doc.Nodes) {
		return fmt.Errorf("node index %d out of range", index)
	}
	node := r.doc.Nodes[index]
	world := parent.Mul(localTransform(node))

	if node.Mesh != nil {
		meshes, err := r.meshes(*node.Mesh)
		if err != nil {
			return err
		}
		for _, m := range meshes {
			clone, err := m.Clone()
			if err != nil {
				return err
			}
			r.out.Add(clone.Name, clone, world)
		}
	}

	for _, child := range node.Children {
		if err := r.visit(child, world, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// meshes decodes every triangle primitive of mesh index once
func (r *reader) meshes(index int) ([]*mesh.Mesh, error) {
	if cached, ok := r.cache[index]; ok {
		return cached, nil
	}
	if index < 0 || index >= len(r.doc.Meshes) {
		return nil, fmt.Errorf("mesh index %d out of range", index)
	}
	src := r.doc.Meshes[index]
	name := src.Name
	if name == "" {
		name = fmt.Sprintf("mesh_%d", index)
	}

	var out []*mesh.Mesh
	for i, prim := range src.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}
		m, err := r.primitive(prim)
		if err != nil {
			return nil, fmt.Errorf("mesh %q primitive %d: %w", name, i, err)
		}
		m.Name = name
		if len(src.Primitives) > 1 {
			m.Name = fmt.Sprintf("%s_%d", name, i)
		}
		out = append(out, m)
	}
	r.cache[index] = out
	return out, nil
}

func (r *reader) primitive(prim *gltf.Primitive) (*mesh.Mesh, error) {
	posIndex, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("missing POSITION attribute")
	}
	posAccessor, err := r.accessor(posIndex)
	if err != nil {
		return nil, err
	}
	positions, err := modeler.ReadPosition(r.doc, posAccessor, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read positions: %w", err)
	}

	m := mesh.New("")
	for _, p := range positions {
		m.AddVertex(geometry.NewVector3(float64(p[0]), float64(p[1]), float64(p[2])))
	}

	if prim.Indices == nil {
		for i := 0; i+2 < len(positions); i += 3 {
			m.AddFace(i, i+1, i+2)
		}
		return m, nil
	}

	idxAccessor, err := r.accessor(*prim.Indices)
	if err != nil {
		return nil, err
	}
	indices, err := modeler.ReadIndices(r.doc, idxAccessor, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read indices: %w", err)
	}
	for i := 0; i+2 < len(indices); i += 3 {
		m.AddFace(int(indices[i]), int(indices[i+1]), int(indices[i+2]))
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *reader) accessor(index int) (*gltf.Accessor, error) {
	if index < 0 || index >= len(r.doc.Accessors) {
		return nil, fmt.Errorf("accessor index %d out of range", index)
	}
	return r.doc.Accessors[index], nil
}

func rootNodes(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		s := 0
		if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
			s = *doc.Scene
		}
		return doc.Scenes[s].Nodes
	}

	isChild := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			isChild[c] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !isChild[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

func localTransform(node *gltf.Node) geometry.Transform {
	if m := node.MatrixOrDefault(); m != gltf.DefaultMatrix {
		return geometry.FromColumnMajor(m)
	}
	return geometry.FromTRS(node.TranslationOrDefault(), node.RotationOrDefault(), node.ScaleOrDefault())
}
