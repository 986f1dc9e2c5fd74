// Package scene holds an insertion-ordered collection of named meshes, each
// placed in the world by its own transform.
package scene

import (
	"fmt"

	"github.com/philipparndt/gofurnish/pkg/geometry"
	"github.com/philipparndt/gofurnish/pkg/mesh"
)

// DefaultName is used for entries added without a name
const DefaultName = "geometry"

// Entry is one named geometry in the scene
type Entry struct {
	Name      string
	Mesh      *mesh.Mesh
	Transform geometry.Transform
}

// WorldVertices returns the entry's vertices in scene coordinates
func (e *Entry) WorldVertices() []geometry.Vector3 {
	return e.Transform.ApplyAll(e.Mesh.Vertices)
}

// BoundingBox returns the world-space bounds of the entry
func (e *Entry) BoundingBox() geometry.BoundingBox {
	return e.Mesh.BoundingBox(e.Transform)
}

// Scene is an ordered set of uniquely named entries
type Scene struct {
	entries []*Entry
	index   map[string]int
}

// New creates an empty scene
func New() *Scene {
	return &Scene{
		entries: make([]*Entry, 0),
		index:   make(map[string]int),
	}
}

// Add inserts a mesh under a name unique within the scene and returns the
// name used. Collisions get the first free suffix _1, _2, ...
func (s *Scene) Add(name string, m *mesh.Mesh, t geometry.Transform) string {
	unique := s.UniqueName(name)
	s.index[unique] = len(s.entries)
	s.entries = append(s.entries, &Entry{Name: unique, Mesh: m, Transform: t})
	return unique
}

// UniqueName returns name, or name with the first free numeric suffix
func (s *Scene) UniqueName(name string) string {
	if name == "" {
		name = DefaultName
	}
	if _, taken := s.index[name]; !taken {
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", name, i)
		if _, taken := s.index[candidate]; !taken {
			return candidate
		}
	}
}

// Delete removes the named entry and reports whether it existed
func (s *Scene) Delete(name string) bool {
	i, ok := s.index[name]
	if !ok {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	delete(s.index, name)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].Name] = j
	}
	return true
}

// Entry looks up an entry by name
func (s *Scene) Entry(name string) (*Entry, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.entries[i], true
}

// Entries returns the entries in insertion order
func (s *Scene) Entries() []*Entry {
	return s.entries
}

// Names returns the entry names in insertion order
func (s *Scene) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of entries
func (s *Scene) Len() int {
	return len(s.entries)
}

// ApplyTransform moves the whole scene by t. Every entry's transform becomes
// t applied after its current one.
func (s *Scene) ApplyTransform(t geometry.Transform) {
	for _, e := range s.entries {
		e.Transform = t.Mul(e.Transform)
	}
}

// BoundingBox returns the world-space bounds of all entries
func (s *Scene) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, e := range s.entries {
		bbox.Merge(e.BoundingBox())
	}
	return bbox
}

// Counts returns the total number of vertices and faces
func (s *Scene) Counts() (vertices, faces int) {
	for _, e := range s.entries {
		vertices += len(e.Mesh.Vertices)
		faces += len(e.Mesh.Faces)
	}
	return vertices, faces
}
