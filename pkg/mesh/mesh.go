package mesh

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/philipparndt/gofurnish/pkg/geometry"
)

// Mesh is an indexed triangle mesh in local coordinates
type Mesh struct {
	Name     string
	Vertices []geometry.Vector3
	Faces    [][3]int
}

// New creates an empty mesh
func New(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]geometry.Vector3, 0),
		Faces:    make([][3]int, 0),
	}
}

// AddVertex appends a vertex and returns its index
func (m *Mesh) AddVertex(v geometry.Vector3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a triangle referencing existing vertices
func (m *Mesh) AddFace(a, b, c int) {
	m.Faces = append(m.Faces, [3]int{a, b, c})
}

// AddTriangle appends a triangle with three new vertices
func (m *Mesh) AddTriangle(t geometry.Triangle) {
	a := m.AddVertex(t.V1)
	b := m.AddVertex(t.V2)
	c := m.AddVertex(t.V3)
	m.AddFace(a, b, c)
}

// Triangle returns face i as a triangle
func (m *Mesh) Triangle(i int) geometry.Triangle {
	f := m.Faces[i]
	return geometry.NewTriangle(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]])
}

// Validate checks that every face references an existing vertex
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("face %d references vertex %d of %d", i, idx, len(m.Vertices))
			}
		}
	}
	return nil
}

// Clone returns a deep copy that shares no slices with m
func (m *Mesh) Clone() (*Mesh, error) {
	out := &Mesh{}
	if err := copier.CopyWithOption(out, m, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("failed to copy mesh %q: %w", m.Name, err)
	}
	return out, nil
}

// Transform moves every vertex by t in place
func (m *Mesh) Transform(t geometry.Transform) {
	m.Vertices = t.ApplyAll(m.Vertices)
}

// Append adds all vertices and faces of other to m
func (m *Mesh) Append(other *Mesh) {
	offset := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, f := range other.Faces {
		m.AddFace(f[0]+offset, f[1]+offset, f[2]+offset)
	}
}

// BoundingBox calculates the bounding box of the mesh under transform t
func (m *Mesh) BoundingBox(t geometry.Transform) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range t.ApplyAll(m.Vertices) {
		bbox.Extend(v)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the mesh
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for i := range m.Faces {
		total += m.Triangle(i).Area()
	}
	return total
}
