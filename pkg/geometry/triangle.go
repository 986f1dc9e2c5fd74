package geometry

// Triangle represents a triangular face in 3D space
type Triangle struct {
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(v1, v2, v3 Vector3) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// Normal computes the unit normal of the triangle from its winding
func (t Triangle) Normal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2.0
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return t.V1.Add(t.V2).Add(t.V3).Mul(1.0 / 3.0)
}

// Transform returns the triangle with every vertex moved by m
func (t Triangle) Transform(m Transform) Triangle {
	return Triangle{V1: m.Apply(t.V1), V2: m.Apply(t.V2), V3: m.Apply(t.V3)}
}
