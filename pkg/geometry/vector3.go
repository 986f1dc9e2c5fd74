package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3 represents a 3D point or vector
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// FromVec converts a gonum vector
func FromVec(v r3.Vec) Vector3 {
	return Vector3(v)
}

// Vec returns the vector as a gonum r3.Vec
func (v Vector3) Vec() r3.Vec {
	return r3.Vec(v)
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return FromVec(r3.Add(v.Vec(), other.Vec()))
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return FromVec(r3.Sub(v.Vec(), other.Vec()))
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return FromVec(r3.Scale(scalar, v.Vec()))
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return r3.Dot(v.Vec(), other.Vec())
}

// Cross returns the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return FromVec(r3.Cross(v.Vec(), other.Vec()))
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return r3.Norm(v.Vec())
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction
func (v Vector3) Normalize() Vector3 {
	if v.Length() == 0 {
		return Vector3{}
	}
	return FromVec(r3.Unit(v.Vec()))
}

// Min returns a vector with the minimum components of two vectors
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{
		X: math.Min(v.X, other.X),
		Y: math.Min(v.Y, other.Y),
		Z: math.Min(v.Z, other.Z),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{
		X: math.Max(v.X, other.X),
		Y: math.Max(v.Y, other.Y),
		Z: math.Max(v.Z, other.Z),
	}
}

// Component returns the coordinate on the given axis (0=X, 1=Y, 2=Z)
func (v Vector3) Component(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// ApproxEqual reports whether all components differ by at most tol
func (v Vector3) ApproxEqual(other Vector3, tol float64) bool {
	return math.Abs(v.X-other.X) <= tol &&
		math.Abs(v.Y-other.Y) <= tol &&
		math.Abs(v.Z-other.Z) <= tol
}
