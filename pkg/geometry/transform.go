package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a 4x4 affine matrix stored row-major. The rotation occupies
// the top-left 3x3 block, the translation the top-right column and the
// bottom row is always [0 0 0 1].
type Transform [4][4]float64

// Identity returns the identity transform
func Identity() Transform {
	return Transform{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewTransform builds a transform from a 3x3 rotation and a translation.
// A nil rotation leaves the rotation block as identity.
func NewTransform(rotation *r3.Mat, translation Vector3) Transform {
	t := Identity()
	if rotation != nil {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				t[i][j] = rotation.At(i, j)
			}
		}
	}
	t[0][3] = translation.X
	t[1][3] = translation.Y
	t[2][3] = translation.Z
	return t
}

// Translation returns a pure translation transform
func Translation(v Vector3) Transform {
	return NewTransform(nil, v)
}

// QuaternionMatrix converts a quaternion given as x, y, z, w into a rotation
// matrix. The quaternion is used as given; a non-unit input yields a matrix
// that is not a pure rotation.
func QuaternionMatrix(x, y, z, w float64) *r3.Mat {
	return r3.Rotation(quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}).Mat()
}

// AxisRotation returns a transform rotating by radians around axis
func AxisRotation(radians float64, axis Vector3) Transform {
	return NewTransform(r3.NewRotation(radians, axis.Vec()).Mat(), Vector3{})
}

// RotationX returns a transform rotating by degrees around the X axis
func RotationX(degrees float64) Transform {
	return AxisRotation(degrees*math.Pi/180, NewVector3(1, 0, 0))
}

// Mul returns t*other, i.e. other is applied first
func (t Transform) Mul(other Transform) Transform {
	var out mat.Dense
	out.Mul(t.Dense(), other.Dense())
	return FromDense(&out)
}

// Apply transforms a point
func (t Transform) Apply(p Vector3) Vector3 {
	return t.ApplyAll([]Vector3{p})[0]
}

// ApplyAll transforms every point with a single matrix product
func (t Transform) ApplyAll(points []Vector3) []Vector3 {
	out := make([]Vector3, len(points))
	if len(points) == 0 {
		return out
	}

	// one homogeneous point per column
	h := mat.NewDense(4, len(points), nil)
	for j, p := range points {
		h.Set(0, j, p.X)
		h.Set(1, j, p.Y)
		h.Set(2, j, p.Z)
		h.Set(3, j, 1)
	}
	var moved mat.Dense
	moved.Mul(t.Dense(), h)

	for j := range out {
		out[j] = Vector3{X: moved.At(0, j), Y: moved.At(1, j), Z: moved.At(2, j)}
	}
	return out
}

// Dense returns t as a gonum matrix
func (t Transform) Dense() *mat.Dense {
	data := make([]float64, 0, 16)
	for _, row := range t {
		data = append(data, row[:]...)
	}
	return mat.NewDense(4, 4, data)
}

// FromDense copies a 4x4 gonum matrix
func FromDense(m mat.Matrix) Transform {
	var t Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t[i][j] = m.At(i, j)
		}
	}
	return t
}

// TranslationPart returns the translation column
func (t Transform) TranslationPart() Vector3 {
	return Vector3{X: t[0][3], Y: t[1][3], Z: t[2][3]}
}

// IsIdentity reports whether t equals the identity exactly
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// ApproxEqual reports whether every element differs by at most tol
func (t Transform) ApproxEqual(other Transform, tol float64) bool {
	return mat.EqualApprox(t.Dense(), other.Dense(), tol)
}

// ColumnMajor returns the elements in column-major order as used by glTF
func (t Transform) ColumnMajor() [16]float64 {
	var m [16]float64
	copy(m[:], mat.DenseCopyOf(t.Dense().T()).RawMatrix().Data)
	return m
}

// FromColumnMajor is the inverse of ColumnMajor
func FromColumnMajor(m [16]float64) Transform {
	return FromDense(mat.NewDense(4, 4, m[:]).T())
}

// FromTRS composes translation * rotation * scale. The rotation is a
// quaternion in x, y, z, w order.
func FromTRS(translation [3]float64, rotation [4]float64, scale [3]float64) Transform {
	t := NewTransform(
		QuaternionMatrix(rotation[0], rotation[1], rotation[2], rotation[3]),
		NewVector3(translation[0], translation[1], translation[2]),
	)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] *= scale[j]
		}
	}
	return t
}
