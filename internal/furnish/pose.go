package furnish

import (
	"github.com/philipparndt/gofurnish/pkg/geometry"
	"gonum.org/v1/gonum/spatial/r3"
)

// ResolvePose converts a record into its placement transform: the rotation
// from the quaternion (only when it has exactly 4 components) followed by
// the translation to Position.
func ResolvePose(r FurnitureRecord) geometry.Transform {
	var rotation *r3.Mat
	if q := r.Orientation; len(q) == 4 {
		rotation = geometry.QuaternionMatrix(q[0], q[1], q[2], q[3])
	}
	return geometry.NewTransform(rotation, r.Position)
}
