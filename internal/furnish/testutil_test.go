package furnish

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gofurnish/pkg/geometry"
	"github.com/philipparndt/gofurnish/pkg/mesh"
	"github.com/stretchr/testify/require"
)

// unitCube returns a cube of edge 1 centered at the origin
func unitCube(name string) *mesh.Mesh {
	m := mesh.New(name)
	for _, x := range []float64{-0.5, 0.5} {
		for _, y := range []float64{-0.5, 0.5} {
			for _, z := range []float64{-0.5, 0.5} {
				m.AddVertex(geometry.NewVector3(x, y, z))
			}
		}
	}
	faces := [][3]int{
		{0, 1, 3}, {0, 3, 2}, {4, 6, 7}, {4, 7, 5},
		{0, 4, 5}, {0, 5, 1}, {2, 3, 7}, {2, 7, 6},
		{0, 2, 6}, {0, 6, 4}, {1, 5, 7}, {1, 7, 3},
	}
	for _, f := range faces {
		m.AddFace(f[0], f[1], f[2])
	}
	return m
}

// writeOBJ writes named objects to path; an empty name writes no "o" line
func writeOBJ(t *testing.T, path string, objects map[string]*mesh.Mesh, order ...string) {
	t.Helper()
	var b strings.Builder
	offset := 1
	for _, name := range order {
		m := objects[name]
		if name != "" {
			fmt.Fprintf(&b, "o %s\n", name)
		}
		for _, v := range m.Vertices {
			fmt.Fprintf(&b, "v %g %g %g\n", v.X, v.Y, v.Z)
		}
		for _, f := range m.Faces {
			fmt.Fprintf(&b, "f %d %d %d\n", f[0]+offset, f[1]+offset, f[2]+offset)
		}
		offset += len(m.Vertices)
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
}
