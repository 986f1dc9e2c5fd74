package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/philipparndt/gofurnish/pkg/scene"
)

// Save writes the scene to an OBJ file
func Save(s *scene.Scene, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Encode(file, s); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Encode writes every entry as a named object with world-space vertices
func Encode(w io.Writer, s *scene.Scene) error {
	bw := bufio.NewWriter(w)
	offset := 1

	for _, e := range s.Entries() {
		fmt.Fprintf(bw, "o %s\n", e.Name)
		for _, v := range e.WorldVertices() {
			fmt.Fprintf(bw, "v %s %s %s\n", format(v.X), format(v.Y), format(v.Z))
		}
		for _, f := range e.Mesh.Faces {
			fmt.Fprintf(bw, "f %d %d %d\n", f[0]+offset, f[1]+offset, f[2]+offset)
		}
		offset += len(e.Mesh.Vertices)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write OBJ: %w", err)
	}
	return nil
}

func format(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
