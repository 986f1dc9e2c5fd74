// Package obj reads and writes Wavefront OBJ geometry. Only positions and
// faces are kept; texture coordinates, normals and materials are ignored.
package obj

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gofurnish/pkg/geometry"
	"github.com/philipparndt/gofurnish/pkg/mesh"
	"github.com/udhos/gwob"
)

// Parse reads an OBJ file. Named objects ("o") and groups ("g") become
// separate parts; faces before any name belong to a part named after the file.
func Parse(filename string) (*mesh.Asset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file, strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
}

// Decode reads OBJ data from r. defaultName names faces outside any group.
func Decode(r io.Reader, defaultName string) (*mesh.Asset, error) {
	src, err := normalizeGroups(r, defaultName)
	if err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}

	options := &gwob.ObjParserOptions{
		IgnoreNormals: true,
		Logger: func(msg string) {
			slog.Debug("obj parser", "name", defaultName, "msg", strings.TrimSpace(msg))
		},
	}
	o, err := gwob.NewObjFromBuf(defaultName, src, options)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OBJ: %w", err)
	}
	if o.StrideSize == 0 {
		return nil, fmt.Errorf("no faces found")
	}

	// usemtl switches open a new gwob group under the same name
	var order []string
	faces := make(map[string][]int)
	for _, g := range o.Groups {
		if g.IndexCount == 0 {
			continue
		}
		end := g.IndexBegin + g.IndexCount
		if g.IndexBegin < 0 || end > len(o.Indices) {
			return nil, fmt.Errorf("group %q: index range %d..%d out of bounds", g.Name, g.IndexBegin, end)
		}
		name := g.Name
		if name == "" {
			name = defaultName
		}
		if _, seen := faces[name]; !seen {
			order = append(order, name)
		}
		faces[name] = append(faces[name], o.Indices[g.IndexBegin:end]...)
	}

	asset := &mesh.Asset{}
	for _, name := range order {
		m, err := compact(name, faces[name], o)
		if err != nil {
			return nil, err
		}
		asset.AddPart(name, m)
	}
	if len(asset.Parts) == 0 {
		return nil, fmt.Errorf("no faces found")
	}
	return asset, nil
}

// normalizeGroups rewrites "o" lines as "g" lines so objects and groups both
// start a part. Faces before the first name and after a bare "o" or "g"
// belong to defaultName.
func normalizeGroups(r io.Reader, defaultName string) ([]byte, error) {
	var out bytes.Buffer
	out.WriteString("g " + defaultName + "\n")
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) > 0 && (fields[0] == "o" || fields[0] == "g") {
			name := defaultName
			if len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}
			line = "g " + name
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.Bytes(), scanner.Err()
}

// compact builds a mesh holding only the vertices the group uses
func compact(name string, indices []int, o *gwob.Obj) (*mesh.Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("group %q: index count %d is not a multiple of 3", name, len(indices))
	}
	floatsPerStride := o.StrideSize / 4
	offset := o.StrideOffsetPosition / 4
	strides := len(o.Coord) / floatsPerStride

	m := mesh.New(name)
	remap := make(map[int]int)
	local := func(stride int) (int, error) {
		if i, ok := remap[stride]; ok {
			return i, nil
		}
		if stride < 0 || stride >= strides {
			return 0, fmt.Errorf("group %q: vertex %d out of range (%d vertices)", name, stride, strides)
		}
		f := stride*floatsPerStride + offset
		i := m.AddVertex(geometry.NewVector3(float64(o.Coord[f]), float64(o.Coord[f+1]), float64(o.Coord[f+2])))
		remap[stride] = i
		return i, nil
	}

	for k := 0; k < len(indices); k += 3 {
		var face [3]int
		for j := 0; j < 3; j++ {
			i, err := local(indices[k+j])
			if err != nil {
				return nil, err
			}
			face[j] = i
		}
		m.AddFace(face[0], face[1], face[2])
	}
	return m, nil
}
