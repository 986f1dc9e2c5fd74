package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/gofurnish/pkg/geometry"
	"github.com/philipparndt/gofurnish/pkg/mesh"
)

// Parse reads an STL file and returns its triangles as a mesh.
// It automatically detects whether the file is ASCII or binary format.
// The mesh is named after the solid, or the file name without extension.
func Parse(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	m, err := Decode(file)
	if err != nil {
		return nil, err
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return m, nil
}

// Decode reads ASCII or binary STL from r
func Decode(r io.Reader) (*mesh.Mesh, error) {
	br := bufio.NewReader(r)

	// Peek at the first bytes to determine the format
	header, err := br.Peek(5)
	if err != nil {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	// ASCII files start with "solid". Some binary exporters also write that
	// into the 80-byte header, so fall back to binary when no facets parse.
	if string(header) == "solid" {
		data, err := io.ReadAll(br)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		m, err := parseASCII(bytes.NewReader(data))
		if err == nil && len(m.Faces) > 0 {
			return m, nil
		}
		return parseBinary(bytes.NewReader(data))
	}

	return parseBinary(br)
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(reader)
	m := mesh.New("")

	var vertices []geometry.Vector3

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				m.Name = strings.Join(fields[1:], " ")
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("malformed vertex line: %q", scanner.Text())
			}
			v, err := parseVertex(fields[1:4])
			if err != nil {
				return nil, err
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) == 3 {
				m.AddTriangle(geometry.NewTriangle(vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return m, nil
}

func parseVertex(fields []string) (geometry.Vector3, error) {
	var xyz [3]float64
	for i, f := range fields {
		value, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid vertex coordinate %q: %w", f, err)
		}
		xyz[i] = value
	}
	return geometry.NewVector3(xyz[0], xyz[1], xyz[2]), nil
}

// parseBinary parses a binary STL file
func parseBinary(reader io.Reader) (*mesh.Mesh, error) {
	m := mesh.New("")

	// Read 80-byte header
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	m.Name = strings.TrimSpace(string(bytes.TrimRight(header, "\x00")))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	// normal, three vertices and the attribute byte count
	var facet struct {
		Normal    [3]float32
		V         [3][3]float32
		Attribute uint16
	}
	for i := uint32(0); i < triangleCount; i++ {
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		m.AddTriangle(geometry.NewTriangle(
			vec(facet.V[0]),
			vec(facet.V[1]),
			vec(facet.V[2]),
		))
	}

	return m, nil
}

func vec(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
