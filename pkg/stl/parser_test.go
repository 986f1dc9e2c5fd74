package stl

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gofurnish/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const asciiTriangle = `solid tri
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
endsolid tri
`

func TestDecodeASCII(t *testing.T) {
	m, err := Decode(strings.NewReader(asciiTriangle))
	require.NoError(t, err)

	assert.Equal(t, "tri", m.Name)
	require.Len(t, m.Faces, 1)
	assert.Equal(t, geometry.NewVector3(1, 0, 0), m.Vertices[1])
}

func TestDecodeASCIIInvalidCoordinate(t *testing.T) {
	_, err := Decode(strings.NewReader(strings.Replace(asciiTriangle, "vertex 1 0 0", "vertex one 0 0", 1)))
	assert.Error(t, err)
}

func binarySTL(t *testing.T, header string) []byte {
	t.Helper()
	var buf bytes.Buffer
	h := make([]byte, 80)
	copy(h, header)
	buf.Write(h)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(1)))
	facet := []float32{0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 2, 0}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, facet))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(0)))
	return buf.Bytes()
}

func TestDecodeBinary(t *testing.T) {
	m, err := Decode(bytes.NewReader(binarySTL(t, "part")))
	require.NoError(t, err)

	assert.Equal(t, "part", m.Name)
	require.Len(t, m.Faces, 1)
	assert.InDelta(t, 2.0, m.SurfaceArea(), 1e-9)
}

func TestDecodeBinaryWithSolidHeader(t *testing.T) {
	m, err := Decode(bytes.NewReader(binarySTL(t, "solid exported by cad")))
	require.NoError(t, err)
	assert.Len(t, m.Faces, 1)
}

func TestDecodeTruncated(t *testing.T) {
	data := binarySTL(t, "part")
	_, err := Decode(bytes.NewReader(data[:len(data)-10]))
	assert.Error(t, err)
}

func TestParseNamesAfterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lamp.stl")
	require.NoError(t, os.WriteFile(path, binarySTL(t, ""), 0o644))

	m, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "lamp", m.Name)
}
