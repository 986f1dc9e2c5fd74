package furnish

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/philipparndt/gofurnish/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// WrapperKey is the optional top-level key holding the placement mapping
const WrapperKey = "urdfs"

// FurnitureRecord is one placement from the metadata document
type FurnitureRecord struct {
	// Key is the metadata key, e.g. "bottom_cabinet_15_0.urdf"
	Key string
	// ID is Key without extension; it names the asset folder
	ID       string
	Position geometry.Vector3
	// Orientation is a quaternion in x, y, z, w order. It is kept as read;
	// any length other than 4 means no rotation.
	Orientation []float64
}

// placement mirrors one metadata value; both fields are optional
type placement struct {
	Pos []float64 `yaml:"pos"`
	Rot []float64 `yaml:"rot"`
}

// IdentityOrientation is used when a record has no rot field
func IdentityOrientation() []float64 {
	return []float64{0, 0, 0, 1}
}

// IdentifierFromKey strips everything from the first dot
func IdentifierFromKey(key string) string {
	id, _, _ := strings.Cut(key, ".")
	return id
}

// ResolveMetadataPath returns primary if it exists, otherwise alternate if
// it exists, otherwise ErrMetadataNotFound
func ResolveMetadataPath(primary, alternate string) (string, error) {
	if fileExists(primary) {
		return primary, nil
	}
	if alternate != "" && fileExists(alternate) {
		return alternate, nil
	}
	return "", ErrMetadataNotFound
}

// LoadMetadata reads the placement records from a YAML (or JSON) file
func LoadMetadata(path string) ([]FurnitureRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata: %w", err)
	}
	defer file.Close()

	return DecodeMetadata(file)
}

// DecodeMetadata parses a metadata document. The mapping may sit under
// WrapperKey or be the document itself. Records keep document order; a
// repeated key replaces the earlier value in its original position.
func DecodeMetadata(r io.Reader) ([]FurnitureRecord, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("metadata document is empty")
		}
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("metadata must be a mapping, got %s", kindName(root.Kind))
	}
	if wrapped := mappingValue(root, WrapperKey); wrapped != nil {
		if isNull(wrapped) {
			return []FurnitureRecord{}, nil
		}
		if wrapped.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("metadata key %q must be a mapping, got %s", WrapperKey, kindName(wrapped.Kind))
		}
		root = wrapped
	}

	records := make([]FurnitureRecord, 0, len(root.Content)/2)
	seen := make(map[string]int)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		record, err := decodeRecord(key, root.Content[i+1])
		if err != nil {
			return nil, err
		}
		if at, dup := seen[key]; dup {
			records[at] = record
			continue
		}
		seen[key] = len(records)
		records = append(records, record)
	}
	return records, nil
}

func decodeRecord(key string, value *yaml.Node) (FurnitureRecord, error) {
	record := FurnitureRecord{
		Key:         key,
		ID:          IdentifierFromKey(key),
		Orientation: IdentityOrientation(),
	}

	var p placement
	if !isNull(value) {
		if err := value.Decode(&p); err != nil {
			return record, fmt.Errorf("metadata entry %q (line %d): %w", key, value.Line, err)
		}
	}

	if p.Pos != nil {
		if len(p.Pos) != 3 {
			return record, fmt.Errorf("metadata entry %q (line %d): pos needs 3 components, got %d", key, value.Line, len(p.Pos))
		}
		record.Position = geometry.NewVector3(p.Pos[0], p.Pos[1], p.Pos[2])
	}
	if p.Rot != nil {
		record.Orientation = p.Rot
	}
	return record, nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "document"
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
