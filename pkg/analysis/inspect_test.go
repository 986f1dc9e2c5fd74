package analysis

import (
	"testing"

	"github.com/philipparndt/gofurnish/pkg/geometry"
	"github.com/philipparndt/gofurnish/pkg/mesh"
	"github.com/philipparndt/gofurnish/pkg/scene"
)

// slab returns a box spanning [0,1]x[0,1]x[low,high]
func slab(low, high float64) *mesh.Mesh {
	m := mesh.New("slab")
	a := m.AddVertex(geometry.NewVector3(0, 0, low))
	b := m.AddVertex(geometry.NewVector3(1, 0, low))
	c := m.AddVertex(geometry.NewVector3(1, 1, high))
	m.AddFace(a, b, c)
	return m
}

func TestClassify(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		name      string
		low, high float64
		expected  Category
	}{
		{"floor", -0.1, 0.05, Floor},
		{"ceiling", 2.5, 2.7, Ceiling},
		{"wall", 0, 2.8, Wall},
		{"table", 0, 0.8, Object},
		{"floor wins over wall", -3, 0.1, Floor},
		{"exactly floor limit", 0, 0.2, Object},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := th.Classify(tt.low, tt.high); got != tt.expected {
				t.Errorf("Classify(%v, %v) = %v, expected %v", tt.low, tt.high, got, tt.expected)
			}
		})
	}
}

func TestInspect(t *testing.T) {
	s := scene.New()
	s.Add("floor", slab(0, 0.1), geometry.Identity())
	s.Add("lamp", slab(0, 0.5), geometry.Translation(geometry.NewVector3(0, 0, 2.2)))

	info := Inspect(s, Options{UpAxis: 2, Thresholds: DefaultThresholds()})

	if len(info.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(info.Entries))
	}
	if info.Entries[0].Category != Floor {
		t.Errorf("Expected floor, got %v", info.Entries[0].Category)
	}
	lamp := info.Entries[1]
	if lamp.Category != Ceiling {
		t.Errorf("Expected translated lamp to be a ceiling, got %v", lamp.Category)
	}
	if lamp.Low != 2.2 {
		t.Errorf("Expected low 2.2, got %v", lamp.Low)
	}
	if info.Vertices != 6 || info.Triangles != 2 {
		t.Errorf("Expected 6 vertices and 2 triangles, got %d and %d", info.Vertices, info.Triangles)
	}
	if info.BoundingBox.Max.Z != 2.7 {
		t.Errorf("Expected scene top 2.7, got %v", info.BoundingBox.Max.Z)
	}

	local := Inspect(s, Options{UpAxis: 2, Thresholds: DefaultThresholds(), Local: true})
	if local.Entries[1].Category != Object {
		t.Errorf("Expected local lamp to be an object, got %v", local.Entries[1].Category)
	}
}

func TestInspectUpAxis(t *testing.T) {
	s := scene.New()
	s.Add("wall", slab(0, 3), geometry.RotationX(-90))

	info := Inspect(s, Options{UpAxis: 1, Thresholds: DefaultThresholds()})
	if info.Entries[0].Category != Wall {
		t.Errorf("Expected wall along Y, got %v", info.Entries[0].Category)
	}
}

func TestCountAndFilter(t *testing.T) {
	info := &SceneInfo{Entries: []EntryInfo{
		{Name: "a", Category: Wall, High: 3},
		{Name: "b", Category: Object, High: 1},
		{Name: "c", Category: Wall, High: 2.5},
	}}

	if n := info.CountByCategory()[Wall]; n != 2 {
		t.Errorf("Expected 2 walls, got %d", n)
	}
	if walls := info.FilterByCategory(Wall); len(walls) != 2 || walls[1].Name != "c" {
		t.Errorf("Unexpected walls: %v", walls)
	}
	tallest := info.TallestEntries(5)
	if len(tallest) != 3 || tallest[0].Name != "a" || tallest[2].Name != "b" {
		t.Errorf("Unexpected order: %v", tallest)
	}
}

func TestParseAxis(t *testing.T) {
	if axis, err := ParseAxis("Y"); err != nil || axis != 1 {
		t.Errorf("Expected axis 1, got %d (%v)", axis, err)
	}
	if _, err := ParseAxis("w"); err == nil {
		t.Error("Expected error for invalid axis")
	}
}

func TestTruncateName(t *testing.T) {
	if got := TruncateName("short", 30); got != "short" {
		t.Errorf("Expected short, got %s", got)
	}
	long := "a_very_long_geometry_name_that_overflows"
	if got := TruncateName(long, 29); got != long[:27]+".." || len(got) != 29 {
		t.Errorf("Unexpected truncation: %s", got)
	}
}

func TestFormatVector(t *testing.T) {
	expected := "(1.000000, -2.500000, 0.000000)"
	if got := FormatVector(geometry.NewVector3(1, -2.5, 0)); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := ParseCategory("wall"); err != nil || c != Wall {
		t.Errorf("Expected Wall, got %v (%v)", c, err)
	}
	if c, err := ParseCategory("Ceiling"); err != nil || c != Ceiling {
		t.Errorf("Expected Ceiling, got %v (%v)", c, err)
	}
	if _, err := ParseCategory("door"); err == nil {
		t.Error("Expected error for unknown category")
	}
}

func TestInspectSurfaceAndSceneBounds(t *testing.T) {
	s := scene.New()
	s.Add("a", slab(0, 1), geometry.Translation(geometry.NewVector3(5, 0, 0)))
	s.Add("b", slab(0, 1), geometry.Identity())

	info := Inspect(s, Options{UpAxis: 2, Thresholds: DefaultThresholds()})
	if info.BoundingBox != s.BoundingBox() {
		t.Errorf("Expected scene bounds %v, got %v", s.BoundingBox(), info.BoundingBox)
	}
	if info.BoundingBox.Max.X != 6 {
		t.Errorf("Expected translated max X 6, got %v", info.BoundingBox.Max.X)
	}

	local := Inspect(s, Options{UpAxis: 2, Thresholds: DefaultThresholds(), Local: true})
	if local.BoundingBox.Max.X != 1 {
		t.Errorf("Expected local max X 1, got %v", local.BoundingBox.Max.X)
	}

	expected := 2 * s.Entries()[0].Mesh.SurfaceArea()
	if info.SurfaceArea != expected {
		t.Errorf("Expected surface area %v, got %v", expected, info.SurfaceArea)
	}
}

func TestFormatMeasurement(t *testing.T) {
	if got := FormatMeasurement(1.5, ""); got != "1.500000 units" {
		t.Errorf("Expected default unit, got %s", got)
	}
	if got := FormatMeasurement(2, "square units"); got != "2.000000 square units" {
		t.Errorf("Unexpected format: %s", got)
	}
}
