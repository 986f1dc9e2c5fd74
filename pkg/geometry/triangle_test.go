package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Create a right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleNormal(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	normal := tri.Normal()
	expected := NewVector3(0, 0, 1)

	if normal != expected {
		t.Errorf("Normal failed: expected %v, got %v", expected, normal)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if !center.ApproxEqual(expected, 1e-12) {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestTriangleTransform(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	moved := tri.Transform(Translation(NewVector3(0, 0, 5)))

	if moved.V1 != NewVector3(0, 0, 5) || moved.V2 != NewVector3(1, 0, 5) || moved.V3 != NewVector3(0, 1, 5) {
		t.Errorf("Transform failed: got %v", moved)
	}
	if math.Abs(moved.Area()-tri.Area()) > 1e-12 {
		t.Errorf("Transform changed area: expected %v, got %v", tri.Area(), moved.Area())
	}
}
