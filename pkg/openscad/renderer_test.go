package openscad

import (
	"errors"
	"testing"
)

func TestRenderToSTLMissingBinary(t *testing.T) {
	r := &Renderer{Binary: "gofurnish-no-such-openscad"}

	err := r.RenderToSTL("model.scad", "model.stl")
	if !errors.Is(err, ErrNotInstalled) {
		t.Errorf("expected ErrNotInstalled, got %v", err)
	}

	if _, err := r.Load("model.scad"); !errors.Is(err, ErrNotInstalled) {
		t.Errorf("Load: expected ErrNotInstalled, got %v", err)
	}
}
