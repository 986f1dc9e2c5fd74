package openscad

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gofurnish/pkg/mesh"
	"github.com/philipparndt/gofurnish/pkg/stl"
)

// ErrNotInstalled is returned when the openscad binary is not on PATH
var ErrNotInstalled = errors.New("openscad not found in PATH. Please install OpenSCAD from https://openscad.org/")

// Renderer handles OpenSCAD file rendering to STL
type Renderer struct {
	// Binary is the executable to run, "openscad" by default
	Binary string
}

// NewRenderer creates a new OpenSCAD renderer
func NewRenderer() *Renderer {
	return &Renderer{Binary: "openscad"}
}

// RenderToSTL renders an OpenSCAD file to STL format
func (r *Renderer) RenderToSTL(scadFile, outputFile string) error {
	if _, err := exec.LookPath(r.Binary); err != nil {
		return ErrNotInstalled
	}

	absScadFile, err := filepath.Abs(scadFile)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", scadFile, err)
	}

	cmd := exec.Command(r.Binary, "-o", outputFile, absScadFile)
	cmd.Dir = filepath.Dir(absScadFile)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var errMsg strings.Builder
		errMsg.WriteString(fmt.Sprintf("failed to render %s: %v", scadFile, err))
		if stderr.Len() > 0 {
			errMsg.WriteString("\nstderr: ")
			errMsg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			errMsg.WriteString("\nstdout: ")
			errMsg.WriteString(stdout.String())
		}
		return errors.New(errMsg.String())
	}

	return nil
}

// Load renders scadFile into a temporary STL and parses it
func (r *Renderer) Load(scadFile string) (*mesh.Mesh, error) {
	tmp, err := os.CreateTemp("", "gofurnish-*.stl")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	tempFile := tmp.Name()
	tmp.Close()
	defer os.Remove(tempFile)

	if err := r.RenderToSTL(scadFile, tempFile); err != nil {
		return nil, err
	}

	m, err := stl.Parse(tempFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
	}
	m.Name = strings.TrimSuffix(filepath.Base(scadFile), filepath.Ext(scadFile))
	return m, nil
}
