package furnish

import (
	"github.com/philipparndt/gofurnish/pkg/meshio"
	"github.com/philipparndt/gofurnish/pkg/scene"
)

// Exporter writes the composed scene
type Exporter struct {
	encode func(s *scene.Scene, filename string) error
}

// NewExporter creates an exporter backed by the meshio codecs; the format
// follows the output file extension
func NewExporter() *Exporter {
	return &Exporter{encode: meshio.Save}
}

// Export writes s to path. Any failure is a FatalExportError.
func (e *Exporter) Export(s *scene.Scene, path string) error {
	if err := e.encode(s, path); err != nil {
		return &FatalExportError{Path: path, Err: err}
	}
	return nil
}
