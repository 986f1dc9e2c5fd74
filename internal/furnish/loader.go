package furnish

import (
	"fmt"

	"github.com/philipparndt/gofurnish/pkg/mesh"
	"github.com/philipparndt/gofurnish/pkg/meshio"
	"github.com/philipparndt/gofurnish/pkg/scene"
)

// AssetLoader decodes located model files into assets
type AssetLoader struct {
	// MergeParts concatenates multi-part models into one mesh
	MergeParts bool

	decode func(filename string) (*scene.Scene, error)
}

// NewAssetLoader creates a loader backed by the meshio codecs
func NewAssetLoader(mergeParts bool) *AssetLoader {
	return &AssetLoader{MergeParts: mergeParts, decode: meshio.Load}
}

// Load reads path into an asset. Node transforms of the decoded file are
// baked into the vertices so every part is a plain mesh. Errors wrap ErrLoad.
func (l *AssetLoader) Load(path string) (*mesh.Asset, error) {
	decoded, err := l.decode(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoad, path, err)
	}
	if decoded.Len() == 0 {
		return nil, fmt.Errorf("%w %s: no geometry", ErrLoad, path)
	}

	asset := &mesh.Asset{}
	for _, e := range decoded.Entries() {
		if !e.Transform.IsIdentity() {
			e.Mesh.Transform(e.Transform)
		}
		asset.AddPart(e.Name, e.Mesh)
	}

	if l.MergeParts && !asset.Single() {
		return mesh.NewAsset(asset.Merged(asset.Parts[0].Name)), nil
	}
	return asset, nil
}
