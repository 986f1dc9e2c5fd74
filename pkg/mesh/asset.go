package mesh

// Part is one named sub-geometry of an asset
type Part struct {
	Name string
	Mesh *Mesh
}

// Asset is the geometry loaded for one model file: either a single mesh or
// an ordered list of named parts.
type Asset struct {
	Parts []Part
}

// NewAsset wraps a single mesh
func NewAsset(m *Mesh) *Asset {
	return &Asset{Parts: []Part{{Name: m.Name, Mesh: m}}}
}

// AddPart appends a named part
func (a *Asset) AddPart(name string, m *Mesh) {
	a.Parts = append(a.Parts, Part{Name: name, Mesh: m})
}

// Single reports whether the asset is one mesh rather than a collection
func (a *Asset) Single() bool {
	return len(a.Parts) == 1
}

// Merged concatenates all parts into one mesh named name
func (a *Asset) Merged(name string) *Mesh {
	out := New(name)
	for _, p := range a.Parts {
		out.Append(p.Mesh)
	}
	return out
}
