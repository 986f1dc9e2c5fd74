// Package analysis inspects composed or raw scenes: per-entry bounds along
// an up axis and a rough guess of what each entry is.
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/philipparndt/gofurnish/pkg/geometry"
	"github.com/philipparndt/gofurnish/pkg/scene"
)

// Category is the guessed role of an entry
type Category int

const (
	Object Category = iota
	Floor
	Ceiling
	Wall
)

func (c Category) String() string {
	switch c {
	case Floor:
		return "Floor"
	case Ceiling:
		return "Ceiling"
	case Wall:
		return "Wall"
	default:
		return "Object"
	}
}

// ParseCategory converts a category name such as "wall" to a Category
func ParseCategory(name string) (Category, error) {
	for _, c := range []Category{Object, Floor, Ceiling, Wall} {
		if strings.EqualFold(name, c.String()) {
			return c, nil
		}
	}
	return Object, fmt.Errorf("invalid category %q (expected floor, ceiling, wall or object)", name)
}

// Thresholds drive Classify, in scene units along the up axis
type Thresholds struct {
	// FloorMax: entries whose top is below this are floors
	FloorMax float64
	// CeilingMin: entries whose bottom is above this are ceilings
	CeilingMin float64
	// WallHeight: taller entries are walls
	WallHeight float64
}

// DefaultThresholds suit metric indoor scenes with Z up
func DefaultThresholds() Thresholds {
	return Thresholds{FloorMax: 0.2, CeilingMin: 2.0, WallHeight: 2.0}
}

// Options controls Inspect
type Options struct {
	// UpAxis is 0, 1 or 2 for X, Y, Z
	UpAxis     int
	Thresholds Thresholds
	// Local ignores entry transforms and measures raw mesh coordinates
	Local bool
}

// EntryInfo describes one scene entry
type EntryInfo struct {
	Name        string
	BoundingBox geometry.BoundingBox
	Low, High   float64
	Category    Category
	Vertices    int
	Triangles   int
	SurfaceArea float64
}

// Height is the extent along the up axis
func (e EntryInfo) Height() float64 {
	return e.High - e.Low
}

// SceneInfo is the result of Inspect
type SceneInfo struct {
	Entries     []EntryInfo
	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Vector3
	Vertices    int
	Triangles   int
	SurfaceArea float64
}

// Classify guesses an entry's role from its extent along the up axis.
// Floor is checked first, then ceiling, then wall.
func (t Thresholds) Classify(low, high float64) Category {
	switch {
	case high < t.FloorMax:
		return Floor
	case low > t.CeilingMin:
		return Ceiling
	case high-low > t.WallHeight:
		return Wall
	default:
		return Object
	}
}

// Inspect measures every entry of s in scene order
func Inspect(s *scene.Scene, opts Options) *SceneInfo {
	info := &SceneInfo{
		Entries:     make([]EntryInfo, 0, s.Len()),
		BoundingBox: geometry.NewBoundingBox(),
	}

	for _, e := range s.Entries() {
		transform := e.Transform
		if opts.Local {
			transform = geometry.Identity()
		}
		bbox := e.Mesh.BoundingBox(transform)

		entry := EntryInfo{
			Name:        e.Name,
			BoundingBox: bbox,
			Vertices:    len(e.Mesh.Vertices),
			Triangles:   len(e.Mesh.Faces),
			SurfaceArea: e.Mesh.SurfaceArea(),
		}
		if !bbox.IsEmpty() {
			entry.Low = bbox.Min.Component(opts.UpAxis)
			entry.High = bbox.Max.Component(opts.UpAxis)
			if opts.Local {
				info.BoundingBox.Merge(bbox)
			}
		}
		entry.Category = opts.Thresholds.Classify(entry.Low, entry.High)

		info.Entries = append(info.Entries, entry)
		info.Vertices += entry.Vertices
		info.Triangles += entry.Triangles
		info.SurfaceArea += entry.SurfaceArea
	}

	if !opts.Local {
		info.BoundingBox = s.BoundingBox()
	}
	if !info.BoundingBox.IsEmpty() {
		info.Dimensions = info.BoundingBox.Size()
	}
	return info
}

// CountByCategory returns how many entries fall into each category
func (si *SceneInfo) CountByCategory() map[Category]int {
	counts := make(map[Category]int)
	for _, e := range si.Entries {
		counts[e.Category]++
	}
	return counts
}

// FilterByCategory returns the entries guessed as c
func (si *SceneInfo) FilterByCategory(c Category) []EntryInfo {
	var out []EntryInfo
	for _, e := range si.Entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// TallestEntries returns the N entries with the largest height
func (si *SceneInfo) TallestEntries(count int) []EntryInfo {
	entries := make([]EntryInfo, len(si.Entries))
	copy(entries, si.Entries)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Height() > entries[j].Height()
	})

	if count > len(entries) {
		count = len(entries)
	}
	return entries[:count]
}

// ParseAxis converts "x", "y" or "z" to an axis index
func ParseAxis(name string) (int, error) {
	switch name {
	case "x", "X":
		return 0, nil
	case "y", "Y":
		return 1, nil
	case "z", "Z":
		return 2, nil
	}
	return 0, fmt.Errorf("invalid axis %q (expected x, y or z)", name)
}

// TruncateName shortens name to width, marking the cut with ".."
func TruncateName(name string, width int) string {
	if width < 3 || len(name) <= width {
		return name
	}
	return name[:width-2] + ".."
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
