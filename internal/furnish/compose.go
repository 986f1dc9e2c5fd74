package furnish

import (
	"fmt"
	"log/slog"

	"github.com/philipparndt/gofurnish/pkg/geometry"
	"github.com/philipparndt/gofurnish/pkg/mesh"
	"github.com/philipparndt/gofurnish/pkg/scene"
)

// ModelLocator finds the model file for an identifier
type ModelLocator interface {
	Locate(id string) (path string, ok bool)
}

// ModelLoader decodes a model file
type ModelLoader interface {
	Load(path string) (*mesh.Asset, error)
}

// Status is the result of placing one record
type Status int

const (
	Placed Status = iota
	Skipped
)

func (s Status) String() string {
	if s == Placed {
		return "placed"
	}
	return "skipped"
}

// SkipReason tells why a record was skipped
type SkipReason int

const (
	NotSkipped SkipReason = iota
	NotFound
	LoadFailed
)

func (r SkipReason) String() string {
	switch r {
	case NotFound:
		return "model not found"
	case LoadFailed:
		return "load failed"
	default:
		return ""
	}
}

// Outcome records what happened to one furniture record
type Outcome struct {
	Record FurnitureRecord
	Status Status
	Reason SkipReason
	// Path is the located model file, empty when not found
	Path string
	// Entries are the scene names the record was merged under
	Entries []string
	Err     error
}

// Report aggregates the outcomes of a composition
type Report struct {
	Outcomes []Outcome
}

// Total returns the number of records attempted
func (r *Report) Total() int {
	return len(r.Outcomes)
}

// Placed returns the number of records merged into the scene
func (r *Report) Placed() int {
	return r.count(Placed)
}

// Skipped returns the number of records that were not merged
func (r *Report) Skipped() int {
	return r.count(Skipped)
}

func (r *Report) count(s Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// Composer places furniture records into a scene
type Composer struct {
	Locator ModelLocator
	Loader  ModelLoader
	Logger  *slog.Logger
}

// NewComposer creates a composer
func NewComposer(locator ModelLocator, loader ModelLoader, logger *slog.Logger) *Composer {
	return &Composer{Locator: locator, Loader: loader, Logger: orDefault(logger)}
}

// Compose places every record in order. Records whose model is missing or
// fails to load are skipped; they never stop the run.
func (c *Composer) Compose(sc *scene.Scene, records []FurnitureRecord) *Report {
	report := &Report{Outcomes: make([]Outcome, 0, len(records))}
	for _, record := range records {
		report.Outcomes = append(report.Outcomes, c.Place(sc, record))
	}
	return report
}

// Place locates, loads, transforms and merges a single record
func (c *Composer) Place(sc *scene.Scene, record FurnitureRecord) Outcome {
	logger := orDefault(c.Logger)
	outcome := Outcome{Record: record, Status: Skipped}

	path, ok := c.Locator.Locate(record.ID)
	if !ok {
		outcome.Reason = NotFound
		logger.Debug("model not found, skipping", "id", record.ID)
		return outcome
	}
	outcome.Path = path

	asset, err := c.Loader.Load(path)
	if err != nil {
		outcome.Reason = LoadFailed
		outcome.Err = err
		logger.Warn("failed to load model, skipping", "id", record.ID, "err", err)
		return outcome
	}

	transform := ResolvePose(record)
	parts, err := placeParts(record.ID, asset, transform)
	if err != nil {
		outcome.Reason = LoadFailed
		outcome.Err = err
		logger.Warn("failed to copy model, skipping", "id", record.ID, "err", err)
		return outcome
	}

	for _, p := range parts {
		outcome.Entries = append(outcome.Entries, sc.Add(p.Name, p.Mesh, geometry.Identity()))
	}
	outcome.Status = Placed
	outcome.Reason = NotSkipped
	logger.Debug("placed", "id", record.ID, "position", transform.TranslationPart(), "entries", outcome.Entries)
	return outcome
}

// placeParts copies every part, bakes transform into the copy and names it
// after the identifier (multi-part models as <id>_<part>)
func placeParts(id string, asset *mesh.Asset, transform geometry.Transform) ([]mesh.Part, error) {
	out := make([]mesh.Part, 0, len(asset.Parts))
	for _, p := range asset.Parts {
		clone, err := p.Mesh.Clone()
		if err != nil {
			return nil, err
		}
		clone.Transform(transform)

		name := id
		if !asset.Single() {
			name = fmt.Sprintf("%s_%s", id, p.Name)
		}
		clone.Name = name
		out = append(out, mesh.Part{Name: name, Mesh: clone})
	}
	return out, nil
}
