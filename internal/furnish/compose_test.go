package furnish

import (
	"errors"
	"testing"

	"github.com/philipparndt/gofurnish/internal/logging"
	"github.com/philipparndt/gofurnish/pkg/geometry"
	"github.com/philipparndt/gofurnish/pkg/mesh"
	"github.com/philipparndt/gofurnish/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocator map[string]string

func (f fakeLocator) Locate(id string) (string, bool) {
	p, ok := f[id]
	return p, ok
}

type fakeLoader struct {
	assets map[string]*mesh.Asset
	calls  []string
}

func (f *fakeLoader) Load(path string) (*mesh.Asset, error) {
	f.calls = append(f.calls, path)
	a, ok := f.assets[path]
	if !ok {
		return nil, errors.Join(ErrLoad, errors.New("corrupt"))
	}
	return a, nil
}

func record(key string, pos geometry.Vector3, rot ...float64) FurnitureRecord {
	if rot == nil {
		rot = IdentityOrientation()
	}
	return FurnitureRecord{Key: key, ID: IdentifierFromKey(key), Position: pos, Orientation: rot}
}

func TestComposePlacesTranslatedCopy(t *testing.T) {
	cube := unitCube("model")
	loader := &fakeLoader{assets: map[string]*mesh.Asset{"chair_0/model.obj": mesh.NewAsset(cube)}}
	c := NewComposer(fakeLocator{"chair_0": "chair_0/model.obj"}, loader, logging.Discard())

	sc := scene.New()
	report := c.Compose(sc, []FurnitureRecord{record("chair_0.urdf", geometry.NewVector3(1, 0, 2))})

	require.Equal(t, 1, report.Placed())
	assert.Equal(t, []string{"chair_0"}, sc.Names())

	e, _ := sc.Entry("chair_0")
	assert.True(t, e.Transform.IsIdentity())
	bbox := e.BoundingBox()
	assert.True(t, bbox.Min.ApproxEqual(geometry.NewVector3(0.5, -0.5, 1.5), 1e-12))
	assert.True(t, bbox.Max.ApproxEqual(geometry.NewVector3(1.5, 0.5, 2.5), 1e-12))

	// the loaded asset is left untouched
	assert.True(t, cube.BoundingBox(geometry.Identity()).Center().ApproxEqual(geometry.Vector3{}, 1e-12))
}

func TestComposeAppliesRotationBeforeTranslation(t *testing.T) {
	m := mesh.New("marker")
	m.AddVertex(geometry.NewVector3(1, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 0, 0))
	m.AddFace(0, 1, 2)
	loader := &fakeLoader{assets: map[string]*mesh.Asset{"p": mesh.NewAsset(m)}}
	c := NewComposer(fakeLocator{"lamp": "p"}, loader, logging.Discard())

	sc := scene.New()
	// quarter turn about Z, then move up by 1
	c.Compose(sc, []FurnitureRecord{record("lamp.urdf", geometry.NewVector3(0, 0, 1), 0, 0, 0.7071067811865476, 0.7071067811865476)})

	e, ok := sc.Entry("lamp")
	require.True(t, ok)
	assert.True(t, e.Mesh.Vertices[0].ApproxEqual(geometry.NewVector3(0, 1, 1), 1e-9))
}

func TestComposeSkipsMissingAndBroken(t *testing.T) {
	loader := &fakeLoader{assets: map[string]*mesh.Asset{"ok/model.obj": mesh.NewAsset(unitCube("ok"))}}
	locator := fakeLocator{"ok": "ok/model.obj", "broken": "broken/model.obj"}
	c := NewComposer(locator, loader, logging.Discard())

	sc := scene.New()
	report := c.Compose(sc, []FurnitureRecord{
		record("missing.urdf", geometry.Vector3{}),
		record("broken.urdf", geometry.Vector3{}),
		record("ok.urdf", geometry.Vector3{}),
	})

	assert.Equal(t, 3, report.Total())
	assert.Equal(t, 1, report.Placed())
	assert.Equal(t, 2, report.Skipped())
	assert.Equal(t, report.Total(), report.Placed()+report.Skipped())

	assert.Equal(t, NotFound, report.Outcomes[0].Reason)
	assert.Empty(t, report.Outcomes[0].Path)
	assert.Equal(t, LoadFailed, report.Outcomes[1].Reason)
	assert.ErrorIs(t, report.Outcomes[1].Err, ErrLoad)
	assert.Equal(t, Placed, report.Outcomes[2].Status)

	// the missing model is never loaded
	assert.Equal(t, []string{"broken/model.obj", "ok/model.obj"}, loader.calls)
	assert.Equal(t, []string{"ok"}, sc.Names())
}

func TestComposeNamesMultiPartAssets(t *testing.T) {
	asset := &mesh.Asset{}
	asset.AddPart("seat", unitCube("seat"))
	asset.AddPart("back", unitCube("back"))
	loader := &fakeLoader{assets: map[string]*mesh.Asset{"chair": asset}}
	c := NewComposer(fakeLocator{"chair_1": "chair"}, loader, logging.Discard())

	sc := scene.New()
	report := c.Compose(sc, []FurnitureRecord{record("chair_1.urdf", geometry.NewVector3(0, 0, 5))})

	assert.Equal(t, []string{"chair_1_seat", "chair_1_back"}, sc.Names())
	assert.Equal(t, []string{"chair_1_seat", "chair_1_back"}, report.Outcomes[0].Entries)
	for _, e := range sc.Entries() {
		assert.InDelta(t, 5, e.BoundingBox().Center().Z, 1e-12)
	}
}

func TestComposeSharedAssetGetsUniqueNames(t *testing.T) {
	loader := &fakeLoader{assets: map[string]*mesh.Asset{"stool": mesh.NewAsset(unitCube("stool"))}}
	c := NewComposer(fakeLocator{"stool": "stool"}, loader, logging.Discard())

	sc := scene.New()
	report := c.Compose(sc, []FurnitureRecord{
		record("stool.urdf", geometry.NewVector3(0, 0, 0)),
		record("stool.a.urdf", geometry.NewVector3(3, 0, 0)),
	})

	require.Equal(t, 2, report.Placed())
	assert.Equal(t, []string{"stool", "stool_1"}, sc.Names())

	first, _ := sc.Entry("stool")
	second, _ := sc.Entry("stool_1")
	assert.NotSame(t, first.Mesh, second.Mesh)
	assert.InDelta(t, 3, second.BoundingBox().Center().X, 1e-12)
	assert.InDelta(t, 0, first.BoundingBox().Center().X, 1e-12)
}

func TestComposeEmptyRecords(t *testing.T) {
	c := NewComposer(fakeLocator{}, &fakeLoader{}, logging.Discard())
	report := c.Compose(scene.New(), nil)
	assert.Equal(t, 0, report.Total())
}

func TestSkipReasonString(t *testing.T) {
	assert.Equal(t, "model not found", NotFound.String())
	assert.Equal(t, "load failed", LoadFailed.String())
	assert.Equal(t, "placed", Placed.String())
	assert.Equal(t, "skipped", Skipped.String())
}
