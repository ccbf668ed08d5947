package loader_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astrofit/internal/loader"
	"github.com/katalvlaran/astrofit/lightcurve"
)

const catalogue = ",name,number\n0,Eros,433\n1,Ceres,1.0\n2,Lost,\n"

const lcJSON = `[
  {"LightCurve": {"id": 7, "scale": 1, "points_count": 2, "created": "2020-01-02 03:04:05", "modified": null,
   "points": "2450000.0 1.0 0 0 0 0 0 0\n2450000.1 1.1 0 0 0 0 0 0\n"}},
  {"LightCurve": {"id": 8, "scale": 1, "points_count": 1, "created": null, "modified": null,
   "points": [[2450010.0, 0.9, 1, 2, 3, 4, 5, 6]]}}
]`

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// dataDir builds Eros (with lightcurves), Eros_v2 and Ceres (without).
func dataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	write(t, filepath.Join(dir, loader.CatalogueFile), catalogue)

	ast := filepath.Join(dir, loader.AsteroidsDir)
	write(t, filepath.Join(ast, "Eros", loader.SpinParamsFile), `{"period": 5.27, "lambda": 17, "beta": 11}`)
	write(t, filepath.Join(ast, "Eros", loader.LightcurveFile), lcJSON)
	write(t, filepath.Join(ast, "Eros_v2", loader.SpinParamsFile), `{"period": 5.27025, "lambda": 16, "beta": 9}`)
	write(t, filepath.Join(ast, "Eros_v2", loader.LightcurveFile), "[]")
	write(t, filepath.Join(ast, "Ceres", loader.SpinParamsFile), `{"period": 9.07, "lambda": 0, "beta": 90}`)
	write(t, filepath.Join(ast, "README"), "not an asteroid")

	return dir
}

func TestNew_Indexes(t *testing.T) {
	l, err := loader.New(dataDir(t), quiet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ceres", "Eros", "Eros_v2"}, l.Names())

	info, err := l.Info("Eros_v2")
	require.NoError(t, err)
	assert.Equal(t, 433, info.ID)
	assert.Equal(t, "Eros", info.Name)
	assert.Equal(t, 5.27025, info.Period)
	assert.InDelta(t, 16, info.Lambda.Deg(), 1e-9)
	assert.InDelta(t, 9, info.Beta.Deg(), 1e-9)

	info, err = l.Info("Ceres")
	require.NoError(t, err)
	assert.Equal(t, 1, info.ID)

	_, err = l.Info("Vesta")
	assert.ErrorIs(t, err, loader.ErrNotFound)
}

func TestLoad(t *testing.T) {
	l, err := loader.New(dataDir(t), nil)
	require.NoError(t, err)

	a, err := l.Load("Eros")
	require.NoError(t, err)
	assert.Equal(t, "Eros", a.Name)
	require.Equal(t, 2, a.Len())

	lc, err := a.Lightcurve(7)
	require.NoError(t, err)
	assert.Equal(t, 2, lc.PointsCount())
	assert.Equal(t, 2020, lc.CreatedAt().Year())

	lc, err = a.Lightcurve(8)
	require.NoError(t, err)
	assert.Equal(t, 6.0, lc.At(0).ZEarth)

	again, err := l.Load("Eros")
	require.NoError(t, err)
	assert.Same(t, a, again)

	_, err = l.Load("Ceres")
	assert.ErrorIs(t, err, loader.ErrMissingFile)

	_, err = l.Load("Vesta")
	assert.ErrorIs(t, err, loader.ErrNotFound)
}

func TestLoad_BadRecords(t *testing.T) {
	dir := dataDir(t)
	write(t, filepath.Join(dir, loader.AsteroidsDir, "Eros", loader.LightcurveFile),
		`[{"LightCurve": {"id": 1, "scale": 0, "points_count": 3, "points": "2450000 1 0 0 0 0 0 0"}}]`)

	l, err := loader.New(dir, quiet)
	require.NoError(t, err)
	_, err = l.Load("Eros")
	assert.ErrorIs(t, err, lightcurve.ErrPointsCountMismatch)
}

func TestLoadAll(t *testing.T) {
	dir := dataDir(t)
	l, err := loader.New(dir, quiet)
	require.NoError(t, err)

	_, err = l.LoadAll()
	assert.ErrorIs(t, err, loader.ErrMissingFile, "Ceres has no lc.json")

	write(t, filepath.Join(dir, loader.AsteroidsDir, "Ceres", loader.LightcurveFile), "[]")
	all, err := l.LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Ceres", all[0].Name)
	assert.Equal(t, 0, all[0].Len())
	assert.Equal(t, 2, all[1].Len())
}

func TestNew_Errors(t *testing.T) {
	t.Run("no catalogue", func(t *testing.T) {
		_, err := loader.New(t.TempDir(), quiet)
		assert.ErrorIs(t, err, loader.ErrMissingFile)
	})

	t.Run("duplicate name", func(t *testing.T) {
		dir := dataDir(t)
		write(t, filepath.Join(dir, loader.CatalogueFile), catalogue+"3,Eros,434\n")
		_, err := loader.New(dir, quiet)
		assert.ErrorIs(t, err, loader.ErrCatalogue)
	})

	t.Run("unknown directory", func(t *testing.T) {
		dir := dataDir(t)
		write(t, filepath.Join(dir, loader.AsteroidsDir, "Pallas", loader.SpinParamsFile), `{"period": 7.8}`)
		_, err := loader.New(dir, quiet)
		assert.ErrorIs(t, err, loader.ErrCatalogue)
	})

	t.Run("missing spin params", func(t *testing.T) {
		dir := dataDir(t)
		require.NoError(t, os.Remove(filepath.Join(dir, loader.AsteroidsDir, "Ceres", loader.SpinParamsFile)))
		_, err := loader.New(dir, quiet)
		assert.ErrorIs(t, err, loader.ErrMissingFile)
	})

	t.Run("bad number", func(t *testing.T) {
		dir := dataDir(t)
		write(t, filepath.Join(dir, loader.CatalogueFile), ",name,number\n0,Eros,four\n")
		_, err := loader.New(dir, quiet)
		assert.ErrorIs(t, err, loader.ErrCatalogue)
	})
}
