package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astrofit/internal/config"
	"github.com/katalvlaran/astrofit/internal/loader"
	"github.com/katalvlaran/astrofit/periodogram"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// setup writes one asteroid with a single 10-day run rotating every 6 hours.
func setup(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	var pts strings.Builder
	for i := 0; i < 200; i++ {
		tt := float64(i)*0.05 + 0.01*math.Sin(float64(i))
		fmt.Fprintf(&pts, `%.6f %.6f 1 0 0 0 1 0\n`, 2450000+tt, 10+math.Sin(2*math.Pi*tt/0.25))
	}
	write(t, filepath.Join(dir, loader.CatalogueFile), ",name,number\n0,Spinner,9999\n")
	write(t, filepath.Join(dir, loader.AsteroidsDir, "Spinner", loader.SpinParamsFile),
		`{"period": 6.0, "lambda": 120, "beta": -30}`)
	write(t, filepath.Join(dir, loader.AsteroidsDir, "Spinner", loader.LightcurveFile),
		fmt.Sprintf(`[{"LightCurve": {"id": 1, "scale": 0, "points_count": 200, "points": "%s"}}]`, pts.String()))

	cfgPath := filepath.Join(dir, "astrofit.yaml")
	write(t, cfgPath, fmt.Sprintf("data:\n  dir: %s\nperiodogram:\n  top_k: 2\n  max_freq: 10\nworkers: 2\n", dir))
	cfg, err := config.LoadAndValidate(cfgPath)
	require.NoError(t, err)

	return cfg
}

func TestRun(t *testing.T) {
	cfg := setup(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), &out, cfg, logger, ""))

	text := out.String()
	assert.Contains(t, text, "# Spinner (9999) known period 6.00000h")
	assert.Contains(t, text, "bin 0: 1 curves, 200 points")
	assert.Contains(t, text, "1. f=3.9")
	assert.Contains(t, text, "P=6.0")
	assert.Equal(t, 2, strings.Count(text, "power="))
}

func TestRun_Errors(t *testing.T) {
	cfg := setup(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err := run(context.Background(), io.Discard, cfg, logger, "Nobody")
	assert.ErrorIs(t, err, loader.ErrNotFound)

	// an oversized grid fails the bin instead of crashing the run
	huge := *cfg
	huge.Periodogram.MaxFreq = 1e300
	require.NoError(t, huge.Validate())
	err = run(context.Background(), io.Discard, &huge, logger, "Spinner")
	assert.ErrorIs(t, err, periodogram.ErrBadGrid)
	assert.Contains(t, err.Error(), "bin 0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = run(ctx, io.Discard, cfg, logger, "Spinner")
	assert.ErrorIs(t, err, context.Canceled)
}
