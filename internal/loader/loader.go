package loader

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/soniakeys/unit"
	"github.com/spf13/cast"

	"github.com/katalvlaran/astrofit/lightcurve"
)

// File names inside the data directory.
const (
	CatalogueFile  = "asteroids.csv"
	AsteroidsDir   = "asteroids"
	SpinParamsFile = "spin_params.json"
	LightcurveFile = "lc.json"
)

// DefaultCacheTTL bounds how long a loaded asteroid is kept in memory.
const DefaultCacheTTL = 10 * time.Minute

// SpinParams is the content of spin_params.json. Angles are in degrees.
type SpinParams struct {
	Period float64 `json:"period"` // hours
	Lambda float64 `json:"lambda"`
	Beta   float64 `json:"beta"`
}

// Loader indexes a data directory and loads asteroids on demand.
// It is safe for concurrent use.
type Loader struct {
	dir    string
	logger *slog.Logger

	infos map[string]lightcurve.AsteroidInfo // by work name
	names []string                           // sorted work names
	cache *cache.Cache
}

// New reads the catalogue and indexes every asteroid directory.
//
// Implementation:
//   - Stage 1: read asteroids.csv, dropping rows without a number.
//   - Stage 2: for each directory under asteroids/, match the catalogue row
//     by the name before the first "_" and read its spin parameters.
//
// Errors:
//   - ErrMissingFile when the catalogue or a spin_params.json is absent.
//   - ErrCatalogue for a malformed catalogue or a name matched by zero or
//     several rows.
func New(dir string, logger *slog.Logger) (*Loader, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// Stage 1: catalogue
	numbers, err := readCatalogue(filepath.Join(dir, CatalogueFile))
	if err != nil {
		return nil, fmt.Errorf("loader: New: %w", err)
	}

	// Stage 2: asteroid directories
	entries, err := os.ReadDir(filepath.Join(dir, AsteroidsDir))
	if err != nil {
		return nil, fmt.Errorf("loader: New: %w", missing(err))
	}

	l := &Loader{
		dir:    dir,
		logger: logger,
		infos:  make(map[string]lightcurve.AsteroidInfo, len(entries)),
		cache:  cache.New(DefaultCacheTTL, 2*DefaultCacheTTL),
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		work := e.Name()
		name, _, _ := strings.Cut(work, "_")

		nums := numbers[name]
		if len(nums) != 1 {
			return nil, fmt.Errorf("loader: New: %w: %d catalogue rows named %q (work name %s)",
				ErrCatalogue, len(nums), name, work)
		}

		spin, err := readSpinParams(filepath.Join(l.asteroidDir(work), SpinParamsFile))
		if err != nil {
			return nil, fmt.Errorf("loader: New: %s: %w", work, err)
		}

		l.infos[work] = lightcurve.AsteroidInfo{
			ID:     nums[0],
			Name:   name,
			Period: spin.Period,
			Lambda: unit.AngleFromDeg(spin.Lambda),
			Beta:   unit.AngleFromDeg(spin.Beta),
		}
		l.names = append(l.names, work)
	}
	sort.Strings(l.names)

	logger.Debug("indexed asteroids", "dir", dir, "count", len(l.names))

	return l, nil
}

// Names returns the available work names in sorted order.
func (l *Loader) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)

	return out
}

// Info returns the catalogue identity of work name.
func (l *Loader) Info(name string) (lightcurve.AsteroidInfo, error) {
	info, ok := l.infos[name]
	if !ok {
		return lightcurve.AsteroidInfo{}, fmt.Errorf("loader: Info: %q: %w", name, ErrNotFound)
	}

	return info, nil
}

// Load returns the asteroid with all its lightcurves. Results are cached
// for DefaultCacheTTL.
func (l *Loader) Load(name string) (*lightcurve.Asteroid, error) {
	if v, ok := l.cache.Get(name); ok {
		a, _ := v.(*lightcurve.Asteroid)

		return a, nil
	}

	info, err := l.Info(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(l.asteroidDir(name), LightcurveFile))
	if err != nil {
		return nil, fmt.Errorf("loader: Load: %s: %w", name, missing(err))
	}
	defer f.Close()

	recs, err := lightcurve.DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("loader: Load: %s: %w", name, err)
	}
	a, err := lightcurve.AsteroidFromRecords(info, recs)
	if err != nil {
		return nil, fmt.Errorf("loader: Load: %w", err)
	}

	l.logger.Info("loaded asteroid", "work_name", name, "id", info.ID, "lightcurves", a.Len())
	l.cache.SetDefault(name, a)

	return a, nil
}

// LoadAll loads every indexed asteroid in work-name order.
func (l *Loader) LoadAll() ([]*lightcurve.Asteroid, error) {
	out := make([]*lightcurve.Asteroid, 0, len(l.names))
	for _, name := range l.names {
		a, err := l.Load(name)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

func (l *Loader) asteroidDir(work string) string {
	return filepath.Join(l.dir, AsteroidsDir, work)
}

// readCatalogue maps catalogue names to asteroid numbers.
func readCatalogue(path string) (map[string][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, missing(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s header: %v", ErrCatalogue, CatalogueFile, err)
	}
	nameCol, numCol := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "name":
			nameCol = i
		case "number":
			numCol = i
		}
	}
	if nameCol < 0 || numCol < 0 {
		return nil, fmt.Errorf("%w: %s needs name and number columns", ErrCatalogue, CatalogueFile)
	}

	out := make(map[string][]int)
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCatalogue, err)
		}
		raw := strings.TrimSpace(row[numCol])
		if raw == "" {
			continue
		}
		// pandas exports integer columns with missing values as floats
		num, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: number %q", ErrCatalogue, line, raw)
		}
		name := strings.TrimSpace(row[nameCol])
		out[name] = append(out[name], int(num))
	}

	return out, nil
}

func readSpinParams(path string) (SpinParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SpinParams{}, missing(err)
	}

	var sp SpinParams
	if err := json.Unmarshal(data, &sp); err != nil {
		return SpinParams{}, fmt.Errorf("%s: %w", SpinParamsFile, err)
	}

	return sp, nil
}

// missing tags not-exist errors with ErrMissingFile.
func missing(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrMissingFile, err)
	}

	return err
}
