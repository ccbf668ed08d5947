package config

import (
	"log/slog"

	"github.com/katalvlaran/astrofit/binner"
	"github.com/katalvlaran/astrofit/periodogram"
	"github.com/katalvlaran/astrofit/splitter"
)

// Config is the root configuration of an astrofit run.
type Config struct {
	Data        DataConfig        `yaml:"data"`
	Log         LogConfig         `yaml:"log"`
	Splitter    SplitterConfig    `yaml:"splitter"`
	Binner      BinnerConfig      `yaml:"binner"`
	Periodogram PeriodogramConfig `yaml:"periodogram"`
	Workers     int               `yaml:"workers"` // parallel bin decompositions
}

// DataConfig locates the asteroid catalogue.
type DataConfig struct {
	Dir      string `yaml:"dir"`
	Asteroid string `yaml:"asteroid"` // processed when -asteroid is not given; empty means all
}

// LogConfig sets the slog level name (debug, info, warn, error).
type LogConfig struct {
	Level string `yaml:"level"`
}

// SplitterConfig mirrors splitter.Options with the gap in hours.
// MinPoints unset means DefaultMinPoints; 0 disables the size filter.
type SplitterConfig struct {
	MaxGapHours    float64 `yaml:"max_gap_hours"`
	MinPoints      *int    `yaml:"min_points"`
	RejectOutliers bool    `yaml:"reject_outliers"`
}

func (s SplitterConfig) minPoints() int {
	if s.MinPoints == nil {
		return DefaultMinPoints
	}

	return *s.MinPoints
}

// BinnerConfig mirrors binner.Options.
type BinnerConfig struct {
	MaxGapDays float64 `yaml:"max_gap_days"`
	Anchor     string  `yaml:"anchor"`
	MinBinSize int     `yaml:"min_bin_size"`
}

// PeriodogramConfig mirrors periodogram.Options. MaxFreq 0 selects the
// automatic upper bound.
type PeriodogramConfig struct {
	NTerms  int     `yaml:"nterms"`
	TopK    int     `yaml:"top_k"`
	MaxFreq float64 `yaml:"max_freq"`
}

// SplitterOptions converts the section to splitter.Options.
func (c *Config) SplitterOptions() splitter.Options {
	return splitter.Options{
		MaxGap:         splitter.Hours(c.Splitter.MaxGapHours),
		MinPoints:      c.Splitter.minPoints(),
		RejectOutliers: c.Splitter.RejectOutliers,
	}
}

// BinnerOptions converts the section to binner.Options.
func (c *Config) BinnerOptions() (binner.Options, error) {
	anchor, err := binner.ParseAnchor(c.Binner.Anchor)
	if err != nil {
		return binner.Options{}, err
	}

	return binner.Options{
		MaxGap:     c.Binner.MaxGapDays,
		Anchor:     anchor,
		MinBinSize: c.Binner.MinBinSize,
	}, nil
}

// PeriodogramOptions converts the section to periodogram.Options, keeping
// the package defaults for the grid sampling factors.
func (c *Config) PeriodogramOptions() periodogram.Options {
	o := periodogram.DefaultOptions()
	o.NTerms = c.Periodogram.NTerms
	o.TopK = c.Periodogram.TopK
	o.MaxFreq = c.Periodogram.MaxFreq

	return o
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(c.Log.Level))

	return lvl, err
}
