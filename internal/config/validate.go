package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks that all values are in range and all names are known.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return errors.New("data.dir is required")
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if c.Splitter.MaxGapHours <= 0 {
		return fmt.Errorf("splitter.max_gap_hours must be > 0, got %g", c.Splitter.MaxGapHours)
	}
	if n := c.Splitter.minPoints(); n < 0 {
		return fmt.Errorf("splitter.min_points must be >= 0, got %d", n)
	}

	if c.Binner.MaxGapDays <= 0 {
		return fmt.Errorf("binner.max_gap_days must be > 0, got %g", c.Binner.MaxGapDays)
	}
	if c.Binner.MinBinSize < 1 {
		return fmt.Errorf("binner.min_bin_size must be >= 1, got %d", c.Binner.MinBinSize)
	}
	if _, err := c.BinnerOptions(); err != nil {
		return fmt.Errorf("binner.anchor: %w", err)
	}

	if c.Periodogram.NTerms < 1 {
		return fmt.Errorf("periodogram.nterms must be >= 1, got %d", c.Periodogram.NTerms)
	}
	if c.Periodogram.TopK < 1 {
		return fmt.Errorf("periodogram.top_k must be >= 1, got %d", c.Periodogram.TopK)
	}
	if !(c.Periodogram.MaxFreq >= 0) || math.IsInf(c.Periodogram.MaxFreq, 1) {
		return fmt.Errorf("periodogram.max_freq must be finite and >= 0, got %g", c.Periodogram.MaxFreq)
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}

	return nil
}
