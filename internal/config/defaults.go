package config

// Default values for optional configuration fields.
const (
	DefaultDataDir       = "data"
	DefaultLogLevel      = "info"
	DefaultMaxGapHours   = 2.0
	DefaultMinPoints     = 10
	DefaultBinMaxGapDays = 30.0
	DefaultAnchor        = "first-to-first"
	DefaultMinBinSize    = 1
	DefaultNTerms        = 1
	DefaultTopK          = 5
	DefaultWorkers       = 4
)

func (c *Config) applyDefaults() {
	if c.Data.Dir == "" {
		c.Data.Dir = DefaultDataDir
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}

	if c.Splitter.MaxGapHours == 0 {
		c.Splitter.MaxGapHours = DefaultMaxGapHours
	}
	if c.Splitter.MinPoints == nil {
		n := DefaultMinPoints
		c.Splitter.MinPoints = &n
	}

	if c.Binner.MaxGapDays == 0 {
		c.Binner.MaxGapDays = DefaultBinMaxGapDays
	}
	if c.Binner.Anchor == "" {
		c.Binner.Anchor = DefaultAnchor
	}
	if c.Binner.MinBinSize == 0 {
		c.Binner.MinBinSize = DefaultMinBinSize
	}

	if c.Periodogram.NTerms == 0 {
		c.Periodogram.NTerms = DefaultNTerms
	}
	if c.Periodogram.TopK == 0 {
		c.Periodogram.TopK = DefaultTopK
	}

	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
}
