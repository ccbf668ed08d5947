package binner

import (
	"fmt"
	"strings"
)

// Anchor selects the reference JD that gaps are measured from.
type Anchor int

const (
	// FirstToFirst measures from the FirstJD of the bin's opening curve.
	FirstToFirst Anchor = iota
	// LastToFirst measures from the LastJD of the previous curve.
	LastToFirst
)

var anchorNames = [...]string{FirstToFirst: "first-to-first", LastToFirst: "last-to-first"}

// String implements fmt.Stringer.
func (a Anchor) String() string {
	if !a.valid() {
		return fmt.Sprintf("Anchor(%d)", int(a))
	}

	return anchorNames[a]
}

func (a Anchor) valid() bool { return a >= 0 && int(a) < len(anchorNames) }

// legal lists the accepted anchor names for error messages.
func legal() string { return strings.Join(anchorNames[:], ", ") }

// ParseAnchor maps "first-to-first" / "last-to-first" to an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	for i, name := range anchorNames {
		if strings.EqualFold(s, name) {
			return Anchor(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q, use one of [%s]", ErrInvalidAnchor, s, legal())
}

// Options configures Bin.
//
// Fields:
//   - MaxGap     — largest allowed distance from the anchor, in days.
//   - Anchor     — FirstToFirst or LastToFirst.
//   - MinBinSize — bins with fewer member curves are dropped; 0 keeps all.
type Options struct {
	MaxGap     float64
	Anchor     Anchor
	MinBinSize int
}

// DefaultOptions groups curves starting within 30 days of the bin opener.
func DefaultOptions() Options {
	return Options{MaxGap: 30, Anchor: FirstToFirst}
}

func (o Options) validate() error {
	if !o.Anchor.valid() {
		return fmt.Errorf("%w: %d, use one of [%s]", ErrInvalidAnchor, int(o.Anchor), legal())
	}
	if !(o.MaxGap >= 0) {
		return ErrBadMaxGap
	}
	if o.MinBinSize < 0 {
		return ErrBadMinBinSize
	}

	return nil
}
