// SPDX-License-Identifier: MIT

package lightcurve

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// PointFields is the number of numeric fields in one point record:
// JD, brightness, then the asteroid→Sun and asteroid→Earth vectors.
const PointFields = 8

// Point is a single calibrated measurement.
//
// Brightness is in intensity units. The six coordinates are asteroid-centric
// cartesian vectors and are carried through unchanged.
type Point struct {
	JD         float64
	Brightness float64

	XSun, YSun, ZSun       float64
	XEarth, YEarth, ZEarth float64
}

// ParsePoint builds a Point from exactly PointFields values in the fixed
// order (JD, brightness, x_sun, y_sun, z_sun, x_earth, y_earth, z_earth).
// Values may be numbers or numeric strings.
func ParsePoint(fields []any) (Point, error) {
	if len(fields) != PointFields {
		return Point{}, lcErrorf(opParsePoint,
			fmt.Errorf("%w: want %d fields, got %d", ErrBadPoint, PointFields, len(fields)))
	}

	var v [PointFields]float64
	var err error
	for i, f := range fields {
		if v[i], err = cast.ToFloat64E(f); err != nil {
			return Point{}, lcErrorf(opParsePoint, fmt.Errorf("%w: field %d: %v", ErrBadPoint, i, err))
		}
	}

	return Point{
		JD:         v[0],
		Brightness: v[1],
		XSun:       v[2],
		YSun:       v[3],
		ZSun:       v[4],
		XEarth:     v[5],
		YEarth:     v[6],
		ZEarth:     v[7],
	}, nil
}

// ParsePoints parses a whitespace-delimited text block, one point per line.
// Blank lines are skipped.
func ParsePoints(text string) ([]Point, error) {
	lines := strings.Split(text, "\n")
	points := make([]Point, 0, len(lines))
	for n, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		fields := make([]any, len(words))
		for i, w := range words {
			fields[i] = w
		}
		p, err := ParsePoint(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		points = append(points, p)
	}

	return points, nil
}

// parsePointRows converts pre-parsed rows, each a []float64 or a []any as
// produced by encoding/json.
func parsePointRows(rows []any) ([]Point, error) {
	points := make([]Point, 0, len(rows))
	for n, row := range rows {
		var fields []any
		switch r := row.(type) {
		case []float64:
			fields = make([]any, len(r))
			for i, f := range r {
				fields[i] = f
			}
		default:
			var err error
			if fields, err = cast.ToSliceE(row); err != nil {
				return nil, fmt.Errorf("row %d: %w: %v", n, ErrBadPoint, err)
			}
		}
		p, err := ParsePoint(fields)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n, err)
		}
		points = append(points, p)
	}

	return points, nil
}
