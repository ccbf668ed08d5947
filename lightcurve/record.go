// SPDX-License-Identifier: MIT

package lightcurve

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cast"
)

// RecordKey wraps each lightcurve object in the exported JSON array.
const RecordKey = "LightCurve"

// Record is a raw lightcurve record as exported by the source database.
//
// Points is either the whitespace-delimited multi-line text block (one
// point per line) or pre-parsed rows of PointFields numbers. Created and
// Modified accept anything cast.ToTimeE understands; nil means zero time.
type Record struct {
	ID          any
	Scale       any
	Points      any
	Created     any
	Modified    any
	PointsCount any
}

// DecodeRecords reads a JSON array of {"LightCurve": {...}} objects.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var raw []map[string]map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, lcErrorf(opDecodeRecord, fmt.Errorf("%w: %v", ErrBadRecord, err))
	}

	recs := make([]Record, 0, len(raw))
	for i, wrapped := range raw {
		m, ok := wrapped[RecordKey]
		if !ok {
			return nil, lcErrorf(opDecodeRecord, fmt.Errorf("%w: element %d has no %q key", ErrBadRecord, i, RecordKey))
		}
		recs = append(recs, Record{
			ID:          m["id"],
			Scale:       m["scale"],
			Points:      m["points"],
			Created:     m["created"],
			Modified:    m["modified"],
			PointsCount: m["points_count"],
		})
	}

	return recs, nil
}

// FromRecord parses and validates rec into a Lightcurve.
func FromRecord(rec Record) (*Lightcurve, error) {
	var (
		meta Meta
		err  error
	)
	if meta.ID, err = cast.ToIntE(rec.ID); err != nil {
		return nil, recordErr("id", err)
	}
	if meta.Scale, err = cast.ToIntE(rec.Scale); err != nil {
		return nil, recordErr("scale", err)
	}
	if meta.PointsCount, err = cast.ToIntE(rec.PointsCount); err != nil {
		return nil, recordErr("points_count", err)
	}
	if meta.CreatedAt, err = toTime(rec.Created); err != nil {
		return nil, recordErr("created", err)
	}
	if meta.UpdatedAt, err = toTime(rec.Modified); err != nil {
		return nil, recordErr("modified", err)
	}

	var points []Point
	switch p := rec.Points.(type) {
	case string:
		points, err = ParsePoints(p)
	case []Point:
		points = p
	case [][]float64:
		rows := make([]any, len(p))
		for i := range p {
			rows[i] = p[i]
		}
		points, err = parsePointRows(rows)
	case []any:
		points, err = parsePointRows(p)
	default:
		err = fmt.Errorf("%w: unsupported points type %T", ErrBadRecord, rec.Points)
	}
	if err != nil {
		return nil, lcErrorf(opFromRecord, fmt.Errorf("id %d: %w", meta.ID, err))
	}

	lc, err := New(meta, points)
	if err != nil {
		return nil, lcErrorf(opFromRecord, err)
	}

	return lc, nil
}

func toTime(v any) (time.Time, error) {
	if v == nil {
		return time.Time{}, nil
	}

	return cast.ToTimeE(v)
}

func recordErr(field string, err error) error {
	return lcErrorf(opFromRecord, fmt.Errorf("%w: field %q: %v", ErrBadRecord, field, err))
}
