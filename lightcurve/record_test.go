package lightcurve_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astrofit/lightcurve"
)

const sampleJSON = `[
  {"LightCurve": {
    "id": 101, "scale": "2", "points_count": 3,
    "created": "2015-06-02 10:22:33", "modified": "2016-01-01 00:00:00",
    "points": "2451545.20 1.10 0.1 0.2 0.3 0.4 0.5 0.6\n2451545.10 1.00 0.1 0.2 0.3 0.4 0.5 0.6\n\n2451545.30 0.90 0.1 0.2 0.3 0.4 0.5 0.6\n"
  }},
  {"LightCurve": {
    "id": "102", "scale": 1, "points_count": "2",
    "created": null, "modified": null,
    "points": [[2451546.0, 2, 1, 1, 1, 2, 2, 2], ["2451546.1", "3", 1, 1, 1, 2, 2, 2]]
  }}
]`

func TestDecodeRecords_FromRecord(t *testing.T) {
	recs, err := lightcurve.DecodeRecords(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	lc, err := lightcurve.FromRecord(recs[0])
	require.NoError(t, err)
	assert.Equal(t, 101, lc.ID())
	assert.Equal(t, 2, lc.Scale())
	assert.Equal(t, []float64{2451545.10, 2451545.20, 2451545.30}, lc.Times())
	assert.True(t, time.Date(2015, 6, 2, 10, 22, 33, 0, time.UTC).Equal(lc.CreatedAt()), "created: %v", lc.CreatedAt())
	assert.Equal(t, lightcurve.Point{
		JD: 2451545.10, Brightness: 1.00,
		XSun: 0.1, YSun: 0.2, ZSun: 0.3, XEarth: 0.4, YEarth: 0.5, ZEarth: 0.6,
	}, lc.At(0))

	lc, err = lightcurve.FromRecord(recs[1])
	require.NoError(t, err)
	assert.Equal(t, 102, lc.ID())
	assert.Equal(t, []float64{2, 3}, lc.Brightnesses())
	assert.True(t, lc.CreatedAt().IsZero())
}

func TestFromRecord_PreParsedRows(t *testing.T) {
	lc, err := lightcurve.FromRecord(lightcurve.Record{
		ID: 1, Scale: 0, PointsCount: 2,
		Points: [][]float64{{2, 20, 0, 0, 0, 0, 0, 0}, {1, 10, 0, 0, 0, 0, 0, 0}},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, lc.Brightnesses())
}

func TestFromRecord_Errors(t *testing.T) {
	tests := []struct {
		name string
		rec  lightcurve.Record
		want error
	}{
		{
			name: "count mismatch",
			rec:  lightcurve.Record{ID: 1, Scale: 1, PointsCount: 2, Points: "1 2 3 4 5 6 7 8"},
			want: lightcurve.ErrPointsCountMismatch,
		},
		{
			name: "short row",
			rec:  lightcurve.Record{ID: 1, Scale: 1, PointsCount: 1, Points: "1 2 3"},
			want: lightcurve.ErrBadPoint,
		},
		{
			name: "non numeric",
			rec:  lightcurve.Record{ID: 1, Scale: 1, PointsCount: 1, Points: "1 x 3 4 5 6 7 8"},
			want: lightcurve.ErrBadPoint,
		},
		{
			name: "bad id",
			rec:  lightcurve.Record{ID: "abc", Scale: 1, PointsCount: 1, Points: "1 2 3 4 5 6 7 8"},
			want: lightcurve.ErrBadRecord,
		},
		{
			name: "unsupported points",
			rec:  lightcurve.Record{ID: 1, Scale: 1, PointsCount: 1, Points: 42},
			want: lightcurve.ErrBadRecord,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lightcurve.FromRecord(tc.rec)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecodeRecords_MissingKey(t *testing.T) {
	_, err := lightcurve.DecodeRecords(strings.NewReader(`[{"Other": {}}]`))
	assert.ErrorIs(t, err, lightcurve.ErrBadRecord)

	_, err = lightcurve.DecodeRecords(strings.NewReader(`not json`))
	assert.ErrorIs(t, err, lightcurve.ErrBadRecord)
}

func TestParsePoints_SkipsBlankLines(t *testing.T) {
	points, err := lightcurve.ParsePoints("\n  1 2 3 4 5 6 7 8  \n\t\n9 10 11 12 13 14 15 16")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 9.0, points[1].JD)
	assert.Equal(t, 16.0, points[1].ZEarth)
}
