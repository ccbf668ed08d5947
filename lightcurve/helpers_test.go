package lightcurve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astrofit/lightcurve"
)

// pts builds points at the given JDs with brightness = 10 + JD.
func pts(jds ...float64) []lightcurve.Point {
	out := make([]lightcurve.Point, len(jds))
	for i, jd := range jds {
		out[i] = lightcurve.Point{JD: jd, Brightness: 10 + jd, XSun: 1, YEarth: -1}
	}

	return out
}

// mustCurve builds a valid Lightcurve with the given id and JDs.
func mustCurve(t *testing.T, id int, jds ...float64) *lightcurve.Lightcurve {
	t.Helper()
	lc, err := lightcurve.New(lightcurve.Meta{ID: id, Scale: 1, PointsCount: len(jds)}, pts(jds...))
	require.NoError(t, err)

	return lc
}
