// Package loader reads asteroids and their lightcurves from a DAMIT-style
// data directory:
//
//	<dir>/asteroids.csv                          catalogue with name and number columns
//	<dir>/asteroids/<work_name>/spin_params.json {"period": h, "lambda": deg, "beta": deg}
//	<dir>/asteroids/<work_name>/lc.json          [{"LightCurve": {...}}, ...]
//
// A work name is the catalogue name optionally followed by "_suffix", so
// several models of one asteroid can live side by side.
package loader
