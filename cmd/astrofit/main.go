// Command astrofit estimates asteroid rotation periods from archived
// photometry: it splits every lightcurve at observation gaps, bins the
// pieces into apparitions and reports the strongest periodogram peaks per bin.
//
// Usage:
//
//	astrofit -config astrofit.yaml [-asteroid NAME]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/astrofit/binner"
	"github.com/katalvlaran/astrofit/internal/config"
	"github.com/katalvlaran/astrofit/internal/loader"
	"github.com/katalvlaran/astrofit/lightcurve"
	"github.com/katalvlaran/astrofit/periodogram"
	"github.com/katalvlaran/astrofit/splitter"
)

func main() {
	configPath := flag.String("config", "astrofit.yaml", "path to config file")
	asteroid := flag.String("asteroid", "", "work name to process (default: data.asteroid, then all)")
	flag.Parse()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		slog.Error("failed to load config", "config", *configPath, "error", err)
		os.Exit(1)
	}
	level, _ := cfg.LogLevel()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *asteroid == "" {
		*asteroid = cfg.Data.Asteroid
	}
	if err := run(ctx, os.Stdout, cfg, logger, *asteroid); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// run processes one work name, or every indexed asteroid when name is empty,
// and writes a candidate table to w.
func run(ctx context.Context, w io.Writer, cfg *config.Config, logger *slog.Logger, name string) error {
	ld, err := loader.New(cfg.Data.Dir, logger)
	if err != nil {
		return err
	}

	names := []string{name}
	if name == "" {
		names = ld.Names()
	}
	logger.Info("starting astrofit", "data_dir", cfg.Data.Dir, "asteroids", len(names))

	p := pipeline{cfg: cfg, logger: logger}
	if p.binOpts, err = cfg.BinnerOptions(); err != nil {
		return err
	}
	for _, n := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		a, err := ld.Load(n)
		if err != nil {
			return err
		}
		if err := p.process(ctx, w, a); err != nil {
			return fmt.Errorf("%s: %w", n, err)
		}
	}

	return nil
}

type pipeline struct {
	cfg     *config.Config
	logger  *slog.Logger
	binOpts binner.Options
}

func (p pipeline) process(ctx context.Context, w io.Writer, a *lightcurve.Asteroid) error {
	logger := p.logger.With("asteroid", a.Name, "id", a.ID)

	canonical := a.Canonical()
	if len(canonical) == 0 {
		logger.Warn("no lightcurves")
		return nil
	}
	first, last, err := lightcurve.Span(canonical)
	if err != nil {
		return err
	}
	logger.Info("canonicalized", "lightcurves", a.Len(), "runs", len(canonical),
		"first_jd", first, "last_jd", last)

	pieces, err := splitter.SplitAll(canonical, p.cfg.SplitterOptions())
	if err != nil {
		return err
	}
	bins, err := binner.Bin(pieces, p.binOpts)
	if err != nil {
		return err
	}
	if len(bins) == 0 {
		logger.Warn("no bins left after splitting", "pieces", len(pieces))
		return nil
	}
	rows, cols, err := binner.GridSize(len(bins))
	if err != nil {
		return err
	}
	logger.Info("binned", "pieces", len(pieces), "bins", len(bins), "grid", fmt.Sprintf("%dx%d", rows, cols))

	peaks, err := p.decompose(ctx, bins)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "# %s (%d) known period %.5fh, spin axis (%.1f°, %.1f°)\n",
		a.Name, a.ID, a.Period, a.Lambda.Deg(), a.Beta.Deg())
	for i, b := range bins {
		span, unit := b.PeriodAuto()
		fmt.Fprintf(w, "bin %d: %d curves, %d points, span %.2f%s\n", i, b.Len(), b.PointsCount(), span, unit)
		for rank, pk := range peaks[i] {
			fmt.Fprintf(w, "  %d. f=%.6f/d  P=%.5fh  power=%.4f  ΔP=%+.5fh\n",
				rank+1, pk.Frequency, pk.PeriodHours(), pk.Power, pk.PeriodHours()-a.Period)
		}
		if len(peaks[i]) > 0 {
			logger.Debug("best candidate", "bin", i, "period_h", peaks[i][0].PeriodHours(),
				"rel_err", math.Abs(peaks[i][0].PeriodHours()-a.Period)/a.Period)
		}
	}

	return nil
}

// decompose runs the periodogram of every bin on at most cfg.Workers
// goroutines. Result i belongs to bins[i].
func (p pipeline) decompose(ctx context.Context, bins []*lightcurve.Bin) ([][]periodogram.Peak, error) {
	opts := p.cfg.PeriodogramOptions()
	out := make([][]periodogram.Peak, len(bins))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)
	for i, b := range bins {
		i, b := i, b // per-iteration copies (go directive is 1.21)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			peaks, err := periodogram.Decompose(b, opts)
			if err != nil {
				return fmt.Errorf("bin %d: %w", i, err)
			}
			out[i] = peaks

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
