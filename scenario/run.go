// SPDX-License-Identifier: MIT

// Package scenario - scenario execution.

package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"sableye/bateman"
	"sableye/fuel"
	"sableye/isotope"
	"sableye/matrix"
	"sableye/rates"
	"sableye/solver"
	"sableye/store"
)

// Run executes a validated scenario end to end and returns the final
// fuel state with its full history. Outputs named in cfg.Output are
// written before returning.
//
// Implementation stages:
//   - Stage 1: materialize rate tables from the config (decay JSON
//     file, inline yields and cross sections).
//   - Stage 2: assemble the generator, logging the aggregated data-gap
//     counts.
//   - Stage 3: walk the step list against one fuel state; numerical
//     instability in an evolve step is logged as a warning and the run
//     continues on the best-effort result.
//   - Stage 4: persist requested outputs (SQLite run, binary dumps).
//
// A nil logger is replaced by zap.NewNop.
func Run(ctx context.Context, cfg *Config, log *zap.Logger) (*fuel.State, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracked := make([]isotope.Code, len(cfg.Isotopes))
	for i, code := range cfg.Isotopes {
		tracked[i] = isotope.MustParse(code) // validated by cfg.Validate
	}

	decay, err := loadDecay(cfg.DecayTable)
	if err != nil {
		return nil, err
	}
	yields := make(rates.YieldTable, len(cfg.Yields))
	for parent, row := range cfg.Yields {
		products := make(map[isotope.Code]float64, len(row))
		for product, fraction := range row {
			products[isotope.MustParse(product)] = fraction
		}
		yields[isotope.MustParse(parent)] = products
	}
	xs := make(rates.CrossSectionTable, len(cfg.CrossSections))
	for _, spec := range cfg.CrossSections {
		xs[rates.XSKey{Target: isotope.MustParse(spec.Target), MT: spec.MT}] = spec.Sigma
	}
	fissionable := make(map[isotope.Code]bool, len(cfg.Fissionable))
	for _, code := range cfg.Fissionable {
		fissionable[isotope.MustParse(code)] = true
	}

	var opts []bateman.Option
	if cfg.StrictProducts {
		opts = append(opts, bateman.WithStrictProducts())
	}
	b, err := bateman.NewBuilder(tracked, opts...)
	if err != nil {
		return nil, err
	}
	if err = b.AddDecay(decay); err != nil {
		return nil, err
	}
	if len(fissionable) > 0 {
		if err = b.AddFissionYields(fissionable, yields, xs, cfg.Flux); err != nil {
			return nil, err
		}
	}
	if len(xs) > 0 {
		if err = b.AddTransmutations(rates.DefaultCatalog(), xs, cfg.Flux); err != nil {
			return nil, err
		}
	}

	report := b.Report()
	log.Info("generator assembled",
		zap.String("run", cfg.Run),
		zap.Int("isotopes", b.Size()),
		zap.Int("gaps", report.Len()))
	for _, gap := range report.Gaps() {
		log.Debug("data gap", zap.Stringer("kind", gap.Kind),
			zap.Stringer("isotope", gap.Isotope), zap.String("detail", gap.Detail))
	}

	q := b.Export()
	reactor, err := solver.NewReactor(q)
	if err != nil {
		return nil, err
	}
	st, err := fuel.New(tracked, cfg.Initial)
	if err != nil {
		return nil, err
	}

	for i, step := range cfg.Steps {
		switch {
		case step.Evolve != nil:
			dt := *step.Evolve
			log.Info("evolving", zap.Int("step", i), zap.Float64("dt_seconds", dt))
			if err = reactor.Evolve(st, dt); err != nil {
				if errors.Is(err, matrix.ErrNumericalInstability) {
					log.Warn("propagator precision degraded", zap.Int("step", i), zap.Error(err))
					continue
				}
				return nil, fmt.Errorf("steps[%d]: %w", i, err)
			}
		case step.Reprocess != nil:
			log.Info("reprocessing", zap.Int("step", i))
			scheme, schemeErr := buildScheme(len(tracked), step.Reprocess)
			if schemeErr != nil {
				return nil, fmt.Errorf("steps[%d]: %w", i, schemeErr)
			}
			if err = scheme.Apply(st); err != nil {
				return nil, fmt.Errorf("steps[%d]: %w", i, err)
			}
		}
	}

	if err = writeOutputs(ctx, cfg, q, st, log); err != nil {
		return nil, err
	}

	return st, nil
}

// loadDecay reads the decay JSON document, or returns an empty table
// when no path is configured (every tracked isotope then reports a
// missing-decay gap and stays stable).
func loadDecay(path string) (rates.DecayTable, error) {
	if path == "" {
		return rates.DecayTable{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: decay table: %v", ErrBadConfig, err)
	}
	defer func() { _ = f.Close() }()

	return rates.LoadDecayTable(f)
}

// buildScheme lowers a ReprocessSpec into a solver.Scheme: Retain forms
// the remap diagonal (default all ones), Add the feed vector (default
// zeros).
func buildScheme(n int, spec *ReprocessSpec) (*solver.Scheme, error) {
	mult, err := matrix.Identity(n)
	if err != nil {
		return nil, err
	}
	if spec.Retain != nil {
		for i, keep := range spec.Retain {
			if err = mult.Set(i, i, keep); err != nil {
				return nil, err
			}
		}
	}
	add := spec.Add
	if add == nil {
		add = make([]float64, n)
	}

	return solver.NewScheme(add, mult, spec.Renormalize)
}

// writeOutputs persists whichever sinks the scenario names.
func writeOutputs(ctx context.Context, cfg *Config, q *matrix.Dense, st *fuel.State, log *zap.Logger) error {
	if path := cfg.Output.Matrix; path != "" {
		if err := writeFile(path, func(f *os.File) error {
			return store.WriteMatrix(f, q)
		}); err != nil {
			return err
		}
		log.Info("generator dumped", zap.String("path", path))
	}
	if path := cfg.Output.History; path != "" {
		if err := writeFile(path, func(f *os.File) error {
			return store.WriteHistory(f, st.Isotopes(), st.History())
		}); err != nil {
			return err
		}
		log.Info("history dumped", zap.String("path", path))
	}
	if path := cfg.Output.Database; path != "" {
		db := store.NewSQLiteStore(path)
		if err := db.Init(ctx); err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		if err := db.SaveRun(ctx, cfg.Run, st); err != nil {
			return err
		}
		log.Info("run saved", zap.String("path", path), zap.String("run", cfg.Run))
	}

	return nil
}

// writeFile creates path, hands it to write and keeps the first error
// of write/close.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
