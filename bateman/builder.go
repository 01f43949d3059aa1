// SPDX-License-Identifier: MIT

// Package bateman - the generator builder.

package bateman

import (
	"fmt"
	"sort"

	"sableye/isotope"
	"sableye/matrix"
	"sableye/rates"
)

// Source name constants for error wrapping and the single-use guard.
const (
	srcDecay          = "AddDecay"
	srcFissionYields  = "AddFissionYields"
	srcTransmutations = "AddTransmutations"
)

// Builder accumulates rate contributions into one N×N generator over a
// fixed ordered tracked set. Not safe for concurrent use.
type Builder struct {
	isotopes []isotope.Code         // tracked set, order fixes indices
	index    map[isotope.Code]int   // code -> row/column
	q        *matrix.Dense          // the generator under assembly
	cfg      config                 // resolved policy
	report   Report                 // aggregated data gaps
	applied  map[string]bool        // single-use guard per source
}

// NewBuilder constructs a builder over the tracked set. The slice is
// copied; the caller's copy stays free to mutate. Order defines matrix
// row and column indices.
//
// Errors: ErrInvalidConfiguration on an empty set or duplicate codes.
// Complexity: Time O(N²) (zero matrix allocation), Space O(N²).
func NewBuilder(tracked []isotope.Code, opts ...Option) (*Builder, error) {
	if len(tracked) == 0 {
		return nil, fmt.Errorf("empty tracked set: %w", ErrInvalidConfiguration)
	}

	index := make(map[isotope.Code]int, len(tracked))
	isotopes := make([]isotope.Code, len(tracked))
	for i, code := range tracked {
		if _, dup := index[code]; dup {
			return nil, fmt.Errorf("duplicate isotope %s: %w", code, ErrInvalidConfiguration)
		}
		index[code] = i
		isotopes[i] = code
	}

	q, err := matrix.NewDense(len(tracked), len(tracked))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", srcDecay, err)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Builder{
		isotopes: isotopes,
		index:    index,
		q:        q,
		cfg:      cfg,
		applied:  make(map[string]bool, 3),
	}, nil
}

// Size returns N, the tracked isotope count.
func (b *Builder) Size() int { return len(b.isotopes) }

// Isotopes returns a copy of the tracked set in index order.
func (b *Builder) Isotopes() []isotope.Code {
	out := make([]isotope.Code, len(b.isotopes))
	copy(out, b.isotopes)

	return out
}

// Report exposes the aggregated data gaps recorded so far. The report
// keeps growing as further sources are applied.
func (b *Builder) Report() *Report { return &b.report }

// Export returns a deep copy of the assembled generator. Mutating the
// copy never touches the builder, and further Add* calls never touch
// previously exported matrices.
func (b *Builder) Export() *matrix.Dense { return b.q.Clone() }

// markApplied flips the single-use guard for a source, failing when the
// source already ran. Re-application would double-count every rate.
func (b *Builder) markApplied(source string) error {
	if b.applied[source] {
		return fmt.Errorf("%s: %w", source, ErrSourceApplied)
	}
	b.applied[source] = true

	return nil
}

// AddDecay folds radioactive-decay rates into the generator.
//
// Implementation stages, per tracked parent in index order:
//   - Stage 1: look up the decay record; a miss records GapMissingDecay
//     and the parent stays stable by omission.
//   - Stage 2: subtract λ from the parent diagonal (total loss).
//   - Stage 3: for each (child, prob) branch, add λ·prob at
//     (child row, parent column) when the child is tracked; otherwise
//     record GapUntrackedChild, the branch's mass leaves the subspace.
//
// Behavior highlights:
//   - Single-use: a second call fails with ErrSourceApplied.
//   - Records failing DecayRecord.Validate abort the call; the matrix
//     may then hold a partial decay contribution, so treat the builder
//     as poisoned and construct a new one.
//
// Errors: ErrNilSource, ErrSourceApplied, rates.ErrInvalidRecord.
// Complexity: Time O(N·avg branches), Space O(1) beyond gap records.
func (b *Builder) AddDecay(src rates.DecaySource) error {
	if src == nil {
		return fmt.Errorf("%s: %w", srcDecay, ErrNilSource)
	}
	if err := b.markApplied(srcDecay); err != nil {
		return err
	}

	for parentIdx, parent := range b.isotopes {
		rec, ok := src.Decay(parent)
		if !ok {
			b.report.add(GapMissingDecay, parent, "")
			continue
		}
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("%s: parent %s: %w", srcDecay, parent, err)
		}
		if rec.Lambda == 0 {
			continue // stable, nothing to fold
		}

		if err := b.q.AddAt(parentIdx, parentIdx, -rec.Lambda); err != nil {
			return fmt.Errorf("%s: %w", srcDecay, err)
		}
		for i, child := range rec.Children {
			childIdx, tracked := b.index[child]
			if !tracked {
				b.report.add(GapUntrackedChild, parent, child.String())
				continue
			}
			if err := b.q.AddAt(childIdx, parentIdx, rec.Lambda*rec.Probs[i]); err != nil {
				return fmt.Errorf("%s: %w", srcDecay, err)
			}
		}
	}

	return nil
}

// AddFissionYields folds neutron-induced fission rates into the
// generator for every tracked isotope in the fissionable set.
//
// Per fissionable target: the total fission rate is σ̄(target, MT=18)
// times flux; it is subtracted once from the target diagonal (one
// nucleus consumed per fission), and rate·yield is added at
// (product row, target column) for every tracked product. Yield rows
// and cross sections can be absent; both are recorded gaps, not
// failures. Products are folded in canonical code order so rounding is
// reproducible across runs.
//
// Errors: ErrNilSource, ErrSourceApplied, ErrUntrackedProduct (strict
// mode only).
// Complexity: Time O(F·Y log Y) for F fissionable targets with Y
// products each (sorting dominates), Space O(Y).
func (b *Builder) AddFissionYields(
	fissionable map[isotope.Code]bool,
	yields rates.YieldSource,
	xs rates.CrossSectionSource,
	flux float64,
) error {
	if yields == nil || xs == nil {
		return fmt.Errorf("%s: %w", srcFissionYields, ErrNilSource)
	}
	if err := b.markApplied(srcFissionYields); err != nil {
		return err
	}

	for targetIdx, target := range b.isotopes {
		if !fissionable[target] {
			continue
		}
		sigma, ok := xs.CrossSection(target, rates.FissionMT)
		if !ok {
			b.report.add(GapMissingCrossSection, target, fmt.Sprintf("MT=%d", rates.FissionMT))
			continue
		}
		row, ok := yields.Yields(target)
		if !ok {
			b.report.add(GapMissingYields, target, "")
			continue
		}

		rate := sigma * flux
		if rate == 0 {
			continue
		}
		if err := b.q.AddAt(targetIdx, targetIdx, -rate); err != nil {
			return fmt.Errorf("%s: %w", srcFissionYields, err)
		}

		// Canonical product order for deterministic accumulation.
		products := make([]isotope.Code, 0, len(row))
		for product := range row {
			products = append(products, product)
		}
		sort.Slice(products, func(i, j int) bool {
			return products[i].String() < products[j].String()
		})

		for _, product := range products {
			productIdx, tracked := b.index[product]
			if !tracked {
				if b.cfg.strictProducts {
					return fmt.Errorf("%s: target %s product %s: %w",
						srcFissionYields, target, product, ErrUntrackedProduct)
				}
				b.report.add(GapUntrackedProduct, target, product.String())
				continue
			}
			if err := b.q.AddAt(productIdx, targetIdx, rate*row[product]); err != nil {
				return fmt.Errorf("%s: %w", srcFissionYields, err)
			}
		}
	}

	return nil
}

// AddTransmutations folds non-fission neutron reaction rates into the
// generator: for every tracked target and every catalog reaction, the
// product isotope follows from the reaction's (ΔA, ΔZ, ΔM) transform
// and the rate is σ̄(target, MT)·flux, added at (product row, target
// column) and subtracted from the target diagonal.
//
// Behavior highlights:
//   - The fission sentinel (RoutesThroughYields) is skipped here; it
//     belongs to AddFissionYields.
//   - An unphysical transform (nucleus out of range) records
//     GapUnphysicalProduct and the channel is dropped.
//   - Untracked products: gap in permissive mode, ErrUntrackedProduct
//     in strict mode. No loss is charged for a dropped channel.
//   - Absent cross sections record GapMissingCrossSection.
//
// Errors: ErrNilSource, ErrSourceApplied, ErrUntrackedProduct (strict).
// Complexity: Time O(N·len(catalog)), Space O(1) beyond gap records.
func (b *Builder) AddTransmutations(
	catalog rates.Catalog,
	xs rates.CrossSectionSource,
	flux float64,
) error {
	if xs == nil {
		return fmt.Errorf("%s: %w", srcTransmutations, ErrNilSource)
	}
	if err := b.markApplied(srcTransmutations); err != nil {
		return err
	}

	for targetIdx, target := range b.isotopes {
		for _, rxn := range catalog {
			if rxn.RoutesThroughYields {
				continue
			}
			product, err := rxn.Product(target)
			if err != nil {
				b.report.add(GapUnphysicalProduct, target, rxn.Label)
				continue
			}
			productIdx, tracked := b.index[product]
			if !tracked {
				if b.cfg.strictProducts {
					return fmt.Errorf("%s: target %s %s product %s: %w",
						srcTransmutations, target, rxn.Label, product, ErrUntrackedProduct)
				}
				b.report.add(GapUntrackedProduct, target, product.String())
				continue
			}
			sigma, ok := xs.CrossSection(target, rxn.MT)
			if !ok {
				b.report.add(GapMissingCrossSection, target, fmt.Sprintf("MT=%d", rxn.MT))
				continue
			}
			rate := sigma * flux
			if rate == 0 {
				continue
			}
			if err = b.q.AddAt(productIdx, targetIdx, rate); err != nil {
				return fmt.Errorf("%s: %w", srcTransmutations, err)
			}
			if err = b.q.AddAt(targetIdx, targetIdx, -rate); err != nil {
				return fmt.Errorf("%s: %w", srcTransmutations, err)
			}
		}
	}

	return nil
}
