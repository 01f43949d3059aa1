// SPDX-License-Identifier: MIT

// Package rates - provider contracts and map-backed tables.

package rates

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"sableye/isotope"
)

// ProbSumTolerance bounds how far a record's branching probabilities may
// exceed one before the record is rejected. Sums below one are legal:
// unmeasured channels absorb the remainder.
const ProbSumTolerance = 1e-9

// SignificantYield is the smallest independent fission-yield fraction
// worth carrying; products below it contribute nothing measurable to the
// generator and are dropped at table construction.
const SignificantYield = 1e-10

// DecayRecord describes one parent isotope's decay: the decay constant
// in 1/s (zero means stable) and the parallel child/probability lists.
type DecayRecord struct {
	Lambda   float64        // decay constant, 1/s, >= 0
	Children []isotope.Code // decay products, ordered
	Probs    []float64      // branching probabilities, parallel to Children
}

// Validate checks the record contract.
//
// Rules:
//   - Lambda >= 0.
//   - len(Children) == len(Probs).
//   - every probability in [0, 1].
//   - sum of probabilities <= 1 + ProbSumTolerance (below one is fine,
//     untracked spontaneous-fission channels absorb the remainder).
//
// Errors: ErrInvalidRecord with the violated rule in the wrap context.
func (r DecayRecord) Validate() error {
	if r.Lambda < 0 {
		return fmt.Errorf("negative decay constant %g: %w", r.Lambda, ErrInvalidRecord)
	}
	if len(r.Children) != len(r.Probs) {
		return fmt.Errorf("children/probs length %d != %d: %w",
			len(r.Children), len(r.Probs), ErrInvalidRecord)
	}
	var sum float64
	for i, p := range r.Probs {
		if p < 0 || p > 1 {
			return fmt.Errorf("branch %d probability %g outside [0,1]: %w",
				i, p, ErrInvalidRecord)
		}
		sum += p
	}
	if sum > 1+ProbSumTolerance {
		return fmt.Errorf("branch probabilities sum to %g > 1: %w", sum, ErrInvalidRecord)
	}

	return nil
}

// DecaySource supplies decay records keyed by parent isotope. Absence is
// an expected condition (the isotope is stable by omission) reported
// through ok, never an error.
type DecaySource interface {
	Decay(parent isotope.Code) (DecayRecord, bool)
}

// YieldSource supplies independent fission-product yields for a
// fissionable parent: product isotope -> yield fraction. The returned
// map must be safe for the caller to iterate without mutation concerns.
type YieldSource interface {
	Yields(parent isotope.Code) (map[isotope.Code]float64, bool)
}

// CrossSectionSource supplies spectrum-weighted one-group cross sections
// keyed by (target isotope, MT reaction number). Units are up to the
// provider; combined with a flux they must yield a rate in 1/s.
type CrossSectionSource interface {
	CrossSection(target isotope.Code, mt int) (float64, bool)
}

// DecayTable is a map-backed DecaySource.
type DecayTable map[isotope.Code]DecayRecord

var _ DecaySource = DecayTable(nil)

// Decay implements DecaySource.
func (t DecayTable) Decay(parent isotope.Code) (DecayRecord, bool) {
	rec, ok := t[parent]
	return rec, ok
}

// Parents returns the table's parent codes in canonical string order,
// for deterministic iteration by diagnostics and tests.
func (t DecayTable) Parents() []isotope.Code {
	out := make([]isotope.Code, 0, len(t))
	for code := range t {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}

// YieldTable is a map-backed YieldSource: parent -> product -> fraction.
type YieldTable map[isotope.Code]map[isotope.Code]float64

var _ YieldSource = YieldTable(nil)

// Yields implements YieldSource. Products at or below SignificantYield
// are filtered out of the returned map.
func (t YieldTable) Yields(parent isotope.Code) (map[isotope.Code]float64, bool) {
	row, ok := t[parent]
	if !ok {
		return nil, false
	}
	out := make(map[isotope.Code]float64, len(row))
	for product, fraction := range row {
		if fraction > SignificantYield {
			out[product] = fraction
		}
	}

	return out, true
}

// XSKey is the composite lookup key of CrossSectionTable.
type XSKey struct {
	Target isotope.Code
	MT     int
}

// CrossSectionTable is a map-backed CrossSectionSource.
type CrossSectionTable map[XSKey]float64

var _ CrossSectionSource = CrossSectionTable(nil)

// CrossSection implements CrossSectionSource.
func (t CrossSectionTable) CrossSection(target isotope.Code, mt int) (float64, bool) {
	v, ok := t[XSKey{Target: target, MT: mt}]
	return v, ok
}

// decayRecordJSON mirrors the decay-table interchange document:
//
//	{ "<code>": { "decayConst": λ, "childNames": [...], "childProbs": [...] } }
type decayRecordJSON struct {
	DecayConst float64   `json:"decayConst"`
	ChildNames []string  `json:"childNames"`
	ChildProbs []float64 `json:"childProbs"`
}

// LoadDecayTable decodes a decay-table JSON document from r into a
// validated DecayTable.
//
// Behavior highlights:
//   - Every isotope key and child name must parse as a canonical code.
//   - Every record must pass DecayRecord.Validate.
//   - The first violation aborts the load; partial tables are never
//     returned.
//
// Errors: ErrBadTable wrapping the decode, parse or validation cause.
func LoadDecayTable(r io.Reader) (DecayTable, error) {
	var doc map[string]decayRecordJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTable, err)
	}

	table := make(DecayTable, len(doc))
	for key, raw := range doc {
		parent, err := isotope.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("%w: parent %q: %v", ErrBadTable, key, err)
		}
		rec := DecayRecord{
			Lambda:   raw.DecayConst,
			Children: make([]isotope.Code, len(raw.ChildNames)),
			Probs:    raw.ChildProbs,
		}
		for i, name := range raw.ChildNames {
			child, childErr := isotope.Parse(name)
			if childErr != nil {
				return nil, fmt.Errorf("%w: parent %q child %q: %v",
					ErrBadTable, key, name, childErr)
			}
			rec.Children[i] = child
		}
		if err = rec.Validate(); err != nil {
			return nil, fmt.Errorf("%w: parent %q: %v", ErrBadTable, key, err)
		}
		table[parent] = rec
	}

	return table, nil
}
