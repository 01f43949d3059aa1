// SPDX-License-Identifier: MIT

// Package bateman - typed data-gap observability.

package bateman

import (
	"fmt"

	"sableye/isotope"
)

// GapKind classifies a recoverable data gap met during matrix assembly.
type GapKind uint8

const (
	// GapMissingDecay: a tracked isotope has no decay record; it is
	// treated as stable by omission.
	GapMissingDecay GapKind = iota
	// GapUntrackedChild: a decay branch leads to an isotope outside the
	// tracked set; the branch's mass leaves the modeled subspace.
	GapUntrackedChild
	// GapMissingYields: a fissionable tracked isotope has no yield row.
	GapMissingYields
	// GapUntrackedProduct: a fission product or reaction product falls
	// outside the tracked set (permissive mode only; strict mode fails).
	GapUntrackedProduct
	// GapMissingCrossSection: no one-group cross section for a
	// (target, reaction) pair; the channel contributes nothing.
	GapMissingCrossSection
	// GapUnphysicalProduct: a reaction transform drives the nucleus out
	// of physical range (e.g. more nucleons removed than present).
	GapUnphysicalProduct
)

// String returns the kind's stable diagnostic name.
func (k GapKind) String() string {
	switch k {
	case GapMissingDecay:
		return "missing-decay"
	case GapUntrackedChild:
		return "untracked-child"
	case GapMissingYields:
		return "missing-yields"
	case GapUntrackedProduct:
		return "untracked-product"
	case GapMissingCrossSection:
		return "missing-cross-section"
	case GapUnphysicalProduct:
		return "unphysical-product"
	default:
		return fmt.Sprintf("gap(%d)", uint8(k))
	}
}

// Gap records one data gap: the kind, the tracked isotope the gap was
// met on, and free-form detail (the missing child code, the MT number).
type Gap struct {
	Kind    GapKind
	Isotope isotope.Code
	Detail  string
}

// String renders one gap for logs.
func (g Gap) String() string {
	if g.Detail == "" {
		return fmt.Sprintf("%s: %s", g.Kind, g.Isotope)
	}

	return fmt.Sprintf("%s: %s (%s)", g.Kind, g.Isotope, g.Detail)
}

// Report aggregates the gaps of one build so completeness of a tracked
// set can be judged in counts, not just by the first occurrence.
type Report struct {
	gaps []Gap
}

// Len returns the total number of recorded gaps.
func (r *Report) Len() int { return len(r.gaps) }

// Count returns how many gaps of the given kind were recorded.
func (r *Report) Count(kind GapKind) int {
	n := 0
	for _, g := range r.gaps {
		if g.Kind == kind {
			n++
		}
	}

	return n
}

// Gaps returns a copy of the recorded gaps in recording order.
func (r *Report) Gaps() []Gap {
	out := make([]Gap, len(r.gaps))
	copy(out, r.gaps)

	return out
}

// add records one gap. Internal to the builder.
func (r *Report) add(kind GapKind, iso isotope.Code, detail string) {
	r.gaps = append(r.gaps, Gap{Kind: kind, Isotope: iso, Detail: detail})
}
