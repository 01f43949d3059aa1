// SPDX-License-Identifier: MIT

// Package rates - the neutron-induced reaction catalog.

package rates

import (
	"fmt"

	"sableye/isotope"
)

// FissionMT is the ENDF MT number of neutron-induced fission. The
// catalog entry carrying it is a sentinel: fission has no fixed
// (ΔA, ΔZ) transform and routes through yield tables instead.
const FissionMT = 18

// Reaction is one catalog entry: an ENDF MT reaction number, its
// conventional label, and the isotope transform it applies to the
// target. RoutesThroughYields marks the fission sentinel, whose DeltaA
// and DeltaZ are meaningless.
type Reaction struct {
	MT                  int
	Label               string
	DeltaA, DeltaZ      int
	Meta                isotope.MetaShift
	RoutesThroughYields bool
}

// Product applies the reaction transform to target. Calling Product on
// the fission sentinel is a programming error and returns
// ErrUnknownReaction; check RoutesThroughYields first.
func (r Reaction) Product(target isotope.Code) (isotope.Code, error) {
	if r.RoutesThroughYields {
		return isotope.Code{}, fmt.Errorf("MT=%d has no fixed transform: %w",
			r.MT, ErrUnknownReaction)
	}

	return target.Shift(r.DeltaA, r.DeltaZ, r.Meta)
}

// Catalog is an ordered reaction list; order fixes deterministic
// iteration in the builder.
type Catalog []Reaction

// ByMT returns the entry with the given MT number.
// Errors: ErrUnknownReaction.
func (c Catalog) ByMT(mt int) (Reaction, error) {
	for _, r := range c {
		if r.MT == mt {
			return r, nil
		}
	}

	return Reaction{}, fmt.Errorf("MT=%d: %w", mt, ErrUnknownReaction)
}

// DefaultCatalog returns the standard one-group neutron reaction set
// (after M. Lovecky et al.). Each call returns a fresh slice; callers
// may trim or extend their copy freely.
//
// Transform sign convention: the deltas apply to the TARGET nucleus
// after absorbing the incident neutron, e.g. (n,g) gains one nucleon
// and (n,2n) nets a loss of one.
func DefaultCatalog() Catalog {
	return Catalog{
		{MT: 4, Label: "(n,n')", DeltaA: 0, DeltaZ: 0, Meta: isotope.MetaUp},
		{MT: 16, Label: "(n,2n)", DeltaA: -1, DeltaZ: 0, Meta: isotope.MetaDown},
		{MT: 17, Label: "(n,3n)", DeltaA: -2, DeltaZ: 0},
		{MT: FissionMT, Label: "(n,f)", RoutesThroughYields: true},
		{MT: 22, Label: "(n,na)", DeltaA: -4, DeltaZ: -2},
		{MT: 23, Label: "(n,n3a)", DeltaA: -12, DeltaZ: -6},
		{MT: 24, Label: "(n,2na)", DeltaA: -5, DeltaZ: -2},
		{MT: 25, Label: "(n,3na)", DeltaA: -6, DeltaZ: -2},
		{MT: 28, Label: "(n,np)", DeltaA: -1, DeltaZ: -1},
		{MT: 29, Label: "(n,n2a)", DeltaA: -8, DeltaZ: -2},
		{MT: 32, Label: "(n,nd)", DeltaA: -2, DeltaZ: -1},
		{MT: 33, Label: "(n,nt)", DeltaA: -3, DeltaZ: -2},
		{MT: 34, Label: "(n,nhe3)", DeltaA: -3, DeltaZ: -2},
		{MT: 37, Label: "(n,4n)", DeltaA: -3, DeltaZ: 0},
		{MT: 41, Label: "(n,2np)", DeltaA: -2, DeltaZ: -1},
		{MT: 44, Label: "(n,n2p)", DeltaA: -2, DeltaZ: -1},
		{MT: 45, Label: "(n,npa)", DeltaA: -5, DeltaZ: -2},
		{MT: 102, Label: "(n,g)", DeltaA: 1, DeltaZ: 0, Meta: isotope.MetaUp},
		{MT: 103, Label: "(n,p)", DeltaA: -1, DeltaZ: -1},
		{MT: 104, Label: "(n,d)", DeltaA: -1, DeltaZ: -1},
		{MT: 105, Label: "(n,t)", DeltaA: -2, DeltaZ: -1},
		{MT: 106, Label: "(n,he3)", DeltaA: -2, DeltaZ: -2},
		{MT: 107, Label: "(n,a)", DeltaA: -3, DeltaZ: -2},
		{MT: 108, Label: "(n,2a)", DeltaA: -7, DeltaZ: -4},
		{MT: 111, Label: "(n,2p)", DeltaA: -1, DeltaZ: -2},
		{MT: 112, Label: "(n,pa)", DeltaA: -4, DeltaZ: -3},
		{MT: 113, Label: "(n,t2a)", DeltaA: -7, DeltaZ: -4},
		{MT: 115, Label: "(n,pd)", DeltaA: -2, DeltaZ: -2},
		{MT: 116, Label: "(n,pt)", DeltaA: -3, DeltaZ: -2},
		{MT: 117, Label: "(n,da)", DeltaA: -5, DeltaZ: -3},
	}
}
