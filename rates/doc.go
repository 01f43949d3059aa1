// SPDX-License-Identifier: MIT

// Package rates defines the data contracts between nuclear-data
// providers and the generator builder: decay records, fission-yield
// tables, one-group cross sections and the neutron reaction catalog.
//
// What lives here:
//   - DecaySource / YieldSource / CrossSectionSource: the lookup
//     interfaces the builder consumes. A miss is reported through the
//     (value, bool) second return, never through an error; missing data
//     is an expected condition the builder aggregates as gaps.
//   - DecayTable / YieldTable / CrossSectionTable: map-backed in-memory
//     implementations of the three interfaces, plus a JSON loader for
//     the decay-table interchange shape.
//   - Reaction / Catalog / DefaultCatalog: the MT-numbered catalog of
//     neutron-induced reactions with the (ΔA, ΔZ, ΔM) isotope transform
//     each one induces; fission (MT=18) is the sentinel entry that
//     routes through yield tables instead of a fixed transform.
//
// The package holds pure data and lookups only. Parsing evaluated
// nuclear data files and homogenizing cross sections over an energy
// spectrum happen upstream; this package consumes the already-reduced
// numbers.
//
// See also: package bateman (the consumer), package isotope (the key
// type all lookups are indexed by).
package rates
