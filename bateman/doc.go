// SPDX-License-Identifier: MIT

// Package bateman assembles the transmutation generator: the N×N rate
// matrix Q over a fixed ordered set of tracked isotopes whose linear
// ODE dN/dt = Q·N models simultaneous decay, fission and neutron
// transmutation.
//
// Construction model:
//   - NewBuilder fixes the tracked set (order defines matrix indices;
//     empty or duplicated sets are ErrInvalidConfiguration).
//   - Three additive sources fold rates into the shared matrix:
//     AddDecay, AddFissionYields, AddTransmutations. Addition commutes,
//     so source order never matters; each source is single-use and a
//     second application fails with ErrSourceApplied instead of
//     silently double-counting.
//   - Export returns a deep copy; the builder's internal state can
//     never be mutated through an exported matrix.
//
// Every rate lands twice: production into (product row, target column)
// and the matching loss on the target diagonal. Channels leading out of
// the tracked set charge only the loss side, which makes the column sum
// strictly negative; mass then flows out of the modeled subspace, which
// is physically correct and observable through the gap report.
//
// Missing data never aborts a build. Absent decay records, untracked
// children or products, absent yield rows and absent cross sections are
// collected as typed gaps, aggregated with counts in Report, so a
// caller can judge the completeness of a tracked set after the fact.
// WithStrictProducts upgrades untracked reaction products to a hard
// failure for callers that cannot tolerate silent mass loss.
//
// See also: package rates (the source contracts), package solver (the
// consumer of the exported matrix).
package bateman
