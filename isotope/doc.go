// SPDX-License-Identifier: MIT

// Package isotope defines the canonical isotope identity used across the
// sableye solver: a small value type carrying mass number A, atomic
// number Z and metastable-state ordinal M, plus the shift arithmetic that
// nuclear reactions induce on a target isotope.
//
// Canonical string form is the fixed-width ten-digit code ZZZAAAMMMM
// (three digits Z, three digits A, four digits M), e.g. "0922350000" for
// U-235 ground state. The encoding is injective: two codes compare equal
// exactly when (A, Z, M) are equal.
//
// Metastable states form the three-level state machine ground ⇄ m1 ⇄ m2.
// Shifts past either boundary (MetaDown on a ground state, MetaUp on m2)
// saturate and leave M unchanged; see Code.Shift.
package isotope
