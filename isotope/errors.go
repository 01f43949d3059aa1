// SPDX-License-Identifier: MIT
// Package isotope: sentinel error set.
// All parse/shift failures surface one of these sentinels; callers match
// them via errors.Is. Wrapping with context happens at call sites only.

package isotope

import "errors"

var (
	// ErrBadCode is returned when a textual code is not a ten-digit
	// ZZZAAAMMMM string or encodes an out-of-range field.
	ErrBadCode = errors.New("isotope: malformed isotope code")

	// ErrUnphysical is returned by Shift when the resulting nuclide would
	// have A < 1 or Z < 0 (the reaction removed more nucleons or protons
	// than the target carries). Builders treat this as a data gap.
	ErrUnphysical = errors.New("isotope: shift yields unphysical nuclide")
)
