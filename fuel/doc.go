// SPDX-License-Identifier: MIT

// Package fuel holds the material state a simulation advances: the
// ordered isotope labels, the current concentration vector and an
// append-only history of every past vector.
//
// Lifecycle: New fixes the isotope order and seeds history index 0 with
// the initial vector. From then on only Append mutates the state, each
// call replacing current and adding exactly one history row; history is
// never truncated or rewritten. The evolution and reprocessing
// operators in package solver are the intended callers.
//
// All accessors return copies. Nothing handed out aliases internal
// storage, so a caller can never corrupt a state through a returned
// slice.
package fuel
