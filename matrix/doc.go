// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernels the sableye
// solver is built on: a row-major float64 Dense type with safe accessors,
// element-wise and multiplicative kernels (Add, Scale, Mul, MatVec), and a
// robust matrix exponential (Expm) via scaling-and-squaring with Padé
// approximants.
//
// Design:
//   - One concrete storage type (*Dense, flat buffer, offset = i*cols+j);
//     no interface indirection in hot loops.
//   - Safety at the public surface: At/Set return sentinel errors instead
//     of panicking; kernels validate fail-fast through the central
//     validators and wrap failures with an operation tag.
//   - Determinism: fixed loop orders everywhere; no map iteration, no
//     randomness; identical inputs yield identical bits.
//
// Expm is the numerically delicate piece: transmutation generators mix
// rate constants spanning twenty-plus orders of magnitude, so the kernel
// uses the Higham degree-(3,5,7,9,13) Padé ladder with partial-pivot LU
// denominator solves and reports precision loss as ErrNumericalInstability
// alongside a best-effort result rather than failing outright.
package matrix
