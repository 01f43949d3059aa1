// Package sableye models the time evolution of a mixture of nuclear
// isotopes under radioactive decay, neutron-induced transmutation and
// fission, with discrete reprocessing operations between evolution
// steps.
//
// 🚀 What is sableye?
//
//	A solver core built from small, composable packages:
//		• Isotope identity: canonical codes + total shift arithmetic
//		• Generator assembly: decay, fission-yield and transmutation
//		  rates folded into one N×N Bateman matrix
//		• Time evolution: scaling-and-squaring Padé matrix exponential,
//		  sound across twenty-plus orders of magnitude in decay constants
//		• Reprocessing: instantaneous affine remaps with renormalization
//		• Persistence: SQLite runs and flat binary tensor dumps
//
// ✨ Why this shape?
//
//   - Deterministic – fixed iteration orders, no hidden randomness
//   - Observable – missing rate data is counted, never swallowed
//   - Safe surfaces – errors.Is-matchable sentinels, no panics on input
//   - Copies out – exported matrices and histories never alias internals
//
// Package map:
//
//	isotope/  — the code value type (A, Z, metastable ordinal)
//	rates/    — provider contracts, decay/yield/σ̄ tables, MT catalog
//	matrix/   — dense kernels and the Expm propagator
//	bateman/  — the generator builder with gap reporting
//	fuel/     — concentration state with append-only history
//	solver/   — Reactor (continuous evolve) and Scheme (reprocess)
//	store/    — SQLite run persistence and binary dumps
//	scenario/ — YAML scenario loading and execution
//	cmd/      — the sableye CLI
//
// Data flows one way:
//
//	rates ──▶ bateman ──▶ solver ──▶ fuel ──▶ store
//
// A full scenario alternates Evolve and Apply against one fuel state,
// each call appending exactly one history row.
package sableye
