// SPDX-License-Identifier: MIT

// Package store persists simulation results in two complementary forms:
//
//   - SQLiteStore writes runs into a SQLite database as one row per
//     (run, step, isotope, concentration), so downstream reporting can
//     query concentrations directly without decoding payload blobs.
//     Lifecycle is NewSQLiteStore → Init(ctx) → use → Close.
//   - The flat binary dump (WriteHistory/ReadHistory for steps×isotopes
//     tables with their isotope labels, WriteMatrix/ReadMatrix for raw
//     generator matrices) is a little-endian dims-header-plus-payload
//     format for bulk interchange with plotting and analysis tools.
//
// Both forms round-trip exactly: float64 values pass through bit for
// bit.
package store
