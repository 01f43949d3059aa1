// SPDX-License-Identifier: MIT

// Package scenario turns a YAML description of a fuel-cycle run into an
// executed simulation: tracked isotopes, initial inventory, rate data,
// an alternating sequence of evolve and reprocess steps, and optional
// outputs (SQLite run, binary history dump, generator dump).
//
// Load reads and validates a scenario file; Run executes it against the
// core packages and persists whatever outputs the file asks for.
// Structured progress and data-gap reporting go through the injected
// zap logger; the core packages themselves stay log-free.
package scenario
