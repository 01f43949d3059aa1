// SPDX-License-Identifier: MIT

// Package bateman - builder policy options (functional, defaulted).

package bateman

// DefaultStrictProducts is the default product policy: permissive.
// Untracked reaction and fission products are recorded as gaps and the
// build continues.
const DefaultStrictProducts = false

// config carries the resolved builder policy.
type config struct {
	strictProducts bool
}

// defaultConfig returns the package defaults.
func defaultConfig() config {
	return config{strictProducts: DefaultStrictProducts}
}

// Option mutates the builder policy at construction.
type Option func(*config)

// WithStrictProducts makes an untracked reaction or fission product a
// hard ErrUntrackedProduct failure instead of a recorded gap. Use when
// silent mass loss out of the tracked set is unacceptable.
func WithStrictProducts() Option {
	return func(c *config) { c.strictProducts = true }
}
