// SPDX-License-Identifier: MIT
// Package store: sentinel error set.

package store

import "errors"

var (
	// ErrNotInitialized indicates use of a SQLiteStore before Init or
	// after Close.
	ErrNotInitialized = errors.New("store: not initialized")

	// ErrMissingPath indicates an empty database path at Init.
	ErrMissingPath = errors.New("store: sqlite path is required")

	// ErrBadDump indicates a binary dump that cannot be decoded:
	// truncated payload, impossible dimensions or an unparsable label.
	ErrBadDump = errors.New("store: malformed binary dump")
)
