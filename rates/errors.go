// SPDX-License-Identifier: MIT
// Package rates: sentinel error set.

package rates

import "errors"

var (
	// ErrInvalidRecord indicates a decay record that violates its own
	// contract: negative decay constant, children/probabilities length
	// mismatch, a probability outside [0,1], or probabilities summing
	// above one beyond floating tolerance.
	ErrInvalidRecord = errors.New("rates: invalid decay record")

	// ErrBadTable indicates a decay-table document that could not be
	// decoded: malformed JSON, an unparsable isotope code key, or a
	// record failing validation. Wraps the underlying cause.
	ErrBadTable = errors.New("rates: malformed decay table")

	// ErrUnknownReaction indicates an MT number absent from the catalog.
	ErrUnknownReaction = errors.New("rates: unknown reaction")
)
