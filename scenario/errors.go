// SPDX-License-Identifier: MIT
// Package scenario: sentinel error set.

package scenario

import "errors"

// ErrBadConfig indicates a scenario file that fails validation:
// unreadable YAML, unparsable isotope codes, mismatched vector lengths
// or a step that is neither an evolve nor a reprocess.
var ErrBadConfig = errors.New("scenario: invalid configuration")
