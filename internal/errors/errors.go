// Package errors re-exports github.com/cockroachdb/errors so every package
// wraps with stack traces and attaches user-facing hints the same way.
//
//	if err := writeFile(path); err != nil {
//	    return errors.Wrapf(err, "failed to write %s", path)
//	}
//
//	return errors.WithHint(err, "depth must be at least 1")
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
)

// User-facing hints
var (
	WithHint    = crdb.WithHint
	GetAllHints = crdb.GetAllHints
)

// Inspection
var (
	Is = crdb.Is
	As = crdb.As
)
