// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

package formaturl

import "fmt"

// ErrMissingSubstitution is returned when a path template references a
// placeholder that has no entry in the substitution map. Identifier holds
// the placeholder name without the leading colon.
type ErrMissingSubstitution struct {
	Identifier string
}

// Error returns a customized error message.
func (e *ErrMissingSubstitution) Error() string {
	return fmt.Sprintf("path template references placeholder %q with no substitution value", ":"+e.Identifier)
}

// ErrUnusedSubstitution is returned in strict mode when a substitution map
// entry matches no placeholder in the path template. Identifier holds the
// unused key. When several entries are unused the lexicographically first
// one is reported.
type ErrUnusedSubstitution struct {
	Identifier string
}

// Error returns a customized error message.
func (e *ErrUnusedSubstitution) Error() string {
	return fmt.Sprintf("substitution %q matches no placeholder in the path template", e.Identifier)
}
