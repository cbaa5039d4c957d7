// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

package formaturl

import (
	"sort"
	"strings"
)

// resolvePathTemplate scans template left to right and replaces each
// placeholder with the percent-encoded value registered under its
// identifier in subs.
//
// A placeholder begins at ":" and extends across the following run of
// ASCII letters, digits, and underscores. A ":" with no such run after it
// (including one at the end of the template) is not a placeholder and is
// kept literally. Literal text between placeholders is copied through
// without encoding; only substituted values are escaped.
//
// A placeholder whose identifier is absent from subs fails the whole
// resolution with [*ErrMissingSubstitution]; nothing is returned alongside
// the error. A nil subs map behaves as an empty one.
//
// When strict is set, a key in subs that no placeholder referenced fails
// the resolution with [*ErrUnusedSubstitution].
func resolvePathTemplate(template string, subs map[string]string, strict bool) (string, error) {
	if !strings.ContainsRune(template, ':') {
		if strict {
			if err := checkUnused(subs, nil); err != nil {
				return "", err
			}
		}
		return template, nil
	}

	var used map[string]bool
	if strict {
		used = make(map[string]bool, len(subs))
	}

	var buf strings.Builder
	buf.Grow(len(template))
	for i := 0; i < len(template); {
		c := template[i]
		if c != ':' {
			buf.WriteByte(c)
			i++
			continue
		}

		j := i + 1
		for j < len(template) && isIdentByte(template[j]) {
			j++
		}
		if j == i+1 {
			// Dangling marker with no identifier: literal, not an error.
			buf.WriteByte(c)
			i++
			continue
		}

		ident := template[i+1 : j]
		value, ok := subs[ident]
		if !ok {
			return "", &ErrMissingSubstitution{Identifier: ident}
		}
		buf.WriteString(escape(value))
		if used != nil {
			used[ident] = true
		}
		i = j
	}

	if strict {
		if err := checkUnused(subs, used); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// isIdentByte reports whether c may be part of a placeholder identifier.
// Identifiers are ASCII-only; a multi-byte rune after ":" ends the
// identifier run just like any other non-identifier byte.
func isIdentByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '_'
}

// checkUnused returns an [*ErrUnusedSubstitution] naming the
// lexicographically first key of subs that used does not contain, or nil
// when every key was referenced. Sorting keeps the reported key stable
// across calls despite map iteration order.
func checkUnused(subs map[string]string, used map[string]bool) error {
	if len(subs) <= len(used) {
		return nil
	}
	unused := make([]string, 0, len(subs)-len(used))
	for k := range subs {
		if !used[k] {
			unused = append(unused, k)
		}
	}
	sort.Strings(unused)
	return &ErrUnusedSubstitution{Identifier: unused[0]}
}
