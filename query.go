// Copyright (c) The FormatURL Authors
// SPDX-License-Identifier: MPL-2.0

package formaturl

import (
	"sort"
	"strings"
)

// encodeQuery encodes params as a query string without the leading "?".
//
// Keys and values use the same percent-encoding rule as substituted path
// values, so a space is always %20, never "+". Pairs take the form
// "key=value" and are joined with "&" in lexicographic key order: a Go map
// carries no insertion order, and sorting is the same determinism choice
// net/url.Values.Encode makes, so repeated calls over the same mapping
// always produce the same string. An empty or nil map encodes to "".
//
// Values are flat strings; there is no list or nesting support.
func encodeQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf strings.Builder
	for _, k := range keys {
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(escape(k))
		buf.WriteByte('=')
		buf.WriteString(escape(params[k]))
	}
	return buf.String()
}
